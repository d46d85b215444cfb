package detector

import (
	"strings"

	"botshield/internal/model"
)

// Signals is the full set of observations collected for one page view.
// Collection is platform-specific and happens elsewhere; the scorer
// only ever sees this captured form.
type Signals struct {
	UserAgent   string
	Features    model.FeatureFlags
	Fingerprint model.FingerprintData
	Behavior    model.BehaviorMetrics
	Honeypot    int
}

// Result is a classification of one signal set
type Result struct {
	Score   int      `json:"score"`
	IsBot   bool     `json:"is_bot"`
	Reasons []string `json:"reasons,omitempty"`
}

// Scorer evaluates the weighted rule table against collected signals.
// Scoring is a pure function of the signals; the same input always
// yields the same result.
type Scorer struct {
	cfg Config
}

// NewScorer creates a Scorer with the given rule table
func NewScorer(cfg Config) *Scorer {
	if cfg.Threshold <= 0 {
		cfg = DefaultConfig()
	}
	return &Scorer{cfg: cfg}
}

// Threshold returns the classification cutoff
func (s *Scorer) Threshold() int {
	return s.cfg.Threshold
}

// Score applies every rule to the signals and classifies against the
// threshold. Rules accumulate independently.
func (s *Scorer) Score(sig Signals) Result {
	w := s.cfg.Weights
	score := 0
	var reasons []string

	add := func(points int, reason string) {
		score += points
		reasons = append(reasons, reason)
	}

	// User agent rules
	if genericBotRe.MatchString(sig.UserAgent) {
		add(w.GenericBotToken, "generic bot token in user agent")
	}
	if knownCrawlerRe.MatchString(sig.UserAgent) {
		add(w.KnownCrawler, "known crawler user agent")
	}
	if brandMismatch(sig.UserAgent, sig.Features) {
		add(w.BrandMismatch, "user agent inconsistent with browser globals")
	}

	// Feature detection
	switch missing := missingFeatures(sig.Features); {
	case missing >= 3:
		add(w.ManyFeaturesMissing, "most browser features missing")
	case missing >= 1:
		add(w.SomeFeaturesMissing, "some browser features missing")
	}

	// Canvas fingerprint
	if sig.Fingerprint.CanvasBlank {
		add(w.BlankCanvas, "blank canvas pixel buffer")
	}
	if sig.Fingerprint.CanvasError {
		add(w.CanvasError, "canvas API threw on use")
	}

	// WebGL renderer
	if sig.Fingerprint.WebGLRenderer != "" && softwareRendererRe.MatchString(sig.Fingerprint.WebGLRenderer) {
		add(w.SoftwareRenderer, "software rasterizer renderer string")
	}

	// Font probing
	if len(sig.Fingerprint.Fonts) < minFontCount {
		add(w.FewFonts, "too few detected fonts")
	}

	// Behavior
	b := sig.Behavior
	if len(b.PointerSamples) < minPointerSamples {
		add(w.FewPointerSamples, "too few pointer samples")
	}
	if b.InteractionEvents < minInteractions {
		add(w.FewInteractions, "too few interaction events")
	}
	if b.ScrollPercentage > scrollDepthPercent && b.ScrollDirectionChanges < 1 {
		add(w.NoScrollReversal, "deep scroll with no direction reversal")
	}
	if colinearSegments(b.PointerSamples) >= colinearSegmentsMin {
		add(w.LinearPointerPath, "pointer path is predominantly colinear")
	}
	if uniformTiming(b.PointerSamples) {
		add(w.UniformTiming, "suspiciously uniform pointer timing")
	}

	// Honeypot
	if sig.Honeypot > 0 {
		add(w.Honeypot, "honeypot interaction")
	}

	return Result{
		Score:   score,
		IsBot:   score >= s.cfg.Threshold,
		Reasons: reasons,
	}
}

// brandMismatch reports whether the declared browser brand's expected
// global is absent from the feature probes.
func brandMismatch(userAgent string, f model.FeatureFlags) bool {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "chrome") && !f.HasChromeRuntime {
		return true
	}
	if strings.Contains(ua, "firefox") && !f.HasInstallTrigger {
		return true
	}
	if strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome") && !f.HasSafariPush {
		return true
	}
	return false
}

// missingFeatures counts absent capabilities a real browser would have.
// The plugin probe only counts on desktop; touch devices report no
// plugins legitimately.
func missingFeatures(f model.FeatureFlags) int {
	missing := 0
	if !f.HasWebGL {
		missing++
	}
	if !f.HasCanvas {
		missing++
	}
	if !f.HasSessionStorage {
		missing++
	}
	if !f.HasLocalStorage {
		missing++
	}
	if !f.HasPlugins && !f.HasTouch {
		missing++
	}
	return missing
}
