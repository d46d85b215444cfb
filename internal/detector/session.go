package detector

import (
	"sync"
	"time"

	"botshield/internal/model"

	"github.com/rs/zerolog/log"
)

// InitialSignals are captured once when a page view starts and never
// change for the life of the session.
type InitialSignals struct {
	UserAgent string
	Referrer  string
	URL       string
	StartedAt time.Time
}

// EmitFunc receives the final classification of a session exactly once.
// It is the explicit instrumentation hook for delivering results; there
// is no ambient global to patch.
type EmitFunc func(initial InitialSignals, result Result)

// Session accumulates signals for one page view and finalizes exactly
// once, either when the observation window elapses or when the page
// unloads, whichever comes first.
type Session struct {
	mu sync.Mutex

	scorer  *Scorer
	initial InitialSignals
	emit    EmitFunc

	features    model.FeatureFlags
	fingerprint model.FingerprintData
	honeypot    int

	// bounded pointer window, oldest dropped on overflow
	window [WindowSize]model.PointerSample
	head   int
	filled int

	interactions  int
	scrollPct     float64
	scrollChanges int
	lastScrollTop float64

	peak      int
	finalized bool
	timer     *time.Timer
}

// NewSession starts a detection session. The finalize timer begins
// immediately; pass a zero window to disable it and finalize manually.
func NewSession(scorer *Scorer, initial InitialSignals, window time.Duration, emit EmitFunc) *Session {
	s := &Session{
		scorer:  scorer,
		initial: initial,
		emit:    emit,
	}
	if window > 0 {
		s.timer = time.AfterFunc(window, s.Finalize)
	}
	return s
}

// SetFeatures records the declared browser capability probes
func (s *Session) SetFeatures(f model.FeatureFlags) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.features = f
}

// SetFingerprint records canvas/WebGL/font probe results
func (s *Session) SetFingerprint(fp model.FingerprintData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fingerprint = fp
}

// RecordPointer appends a pointer sample, dropping the oldest once the
// window is full.
func (s *Session) RecordPointer(p model.PointerSample) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.window[s.head] = p
	s.head = (s.head + 1) % WindowSize
	if s.filled < WindowSize {
		s.filled++
	}
}

// RecordInteraction counts one discrete interaction event
// (click, scroll, key, touch).
func (s *Session) RecordInteraction() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactions++
}

// RecordScroll tracks scroll depth and direction reversals
func (s *Session) RecordScroll(scrollTop, percentage float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if (scrollTop > s.lastScrollTop && s.lastScrollTop > 0) ||
		(scrollTop < s.lastScrollTop && scrollTop > 0) {
		s.scrollChanges++
	}
	s.lastScrollTop = scrollTop
	if percentage > s.scrollPct {
		s.scrollPct = percentage
	}
}

// RecordHoneypot counts an interaction with a decoy element
func (s *Session) RecordHoneypot() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.honeypot++
}

// Score evaluates the rule table against the signals collected so far.
// The running score never decreases across a session.
func (s *Session) Score() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scoreLocked()
}

func (s *Session) scoreLocked() Result {
	r := s.scorer.Score(s.signalsLocked())
	if r.Score < s.peak {
		r.Score = s.peak
		r.IsBot = r.Score >= s.scorer.Threshold()
	} else {
		s.peak = r.Score
	}
	return r
}

// Finalized reports whether the session has already emitted
func (s *Session) Finalized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalized
}

// Finalize closes the session and emits the final classification. The
// second and later calls are no-ops; the timer and the unload path both
// funnel here safely.
func (s *Session) Finalize() {
	s.mu.Lock()
	if s.finalized {
		s.mu.Unlock()
		return
	}
	s.finalized = true
	if s.timer != nil {
		s.timer.Stop()
	}
	result := s.scoreLocked()
	initial := s.initial
	emit := s.emit
	s.mu.Unlock()

	if emit != nil {
		emit(initial, result)
	}

	log.Debug().
		Int("score", result.Score).
		Bool("is_bot", result.IsBot).
		Str("user_agent", initial.UserAgent).
		Msg("Detection session finalized")
}

// Window returns the pointer samples oldest-first
func (s *Session) Window() []model.PointerSample {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windowLocked()
}

func (s *Session) windowLocked() []model.PointerSample {
	out := make([]model.PointerSample, 0, s.filled)
	start := 0
	if s.filled == WindowSize {
		start = s.head
	}
	for i := 0; i < s.filled; i++ {
		out = append(out, s.window[(start+i)%WindowSize])
	}
	return out
}

func (s *Session) signalsLocked() Signals {
	return Signals{
		UserAgent:   s.initial.UserAgent,
		Features:    s.features,
		Fingerprint: s.fingerprint,
		Honeypot:    s.honeypot,
		Behavior: model.BehaviorMetrics{
			PointerSamples:         s.windowLocked(),
			InteractionEvents:      s.interactions,
			ScrollPercentage:       s.scrollPct,
			ScrollDirectionChanges: s.scrollChanges,
		},
	}
}
