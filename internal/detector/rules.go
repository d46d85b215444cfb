package detector

import (
	"regexp"
)

// Weights is the contribution each rule adds to the bot score. Rules are
// not mutually exclusive; contributions accumulate.
type Weights struct {
	GenericBotToken     int `mapstructure:"generic_bot_token"`
	KnownCrawler        int `mapstructure:"known_crawler"`
	BrandMismatch       int `mapstructure:"brand_mismatch"`
	ManyFeaturesMissing int `mapstructure:"many_features_missing"`
	SomeFeaturesMissing int `mapstructure:"some_features_missing"`
	BlankCanvas         int `mapstructure:"blank_canvas"`
	CanvasError         int `mapstructure:"canvas_error"`
	SoftwareRenderer    int `mapstructure:"software_renderer"`
	FewFonts            int `mapstructure:"few_fonts"`
	FewPointerSamples   int `mapstructure:"few_pointer_samples"`
	FewInteractions     int `mapstructure:"few_interactions"`
	NoScrollReversal    int `mapstructure:"no_scroll_reversal"`
	LinearPointerPath   int `mapstructure:"linear_pointer_path"`
	UniformTiming       int `mapstructure:"uniform_timing"`
	Honeypot            int `mapstructure:"honeypot"`
}

// Config is the single tunable table for the heuristic scorer.
// The defaults match the values the rules were shipped with; they are
// empirically chosen and are candidates for offline calibration.
type Config struct {
	Weights   Weights `mapstructure:"weights"`
	Threshold int     `mapstructure:"threshold"`
}

// DefaultConfig returns the shipped rule weights and threshold
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			GenericBotToken:     30,
			KnownCrawler:        50,
			BrandMismatch:       25,
			ManyFeaturesMissing: 40,
			SomeFeaturesMissing: 20,
			BlankCanvas:         30,
			CanvasError:         15,
			SoftwareRenderer:    25,
			FewFonts:            15,
			FewPointerSamples:   20,
			FewInteractions:     15,
			NoScrollReversal:    10,
			LinearPointerPath:   20,
			UniformTiming:       15,
			Honeypot:            50,
		},
		Threshold: 60,
	}
}

// Fixed rule parameters. These define what the rules measure, not how
// much they weigh, so they stay constants.
const (
	// WindowSize caps the behavioral pointer sample window
	WindowSize = 20

	minFontCount        = 3
	minPointerSamples   = 5
	minInteractions     = 3
	scrollDepthPercent  = 30.0
	colinearSegmentsMin = 5
	timingStdDevMs      = 5.0
	minTimingSamples    = 5
)

var (
	genericBotRe = regexp.MustCompile(`(?i)bot|crawler|spider|scraper|fetch|headless`)

	knownCrawlerRe = regexp.MustCompile(`(?i)googlebot|bingbot|yandexbot|slurp|duckduckbot|baiduspider|twitterbot|facebookexternalhit|rogerbot|linkedinbot|embedly|quora link preview|showyoubot|outbrain|pinterest|slackbot|vkshare|w3c_validator`)

	softwareRendererRe = regexp.MustCompile(`(?i)swiftshader|llvmpipe|virtualbox|vmware`)
)
