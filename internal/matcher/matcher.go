package matcher

import (
	"strings"

	"botshield/internal/model"
)

// Match returns the first pattern whose name appears in the user agent,
// compared case-insensitively. Patterns are tried in list order, so
// callers wanting specificity must order most-specific-first. An empty
// user agent never matches.
func Match(userAgent string, patterns []model.BotPattern) (model.BotPattern, bool) {
	if userAgent == "" || len(patterns) == 0 {
		return model.BotPattern{}, false
	}

	ua := strings.ToLower(userAgent)
	for _, p := range patterns {
		if p.Name == "" {
			continue
		}
		if strings.Contains(ua, strings.ToLower(p.Name)) {
			return p, true
		}
	}
	return model.BotPattern{}, false
}
