package directive

import (
	"strings"

	"botshield/internal/model"
)

const (
	// BeginMarker opens the managed region inside a directive document
	BeginMarker = "# Begin BotShield"
	// EndMarker closes the managed region
	EndMarker = "# End BotShield"
	// Wildcard is the catch-all user agent, never treated as a bot pattern
	Wildcard = "*"

	userAgentPrefix = "user-agent:"
	disallowPrefix  = "disallow:"
)

// Parse extracts bot patterns from robots.txt-style directive text.
// A comment line directly above a User-agent line attaches as the
// pattern's description. The wildcard user agent is skipped.
func Parse(text string) []model.BotPattern {
	var patterns []model.BotPattern
	seen := make(map[string]bool)

	var pendingComment string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" {
			pendingComment = ""
			continue
		}

		if strings.HasPrefix(line, "#") {
			// Marker lines are structural, not descriptions
			if line == BeginMarker || line == EndMarker {
				pendingComment = ""
			} else {
				pendingComment = strings.TrimSpace(strings.TrimPrefix(line, "#"))
			}
			continue
		}

		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, userAgentPrefix) {
			name := strings.TrimSpace(line[len(userAgentPrefix):])
			if name != "" && name != Wildcard && !seen[name] {
				patterns = append(patterns, model.BotPattern{
					Name:        name,
					Description: pendingComment,
				})
				seen[name] = true
			}
		}

		pendingComment = ""
	}

	return patterns
}

// Render produces directive text for the given patterns, one
// User-agent/Disallow block per pattern separated by blank lines.
func Render(patterns []model.BotPattern) string {
	var b strings.Builder
	for i, p := range patterns {
		if p.Name == "" || p.Name == Wildcard {
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		if p.Description != "" {
			b.WriteString("# " + p.Description + "\n")
		}
		b.WriteString("User-agent: " + p.Name + "\n")
		b.WriteString("Disallow: /\n")
	}
	return b.String()
}

// ManagedRegion returns the content between the Begin/End markers,
// or "" when no managed region exists.
func ManagedRegion(document string) string {
	begin := strings.Index(document, BeginMarker)
	if begin < 0 {
		return ""
	}
	rest := document[begin+len(BeginMarker):]
	end := strings.Index(rest, EndMarker)
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}

// StripManagedRegion removes the marker-delimited region from the
// document, leaving surrounding content untouched.
func StripManagedRegion(document string) string {
	begin := strings.Index(document, BeginMarker)
	if begin < 0 {
		return document
	}
	rest := document[begin+len(BeginMarker):]
	end := strings.Index(rest, EndMarker)
	if end < 0 {
		return strings.TrimRight(document[:begin], "\n") + "\n"
	}
	after := rest[end+len(EndMarker):]
	after = strings.TrimLeft(after, "\n")
	before := strings.TrimRight(document[:begin], "\n")
	if before == "" {
		return after
	}
	if after == "" {
		return before + "\n"
	}
	return before + "\n" + after
}

// SpliceManagedRegion replaces the managed region of the document with
// content. Empty content removes the region entirely.
func SpliceManagedRegion(document, content string) string {
	base := strings.TrimSpace(StripManagedRegion(document))

	if strings.TrimSpace(content) == "" {
		if base == "" {
			return ""
		}
		return base + "\n"
	}

	section := BeginMarker + "\n" + strings.TrimSpace(content) + "\n" + EndMarker + "\n"
	if base == "" {
		return section
	}
	return base + "\n" + section
}
