package content

import "strings"

// Validate reports whether text satisfies the rule. It is purely structural:
// marker membership and bullet counts, nothing semantic. A missing marker
// always means invalid, never a panic.
func Validate(text string, rule Rule) bool {
	for _, m := range rule.Markers {
		if !strings.Contains(text, m) {
			return false
		}
	}
	if rule.forbidden != "" && strings.Contains(text, rule.forbidden) {
		return false
	}
	for marker, min := range rule.MinBullets {
		span, ok := markerSpan(text, rule.Markers, marker)
		if !ok {
			return false
		}
		if countBullets(span) < min {
			return false
		}
	}
	return true
}

// markerSpan returns the text between marker and the nearest following
// occurrence of any other marker. When no marker follows, the remainder of
// the text is the span (the last section has no closing marker).
func markerSpan(text string, markers []string, marker string) (string, bool) {
	start := strings.Index(text, marker)
	if start < 0 {
		return "", false
	}
	start += len(marker)
	rest := text[start:]

	end := len(rest)
	for _, m := range markers {
		if m == marker {
			continue
		}
		if idx := strings.Index(rest, m); idx >= 0 && idx < end {
			end = idx
		}
	}
	return rest[:end], true
}

func countBullets(span string) int {
	n := 0
	for _, line := range strings.Split(span, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "• ") {
			n++
		}
	}
	return n
}
