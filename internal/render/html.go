// README: Section body -> display markup (escaped, lists vs paragraphs).
package render

import (
	"html"
	"regexp"
	"strings"

	"github.com/hananaq/TripMate-AI/internal/sections"
)

var (
	strongRe     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	bareBulletRe = regexp.MustCompile(`(?m)^[-•]\s*$`)
)

// Body converts a section body into display markup. The raw text is escaped
// before any markup is injected, so model output can never smuggle live HTML
// into the page.
func Body(text string) string {
	safe := html.EscapeString(text)
	safe = strongRe.ReplaceAllString(safe, "<strong>$1</strong>")
	safe = bareBulletRe.ReplaceAllString(safe, "")

	lines := strings.Split(safe, "\n")
	hasList := false
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "-") || strings.HasPrefix(t, "•") {
			hasList = true
			break
		}
	}

	// A bullet-free body with several sentences reads better as a list.
	if !hasList {
		var parts []string
		for _, line := range lines {
			if t := strings.TrimSpace(line); t != "" {
				parts = append(parts, t)
			}
		}
		sentences := splitSentences(strings.Join(parts, " "))
		if len(sentences) > 1 {
			var b strings.Builder
			b.WriteString("<ul>")
			for _, s := range sentences {
				b.WriteString("<li>" + s + "</li>")
			}
			b.WriteString("</ul>")
			return b.String()
		}
	}

	var out []string
	inList := false
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			if inList {
				out = append(out, "</ul>")
				inList = false
			}
			out = append(out, "<br>")
			continue
		}
		if strings.HasPrefix(stripped, "-") || strings.HasPrefix(stripped, "•") {
			bullet := strings.TrimSpace(strings.TrimLeft(stripped, "-• "))
			if bullet == "" {
				continue
			}
			if !inList {
				out = append(out, "<ul>")
				inList = true
			}
			out = append(out, "<li>"+bullet+"</li>")
			continue
		}
		if inList {
			out = append(out, "</ul>")
			inList = false
		}
		out = append(out, "<p>"+stripped+"</p>")
	}
	if inList {
		out = append(out, "</ul>")
	}
	return strings.Join(out, "\n")
}

// Card wraps one section as a display card: escaped title plus rendered body.
func Card(s sections.Section) string {
	return `<div class="result-card"><div class="result-card-title">` +
		html.EscapeString(s.Title) + `</div>` + Body(s.Body) + `</div>`
}

// splitSentences splits after ., ! or ? followed by whitespace.
func splitSentences(text string) []string {
	var out []string
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		b.WriteRune(runes[i])
		if (runes[i] == '.' || runes[i] == '!' || runes[i] == '?') &&
			i+1 < len(runes) && (runes[i+1] == ' ' || runes[i+1] == '\t') {
			if s := strings.TrimSpace(b.String()); s != "" {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}
	return out
}
