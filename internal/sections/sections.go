// README: Markdown sectionizer; per-content-type heading detection.
package sections

import (
	"regexp"
	"strings"

	"github.com/hananaq/TripMate-AI/internal/content"
)

// Section is one (heading, body) pair extracted from a document.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Split sectionizes a document with the strategy for its content type. It is
// a pure function: same text, same sections, in source order, and never an
// empty result. A document with no recognized headings becomes a single
// generically titled section.
func Split(text string, typ content.Type) []Section {
	switch typ {
	case content.TypePacking:
		return splitPackingHeadings(text)
	case content.TypeItinerary:
		return splitDayHeadings(text)
	default:
		return splitBoldSections(text)
	}
}

var boldSpanRe = regexp.MustCompile(`\*\*(.+?)\*\*`)

// splitBoldSections treats every **...** span as a heading and the text up to
// the next span as its body. Shared fallback for all content types.
func splitBoldSections(text string) []Section {
	matches := boldSpanRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Section{{Title: "Details", Body: strings.TrimSpace(text)}}
	}

	var out []Section
	for i, m := range matches {
		title := strings.TrimSpace(text[m[2]:m[3]])
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := strings.TrimSpace(text[m[1]:end])
		if title == "" && body == "" {
			continue
		}
		if title == "" {
			title = "Details"
		}
		out = append(out, Section{Title: title, Body: body})
	}
	if len(out) == 0 {
		return []Section{{Title: "Details", Body: strings.TrimSpace(text)}}
	}
	return out
}

// packingHeadingRe recognizes the advisor document's heading vocabulary with
// tolerance for bold markers, icons and trailing colons.
var packingHeadingRe = regexp.MustCompile(
	`(?i)^(?:\*\*)?\s*(?:🌤️|🎒|🧳|💡|💱)?\s*(weather analysis|weather|packing strategy|packing|logistics alert|local tips|currency)\s*:?\s*(?:\*\*)?$`)

var packingIcons = []string{"🌤️", "🎒", "🧳", "💡", "💱"}

// splitPackingHeadings scans line by line for the fixed packing vocabulary,
// canonicalizing icon-less headings. Falls back to bold-span splitting when
// nothing matches.
func splitPackingHeadings(text string) []Section {
	var out []Section
	var title string
	var buffer []string

	flush := func() {
		if title != "" {
			out = append(out, Section{Title: title, Body: strings.TrimSpace(strings.Join(buffer, "\n"))})
		}
		buffer = buffer[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		raw := strings.TrimSpace(line)
		m := packingHeadingRe.FindStringSubmatch(raw)
		if m == nil {
			buffer = append(buffer, line)
			continue
		}
		flush()
		heading := strings.TrimSpace(strings.Trim(raw, "*"))
		if !containsAnyIcon(heading) {
			heading = canonicalPackingHeading(m[1])
		}
		title = heading
	}
	flush()

	if len(out) == 0 {
		return splitBoldSections(text)
	}
	return out
}

func containsAnyIcon(s string) bool {
	for _, icon := range packingIcons {
		if strings.Contains(s, icon) {
			return true
		}
	}
	return false
}

func canonicalPackingHeading(label string) string {
	switch l := strings.ToLower(label); {
	case strings.HasPrefix(l, "weather"):
		return "🌤️ Weather Analysis"
	case strings.HasPrefix(l, "packing"):
		return "🎒 Packing Strategy"
	case strings.HasPrefix(l, "logistics"):
		return "🧳 Logistics Alert"
	case strings.HasPrefix(l, "local"):
		return "💡 Local Tips"
	default:
		return "💱 Currency"
	}
}

var (
	dayHeadingRe   = regexp.MustCompile(`(?i)^(day\s+\d+.*|money intel.*)$`)
	moneyIntelRe   = regexp.MustCompile(`(?i)^money intel`)
	leadingHashReg = regexp.MustCompile(`^[#\s]+`)
)

// splitDayHeadings recognizes "Day N" and "Money Intel" heading lines in
// itineraries; Money Intel is normalized to the shared currency heading.
func splitDayHeadings(text string) []Section {
	var out []Section
	var title string
	var buffer []string

	flush := func() {
		if title != "" {
			out = append(out, Section{Title: title, Body: strings.TrimSpace(strings.Join(buffer, "\n"))})
		}
		buffer = buffer[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.Trim(strings.TrimSpace(line), "*")
		normalized := leadingHashReg.ReplaceAllString(stripped, "")
		if !dayHeadingRe.MatchString(normalized) {
			buffer = append(buffer, line)
			continue
		}
		flush()
		if moneyIntelRe.MatchString(normalized) {
			title = "💱 Currency"
		} else {
			title = normalized
		}
	}
	flush()

	if len(out) == 0 {
		return []Section{{Title: "Itinerary", Body: strings.TrimSpace(text)}}
	}
	return out
}

// Titled pairs a document with its display sections, convenience for the
// HTTP layer and exporter.
func Titled(doc content.Document) (string, []Section) {
	return doc.Type.DisplayName(), Split(doc.Text, doc.Type)
}
