// README: PDF document exporter (flowed text, heuristic wrapping).
package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Item is one flowed block in the exported document, typically one generated
// content type.
type Item struct {
	Heading string
	Text    string
}

const (
	lineHeight    = 7.0
	bulletPrefix  = "- "
	hangingIndent = "  "
)

var headingLineRe = regexp.MustCompile(`^\*\*(.+?)\*\*(.*)$`)

// Batch lays the items out into a single paginated PDF: a bold title line
// with the destination, a dates subtitle, then each item flowed in order.
// Wrapping is lossless in word content; only runes outside the core-font
// encoding are dropped.
func Batch(title, destination, subtitle string, items []Item) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	w := &writer{pdf: pdf}

	pdf.SetFont("Helvetica", "B", 14)
	w.wrapped(sanitize(fmt.Sprintf("%s: %s", title, destination)), "", "")
	if subtitle != "" {
		pdf.SetFont("Helvetica", "", 11)
		w.wrapped(sanitize(subtitle), "", "")
	}
	pdf.Ln(5)

	for i, item := range items {
		if i > 0 {
			pdf.Ln(6)
		}
		if item.Heading != "" {
			pdf.SetFont("Helvetica", "B", 13)
			w.wrapped(sanitize(item.Heading), "", "")
			pdf.Ln(2)
		}
		pdf.SetFont("Helvetica", "", 11)
		w.flow(sanitize(item.Text))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// Document exports a single text as its own PDF, titled like
// "Packing Guide: Tokyo, Japan".
func Document(title, destination, subtitle, text string) ([]byte, error) {
	return Batch(title, destination, subtitle, []Item{{Text: text}})
}

type writer struct {
	pdf       *gofpdf.Fpdf
	paragraph []string
}

// flow writes one document body: bold heading lines, indented bullets, and
// paragraphs joined across line breaks and re-bulleted by sentence.
func (w *writer) flow(text string) {
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if m := headingLineRe.FindStringSubmatch(line); m != nil {
			w.flushParagraph()
			heading := strings.TrimSpace(m[1])
			remainder := strings.TrimSpace(strings.TrimLeft(m[2], ": "))
			w.pdf.SetFont("Helvetica", "B", 12)
			w.wrapped(heading, "", "")
			w.pdf.SetFont("Helvetica", "", 11)
			if remainder != "" {
				w.sentenceBullets(remainder)
			}
			w.pdf.Ln(1)
			continue
		}
		if line == "" {
			w.flushParagraph()
			w.pdf.Ln(4)
			continue
		}
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "• ") {
			w.flushParagraph()
			w.wrapped(strings.TrimSpace(line[2:]), bulletPrefix, hangingIndent)
			continue
		}
		w.paragraph = append(w.paragraph, strings.ReplaceAll(line, "**", ""))
	}
	w.flushParagraph()
}

func (w *writer) flushParagraph() {
	if len(w.paragraph) == 0 {
		return
	}
	var parts []string
	for _, l := range w.paragraph {
		if t := strings.TrimSpace(l); t != "" {
			parts = append(parts, t)
		}
	}
	w.paragraph = w.paragraph[:0]
	w.sentenceBullets(strings.Join(parts, " "))
}

// sentenceBullets renders multi-sentence prose as a bullet per sentence, a
// single sentence as a plain wrapped line.
func (w *writer) sentenceBullets(text string) {
	sentences := splitSentences(text)
	if len(sentences) <= 1 {
		w.wrapped(text, "", "")
		return
	}
	for _, s := range sentences {
		w.wrapped(s, bulletPrefix, hangingIndent)
	}
}

// wrapped writes text wrapped to the printable width, prefixing the first
// line with firstPrefix and continuation lines with nextPrefix.
func (w *writer) wrapped(text, firstPrefix, nextPrefix string) {
	for i, line := range w.wrapLines(text, firstPrefix, nextPrefix) {
		prefix := nextPrefix
		if i == 0 {
			prefix = firstPrefix
		}
		if line == "" {
			w.pdf.Ln(lineHeight)
			continue
		}
		w.pdf.CellFormat(0, lineHeight, prefix+line, "", 1, "", false, 0, "")
	}
}

// wrapLines greedily packs words into the printable width, splitting words
// that are wider than a whole line character by character. No character is
// ever dropped here; only whitespace boundaries change.
func (w *writer) wrapLines(text, firstPrefix, nextPrefix string) []string {
	pageW, _ := w.pdf.GetPageSize()
	left, _, right, _ := w.pdf.GetMargins()
	maxWidth := pageW - left - right
	firstWidth := maxWidth - w.pdf.GetStringWidth(firstPrefix)
	nextWidth := maxWidth - w.pdf.GetStringWidth(nextPrefix)

	if text == "" {
		return []string{""}
	}

	var lines []string
	current := ""
	width := firstWidth
	for _, word := range strings.Fields(text) {
		candidate := strings.TrimSpace(current + " " + word)
		if w.pdf.GetStringWidth(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
			width = nextWidth
		}
		if w.pdf.GetStringWidth(word) <= width {
			current = word
			continue
		}
		parts := w.splitLongWord(word, width)
		if len(parts) > 0 {
			current = parts[len(parts)-1]
			lines = append(lines, parts[:len(parts)-1]...)
			width = nextWidth
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitLongWord chops a word that cannot fit on one line into width-sized
// chunks.
func (w *writer) splitLongWord(word string, maxWidth float64) []string {
	var chunks []string
	chunk := ""
	for _, ch := range word {
		if w.pdf.GetStringWidth(chunk+string(ch)) <= maxWidth {
			chunk += string(ch)
			continue
		}
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		chunk = string(ch)
	}
	if chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// sanitize strips markdown H2 markers and every rune outside the core-font
// single-byte encoding. Emoji and non-Latin glyphs are dropped, an accepted
// lossy degradation.
func sanitize(text string) string {
	text = strings.ReplaceAll(text, "## ", "")
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r <= 0xFF {
			b.WriteRune(r)
		}
	}
	return b.String()
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
