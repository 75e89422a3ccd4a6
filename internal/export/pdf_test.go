package export

import (
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWriter() *writer {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)
	return &writer{pdf: pdf}
}

func TestBatchProducesPDF(t *testing.T) {
	items := []Item{
		{Heading: "Packing Guide", Text: "**Clothing**\n- light jacket\n- walking shoes"},
		{Heading: "Itinerary", Text: "Day 1\n- arrive\n- dinner"},
	}
	out, err := Batch("Travel Plan", "Tokyo, Japan", "Jun 10, 2030 - Jun 14, 2030", items)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "output should be a PDF")
	assert.Greater(t, len(out), 1000)
}

func TestDocumentProducesPDF(t *testing.T) {
	out, err := Document("Currency Guide", "Tokyo, Japan", "", "Currency: JPY\n\n**Money Tips**\n- carry cash\n- use IC cards")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestBatchSurvivesEmojiHeadings(t *testing.T) {
	out, err := Batch("Travel Plan", "Tokyo, Japan", "", []Item{
		{Heading: "Packing Guide", Text: "**🌤️ Weather**\nMild and rainy."},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Weather", sanitize("🌤️ Weather"))
	assert.Equal(t, "café", sanitize("café"))
	assert.Equal(t, "Day 1", sanitize("## Day 1"))
	assert.Equal(t, "12-18°C", sanitize("12-18°C"))
}

func TestWrapLinesKeepsEveryWord(t *testing.T) {
	w := newTestWriter()
	text := strings.Repeat("wander the riverside markets before sunrise ", 8)

	lines := w.wrapLines(strings.TrimSpace(text), "", "")

	assert.Greater(t, len(lines), 1)
	rejoined := strings.Join(lines, " ")
	assert.Equal(t, strings.Fields(text), strings.Fields(rejoined))
}

func TestWrapLinesSplitsLongWord(t *testing.T) {
	w := newTestWriter()
	word := strings.Repeat("x", 400)

	lines := w.wrapLines(word, bulletPrefix, hangingIndent)

	assert.Greater(t, len(lines), 1)
	assert.Equal(t, word, strings.Join(lines, ""))
}

func TestWrapLinesEmpty(t *testing.T) {
	w := newTestWriter()
	assert.Equal(t, []string{""}, w.wrapLines("", "", ""))
}

func TestSplitLongWordRejoins(t *testing.T) {
	w := newTestWriter()
	word := "https://example.com/" + strings.Repeat("segment/", 40)

	chunks := w.splitLongWord(word, 50)

	assert.Greater(t, len(chunks), 1)
	assert.Equal(t, word, strings.Join(chunks, ""))
}

func TestSplitSentencesExport(t *testing.T) {
	got := splitSentences("Pack light. Leave room for souvenirs.")
	assert.Equal(t, []string{"Pack light.", "Leave room for souvenirs."}, got)
}
