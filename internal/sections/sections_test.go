package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hananaq/TripMate-AI/internal/content"
)

func titles(secs []Section) []string {
	out := make([]string, len(secs))
	for i, s := range secs {
		out[i] = s.Title
	}
	return out
}

func TestSplitBoldSections(t *testing.T) {
	text := `**Getting Around**
Compact and walkable.

**Public Transit**
- metro runs until midnight
- buy a day pass`

	secs := Split(text, content.TypeTransport)

	assert.Equal(t, []string{"Getting Around", "Public Transit"}, titles(secs))
	assert.Equal(t, "Compact and walkable.", secs[0].Body)
	assert.Contains(t, secs[1].Body, "day pass")
}

func TestSplitBoldSectionsNoHeadings(t *testing.T) {
	secs := Split("just a paragraph of advice with no headings", content.TypeCulture)

	assert.Len(t, secs, 1)
	assert.Equal(t, "Details", secs[0].Title)
	assert.Equal(t, "just a paragraph of advice with no headings", secs[0].Body)
}

func TestSplitPackingHeadings(t *testing.T) {
	text := `**🌤️ Weather**
Mild and rainy. Temp range: 12-18°C.

**🎒 Packing Strategy**
Clothing:
- light jacket

**🧳 Logistics Alert**
Rooms are small.

**💡 Local Tips**
- type A plugs

**💱 Currency**
JPY, 1 USD = 150.`

	secs := Split(text, content.TypePacking)

	assert.Len(t, secs, 5)
	assert.Equal(t, "🌤️ Weather", secs[0].Title)
	assert.Equal(t, "💱 Currency", secs[4].Title)
	assert.Contains(t, secs[1].Body, "light jacket")
}

func TestSplitPackingCanonicalizesPlainHeadings(t *testing.T) {
	text := `Weather:
Cool mornings.

Packing Strategy
- layers

Currency
EUR.`

	secs := Split(text, content.TypePacking)

	assert.Equal(t,
		[]string{"🌤️ Weather Analysis", "🎒 Packing Strategy", "💱 Currency"},
		titles(secs))
}

func TestSplitPackingFallsBackToBold(t *testing.T) {
	text := "**Overview**\nNo packing vocabulary here."
	secs := Split(text, content.TypePacking)

	assert.Equal(t, []string{"Overview"}, titles(secs))
}

func TestSplitDayHeadings(t *testing.T) {
	text := `Day 1
- arrive and check in
- dinner in the old town

## Day 2
- day trip

**Money Intel**
EUR, 1 USD = 0.9.`

	secs := Split(text, content.TypeItinerary)

	assert.Equal(t, []string{"Day 1", "Day 2", "💱 Currency"}, titles(secs))
	assert.Contains(t, secs[0].Body, "old town")
	assert.Contains(t, secs[2].Body, "EUR")
}

func TestSplitDayHeadingsKeepsSuffix(t *testing.T) {
	secs := Split("Day 1: Arrival\n- land at noon", content.TypeItinerary)
	assert.Equal(t, []string{"Day 1: Arrival"}, titles(secs))
}

func TestSplitDayHeadingsNoMatches(t *testing.T) {
	secs := Split("a free-form plan without day markers", content.TypeItinerary)

	assert.Len(t, secs, 1)
	assert.Equal(t, "Itinerary", secs[0].Title)
}

func TestSplitIsIdempotentOnText(t *testing.T) {
	text := "**A**\none\n\n**B**\ntwo"
	first := Split(text, content.TypeBudget)
	second := Split(text, content.TypeBudget)
	assert.Equal(t, first, second)
}

func TestTitled(t *testing.T) {
	doc := content.Document{Type: content.TypeBudget, Text: "**Total**\n- 1200 USD"}
	title, secs := Titled(doc)

	assert.Equal(t, "Budget Plan", title)
	assert.Equal(t, []string{"Total"}, titles(secs))
}
