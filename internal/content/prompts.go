// README: Prompt construction for every content type (pure functions).
package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/hananaq/TripMate-AI/internal/ai"
	"github.com/hananaq/TripMate-AI/internal/trip"
)

// laundryFriendly lists destinations where hotel laundry is common enough to
// pack for half the trip. Matched as a case-insensitive substring of the
// destination label ("Tokyo, Japan" matches "japan").
var laundryFriendly = []string{
	"japan", "taiwan", "south korea", "singapore", "iceland",
	"australia", "new zealand", "united states", "canada",
}

// smallHotelRooms lists destinations known for tiny rooms, where the prompt
// warns against large suitcases.
var smallHotelRooms = []string{
	"japan", "london", "paris", "new york", "hong kong",
	"amsterdam", "rome", "venice",
}

func matchesAny(destination string, needles []string) bool {
	lower := strings.ToLower(destination)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

// HasLaundryAvailability is the laundry signal used by the packing prompt's
// clothing-quantity guidance.
func HasLaundryAvailability(destination string) bool {
	return matchesAny(destination, laundryFriendly)
}

// systemPrompt is the advisor persona used for the packing document.
func systemPrompt(now time.Time) string {
	return fmt.Sprintf(`You are TripMate, a strategic travel logistics expert. Today is %s.
- If weather data is missing or outdated, do NOT mention it. Silently use historical climate knowledge.
- Always assume the user wants to pack efficiently (Smart Casual).
- Consider the destination's infrastructure: laundry availability, hotel room sizes, cobblestone streets and stairs.
- Provide the destination currency and the USD exchange rate as of today. Do not use external currency APIs.`,
		now.Format("January 2, 2006"))
}

// BuildMessages constructs the role-tagged messages for one content type.
// weatherLine is the context sentence produced by the weather fallback chain;
// it is only used for the packing document.
func BuildMessages(req trip.Request, typ Type, weatherLine string, now time.Time) []ai.Message {
	if typ == TypePacking {
		return []ai.Message{
			{Role: ai.RoleSystem, Content: systemPrompt(now)},
			{Role: ai.RoleUser, Content: packingPrompt(req, weatherLine)},
		}
	}
	return []ai.Message{{Role: ai.RoleUser, Content: userPrompt(req, typ, now)}}
}

func packingPrompt(req trip.Request, weatherLine string) string {
	days := req.Days()
	laundry := "Laundry availability is limited; pack full quantities for the whole trip."
	if HasLaundryAvailability(req.Destination) {
		laundry = fmt.Sprintf("%s has high availability of laundry, so tell me to pack for half the trip.", req.Destination)
	}
	suitcase := "Advise on suitcase size based on local hotel room sizes and ease of transport."
	if matchesAny(req.Destination, smallHotelRooms) {
		suitcase = "Hotel rooms there are small; warn against large suitcases and advise on ease of transport."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I am traveling to %s on %s for %d days (%d traveler(s), %s style).\n\n",
		req.Destination, req.Start.Format("2006-01-02"), days, req.Travelers, req.Style)
	fmt.Fprintf(&b, "Weather context: %s\n\n", weatherLine)
	b.WriteString("Instructions:\n")
	b.WriteString("1. **🌤️ Weather:** Provide a brief summary only (e.g., \"cool and cloudy with a chance of rain\"). Include a simple temperature range like \"Temp range: 12-18°C.\" Do NOT include humidity, sunlight, or separate day/night highs.\n")
	fmt.Fprintf(&b, "2. **🎒 Packing Strategy:** Scale the quantity of items to exactly %d days.\n", days)
	b.WriteString("   - Include a 'Clothing:' list with at least 6 bullet items scaled to the climate, and an 'Electronics:' list with at least 3 bullet items.\n")
	fmt.Fprintf(&b, "   - Laundry: %s\n", laundry)
	fmt.Fprintf(&b, "3. **🧳 Logistics Alert:** %s\n", suitcase)
	b.WriteString("4. **💡 Local Tips:** Mention electricity plug types, safety, and cultural dress codes (e.g., covering shoulders in temples).\n")
	b.WriteString("5. **💱 Currency:** State the local currency and today's USD exchange rate.\n\n")
	b.WriteString("STRICT: No sightseeing suggestions. No apologies. Use exactly 5 bold section headings with icons (Weather, Packing Strategy, Logistics Alert, Local Tips, Currency). Do not use bold text inside sections. No HTML.")
	return b.String()
}

func userPrompt(req trip.Request, typ Type, now time.Time) string {
	days := req.Days()
	today := now.Format("January 2, 2006")

	switch typ {
	case TypeItinerary:
		var b strings.Builder
		fmt.Fprintf(&b, "Create a %d-day itinerary for %s starting %s for %d traveler(s) with a %s budget.\n",
			days, req.Destination, req.Start.Format("2006-01-02"), req.Travelers, req.Style)
		fmt.Fprintf(&b, "- Match the duration (%d days) exactly: use headings Day 1 through Day %d and nothing beyond Day %d.\n", days, days, days)
		b.WriteString("- Suggest 2-3 specific restaurants and local dishes.\n")
		b.WriteString("- Include specific attractions.\n")
		if len(req.Interests) > 0 {
			fmt.Fprintf(&b, "- Focus on these interests: %s.\n", strings.Join(req.Interests, ", "))
		}
		fmt.Fprintf(&b, "- At the end, include a 'Money Intel' section with the local currency and the USD exchange rate as of %s. Do not use external currency APIs.\n", today)
		b.WriteString("- DO NOT discuss weather tools or ask questions.\n")
		b.WriteString("- Format Day 1, Day 2, etc. No HTML. No apologies.")
		return b.String()
	case TypeBudget:
		return fmt.Sprintf(`Create a %d-day %s travel budget for %s for %d traveler(s).
Use exactly this format, filling in realistic numbers:

%s

STRICT: Keep every heading exactly as written, at least one bullet under each category, no extra sections, no HTML, no apologies.`,
			days, req.Style, req.Destination, req.Travelers, Template(typ, req))
	case TypeTransport, TypeCulture, TypeRestaurants, TypeCurrency:
		intro := map[Type]string{
			TypeTransport:   fmt.Sprintf("Write a transport guide for getting around %s as a visitor.", req.Destination),
			TypeCulture:     fmt.Sprintf("Write a cultural guide for a visitor to %s.", req.Destination),
			TypeRestaurants: fmt.Sprintf("Recommend food and restaurants in %s for a %s-style trip.", req.Destination, req.Style),
			TypeCurrency:    fmt.Sprintf("Write a currency guide for a visitor to %s. Use today's (%s) USD exchange rate from your knowledge; do not use external currency APIs.", req.Destination, today),
		}[typ]
		var b strings.Builder
		b.WriteString(intro)
		b.WriteString("\nUse exactly this format:\n\n")
		b.WriteString(Template(typ, req))
		if typ == TypeRestaurants && len(req.Dietary) > 0 {
			fmt.Fprintf(&b, "\n\nThe travelers have these dietary restrictions: %s. The Dietary Notes section must address them.", strings.Join(req.Dietary, ", "))
		}
		b.WriteString("\n\nSTRICT: Keep every heading exactly as written, no extra sections, no HTML, no apologies.")
		return b.String()
	default:
		return ""
	}
}

// Template returns the literal output template for a content type. It is
// embedded in first prompts where useful and echoed verbatim by the repair
// prompt.
func Template(typ Type, req trip.Request) string {
	days := req.Days()
	switch typ {
	case TypePacking:
		return `**🌤️ Weather**
<one-sentence summary. Temp range: <low>-<high>°C.>

**🎒 Packing Strategy**
Clothing:
- <at least 6 bullet items>
Electronics:
- <at least 3 bullet items>

**🧳 Logistics Alert**
<suitcase and transport advice>

**💡 Local Tips**
- <plug type, safety, dress code tips>

**💱 Currency**
<local currency and today's USD exchange rate>`
	case TypeItinerary:
		var b strings.Builder
		for d := 1; d <= days; d++ {
			fmt.Fprintf(&b, "Day %d\n- <morning activity>\n- <afternoon activity>\n- <dinner suggestion>\n\n", d)
		}
		b.WriteString("Money Intel\n<local currency and USD exchange rate>")
		return b.String()
	case TypeBudget:
		return `Currency: <local currency>, 1 USD = <rate>

**Accommodation**
- <per-night and trip estimate>

**Food**
- <daily and trip estimate>

**Transportation**
- <trip estimate>

**Activities**
- <trip estimate>

**Shopping**
- <trip estimate>

**Miscellaneous**
- <trip estimate>

**Total**
- <trip total, and the figure per person per day>

**Money Tips**
- <tip>
- <tip>`
	case TypeTransport:
		return `**Getting Around**
<one-paragraph overview>

**Public Transit**
- <at least 2 bullets on lines, cards, fares>

**Taxis & Rideshare**
- <options and typical fares>

**Airport Transfer**
- <best ways into town>

**Transit Tips**
- <at least 2 practical tips>`
	case TypeCulture:
		return `**Etiquette**
- <at least 2 bullets>

**Dress Code**
<expectations, including religious sites>

**Language Basics**
- <at least 3 useful phrases with pronunciation>

**Cultural Tips**
- <dos and don'ts>`
	case TypeRestaurants:
		t := `**Must-Try Dishes**
- <at least 3 local dishes>

**Recommended Restaurants**
- <at least 3 specific places with price level>`
		if len(req.Dietary) > 0 {
			t += `

**Dietary Notes**
- <options for the stated restrictions>`
		}
		return t
	case TypeCurrency:
		return `Currency: <name and code>

**Exchange Rate**
<1 USD = rate, and where to exchange>

**Money Tips**
- <tip>
- <tip>`
	default:
		return ""
	}
}

// RepairMessages builds the stricter second-attempt prompt: it echoes the
// exact required template back to the model together with the failed text.
func RepairMessages(typ Type, req trip.Request, badText string) []ai.Message {
	user := fmt.Sprintf(`The following %s for %s does not match the required format.
Rewrite it so it matches this template EXACTLY, keeping the factual content:

%s

Content to rewrite:
%s

STRICT: Output only the reformatted document. No commentary, no apologies, no HTML, no extra sections.`,
		strings.ToLower(typ.DisplayName()), req.Destination, Template(typ, req), badText)

	return []ai.Message{
		{Role: ai.RoleSystem, Content: "You are a strict formatter. You rewrite content to match a required template exactly. You never apologize and never add commentary."},
		{Role: ai.RoleUser, Content: user},
	}
}

// temperatureFor tunes sampling per type: a cooler advisor for packing, a
// more creative voice elsewhere, and a near-deterministic repair pass.
func temperatureFor(typ Type) float32 {
	if typ == TypePacking {
		return 0.4
	}
	return 0.7
}

const repairTemperature float32 = 0.2
