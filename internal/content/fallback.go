// README: Hand-authored fallback documents (always schema-valid).
package content

import (
	"fmt"
	"strings"

	"github.com/hananaq/TripMate-AI/internal/trip"
)

// Fallback returns the static floor document for a content type. These are
// deliberately generic: they are only served after two generation attempts
// failed validation, and they must satisfy RuleFor for the same request.
func Fallback(typ Type, req trip.Request) string {
	dest := req.Destination
	switch typ {
	case TypePacking:
		return fmt.Sprintf(`**🌤️ Weather**
Conditions vary; expect seasonal weather in %s. Temp range: 10-22°C.

**🎒 Packing Strategy**
Clothing:
- %d sets of underwear and socks
- 3-4 versatile tops you can layer
- 2 pairs of comfortable trousers
- 1 light jacket or sweater
- 1 smart-casual outfit for evenings
- Comfortable walking shoes
Electronics:
- Phone and charger
- Universal travel adapter
- Power bank

**🧳 Logistics Alert**
Choose a carry-on or small checked suitcase; compact luggage is easier to move between stations and smaller hotel rooms.

**💡 Local Tips**
- Check the local plug type before you travel and pack an adapter.
- Keep valuables in a front pocket or money belt in crowded areas.
- Carry a layer that covers shoulders for religious sites.

**💱 Currency**
Check the local currency of %s and the current USD exchange rate before departure; airport kiosks have the worst rates.`,
			dest, clothingQuantity(req), dest)
	case TypeItinerary:
		days := req.Days()
		var b strings.Builder
		for d := 1; d <= days; d++ {
			fmt.Fprintf(&b, "Day %d\n", d)
			fmt.Fprintf(&b, "- Morning: explore a major landmark or neighborhood of %s.\n", dest)
			b.WriteString("- Afternoon: visit a museum, market or park nearby.\n")
			b.WriteString("- Evening: dinner at a well-reviewed local restaurant.\n\n")
		}
		fmt.Fprintf(&b, "Money Intel\nCheck the local currency of %s and the current USD exchange rate before departure.", dest)
		return b.String()
	case TypeBudget:
		return fmt.Sprintf(`Currency: local currency of %s, 1 USD = check current rate

**Accommodation**
- Plan a nightly rate that fits a %s trip; book early for better prices.

**Food**
- Budget three meals a day plus snacks; markets and lunch menus stretch it further.

**Transportation**
- Set aside funds for transit passes and one or two taxi rides.

**Activities**
- Reserve a daily amount for entry fees and tours.

**Shopping**
- Keep a small discretionary amount for souvenirs.

**Miscellaneous**
- Hold a reserve of around 10%% of the trip cost for surprises.

**Total**
- Add the categories above for the trip figure, then divide by %d traveler(s) and %d days for the per person per day figure.

**Money Tips**
- Pay in local currency when a card terminal offers a choice.
- Withdraw from bank ATMs rather than exchanging cash at the airport.`,
			dest, req.Style, req.Travelers, req.Days())
	case TypeTransport:
		return fmt.Sprintf(`**Getting Around**
%s is easiest to navigate with a mix of walking and local transit; pick accommodation near a transit stop.

**Public Transit**
- Buy a rechargeable transit card or day pass on arrival.
- Use an official transit app for live routes and fares.

**Taxis & Rideshare**
- Use licensed taxis or an established rideshare app and confirm the fare or meter up front.

**Airport Transfer**
- An express train or airport bus is usually cheaper than a taxi; compare both on arrival.

**Transit Tips**
- Avoid the morning and evening rush when traveling with luggage.
- Keep small cash for ticket machines that refuse foreign cards.`, dest)
	case TypeCulture:
		return fmt.Sprintf(`**Etiquette**
- Greet politely and observe how locals queue and hold doors.
- Tipping customs vary; check what is expected in %s before your first meal.

**Dress Code**
Smart casual covers most situations; carry a layer that covers shoulders and knees for religious sites.

**Language Basics**
- "Hello" - learn the local greeting.
- "Thank you" - the single most useful phrase.
- "Excuse me" - for getting attention or passing through.

**Cultural Tips**
- Ask before photographing people.
- Keep your voice down on public transport.`, dest)
	case TypeRestaurants:
		doc := fmt.Sprintf(`**Must-Try Dishes**
- The signature dish %s is known for; ask your host for their favorite.
- A popular street-food snack from a busy market stall.
- A classic local dessert or pastry.

**Recommended Restaurants**
- A well-reviewed traditional restaurant in the city center (mid-range).
- A market hall or food court for an inexpensive lunch (budget).
- A highly rated neighborhood spot locals queue for (book ahead).`, dest)
		if len(req.Dietary) > 0 {
			doc += fmt.Sprintf(`

**Dietary Notes**
- Look for menus marking %s options, and carry a translation card for your restrictions.`,
				strings.Join(req.Dietary, ", "))
		}
		return doc
	case TypeCurrency:
		return fmt.Sprintf(`Currency: local currency of %s

**Exchange Rate**
Check the current 1 USD rate with your bank before departure; rates at airport kiosks are the least favorable.

**Money Tips**
- Pay in local currency when a card terminal offers a choice.
- Carry a small amount of cash for markets and small vendors.`, dest)
	default:
		return Placeholder
	}
}

// clothingQuantity halves the base quantity when laundry is easy to find,
// mirroring the prompt's guidance.
func clothingQuantity(req trip.Request) int {
	days := req.Days()
	if HasLaundryAvailability(req.Destination) {
		if days > 1 {
			days = (days + 1) / 2
		}
	}
	return days
}
