package content

import "fmt"

// Rule is the declarative schema one content type must satisfy: a set of
// required literal markers plus minimum bullet counts for the span between a
// marker and whichever other marker follows it first.
type Rule struct {
	Markers    []string
	MinBullets map[string]int

	// forbidden, when set, is a marker that must NOT appear. Itinerary rules
	// use it to reject documents that overshoot the exact day count.
	forbidden string
}

// RuleFor builds the validation rule for a content type. Itinerary rules
// depend on the exact trip length; restaurant rules require a dietary section
// only when dietary tags were submitted.
func RuleFor(typ Type, days int, dietary bool) Rule {
	switch typ {
	case TypePacking:
		return Rule{
			Markers: []string{
				"Weather", "Packing Strategy", "Clothing", "Electronics",
				"Logistics Alert", "Local Tips", "Currency",
			},
			MinBullets: map[string]int{
				"Clothing":    6,
				"Electronics": 3,
			},
		}
	case TypeItinerary:
		markers := make([]string, 0, days+1)
		for d := 1; d <= days; d++ {
			markers = append(markers, fmt.Sprintf("Day %d", d))
		}
		markers = append(markers, "Money Intel")
		return Rule{Markers: markers, forbidden: fmt.Sprintf("Day %d", days+1)}
	case TypeBudget:
		return Rule{
			Markers: []string{
				"Currency:", "Accommodation", "Food", "Transportation",
				"Activities", "Shopping", "Miscellaneous", "Total", "Money Tips",
			},
			MinBullets: map[string]int{
				"Accommodation":  1,
				"Food":           1,
				"Transportation": 1,
				"Activities":     1,
				"Shopping":       1,
				"Miscellaneous":  1,
			},
		}
	case TypeTransport:
		return Rule{
			Markers: []string{
				"Getting Around", "Public Transit", "Taxis & Rideshare",
				"Airport Transfer", "Transit Tips",
			},
			MinBullets: map[string]int{
				"Public Transit": 2,
				"Transit Tips":   2,
			},
		}
	case TypeCulture:
		return Rule{
			Markers: []string{
				"Etiquette", "Dress Code", "Language Basics", "Cultural Tips",
			},
			MinBullets: map[string]int{
				"Etiquette":       2,
				"Language Basics": 3,
			},
		}
	case TypeRestaurants:
		r := Rule{
			Markers: []string{"Must-Try Dishes", "Recommended Restaurants"},
			MinBullets: map[string]int{
				"Must-Try Dishes":         3,
				"Recommended Restaurants": 3,
			},
		}
		if dietary {
			r.Markers = append(r.Markers, "Dietary Notes")
			r.MinBullets["Dietary Notes"] = 1
		}
		return r
	case TypeCurrency:
		return Rule{
			Markers: []string{"Currency:", "Exchange Rate", "Money Tips"},
			MinBullets: map[string]int{
				"Money Tips": 2,
			},
		}
	default:
		return Rule{}
	}
}
