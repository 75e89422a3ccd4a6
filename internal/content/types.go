// README: Content-type tags and the generated-document model.
package content

import "fmt"

// Type tags one generated document kind.
type Type string

const (
	TypePacking     Type = "weather-packing"
	TypeItinerary   Type = "itinerary"
	TypeBudget      Type = "budget"
	TypeTransport   Type = "transport"
	TypeCulture     Type = "culture"
	TypeRestaurants Type = "restaurants"
	TypeCurrency    Type = "currency"
)

// AllTypes lists every supported content type in display order.
var AllTypes = []Type{
	TypePacking,
	TypeItinerary,
	TypeBudget,
	TypeTransport,
	TypeCulture,
	TypeRestaurants,
	TypeCurrency,
}

// ParseType validates a wire tag.
func ParseType(s string) (Type, error) {
	for _, t := range AllTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown content type %q", s)
}

// DisplayName is the human heading used in UI section headers and the PDF.
func (t Type) DisplayName() string {
	switch t {
	case TypePacking:
		return "Packing Guide"
	case TypeItinerary:
		return "Itinerary"
	case TypeBudget:
		return "Budget Plan"
	case TypeTransport:
		return "Getting Around"
	case TypeCulture:
		return "Culture Guide"
	case TypeRestaurants:
		return "Food & Restaurants"
	case TypeCurrency:
		return "Currency Guide"
	default:
		return string(t)
	}
}

// Tier records which stage of the repair pipeline produced the final text.
type Tier string

const (
	// TierDraft means the first completion already matched the schema.
	TierDraft Tier = "draft"
	// TierRepaired means the reformat reprompt recovered the document.
	TierRepaired Tier = "repaired"
	// TierFallback means both attempts failed and the static document was used.
	TierFallback Tier = "fallback"
	// TierFailed marks a section that was abandoned after an unexpected error;
	// it carries a short failure note instead of generated content.
	TierFailed Tier = "failed"
)

// Placeholder substitutes for an entirely empty model response so downstream
// consumers never see a blank document.
const Placeholder = "(No content returned. Please try again.)"

// Document is the finalized output for one content type. Never mutated after
// the pipeline hands it out.
type Document struct {
	Type  Type   `json:"type"`
	Text  string `json:"text"`
	Tier  Tier   `json:"tier"`
	Valid bool   `json:"valid"`
}
