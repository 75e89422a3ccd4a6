package content

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hananaq/TripMate-AI/internal/ai"
)

var promptNow = time.Date(2030, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestBuildMessagesPackingHasSystemRole(t *testing.T) {
	req := testRequest(5)
	msgs := BuildMessages(req, TypePacking, GenericWeatherLine, promptNow)

	assert.Len(t, msgs, 2)
	assert.Equal(t, ai.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "TripMate")
	assert.Contains(t, msgs[0].Content, "June 1, 2030")
	assert.Equal(t, ai.RoleUser, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, GenericWeatherLine)
}

func TestBuildMessagesOthersAreUserOnly(t *testing.T) {
	req := testRequest(5)
	for _, typ := range []Type{TypeItinerary, TypeBudget, TypeTransport, TypeCulture, TypeRestaurants, TypeCurrency} {
		msgs := BuildMessages(req, typ, GenericWeatherLine, promptNow)
		assert.Len(t, msgs, 1, "type %s", typ)
		assert.Equal(t, ai.RoleUser, msgs[0].Role)
	}
}

func TestPackingPromptLaundry(t *testing.T) {
	japan := testRequest(6)
	msgs := BuildMessages(japan, TypePacking, GenericWeatherLine, promptNow)
	assert.Contains(t, msgs[1].Content, "pack for half the trip")

	remote := japan
	remote.Destination = "Ulaanbaatar, Mongolia"
	msgs = BuildMessages(remote, TypePacking, GenericWeatherLine, promptNow)
	assert.Contains(t, msgs[1].Content, "pack full quantities")
}

func TestPackingPromptSmallRooms(t *testing.T) {
	paris := testRequest(4)
	paris.Destination = "Paris, France"
	msgs := BuildMessages(paris, TypePacking, GenericWeatherLine, promptNow)
	assert.Contains(t, msgs[1].Content, "warn against large suitcases")
}

func TestItineraryPromptDayCount(t *testing.T) {
	req := testRequest(4)
	msgs := BuildMessages(req, TypeItinerary, GenericWeatherLine, promptNow)

	assert.Contains(t, msgs[0].Content, "4-day itinerary")
	assert.Contains(t, msgs[0].Content, "Day 1 through Day 4")
	assert.Contains(t, msgs[0].Content, "nothing beyond Day 4")
}

func TestItineraryPromptInterests(t *testing.T) {
	req := testRequest(3)
	req.Interests = []string{"food", "museums"}
	msgs := BuildMessages(req, TypeItinerary, GenericWeatherLine, promptNow)
	assert.Contains(t, msgs[0].Content, "food, museums")
}

func TestRestaurantsPromptDietary(t *testing.T) {
	plain := testRequest(3)
	msgs := BuildMessages(plain, TypeRestaurants, GenericWeatherLine, promptNow)
	assert.NotContains(t, msgs[0].Content, "Dietary Notes")

	restricted := testRequest(3, "vegan", "gluten-free")
	msgs = BuildMessages(restricted, TypeRestaurants, GenericWeatherLine, promptNow)
	assert.Contains(t, msgs[0].Content, "vegan, gluten-free")
	assert.Contains(t, msgs[0].Content, "Dietary Notes")
}

func TestTemplateItineraryScalesToDays(t *testing.T) {
	req := testRequest(3)
	tpl := Template(TypeItinerary, req)

	for d := 1; d <= 3; d++ {
		assert.Contains(t, tpl, fmt.Sprintf("Day %d", d))
	}
	assert.NotContains(t, tpl, "Day 4")
	assert.Contains(t, tpl, "Money Intel")
}

func TestRepairMessagesEchoTemplateAndDraft(t *testing.T) {
	req := testRequest(3)
	bad := "sorry, here is a loose itinerary"
	msgs := RepairMessages(TypeItinerary, req, bad)

	assert.Len(t, msgs, 2)
	assert.Equal(t, ai.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "strict formatter")
	assert.Contains(t, msgs[1].Content, Template(TypeItinerary, req))
	assert.Contains(t, msgs[1].Content, bad)
}

func TestHasLaundryAvailability(t *testing.T) {
	assert.True(t, HasLaundryAvailability("Kyoto, Japan"))
	assert.True(t, HasLaundryAvailability("Reykjavik, Iceland"))
	assert.False(t, HasLaundryAvailability("La Paz, Bolivia"))
}

func TestTemperatureFor(t *testing.T) {
	assert.Equal(t, float32(0.4), temperatureFor(TypePacking))
	assert.Equal(t, float32(0.7), temperatureFor(TypeItinerary))
	assert.True(t, repairTemperature < temperatureFor(TypePacking))
}

func TestTemplatesMatchTheirRules(t *testing.T) {
	// The echoed templates carry every required marker, so a model that
	// follows them literally cannot fail marker validation.
	req := testRequest(3, "vegetarian")
	for _, typ := range AllTypes {
		rule := RuleFor(typ, req.Days(), true)
		tpl := Template(typ, req)
		for _, m := range rule.Markers {
			assert.True(t, strings.Contains(tpl, m), "type %s missing marker %q", typ, m)
		}
	}
}
