package places

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaticService(t *testing.T) *Service {
	t.Helper()
	svc, err := New("", nil)
	require.NoError(t, err)
	return svc
}

func TestEmbeddedCityListParses(t *testing.T) {
	svc := newStaticService(t)
	assert.NotEmpty(t, svc.static)
	for _, label := range svc.static {
		assert.Contains(t, label, ", ", "labels are City, Country: %q", label)
	}
}

func TestSuggestSubstringMatch(t *testing.T) {
	svc := newStaticService(t)

	got := svc.Suggest(context.Background(), "tok", 5)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "Tokyo, Japan")
}

func TestSuggestMatchesCountry(t *testing.T) {
	svc := newStaticService(t)

	got := svc.Suggest(context.Background(), "japan", 10)
	assert.NotEmpty(t, got)
	for _, label := range got {
		assert.Contains(t, label, "Japan")
	}
}

func TestSuggestLimit(t *testing.T) {
	svc := newStaticService(t)

	got := svc.Suggest(context.Background(), "", 3)
	assert.Len(t, got, 3)
}

func TestSuggestNoMatch(t *testing.T) {
	svc := newStaticService(t)
	assert.Empty(t, svc.Suggest(context.Background(), "zzzzzz", 5))
}

func TestParseCitiesDedupes(t *testing.T) {
	raw := "city_name,country_name\nTokyo,Japan\nTokyo,Japan\n,Japan\nOsaka,\n"
	got, err := parseCities(raw)

	require.NoError(t, err)
	assert.Equal(t, []string{"Tokyo, Japan"}, got)
}
