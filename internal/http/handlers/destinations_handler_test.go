package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hananaq/TripMate-AI/internal/http/handlers"
	"github.com/hananaq/TripMate-AI/internal/places"
)

func buildDestinationsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := places.New("", quietLogger())
	require.NoError(t, err)

	r := gin.New()
	r.GET("/api/destinations", handlers.NewDestinationsHandler(svc).Suggest)
	return r
}

func getDestinations(t *testing.T, r *gin.Engine, path string) (int, []string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body struct {
		Destinations []string `json:"destinations"`
	}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body.Destinations
}

func TestDestinationsSuggest(t *testing.T) {
	r := buildDestinationsRouter(t)

	code, got := getDestinations(t, r, "/api/destinations?q=tok")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, got, "Tokyo, Japan")
}

func TestDestinationsShortQuery(t *testing.T) {
	r := buildDestinationsRouter(t)

	code, got := getDestinations(t, r, "/api/destinations?q=t")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, got)

	code, got = getDestinations(t, r, "/api/destinations")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, got)
}

func TestDestinationsLimit(t *testing.T) {
	r := buildDestinationsRouter(t)

	code, got := getDestinations(t, r, "/api/destinations?q=an&limit=2")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, got, 2)
}

func TestDestinationsLimitAboveDefault(t *testing.T) {
	r := buildDestinationsRouter(t)

	// "an" matches well over the default of 10 static entries.
	code, got := getDestinations(t, r, "/api/destinations?q=an&limit=25")
	assert.Equal(t, http.StatusOK, code)
	assert.Greater(t, len(got), 10)
	assert.LessOrEqual(t, len(got), 25)
}

func TestDestinationsLimitClampedToMax(t *testing.T) {
	r := buildDestinationsRouter(t)

	code, got := getDestinations(t, r, "/api/destinations?q=an&limit=500")
	assert.Equal(t, http.StatusOK, code)
	assert.LessOrEqual(t, len(got), 50)
}

func TestDestinationsBadLimit(t *testing.T) {
	r := buildDestinationsRouter(t)

	code, _ := getDestinations(t, r, "/api/destinations?q=tok&limit=zero")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = getDestinations(t, r, "/api/destinations?q=tok&limit=-1")
	assert.Equal(t, http.StatusBadRequest, code)
}
