// README: Destination autocomplete handler.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hananaq/TripMate-AI/internal/places"
)

const (
	defaultSuggestionLimit = 10
	maxSuggestionLimit     = 50
)

type DestinationsHandler struct {
	places *places.Service
}

func NewDestinationsHandler(svc *places.Service) *DestinationsHandler {
	return &DestinationsHandler{places: svc}
}

// Suggest handles GET /api/destinations?q=. An empty or too-short query
// returns an empty list rather than an error. The limit parameter defaults
// to 10 and is honored up to a cap of 50; larger values are clamped to 50.
func (h *DestinationsHandler) Suggest(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	limit := defaultSuggestionLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
		if limit > maxSuggestionLimit {
			limit = maxSuggestionLimit
		}
	}

	suggestions := []string{}
	if len(q) >= 2 {
		suggestions = h.places.Suggest(c.Request.Context(), q, limit)
	}
	writeJSON(c, http.StatusOK, gin.H{"destinations": suggestions})
}
