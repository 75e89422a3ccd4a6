// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hananaq/TripMate-AI/internal/session"
	"github.com/hananaq/TripMate-AI/internal/trip"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrMissingDestination),
		errors.Is(err, trip.ErrEndBeforeStart),
		errors.Is(err, trip.ErrStartInPast),
		errors.Is(err, trip.ErrInvalidStyle),
		errors.Is(err, trip.ErrInvalidTravelers):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
