// README: Per-session state: last inputs and last generated documents.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/hananaq/TripMate-AI/internal/content"
	"github.com/hananaq/TripMate-AI/internal/trip"
)

// ErrNotFound is returned when a session has expired or never existed.
var ErrNotFound = errors.New("session not found")

// State is everything a session owns: the last submitted inputs and the
// documents generated for them. Rendering and export read from here, so a UI
// redraw or a PDF download never triggers regeneration.
type State struct {
	ID          string             `json:"id"`
	Request     trip.Request       `json:"request"`
	WeatherTier string             `json:"weather_tier"`
	Documents   []content.Document `json:"documents"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Document returns the stored document for a content type, if present.
func (s State) Document(typ content.Type) (content.Document, bool) {
	for _, d := range s.Documents {
		if d.Type == typ {
			return d, true
		}
	}
	return content.Document{}, false
}

// HasAll reports whether the state covers every requested content type.
func (s State) HasAll(types []content.Type) bool {
	for _, t := range types {
		if _, ok := s.Document(t); !ok {
			return false
		}
	}
	return true
}

// SameInputs reports whether a new submission matches the stored one, in
// which case the cached documents can be served as-is.
func (s State) SameInputs(req trip.Request) bool {
	stored := s.Request
	return stored.Destination == req.Destination &&
		stored.Start.Equal(req.Start) &&
		stored.End.Equal(req.End) &&
		stored.Style == req.Style &&
		stored.Travelers == req.Travelers &&
		equalTags(stored.Interests, req.Interests) &&
		equalTags(stored.Dietary, req.Dietary)
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Store is the session-state boundary. Implementations expire entries after
// the configured TTL.
type Store interface {
	Get(ctx context.Context, id string) (State, error)
	Put(ctx context.Context, state State) error
	Delete(ctx context.Context, id string) error
}
