// README: Trip request model and user-input validation.
package trip

import (
	"errors"
	"strings"
	"time"
)

// Style is the travel-style preference attached to a request.
type Style string

const (
	StyleBudget   Style = "budget"
	StyleModerate Style = "moderate"
	StyleLuxury   Style = "luxury"
)

var (
	ErrMissingDestination = errors.New("please tell us where you're going")
	ErrEndBeforeStart     = errors.New("end date must not be before the start date")
	ErrStartInPast        = errors.New("start date must not be in the past")
	ErrInvalidStyle       = errors.New("travel style must be budget, moderate or luxury")
	ErrInvalidTravelers   = errors.New("traveler count must be at least 1")
)

// Request captures one trip submission. Immutable once validated.
type Request struct {
	Destination string
	Start       time.Time
	End         time.Time
	Style       Style
	Travelers   int
	Interests   []string
	Dietary     []string
}

// Days returns the inclusive trip length: (end - start) + 1.
func (r Request) Days() int {
	start := truncateDay(r.Start)
	end := truncateDay(r.End)
	return int(end.Sub(start).Hours()/24) + 1
}

// Validate checks everything the user directly controls. These errors are
// surfaced verbatim as blocking messages, unlike upstream failures which
// degrade silently.
func (r Request) Validate(now time.Time) error {
	if strings.TrimSpace(r.Destination) == "" {
		return ErrMissingDestination
	}
	if r.End.Before(r.Start) {
		return ErrEndBeforeStart
	}
	if truncateDay(r.Start).Before(truncateDay(now)) {
		return ErrStartInPast
	}
	switch r.Style {
	case StyleBudget, StyleModerate, StyleLuxury:
	default:
		return ErrInvalidStyle
	}
	if r.Travelers < 1 {
		return ErrInvalidTravelers
	}
	return nil
}

// DateRange formats the trip dates for titles and PDF subtitles.
func (r Request) DateRange() string {
	return r.Start.Format("Jan 2, 2006") + " - " + r.End.Format("Jan 2, 2006")
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
