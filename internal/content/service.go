// README: Generation service; orchestrates weather context and the pipeline.
package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hananaq/TripMate-AI/internal/ai"
	"github.com/hananaq/TripMate-AI/internal/trip"
	"github.com/hananaq/TripMate-AI/internal/weather"
)

// WeatherTier tags which step of the weather fallback chain supplied the
// context line: a live forecast, a seasonal-hint completion, or the static
// final sentence.
type WeatherTier string

const (
	WeatherLive     WeatherTier = "live"
	WeatherSeasonal WeatherTier = "seasonal"
	WeatherGeneric  WeatherTier = "generic"
)

// GenericWeatherLine is the last rung of the weather fallback chain.
const GenericWeatherLine = "Conditions vary; expect seasonal weather."

// failureNote replaces a section whose generation hit an unexpected error.
// Other sections still render.
const failureNote = "This section could not be generated. Please try again."

// Forecaster is the weather lookup boundary (see the weather package).
type Forecaster interface {
	Lookup(ctx context.Context, city string, date time.Time) (weather.Observation, bool)
}

// Service runs the full generation batch for a trip request: weather context
// first, then one pipeline run per requested content type, strictly in
// sequence.
type Service struct {
	pipeline   *Pipeline
	completer  ai.Completer
	forecaster Forecaster
	now        func() time.Time
	log        *logrus.Logger
}

func NewService(completer ai.Completer, forecaster Forecaster, maxTokens int, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		pipeline:   NewPipeline(completer, maxTokens, log),
		completer:  completer,
		forecaster: forecaster,
		now:        time.Now,
		log:        log,
	}
}

// Generate produces one finalized document per requested type, in the order
// given. It never returns an error: upstream failures degrade inside the
// pipeline, and an unexpected panic in one type is confined to that type's
// document.
func (s *Service) Generate(ctx context.Context, req trip.Request, types []Type) ([]Document, WeatherTier) {
	weatherLine, weatherTier := GenericWeatherLine, WeatherGeneric
	for _, typ := range types {
		if typ == TypePacking {
			weatherLine, weatherTier = s.weatherContext(ctx, req)
			break
		}
	}

	docs := make([]Document, 0, len(types))
	for _, typ := range types {
		docs = append(docs, s.generateOne(ctx, req, typ, weatherLine))
	}
	return docs, weatherTier
}

func (s *Service) generateOne(ctx context.Context, req trip.Request, typ Type, weatherLine string) (doc Document) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"content_type": typ,
				"panic":        fmt.Sprint(r),
			}).Error("generation panicked")
			doc = Document{Type: typ, Text: failureNote, Tier: TierFailed, Valid: false}
		}
	}()

	start := s.now()
	doc = s.pipeline.Run(ctx, req, typ, BuildMessages(req, typ, weatherLine, s.now()))
	s.log.WithFields(logrus.Fields{
		"content_type": typ,
		"destination":  req.Destination,
		"tier":         doc.Tier,
		"elapsed":      s.now().Sub(start).Round(time.Millisecond),
	}).Info("document generated")
	return doc
}

// weatherContext walks the explicit fallback chain: live forecast inside the
// near-term window, else a one-sentence seasonal-hint completion, else the
// static generic sentence. Each rung is tagged so callers and tests can see
// which one was reached.
func (s *Service) weatherContext(ctx context.Context, req trip.Request) (string, WeatherTier) {
	if obs, ok := s.forecaster.Lookup(ctx, req.Destination, req.Start); ok {
		return obs.Line(req.Destination, req.Start), WeatherLive
	}

	prompt := fmt.Sprintf(
		"In one sentence, describe the typical weather in %s during %s. No preamble.",
		req.Destination, req.Start.Format("January"))
	hint, err := s.completer.Complete(ctx, ai.CompletionRequest{
		Messages:    []ai.Message{{Role: ai.RoleUser, Content: prompt}},
		Temperature: 0.3,
		MaxTokens:   60,
	})
	hint = strings.TrimSpace(hint)
	if err != nil || hint == "" {
		return GenericWeatherLine, WeatherGeneric
	}
	return hint, WeatherSeasonal
}
