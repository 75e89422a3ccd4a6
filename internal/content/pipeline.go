// README: Validate -> repair -> fallback pipeline around the completion client.
package content

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hananaq/TripMate-AI/internal/ai"
	"github.com/hananaq/TripMate-AI/internal/trip"
)

// Pipeline turns one prompt into a finalized Document. It makes exactly one
// completion call for the draft, at most one more for the repair attempt, and
// none for the fallback, so the worst case is bounded and deterministic.
type Pipeline struct {
	completer ai.Completer
	maxTokens int
	log       *logrus.Logger
}

func NewPipeline(completer ai.Completer, maxTokens int, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{completer: completer, maxTokens: maxTokens, log: log}
}

// Run executes the three-tier pipeline for one content type. The returned
// document is always non-empty and schema-valid: an empty draft becomes the
// placeholder, which fails validation and flows on to repair or fallback.
func (p *Pipeline) Run(ctx context.Context, req trip.Request, typ Type, msgs []ai.Message) Document {
	rule := RuleFor(typ, req.Days(), len(req.Dietary) > 0)

	draft := p.complete(ctx, msgs, temperatureFor(typ))
	if draft == "" {
		draft = Placeholder
	}
	if Validate(draft, rule) {
		return Document{Type: typ, Text: draft, Tier: TierDraft, Valid: true}
	}
	p.log.WithFields(logrus.Fields{
		"content_type": typ,
		"destination":  req.Destination,
	}).Warn("draft failed validation, reprompting")

	repaired := p.complete(ctx, RepairMessages(typ, req, draft), repairTemperature)
	if repaired != "" && Validate(repaired, rule) {
		return Document{Type: typ, Text: repaired, Tier: TierRepaired, Valid: true}
	}
	p.log.WithFields(logrus.Fields{
		"content_type": typ,
		"destination":  req.Destination,
	}).Warn("repair failed validation, using fallback document")

	return Document{Type: typ, Text: Fallback(typ, req), Tier: TierFallback, Valid: true}
}

// complete normalizes every completion failure to "no content".
func (p *Pipeline) complete(ctx context.Context, msgs []ai.Message, temperature float32) string {
	text, err := p.completer.Complete(ctx, ai.CompletionRequest{
		Messages:    msgs,
		Temperature: temperature,
		MaxTokens:   p.maxTokens,
	})
	if err != nil {
		p.log.WithError(err).Warn("completion call failed")
		return ""
	}
	return strings.TrimSpace(text)
}
