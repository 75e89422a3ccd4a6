// README: Trip-planning handlers: plan generation and cached retrieval.
package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hananaq/TripMate-AI/internal/content"
	"github.com/hananaq/TripMate-AI/internal/render"
	"github.com/hananaq/TripMate-AI/internal/sections"
	"github.com/hananaq/TripMate-AI/internal/session"
	"github.com/hananaq/TripMate-AI/internal/trip"
)

const dateLayout = "2006-01-02"

type TripHandler struct {
	content  *content.Service
	sessions session.Store
	log      *logrus.Logger
	now      func() time.Time
}

func NewTripHandler(svc *content.Service, sessions session.Store, log *logrus.Logger) *TripHandler {
	return &TripHandler{content: svc, sessions: sessions, log: log, now: time.Now}
}

type planReq struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Style       string   `json:"style"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests"`
	Dietary     []string `json:"dietary"`
	Types       []string `json:"types"`
	SessionID   string   `json:"session_id"`
}

type cardView struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	HTML  string `json:"html"`
}

type documentView struct {
	Type  string     `json:"type"`
	Title string     `json:"title"`
	Tier  string     `json:"tier"`
	Valid bool       `json:"valid"`
	Text  string     `json:"text"`
	Cards []cardView `json:"cards"`
}

type planResp struct {
	SessionID   string         `json:"session_id"`
	WeatherTier string         `json:"weather_tier"`
	Cached      bool           `json:"cached"`
	Documents   []documentView `json:"documents"`
}

// Plan handles POST /api/trips/plan. A matching resubmission with an existing
// session serves the cached documents instead of regenerating.
func (h *TripHandler) Plan(c *gin.Context) {
	var body planReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req, err := h.parseRequest(body)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.Validate(h.now()); err != nil {
		writeTripError(c, err)
		return
	}

	types, err := parseTypes(body.Types)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	if body.SessionID != "" {
		state, err := h.sessions.Get(c.Request.Context(), body.SessionID)
		if err == nil && state.SameInputs(req) && state.HasAll(types) {
			writeJSON(c, http.StatusOK, h.view(state, types, true))
			return
		}
	}

	docs, tier := h.content.Generate(c.Request.Context(), req, types)
	state := session.State{
		ID:          uuid.NewString(),
		Request:     req,
		WeatherTier: string(tier),
		Documents:   docs,
		CreatedAt:   h.now(),
	}
	if err := h.sessions.Put(c.Request.Context(), state); err != nil {
		h.log.WithError(err).Warn("session store put failed")
	}
	writeJSON(c, http.StatusOK, h.view(state, types, false))
}

// Get handles GET /api/trips/:session_id and serves the stored documents.
func (h *TripHandler) Get(c *gin.Context) {
	state, err := h.sessions.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeTripError(c, err)
		return
	}
	types := make([]content.Type, 0, len(state.Documents))
	for _, d := range state.Documents {
		types = append(types, d.Type)
	}
	writeJSON(c, http.StatusOK, h.view(state, types, true))
}

func (h *TripHandler) parseRequest(body planReq) (trip.Request, error) {
	start, err := time.Parse(dateLayout, body.StartDate)
	if err != nil {
		return trip.Request{}, fmt.Errorf("invalid start_date %q, want YYYY-MM-DD", body.StartDate)
	}
	end, err := time.Parse(dateLayout, body.EndDate)
	if err != nil {
		return trip.Request{}, fmt.Errorf("invalid end_date %q, want YYYY-MM-DD", body.EndDate)
	}
	style := trip.Style(strings.ToLower(strings.TrimSpace(body.Style)))
	if body.Style == "" {
		style = trip.StyleModerate
	}
	travelers := body.Travelers
	if travelers == 0 {
		travelers = 1
	}
	return trip.Request{
		Destination: strings.TrimSpace(body.Destination),
		Start:       start,
		End:         end,
		Style:       style,
		Travelers:   travelers,
		Interests:   body.Interests,
		Dietary:     body.Dietary,
	}, nil
}

func parseTypes(raw []string) ([]content.Type, error) {
	if len(raw) == 0 {
		return content.AllTypes, nil
	}
	types := make([]content.Type, 0, len(raw))
	for _, s := range raw {
		t, err := content.ParseType(s)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func (h *TripHandler) view(state session.State, types []content.Type, cached bool) planResp {
	resp := planResp{
		SessionID:   state.ID,
		WeatherTier: state.WeatherTier,
		Cached:      cached,
		Documents:   make([]documentView, 0, len(types)),
	}
	for _, typ := range types {
		doc, ok := state.Document(typ)
		if !ok {
			continue
		}
		title, secs := sections.Titled(doc)
		cards := make([]cardView, 0, len(secs))
		for _, s := range secs {
			cards = append(cards, cardView{Title: s.Title, Body: s.Body, HTML: render.Card(s)})
		}
		resp.Documents = append(resp.Documents, documentView{
			Type:  string(doc.Type),
			Title: title,
			Tier:  string(doc.Tier),
			Valid: doc.Valid,
			Text:  doc.Text,
			Cards: cards,
		})
	}
	return resp
}
