// README: PDF download handler for stored trip documents.
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hananaq/TripMate-AI/internal/content"
	"github.com/hananaq/TripMate-AI/internal/export"
	"github.com/hananaq/TripMate-AI/internal/session"
)

type PDFHandler struct {
	sessions session.Store
	log      *logrus.Logger
}

func NewPDFHandler(sessions session.Store, log *logrus.Logger) *PDFHandler {
	return &PDFHandler{sessions: sessions, log: log}
}

// Download handles GET /api/trips/:session_id/pdf. Without a type query it
// bundles every stored document into one PDF; with one it exports that
// document alone.
func (h *PDFHandler) Download(c *gin.Context) {
	state, err := h.sessions.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		writeTripError(c, err)
		return
	}

	subtitle := state.Request.DateRange()
	var (
		pdf      []byte
		filename string
	)
	if raw := c.Query("type"); raw != "" {
		typ, err := content.ParseType(raw)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		doc, ok := state.Document(typ)
		if !ok {
			writeError(c, http.StatusNotFound, "no document of that type in this session")
			return
		}
		pdf, err = export.Document(typ.DisplayName(), state.Request.Destination, subtitle, doc.Text)
		if err != nil {
			h.log.WithError(err).Error("pdf export failed")
			writeError(c, http.StatusInternalServerError, "pdf export failed")
			return
		}
		filename = pdfFilename(state.Request.Destination, string(typ))
	} else {
		items := make([]export.Item, 0, len(state.Documents))
		for _, doc := range state.Documents {
			items = append(items, export.Item{Heading: doc.Type.DisplayName(), Text: doc.Text})
		}
		if len(items) == 0 {
			writeError(c, http.StatusNotFound, "session has no documents")
			return
		}
		pdf, err = export.Batch("Travel Plan", state.Request.Destination, subtitle, items)
		if err != nil {
			h.log.WithError(err).Error("pdf export failed")
			writeError(c, http.StatusInternalServerError, "pdf export failed")
			return
		}
		filename = pdfFilename(state.Request.Destination, "travel-plan")
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func pdfFilename(destination, suffix string) string {
	slug := strings.ToLower(strings.TrimSpace(destination))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, slug)
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "trip"
	}
	return slug + "-" + suffix + ".pdf"
}
