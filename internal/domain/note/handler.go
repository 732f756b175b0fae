package note

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/notes/compose", h.ComposeNote)
	api.POST("/transcripts/classify", h.ClassifyTranscript)
	api.GET("/notes/schema", h.GetSchema)
}

type composeRequest struct {
	Utterances []Utterance `json:"utterances"`
	Context    NoteContext `json:"context"`
}

func (h *Handler) ComposeNote(c echo.Context) error {
	var req composeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sections := h.svc.ComposeNote(req.Utterances, req.Context)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sections": sections,
	})
}

func (h *Handler) ClassifyTranscript(c echo.Context) error {
	var req composeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, h.svc.Classify(req.Utterances))
}

func (h *Handler) GetSchema(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Schema())
}
