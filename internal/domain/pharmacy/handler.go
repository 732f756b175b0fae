package pharmacy

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
	api.GET("/medications/search", h.SearchMedication)
	api.GET("/medications/:name/dose-patterns", h.GetDosePattern)
	api.POST("/prescriptions/classify", h.ClassifyPrescription)
}

func (h *Handler) SearchMedication(c echo.Context) error {
	query := c.QueryParam("q")
	med, err := h.svc.SearchMedication(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if med == nil {
		return echo.NewHTTPError(http.StatusNotFound, "medication not found")
	}
	return c.JSON(http.StatusOK, med)
}

func (h *Handler) GetDosePattern(c echo.Context) error {
	name := c.Param("name")
	concentration := c.QueryParam("concentration")

	pattern, found := h.svc.DosePatternFor(name, concentration)
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "medication not found")
	}
	if pattern == nil {
		return echo.NewHTTPError(http.StatusNotFound, "medication has no dose patterns")
	}
	return c.JSON(http.StatusOK, pattern)
}

func (h *Handler) ClassifyPrescription(c echo.Context) error {
	var req struct {
		Items []PrescriptionItem `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, h.svc.ClassifyPrescription(req.Items))
}
