package pharmacy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewService(NewKnowledgeBase()))
	e := echo.New()
	return h, e
}

func TestHandler_SearchMedication(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/medications/search?q=rivotril", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.SearchMedication(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var med MedicationKnowledge
	json.Unmarshal(rec.Body.Bytes(), &med)
	if med.Name != "Clonazepam" {
		t.Errorf("expected 'Clonazepam', got %q", med.Name)
	}
}

func TestHandler_SearchMedication_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/medications/search?q=nonexistentium", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.SearchMedication(c)
	if err == nil {
		t.Fatal("expected not-found error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_SearchMedication_MissingQuery(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/medications/search", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.SearchMedication(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing query, got %v", err)
	}
}

func TestHandler_GetDosePattern(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/?concentration=1g", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("name")
	c.SetParamValues("dipirona")

	if err := h.GetDosePattern(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var p DosePattern
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Concentration != "1g" {
		t.Errorf("expected '1g', got %q", p.Concentration)
	}
}

func TestHandler_ClassifyPrescription(t *testing.T) {
	h, e := newTestHandler()

	body := `{"items":[{"medication_name":"Amoxicilina"},{"medication_name":"Clonazepam"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prescriptions/classify", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ClassifyPrescription(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var result ComplianceResult
	json.Unmarshal(rec.Body.Bytes(), &result)
	if result.RecipeType != RecipeControlledSpecial {
		t.Errorf("expected controlled-special, got %q", result.RecipeType)
	}
}
