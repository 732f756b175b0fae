package assistant

import (
	"time"

	"github.com/google/uuid"
)

// Intent is the classified purpose of a free-text command.
type Intent string

const (
	IntentSchedule   Intent = "schedule"
	IntentReschedule Intent = "reschedule"
	IntentCancel     Intent = "cancel"
	IntentNote       Intent = "note"
	IntentPrescribe  Intent = "prescribe"
	IntentSearch     Intent = "search"
	IntentNavigate   Intent = "navigate"
	IntentUnknown    Intent = "unknown"
)

// ParsedIntent is the structured result of interpreting one command. Produced
// fresh per call and never mutated afterward. Optional fields stay empty when
// the corresponding entity was not found in the input.
type ParsedIntent struct {
	Intent      Intent     `json:"intent"`
	PatientName string     `json:"patient_name,omitempty"`
	PatientID   *uuid.UUID `json:"patient_id,omitempty"`
	Date        string     `json:"date,omitempty"` // ISO date (2006-01-02)
	Time        string     `json:"time,omitempty"` // HH:MM
	FreeText    string     `json:"free_text,omitempty"`
	Route       string     `json:"route,omitempty"`
	RawInput    string     `json:"raw_input"`
}

// PatientRef is the roster entry used for entity matching. Archived patients
// never match.
type PatientRef struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Archived bool      `json:"archived"`
}

// Patient maps to the patient table.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Archived  bool      `db:"archived" json:"archived"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Ref projects a stored patient onto the matching shape the parser consumes.
func (p *Patient) Ref() PatientRef {
	return PatientRef{ID: p.ID, Name: p.Name, Archived: p.Archived}
}
