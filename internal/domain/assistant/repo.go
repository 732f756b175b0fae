package assistant

import (
	"context"

	"github.com/google/uuid"
)

// RosterRepository persists the patient roster the parser matches against.
type RosterRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	ListRefs(ctx context.Context) ([]PatientRef, error)
	Archive(ctx context.Context, id uuid.UUID) error
}
