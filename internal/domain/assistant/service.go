package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service loads the roster and runs the intent parser over incoming
// commands. The clock is injectable so date resolution is testable.
type Service struct {
	roster RosterRepository
	now    func() time.Time
}

func NewService(roster RosterRepository) *Service {
	return &Service{roster: roster, now: time.Now}
}

// Interpret parses one free-text command against the current roster. A
// roster load failure degrades to parsing without patient matching rather
// than failing the command.
func (s *Service) Interpret(ctx context.Context, rawText string) ParsedIntent {
	refs, err := s.roster.ListRefs(ctx)
	if err != nil {
		refs = nil
	}
	return ParseIntent(rawText, refs, s.now())
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.roster.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.roster.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.roster.List(ctx, limit, offset)
}

func (s *Service) ArchivePatient(ctx context.Context, id uuid.UUID) error {
	return s.roster.Archive(ctx, id)
}
