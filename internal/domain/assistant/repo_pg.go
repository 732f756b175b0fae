package assistant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medscribe/medscribe/pkg/pagination"
)

type rosterRepoPG struct{ pool *pgxpool.Pool }

func NewRosterRepoPG(pool *pgxpool.Pool) RosterRepository {
	return &rosterRepoPG{pool: pool}
}

// patientsTable must match the table created by migrations/001_patients.sql.
const patientsTable = "patients"

const patientCols = `id, name, archived, created_at, updated_at`

const (
	insertPatientSQL = `INSERT INTO ` + patientsTable + ` (id, name, archived)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`
	getPatientSQL     = `SELECT ` + patientCols + ` FROM ` + patientsTable + ` WHERE id = $1`
	listPatientsSQL   = `SELECT ` + patientCols + ` FROM ` + patientsTable + ` ORDER BY created_at, id `
	countPatientsSQL  = `SELECT COUNT(*) FROM ` + patientsTable
	listRefsSQL       = `SELECT id, name, archived FROM ` + patientsTable + ` ORDER BY created_at, id`
	archivePatientSQL = `UPDATE ` + patientsTable + ` SET archived = true, updated_at = now() WHERE id = $1`
)

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Archived, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *rosterRepoPG) Create(ctx context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.pool.QueryRow(ctx, insertPatientSQL, p.ID, p.Name, p.Archived)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *rosterRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	row := r.pool.QueryRow(ctx, getPatientSQL, id)
	p, err := scanPatient(row)
	if err != nil {
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (r *rosterRepoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	page := pagination.Params{Limit: limit, Offset: offset}
	rows, err := r.pool.Query(ctx, listPatientsSQL+page.SQL())
	if err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, countPatientsSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}
	return patients, total, nil
}

// ListRefs returns the full roster in creation order. Order matters: the
// parser's tie-breaking on equal-length first names follows it.
func (r *rosterRepoPG) ListRefs(ctx context.Context) ([]PatientRef, error) {
	rows, err := r.pool.Query(ctx, listRefsSQL)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	defer rows.Close()

	var refs []PatientRef
	for rows.Next() {
		var ref PatientRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Archived); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *rosterRepoPG) Archive(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, archivePatientSQL, id)
	if err != nil {
		return fmt.Errorf("archive patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("patient not found")
	}
	return nil
}
