package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-adoption/internal/domain/adoption"
)

type InterestsRepo struct {
	db *sql.DB
}

func NewInterestsRepo(db *sql.DB) *InterestsRepo {
	return &InterestsRepo{db: db}
}

const interestColumns = `
	id, animal_id, adopter_id, adopter_name, adopter_email,
	status, created_at, updated_at, evaluated_by`

// Create: la unicidad de PENDING la garantiza el índice parcial adoption_interests_pending_uq.
func (r *InterestsRepo) Create(ctx context.Context, i adoption.Interest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_interests (`+interestColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		i.ID,
		i.AnimalID,
		i.AdopterID,
		i.AdopterName,
		i.AdopterEmail,
		string(i.Status),
		i.CreatedAt,
		i.UpdatedAt,
		i.EvaluatedBy,
	)
	if isUniqueViolation(err) {
		return adoption.ErrAlreadyInQueue
	}
	return err
}

// UpdatePending es un compare-and-set sobre status = 'PENDING'.
func (r *InterestsRepo) UpdatePending(ctx context.Context, i adoption.Interest) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoption_interests
		SET
			status = $2,
			updated_at = $3,
			evaluated_by = $4
		WHERE id = $1 AND status = 'PENDING'
	`,
		i.ID,
		string(i.Status),
		i.UpdatedAt,
		i.EvaluatedBy,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		return nil
	}

	// Distinguir "no existe" de "ya no está PENDING".
	if _, err := r.GetByID(ctx, i.ID); err != nil {
		return err
	}
	return adoption.ErrBadState
}

func (r *InterestsRepo) GetByID(ctx context.Context, id string) (adoption.Interest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoption.Interest{}, adoption.ErrNotFound
	}
	row := r.db.QueryRowContext(ctx, `SELECT `+interestColumns+` FROM adoption_interests WHERE id = $1`, id)
	return scanOneInterest(row)
}

func (r *InterestsRepo) FindPending(ctx context.Context, adopterID, animalID string) (adoption.Interest, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+interestColumns+` FROM adoption_interests
		WHERE adopter_id = $1 AND animal_id = $2 AND status = 'PENDING'
	`, adopterID, animalID)
	return scanOneInterest(row)
}

func (r *InterestsRepo) ListPendingByAnimal(ctx context.Context, animalID string) ([]adoption.Interest, error) {
	return r.query(ctx, `
		SELECT `+interestColumns+` FROM adoption_interests
		WHERE animal_id = $1 AND status = 'PENDING'
		ORDER BY created_at ASC, id ASC
	`, animalID)
}

func (r *InterestsRepo) ListByAdopter(ctx context.Context, adopterID string) ([]adoption.Interest, error) {
	return r.query(ctx, `
		SELECT `+interestColumns+` FROM adoption_interests
		WHERE adopter_id = $1
		ORDER BY created_at ASC, id ASC
	`, adopterID)
}

func (r *InterestsRepo) query(ctx context.Context, q string, args ...any) ([]adoption.Interest, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoption.Interest, 0)
	for rows.Next() {
		i, err := scanInterest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func scanOneInterest(row rowScanner) (adoption.Interest, error) {
	i, err := scanInterest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoption.Interest{}, adoption.ErrNotFound
		}
		return adoption.Interest{}, err
	}
	return i, nil
}

func scanInterest(row rowScanner) (adoption.Interest, error) {
	var (
		i      adoption.Interest
		status string
	)
	if err := row.Scan(
		&i.ID,
		&i.AnimalID,
		&i.AdopterID,
		&i.AdopterName,
		&i.AdopterEmail,
		&status,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.EvaluatedBy,
	); err != nil {
		return adoption.Interest{}, err
	}
	i.Status = adoption.Status(status)
	return i, nil
}
