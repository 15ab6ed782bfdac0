package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"pet-adoption/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, owner_org_id,
	name, species, size, age_years, breed, description,
	image_url, photo_urls, status,
	created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		p.ID,
		p.OwnerOrgID,
		p.Name,
		p.Species,
		string(p.Size),
		p.AgeYears,
		p.Breed,
		p.Description,
		p.ImageURL,
		photosToTextArray(p.Photos),
		string(p.Status),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			species = $3,
			size = $4,
			age_years = $5,
			breed = $6,
			description = $7,
			image_url = $8,
			photo_urls = $9,
			status = $10,
			updated_at = $11
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		string(p.Size),
		p.AgeYears,
		p.Breed,
		p.Description,
		p.ImageURL,
		photosToTextArray(p.Photos),
		string(p.Status),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM animals WHERE id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, status pets.Status) ([]pets.Pet, error) {
	if status == "" {
		return r.query(ctx, `SELECT `+petColumns+` FROM animals ORDER BY created_at ASC, id ASC`)
	}
	return r.query(ctx, `
		SELECT `+petColumns+` FROM animals
		WHERE status = $1
		ORDER BY created_at ASC, id ASC
	`, string(status))
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerOrgID string) ([]pets.Pet, error) {
	ownerOrgID = strings.TrimSpace(ownerOrgID)
	if ownerOrgID == "" {
		return nil, nil
	}
	return r.query(ctx, `
		SELECT `+petColumns+` FROM animals
		WHERE owner_org_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerOrgID)
}

func (r *PetsRepo) query(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var (
		p      pets.Pet
		size   string
		status string
		photos []string
	)
	if err := row.Scan(
		&p.ID,
		&p.OwnerOrgID,
		&p.Name,
		&p.Species,
		&size,
		&p.AgeYears,
		&p.Breed,
		&p.Description,
		&p.ImageURL,
		pgtype.NewMap().SQLScanner(&photos), // pgtype.Map no es concurrent-safe: uno por fila
		&status,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Size = pets.Size(size)
	p.Status = pets.Status(status)
	p.Photos = textArrayToPhotos(photos)
	return p, nil
}

func photosToTextArray(in []pets.Photo) []string {
	out := make([]string, 0, len(in))
	for _, ph := range in {
		out = append(out, ph.URL)
	}
	return out
}

func textArrayToPhotos(in []string) []pets.Photo {
	if len(in) == 0 {
		return nil
	}
	out := make([]pets.Photo, 0, len(in))
	for _, u := range in {
		out = append(out, pets.Photo{URL: u})
	}
	return out
}
