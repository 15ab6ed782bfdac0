package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// schema es idempotente; Migrate se puede correr en cada arranque.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS animals (
		id            TEXT PRIMARY KEY,
		owner_org_id  TEXT NOT NULL,
		name          TEXT NOT NULL,
		species       TEXT NOT NULL,
		size          TEXT NOT NULL DEFAULT '',
		age_years     INTEGER NOT NULL DEFAULT 0,
		breed         TEXT NOT NULL DEFAULT '',
		description   TEXT NOT NULL DEFAULT '',
		image_url     TEXT NOT NULL DEFAULT '',
		photo_urls    TEXT[] NOT NULL DEFAULT '{}',
		status        TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS animals_owner_idx ON animals (owner_org_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS adoption_interests (
		id             TEXT PRIMARY KEY,
		animal_id      TEXT NOT NULL REFERENCES animals (id),
		adopter_id     TEXT NOT NULL,
		adopter_name   TEXT NOT NULL DEFAULT '',
		adopter_email  TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL CHECK (status IN ('PENDING', 'APPROVED', 'REJECTED')),
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL,
		evaluated_by   TEXT NOT NULL DEFAULT ''
	)`,
	// a lo sumo un PENDING por (adoptante, animal)
	`CREATE UNIQUE INDEX IF NOT EXISTS adoption_interests_pending_uq
		ON adoption_interests (adopter_id, animal_id) WHERE status = 'PENDING'`,
	`CREATE INDEX IF NOT EXISTS adoption_interests_queue_idx
		ON adoption_interests (animal_id, created_at, id) WHERE status = 'PENDING'`,
	`CREATE INDEX IF NOT EXISTS adoption_interests_adopter_idx
		ON adoption_interests (adopter_id, created_at)`,
}

// Migrate crea tablas e índices si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
