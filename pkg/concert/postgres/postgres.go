// Package postgres stores concerts in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"concertflow/pkg/concert"
)

// Schema is the table layout the repository expects. The BIGSERIAL sequence
// issues IDs and is never reset by DeleteAll.
const Schema = `CREATE TABLE IF NOT EXISTS concerts (
	id    BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	date  TIMESTAMPTZ NOT NULL
)`

// Repository persists concerts in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates the concerts table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

// Create inserts a new concert and returns it with its generated ID.
func (r *Repository) Create(ctx context.Context, c concert.Concert) (concert.Concert, error) {
	stored := concert.Concert{Title: c.Title, Date: c.Date}
	err := r.db.QueryRowContext(ctx, "INSERT INTO concerts (title,date) VALUES ($1,$2) RETURNING id", c.Title, c.Date).Scan(&stored.ID)
	if err != nil {
		return concert.Concert{}, err
	}
	return stored, nil
}

// Get retrieves a concert by ID.
func (r *Repository) Get(ctx context.Context, id int64) (concert.Concert, error) {
	var c concert.Concert
	err := r.db.QueryRowContext(ctx, "SELECT id,title,date FROM concerts WHERE id=$1", id).Scan(&c.ID, &c.Title, &c.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return concert.Concert{}, concert.ErrNotFound
	}
	return c, err
}

// Range fetches up to size concerts with ID >= start, ordered by ID.
func (r *Repository) Range(ctx context.Context, start int64, size int) (concert.Concerts, error) {
	out := concert.Concerts{}
	if size <= 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, "SELECT id,title,date FROM concerts WHERE id >= $1 ORDER BY id LIMIT $2", start, size)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c concert.Concert
		if err := rows.Scan(&c.ID, &c.Title, &c.Date); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteAll removes every concert. The ID sequence keeps its value.
func (r *Repository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM concerts")
	return err
}
