package postgres

import (
	"context"
	"database/sql"
	"errors"

	domain "github.com/legallens/backend/internal/domain/dictionary"
)

// TermRepository is the Postgres variant of the dictionary lookup.
type TermRepository struct {
	db *sql.DB
}

func NewTermRepository(db *sql.DB) *TermRepository {
	return &TermRepository{db: db}
}

func (r *TermRepository) Lookup(ctx context.Context, term string) (*domain.Definition, error) {
	const exact = `
SELECT term, meaning, source
FROM legal_terms
WHERE LOWER(term) = LOWER($1)
LIMIT 1;`
	def, err := r.scanOne(ctx, exact, term)
	if err != nil || def != nil {
		return def, err
	}

	const partial = `
SELECT term, meaning, source
FROM legal_terms
WHERE LOWER(term) LIKE LOWER($1)
ORDER BY
  CASE
    WHEN LOWER(term) = LOWER($2) THEN 1
    WHEN LOWER(term) LIKE LOWER($3) THEN 2
    ELSE 3
  END,
  LENGTH(term)
LIMIT 1;`
	return r.scanOne(ctx, partial, "%"+term+"%", term, term+"%")
}

func (r *TermRepository) scanOne(ctx context.Context, query string, args ...any) (*domain.Definition, error) {
	var d domain.Definition
	var source sql.NullString
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&d.Term, &d.Meaning, &source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	d.Source = source.String
	return &d, nil
}
