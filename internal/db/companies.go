package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"earnings-screener/internal/models"
)

// CompanyRepository handles database operations for companies. Tickers are
// stored upper-cased so lookups are case-insensitive without an expression
// index.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new repository on an already-open pool.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// Upsert inserts the company or refreshes its descriptive fields when the
// ticker already exists, returning the stored row either way.
func (r *CompanyRepository) Upsert(ctx context.Context, c models.Company) (*models.Company, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO companies (ticker, exchange, name, sector)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ticker) DO UPDATE SET
			exchange = EXCLUDED.exchange,
			name = EXCLUDED.name,
			sector = EXCLUDED.sector,
			updated_at = NOW()
		RETURNING id, ticker, exchange, name, sector, created_at, updated_at
	`, strings.ToUpper(c.Ticker), c.Exchange, c.Name, c.Sector)
	return scanCompany(row)
}

// GetByTicker returns the company for a ticker, or ErrNotFound.
func (r *CompanyRepository) GetByTicker(ctx context.Context, ticker string) (*models.Company, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, ticker, exchange, name, sector, created_at, updated_at
		FROM companies
		WHERE ticker = $1
	`, strings.ToUpper(ticker))

	company, err := scanCompany(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return company, err
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(&c.ID, &c.Ticker, &c.Exchange, &c.Name, &c.Sector, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning company: %w", err)
	}
	return &c, nil
}
