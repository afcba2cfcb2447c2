package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// CreateTable is idempotent and runs on every boot, before the listener
// starts accepting connections.
func (r *LeadRepository) CreateTable(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS customer_leads (
			id BIGSERIAL PRIMARY KEY,
			fname VARCHAR(50),
			lname VARCHAR(50),
			email VARCHAR(100),
			phone VARCHAR(15),
			zipcode VARCHAR(10),
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`

	if _, err := r.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating customer_leads table: %w", err)
	}
	return nil
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO customer_leads (fname, lname, email, phone, zipcode)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		lead.FName,
		lead.LName,
		lead.Email,
		lead.Phone,
		lead.Zipcode,
	).Scan(&lead.ID, &lead.CreatedAt)
}

// InsertBatch writes every lead in one multi-row VALUES statement, so a
// thousand-row upload costs one round trip instead of a thousand.
func (r *LeadRepository) InsertBatch(ctx context.Context, leads []*entity.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(leads))
	args := make([]interface{}, 0, len(leads)*5)

	for i, lead := range leads {
		base := i * 5
		placeholders = append(placeholders, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5,
		))
		args = append(args, lead.FName, lead.LName, lead.Email, lead.Phone, lead.Zipcode)
	}

	query := fmt.Sprintf(
		"INSERT INTO customer_leads (fname, lname, email, phone, zipcode) VALUES %s",
		strings.Join(placeholders, ", "),
	)

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("batched lead insert (%d rows): %w", len(leads), err)
	}
	return nil
}
