package repository

import (
	"context"
	"fmt"

	"locator-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements address persistence for PostgreSQL. Rows are
// write-once: the service inserts accepted resolutions and only ever reads
// them back.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// SaveAddress inserts a resolved address and returns its assigned id.
func (r *Repository) SaveAddress(ctx context.Context, addr models.Address) (int64, error) {
	sql := `
		INSERT INTO addresses (
			full_address,
			street,
			city,
			province,
			country,
			zip_code,
			latitude,
			longitude,
			confidence,
			address_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, sql,
		addr.FullAddress,
		addr.Street,
		addr.City,
		addr.Province,
		addr.Country,
		addr.ZipCode,
		addr.Latitude,
		addr.Longitude,
		addr.Confidence,
		addr.AddressType,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert address: %w", err)
	}

	return id, nil
}

// ListRecent returns the most recently saved addresses, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]models.AddressRecord, error) {
	sql := `
		SELECT
			id,
			full_address,
			street,
			city,
			province,
			country,
			zip_code,
			latitude,
			longitude,
			confidence,
			address_type,
			created_at
		FROM addresses
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute list query: %w", err)
	}
	defer rows.Close()

	var records []models.AddressRecord
	for rows.Next() {
		var rec models.AddressRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Address.FullAddress,
			&rec.Address.Street,
			&rec.Address.City,
			&rec.Address.Province,
			&rec.Address.Country,
			&rec.Address.ZipCode,
			&rec.Address.Latitude,
			&rec.Address.Longitude,
			&rec.Address.Confidence,
			&rec.Address.AddressType,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan address record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return records, nil
}
