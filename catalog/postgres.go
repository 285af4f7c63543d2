package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dcode-github/listing_storefront/models"
)

const createPropertiesTable = `
CREATE TABLE IF NOT EXISTS properties (
	position   BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	state      TEXT NOT NULL DEFAULT '',
	city       TEXT NOT NULL DEFAULT '',
	country    TEXT NOT NULL DEFAULT '',
	rating     DOUBLE PRECISION NOT NULL DEFAULT 0,
	category   TEXT[] NOT NULL DEFAULT '{}',
	price      DOUBLE PRECISION NOT NULL DEFAULT 0,
	bed        TEXT NOT NULL DEFAULT '',
	shower     TEXT NOT NULL DEFAULT '',
	occupants  TEXT NOT NULL DEFAULT '',
	image      TEXT NOT NULL DEFAULT '',
	discount   TEXT NOT NULL DEFAULT ''
)`

const selectProperties = `
SELECT name, state, city, country, rating, category, price, bed, shower, occupants, image, discount
FROM properties
ORDER BY position`

const insertProperty = `
INSERT INTO properties (name, state, city, country, rating, category, price, bed, shower, occupants, image, discount)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (name) DO NOTHING`

// PgxConn is satisfied by *pgxpool.Pool and pgx.Conn.
type PgxConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PostgresSource reads the catalog from the properties table.
type PostgresSource struct {
	db PgxConn
}

func NewPostgresSource(db PgxConn) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Load(ctx context.Context) ([]models.Property, error) {
	rows, err := s.db.Query(ctx, selectProperties)
	if err != nil {
		return nil, fmt.Errorf("query properties: %w", err)
	}

	properties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Property, error) {
		var p models.Property
		err := row.Scan(
			&p.Name, &p.Address.State, &p.Address.City, &p.Address.Country,
			&p.Rating, &p.Category, &p.Price,
			&p.Offers.Bed, &p.Offers.Shower, &p.Offers.Occupants,
			&p.Image, &p.Discount,
		)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan properties: %w", err)
	}
	return properties, nil
}

// SeedPostgres creates the properties table if needed and inserts the given
// records, skipping names that already exist. It returns the number of rows
// actually inserted.
func SeedPostgres(ctx context.Context, db PgxConn, properties []models.Property) (int, error) {
	if _, err := db.Exec(ctx, createPropertiesTable); err != nil {
		return 0, fmt.Errorf("create properties table: %w", err)
	}
	if len(properties) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, p := range properties {
		category := p.Category
		if category == nil {
			category = []string{}
		}
		batch.Queue(insertProperty,
			p.Name, p.Address.State, p.Address.City, p.Address.Country,
			p.Rating, category, p.Price,
			p.Offers.Bed, p.Offers.Shower, p.Offers.Occupants,
			p.Image, p.Discount,
		)
	}

	results := db.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range properties {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert property: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
