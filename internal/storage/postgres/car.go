package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/classics-showroom/internal/domain/catalog"
)

const (
	getCarsByIDsSQL = `SELECT id, make, model, year, price, sold FROM cars WHERE id = ANY($1)`

	upsertCarSQL = `INSERT INTO cars (id, make, model, year, price, sold)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET make = EXCLUDED.make, model = EXCLUDED.model, year = EXCLUDED.year,
			price = EXCLUDED.price, sold = EXCLUDED.sold`
)

var _ catalog.Repository = (*CarRepository)(nil)

// CarRepository implements catalog.Repository backed by PostgreSQL.
type CarRepository struct {
	pool *pgxpool.Pool
}

// NewCarRepository returns a CarRepository that uses the given pool.
func NewCarRepository(pool *pgxpool.Pool) *CarRepository {
	return &CarRepository{pool: pool}
}

// GetByIDs returns cars matching any of the given IDs.
func (r *CarRepository) GetByIDs(ctx context.Context, ids []int64) ([]catalog.Car, error) {
	rows, err := r.pool.Query(ctx, getCarsByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("getting cars by ids: %w", err)
	}
	return pgx.CollectRows(rows, scanCar)
}

// Upsert inserts or replaces cars in a single batch.
func (r *CarRepository) Upsert(ctx context.Context, cars []catalog.Car) error {
	batch := &pgx.Batch{}
	for _, c := range cars {
		batch.Queue(upsertCarSQL, c.ID, c.Make, c.Model, c.Year, c.Price, c.Sold)
	}
	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upserting %d cars: %w", len(cars), err)
	}
	return nil
}

func scanCar(row pgx.CollectableRow) (catalog.Car, error) {
	var c catalog.Car
	err := row.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Price, &c.Sold)
	return c, err
}
