// Copyright (c) 2026 Vendo. All rights reserved.

package product

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendohq/vendo/internal/platform/apperr"
	"github.com/vendohq/vendo/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListByOwner(context context.Context, userID string, limit, offset int) ([]*Product, int, error) {
	const countQuery = `SELECT count(*) FROM core.product WHERE userid = $1`
	const query = `
		SELECT id, name, slug, price, userid, createdat, updatedat
		FROM core.product
		WHERE userid = $1
		ORDER BY createdat DESC
		LIMIT $2 OFFSET $3`

	var total int
	if err := repository.db.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Product")
	}

	rows, err := repository.db.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Product")
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Price, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "Product")
		}
		products = append(products, p)
	}

	return products, total, nil
}

func (repository *PostgresRepository) GetByIDForOwner(context context.Context, id, userID string) (*Product, error) {
	const query = `
		SELECT id, name, slug, price, userid, createdat, updatedat
		FROM core.product
		WHERE id = $1 AND userid = $2`

	p := &Product{}
	err := repository.db.QueryRow(context, query, id, userID).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Price, &p.UserID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Product")
	}

	return p, nil
}

func (repository *PostgresRepository) Create(context context.Context, product *Product) error {
	const query = `
		INSERT INTO core.product (id, name, slug, price, userid, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := repository.db.Exec(context, query,
		product.ID, product.Name, product.Slug, product.Price, product.UserID,
		product.CreatedAt, product.UpdatedAt,
	)
	return dberr.Wrap(err, "Product")
}

func (repository *PostgresRepository) Update(context context.Context, product *Product) error {
	// Owner scoping in the WHERE clause turns foreign products into NotFound.
	const query = `
		UPDATE core.product
		SET name = $3, slug = $4, price = $5, updatedat = $6
		WHERE id = $1 AND userid = $2
		RETURNING updatedat`

	product.UpdatedAt = time.Now()
	err := repository.db.QueryRow(context, query,
		product.ID, product.UserID, product.Name, product.Slug, product.Price, product.UpdatedAt,
	).Scan(&product.UpdatedAt)

	return dberr.Wrap(err, "Product")
}

func (repository *PostgresRepository) Delete(context context.Context, id, userID string) error {
	const query = `DELETE FROM core.product WHERE id = $1 AND userid = $2`

	cmd, err := repository.db.Exec(context, query, id, userID)
	if err != nil {
		return dberr.Wrap(err, "Product")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Product")
	}
	return nil
}
