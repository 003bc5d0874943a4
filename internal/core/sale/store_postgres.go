// Copyright (c) 2026 Vendo. All rights reserved.

package sale

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

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

// saleSelect is the denormalized projection shared by all read paths.
const saleSelect = `
	SELECT s.id, s.productid, p.name, s.userid, a.username, s.createdat
	FROM core.sale s
	JOIN core.product p ON p.id = s.productid
	JOIN users.account a ON a.id = s.userid`

func (repository *PostgresRepository) Create(context context.Context, sale *Sale) error {
	const query = `
		INSERT INTO core.sale (id, productid, userid, createdat)
		VALUES ($1, $2, $3, $4)`

	sale.CreatedAt = time.Now()

	_, err := repository.db.Exec(context, query, sale.ID, sale.ProductID, sale.UserID, sale.CreatedAt)
	return dberr.Wrap(err, "Sale")
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Sale, error) {
	query := saleSelect + ` WHERE s.id = $1`

	s := &Sale{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.ProductID, &s.ProductName, &s.UserID, &s.UserName, &s.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Sale")
	}

	return s, nil
}

func (repository *PostgresRepository) ListByUser(context context.Context, userID string, limit, offset int) ([]*Sale, int, error) {
	const countQuery = `SELECT count(*) FROM core.sale WHERE userid = $1`
	query := saleSelect + ` WHERE s.userid = $1 ORDER BY s.createdat DESC LIMIT $2 OFFSET $3`

	var total int
	if err := repository.db.QueryRow(context, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Sale")
	}

	rows, err := repository.db.Query(context, query, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Sale")
	}
	defer rows.Close()

	var sales []*Sale
	for rows.Next() {
		s := &Sale{}
		if err := rows.Scan(&s.ID, &s.ProductID, &s.ProductName, &s.UserID, &s.UserName, &s.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "Sale")
		}
		sales = append(sales, s)
	}

	return sales, total, nil
}

func (repository *PostgresRepository) ProductExists(context context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM core.product WHERE id = $1)`

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Product")
	}
	return exists, nil
}

func (repository *PostgresRepository) UserExists(context context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users.account WHERE id = $1)`

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "User")
	}
	return exists, nil
}
