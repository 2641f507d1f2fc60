package repositories

import (
	"context"
	"errors"

	"sejahtera/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the subset of pgxpool.Pool used by repositories.
type Database interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ErrOrderNotFound is returned when no order exists for the requested id.
var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	ListByCreatedDesc(ctx context.Context) ([]*models.Order, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

// EnsureSchema creates the orders table if it does not exist yet. Run once
// at startup.
func (r *orderRepo) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			school_name TEXT NOT NULL,
			contact_person TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			product TEXT NOT NULL,
			quantity INT NOT NULL,
			total_price NUMERIC(14,2),
			payment_proof_url TEXT,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT (NOW() AT TIME ZONE 'utc')
		)
	`
	_, err := r.db.Exec(ctx, query)
	return err
}

// Create inserts the order and fills in its assigned id and created_at.
func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (school_name, contact_person, email, phone, product, quantity, total_price, payment_proof_url, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW() AT TIME ZONE 'utc')
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		order.SchoolName, order.ContactPerson, order.Email, order.Phone,
		order.Product, order.Quantity, order.TotalPrice, order.PaymentProofURL, order.Notes,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, school_name, contact_person, email, phone, product, quantity, total_price, payment_proof_url, notes, created_at
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.SchoolName, &order.ContactPerson, &order.Email, &order.Phone,
		&order.Product, &order.Quantity, &order.TotalPrice, &order.PaymentProofURL, &order.Notes,
		&order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListByCreatedDesc returns every order, most recent first.
func (r *orderRepo) ListByCreatedDesc(ctx context.Context) ([]*models.Order, error) {
	query := `
		SELECT id, school_name, contact_person, email, phone, product, quantity, total_price, payment_proof_url, notes, created_at
		FROM orders
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(
			&order.ID, &order.SchoolName, &order.ContactPerson, &order.Email, &order.Phone,
			&order.Product, &order.Quantity, &order.TotalPrice, &order.PaymentProofURL, &order.Notes,
			&order.CreatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
