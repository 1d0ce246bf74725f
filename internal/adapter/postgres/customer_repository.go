package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

// CustomerRepository implements port.CustomerRepository using pgxpool for
// PostgreSQL.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a new repository instance.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

const customerColumns = `id, name, company, email, email2, phone, phone2, payment_method, domain, archived, created_at, updated_at`

func scanCustomer(row pgx.CollectableRow) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Company,
		&c.Email,
		&c.Email2,
		&c.Phone,
		&c.Phone2,
		&c.PaymentMethod,
		&c.Domain,
		&c.Archived,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// List returns customers ordered by name. archived selects which bucket
// is listed.
func (r *CustomerRepository) List(ctx context.Context, archived bool) ([]domain.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE archived = $1 ORDER BY name`, archived)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCustomer)
}

// Get returns a customer by id.
func (r *CustomerRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCustomer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a customer and fills in its timestamps.
func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO customers (id, name, company, email, email2, phone, phone2, payment_method, domain, archived, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.Name, c.Company, c.Email, c.Email2, c.Phone, c.Phone2, c.PaymentMethod, c.Domain, c.Archived, c.CreatedAt, c.UpdatedAt)
	return err
}

// Update rewrites all editable fields of a customer.
func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	c.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx,
		`UPDATE customers
		 SET name = $2, company = $3, email = $4, email2 = $5, phone = $6, phone2 = $7,
		     payment_method = $8, domain = $9, archived = $10, updated_at = $11
		 WHERE id = $1`,
		c.ID, c.Name, c.Company, c.Email, c.Email2, c.Phone, c.Phone2, c.PaymentMethod, c.Domain, c.Archived, c.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes a customer. Installments, hosting records and campaigns
// go with it through ON DELETE CASCADE.
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// SetArchived moves a customer between the active and archived buckets.
func (r *CustomerRepository) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE customers SET archived = $2, updated_at = $3 WHERE id = $1`,
		id, archived, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
