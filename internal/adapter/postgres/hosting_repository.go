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

// HostingRepository implements port.HostingRepository using pgxpool for
// PostgreSQL.
type HostingRepository struct {
	pool *pgxpool.Pool
}

// NewHostingRepository returns a new repository instance.
func NewHostingRepository(pool *pgxpool.Pool) *HostingRepository {
	return &HostingRepository{pool: pool}
}

const hostingJoinQuery = `
	SELECT
		h.id, h.customer_id, h.start_date, h.renewal_date, h.reminder_sent,
		h.created_at, h.updated_at,
		` + customerJoinColumns + `
	FROM hosting h
	JOIN customers cu ON cu.id = h.customer_id`

func scanHostingWithCustomer(row pgx.CollectableRow) (domain.Hosting, error) {
	var (
		h  domain.Hosting
		cu domain.Customer
	)
	err := row.Scan(
		&h.ID,
		&h.CustomerID,
		&h.StartDate,
		&h.RenewalDate,
		&h.ReminderSent,
		&h.CreatedAt,
		&h.UpdatedAt,
		&cu.ID,
		&cu.Name,
		&cu.Company,
		&cu.Email,
		&cu.Email2,
		&cu.Phone,
		&cu.Phone2,
		&cu.PaymentMethod,
		&cu.Domain,
		&cu.Archived,
		&cu.CreatedAt,
		&cu.UpdatedAt,
	)
	if err != nil {
		return h, err
	}
	h.Customer = &cu
	return h, nil
}

// List returns hosting records with their owning customer, soonest
// renewal first.
func (r *HostingRepository) List(ctx context.Context, f port.HostingFilter) ([]domain.Hosting, error) {
	query := hostingJoinQuery + ` WHERE 1=1`
	args := []interface{}{}
	if !f.ArchivedOwners {
		query += ` AND cu.archived = false`
	}
	if f.CustomerID != nil {
		args = append(args, *f.CustomerID)
		query += ` AND h.customer_id = $1`
	}
	query += ` ORDER BY h.renewal_date`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanHostingWithCustomer)
}

// Get returns a hosting record with its owning customer.
func (r *HostingRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Hosting, error) {
	rows, err := r.pool.Query(ctx, hostingJoinQuery+` WHERE h.id = $1`, id)
	if err != nil {
		return nil, err
	}
	h, err := pgx.CollectOneRow(rows, scanHostingWithCustomer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Create inserts a hosting record and fills in its timestamps.
func (r *HostingRepository) Create(ctx context.Context, h *domain.Hosting) error {
	now := time.Now().UTC()
	h.CreatedAt = now
	h.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO hosting (id, customer_id, start_date, renewal_date, reminder_sent, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		h.ID, h.CustomerID, h.StartDate, h.RenewalDate, h.ReminderSent, h.CreatedAt, h.UpdatedAt)
	return err
}

// Update rewrites all editable fields of a hosting record.
func (r *HostingRepository) Update(ctx context.Context, h *domain.Hosting) error {
	h.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx,
		`UPDATE hosting
		 SET start_date = $2, renewal_date = $3, reminder_sent = $4, updated_at = $5
		 WHERE id = $1`,
		h.ID, h.StartDate, h.RenewalDate, h.ReminderSent, h.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes a hosting record.
func (r *HostingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM hosting WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// RenewingBetween returns hosting records renewing in [from, to] that
// have not been reminded yet. Archived customers are excluded.
func (r *HostingRepository) RenewingBetween(ctx context.Context, from, to time.Time) ([]domain.Hosting, error) {
	rows, err := r.pool.Query(ctx,
		hostingJoinQuery+`
		WHERE h.reminder_sent = false
		  AND h.renewal_date::date >= $1::date
		  AND h.renewal_date::date <= $2::date
		  AND cu.archived = false
		ORDER BY h.renewal_date`, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanHostingWithCustomer)
}

// SetReminderSent flips the reminder flag of a hosting record.
func (r *HostingRepository) SetReminderSent(ctx context.Context, id uuid.UUID, sent bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE hosting SET reminder_sent = $2, updated_at = $3 WHERE id = $1`,
		id, sent, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
