package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

// InstallmentRepository implements port.InstallmentRepository using
// pgxpool for PostgreSQL.
type InstallmentRepository struct {
	pool *pgxpool.Pool
}

// NewInstallmentRepository returns a new repository instance.
func NewInstallmentRepository(pool *pgxpool.Pool) *InstallmentRepository {
	return &InstallmentRepository{pool: pool}
}

const installmentJoinQuery = `
	SELECT
		i.id, i.customer_id, i.amount, i.due_date, i.paid, i.payment_date,
		i.settlement_method, i.reminder_sent, i.created_at, i.updated_at,
		` + customerJoinColumns + `
	FROM installments i
	JOIN customers cu ON cu.id = i.customer_id`

const customerJoinColumns = `cu.id, cu.name, cu.company, cu.email, cu.email2, cu.phone, cu.phone2, cu.payment_method, cu.domain, cu.archived, cu.created_at, cu.updated_at`

func scanInstallmentWithCustomer(row pgx.CollectableRow) (domain.Installment, error) {
	var (
		i  domain.Installment
		cu domain.Customer
	)
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.Amount,
		&i.DueDate,
		&i.Paid,
		&i.PaymentDate,
		&i.SettlementMethod,
		&i.ReminderSent,
		&i.CreatedAt,
		&i.UpdatedAt,
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
		return i, err
	}
	i.Customer = &cu
	return i, nil
}

// List returns installments with their owning customer, newest due date
// first. Nil filter fields are ignored.
func (r *InstallmentRepository) List(ctx context.Context, f port.InstallmentFilter) ([]domain.Installment, error) {
	query := installmentJoinQuery + ` WHERE 1=1`
	args := []interface{}{}
	if !f.ArchivedOwners {
		query += ` AND cu.archived = false`
	}
	if f.CustomerID != nil {
		args = append(args, *f.CustomerID)
		query += ` AND i.customer_id = $1`
	}
	if f.Paid != nil {
		args = append(args, *f.Paid)
		query += ` AND i.paid = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY i.due_date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanInstallmentWithCustomer)
}

// Get returns an installment with its owning customer.
func (r *InstallmentRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Installment, error) {
	rows, err := r.pool.Query(ctx, installmentJoinQuery+` WHERE i.id = $1`, id)
	if err != nil {
		return nil, err
	}
	i, err := pgx.CollectOneRow(rows, scanInstallmentWithCustomer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserts an installment and fills in its timestamps.
func (r *InstallmentRepository) Create(ctx context.Context, i *domain.Installment) error {
	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO installments (id, customer_id, amount, due_date, paid, payment_date, settlement_method, reminder_sent, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		i.ID, i.CustomerID, i.Amount, i.DueDate, i.Paid, i.PaymentDate, i.SettlementMethod, i.ReminderSent, i.CreatedAt, i.UpdatedAt)
	return err
}

// Update rewrites all editable fields of an installment.
func (r *InstallmentRepository) Update(ctx context.Context, i *domain.Installment) error {
	i.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx,
		`UPDATE installments
		 SET amount = $2, due_date = $3, paid = $4, payment_date = $5,
		     settlement_method = $6, reminder_sent = $7, updated_at = $8
		 WHERE id = $1`,
		i.ID, i.Amount, i.DueDate, i.Paid, i.PaymentDate, i.SettlementMethod, i.ReminderSent, i.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes an installment.
func (r *InstallmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM installments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// DueOn returns unpaid installments due on the given day that have not
// been reminded yet. Archived customers are excluded; their billing is
// frozen.
func (r *InstallmentRepository) DueOn(ctx context.Context, day time.Time) ([]domain.Installment, error) {
	rows, err := r.pool.Query(ctx,
		installmentJoinQuery+`
		WHERE i.paid = false
		  AND i.reminder_sent = false
		  AND i.due_date::date = $1::date
		  AND cu.archived = false`, day)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanInstallmentWithCustomer)
}

// SetReminderSent flips the reminder flag of an installment.
func (r *InstallmentRepository) SetReminderSent(ctx context.Context, id uuid.UUID, sent bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE installments SET reminder_sent = $2, updated_at = $3 WHERE id = $1`,
		id, sent, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
