package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Continuations live in their own table and are loaded with
// the campaign.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignJoinQuery = `
	SELECT
		c.id, c.customer_id, c.campaign_name, c.account_name,
		c.start_date, c.initial_amount, c.recurring_amount, c.recurring_amount_effective_date,
		c.paid, c.payment_date, c.active, c.paused_at, c.resumed_at,
		c.created_at, c.updated_at,
		` + customerJoinColumns + `
	FROM campaigns c
	JOIN customers cu ON cu.id = c.customer_id`

func scanCampaignWithCustomer(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c  domain.Campaign
		cu domain.Customer
	)
	err := row.Scan(
		&c.ID,
		&c.CustomerID,
		&c.CampaignName,
		&c.AccountName,
		&c.StartDate,
		&c.InitialAmount,
		&c.RecurringAmount,
		&c.RecurringAmountEffectiveDate,
		&c.Paid,
		&c.PaymentDate,
		&c.Active,
		&c.PausedAt,
		&c.ResumedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
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
		return c, err
	}
	c.Customer = &cu
	return c, nil
}

func scanContinuation(row pgx.CollectableRow) (domain.Continuation, error) {
	var n domain.Continuation
	err := row.Scan(
		&n.ID,
		&n.CampaignID,
		&n.StartDate,
		&n.Amount,
		&n.Paid,
		&n.PaymentDate,
		&n.CreatedAt,
	)
	return n, err
}

// List returns campaigns with customer and continuations populated,
// newest start date first.
func (r *CampaignRepository) List(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	query := campaignJoinQuery + ` WHERE 1=1`
	args := []interface{}{}
	if !f.ArchivedOwners {
		query += ` AND cu.archived = false`
	}
	if f.CustomerID != nil {
		args = append(args, *f.CustomerID)
		query += ` AND c.customer_id = $1`
	}
	query += ` ORDER BY c.start_date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaignWithCustomer)
	if err != nil {
		return nil, err
	}
	if len(campaigns) == 0 {
		return campaigns, nil
	}

	ids := make([]uuid.UUID, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}
	contRows, err := r.pool.Query(ctx,
		`SELECT id, campaign_id, start_date, amount, paid, payment_date, created_at
		 FROM campaign_continuations WHERE campaign_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	conts, err := pgx.CollectRows(contRows, scanContinuation)
	if err != nil {
		return nil, err
	}
	byCampaign := make(map[uuid.UUID][]domain.Continuation, len(campaigns))
	for _, n := range conts {
		byCampaign[n.CampaignID] = append(byCampaign[n.CampaignID], n)
	}
	for i := range campaigns {
		campaigns[i].Continuations = byCampaign[campaigns[i].ID]
	}
	return campaigns, nil
}

// Get returns a campaign with customer and continuations populated.
func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, campaignJoinQuery+` WHERE c.id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaignWithCustomer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	contRows, err := r.pool.Query(ctx,
		`SELECT id, campaign_id, start_date, amount, paid, payment_date, created_at
		 FROM campaign_continuations WHERE campaign_id = $1`, id)
	if err != nil {
		return nil, err
	}
	c.Continuations, err = pgx.CollectRows(contRows, scanContinuation)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a campaign and fills in its timestamps. Continuations
// are never created here; they are added one by one as periods settle.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.pool.Exec(ctx,
		`INSERT INTO campaigns (id, customer_id, campaign_name, account_name, start_date,
		   initial_amount, recurring_amount, recurring_amount_effective_date,
		   paid, payment_date, active, paused_at, resumed_at, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		c.ID, c.CustomerID, c.CampaignName, c.AccountName, c.StartDate,
		c.InitialAmount, c.RecurringAmount, c.RecurringAmountEffectiveDate,
		c.Paid, c.PaymentDate, c.Active, c.PausedAt, c.ResumedAt, c.CreatedAt, c.UpdatedAt)
	return err
}

// Update rewrites the editable fields of a campaign. The start date is
// fixed at creation and deliberately not part of the update.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	c.UpdatedAt = time.Now().UTC()
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns
		 SET campaign_name = $2, account_name = $3,
		     initial_amount = $4, recurring_amount = $5, recurring_amount_effective_date = $6,
		     updated_at = $7
		 WHERE id = $1`,
		c.ID, c.CampaignName, c.AccountName,
		c.InitialAmount, c.RecurringAmount, c.RecurringAmountEffectiveDate, c.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes a campaign. Continuations go with it through
// ON DELETE CASCADE.
func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// SetInitialPaid flips the paid flag of the initial period.
func (r *CampaignRepository) SetInitialPaid(ctx context.Context, id uuid.UUID, paid bool, paymentDate *time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET paid = $2, payment_date = $3, updated_at = $4 WHERE id = $1`,
		id, paid, paymentDate, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// SetActive toggles the campaign. Pausing records paused_at and clears
// any earlier resume; resuming records resumed_at.
func (r *CampaignRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error {
	var tag pgconn.CommandTag
	var err error
	if active {
		tag, err = r.pool.Exec(ctx,
			`UPDATE campaigns SET active = true, resumed_at = $2, updated_at = $3 WHERE id = $1`,
			id, at, time.Now().UTC())
	} else {
		tag, err = r.pool.Exec(ctx,
			`UPDATE campaigns SET active = false, paused_at = $2, resumed_at = NULL, updated_at = $3 WHERE id = $1`,
			id, at, time.Now().UTC())
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// AddContinuation inserts a stored billing period.
func (r *CampaignRepository) AddContinuation(ctx context.Context, n *domain.Continuation) error {
	n.CreatedAt = time.Now().UTC()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO campaign_continuations (id, campaign_id, start_date, amount, paid, payment_date, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		n.ID, n.CampaignID, n.StartDate, n.Amount, n.Paid, n.PaymentDate, n.CreatedAt)
	return err
}

// SetContinuationPaid flips the paid flag of a stored period.
func (r *CampaignRepository) SetContinuationPaid(ctx context.Context, id uuid.UUID, paid bool, paymentDate *time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaign_continuations SET paid = $2, payment_date = $3 WHERE id = $1`,
		id, paid, paymentDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
