package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign is a Google Ads management engagement billed in monthly periods.
// The first period starts at StartDate and costs InitialAmount. Later
// periods cost RecurringAmount, which takes effect for periods starting on
// or after RecurringAmountEffectiveDate (immediately after the first period
// when the date is nil). StartDate never changes after creation; pausing
// and resuming only record PausedAt/ResumedAt.
type Campaign struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CampaignName string
	AccountName  string

	StartDate                    time.Time
	InitialAmount                decimal.Decimal
	RecurringAmount              decimal.Decimal
	RecurringAmountEffectiveDate *time.Time

	// Paid and PaymentDate describe the initial period only; later periods
	// carry their own flags on the continuation records.
	Paid        bool
	PaymentDate *time.Time

	Active    bool
	PausedAt  *time.Time
	ResumedAt *time.Time

	// Continuations holds the materialized billing periods after the first,
	// in no guaranteed order.
	Continuations []Continuation

	CreatedAt time.Time
	UpdatedAt time.Time

	Customer *Customer
}

// Continuation is a stored billing period after the first, created when
// staff record it explicitly (usually while marking it paid). It runs from
// StartDate until one month later.
type Continuation struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	StartDate   time.Time
	Amount      decimal.Decimal
	Paid        bool
	PaymentDate *time.Time
	CreatedAt   time.Time
}

// EffectiveRecurringAmount returns the recurring amount, falling back to
// the initial amount when no recurring amount was set.
func (c *Campaign) EffectiveRecurringAmount() decimal.Decimal {
	if c.RecurringAmount.IsZero() {
		return c.InitialAmount
	}
	return c.RecurringAmount
}
