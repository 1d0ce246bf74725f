package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"naplata/internal/core/billing"
	"naplata/internal/core/domain"
)

// CustomerUseCase exposes customer management.
type CustomerUseCase interface {
	List(ctx context.Context, archived bool) ([]domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetArchived(ctx context.Context, id uuid.UUID, archived bool) error
}

// InstallmentUseCase exposes installment management.
type InstallmentUseCase interface {
	List(ctx context.Context, f InstallmentFilter) ([]domain.Installment, error)
	Create(ctx context.Context, i *domain.Installment) error
	Update(ctx context.Context, i *domain.Installment) error
	Delete(ctx context.Context, id uuid.UUID) error
	// MarkPaid settles an installment with the given payment date and
	// settlement method.
	MarkPaid(ctx context.Context, id uuid.UUID, paymentDate time.Time, method domain.SettlementMethod) error
	ResetReminder(ctx context.Context, id uuid.UUID) error
}

// HostingUseCase exposes hosting management.
type HostingUseCase interface {
	List(ctx context.Context, f HostingFilter) ([]domain.Hosting, error)
	Create(ctx context.Context, h *domain.Hosting) error
	Update(ctx context.Context, h *domain.Hosting) error
	Delete(ctx context.Context, id uuid.UUID) error
	ResetReminder(ctx context.Context, id uuid.UUID) error
}

// PeriodTarget names which billing period of a campaign a mutation aims
// at.
type PeriodTarget string

const (
	// TargetInitial is the first period, carried on the campaign row.
	TargetInitial PeriodTarget = "initial"
	// TargetContinuation is a stored continuation, addressed by id.
	TargetContinuation PeriodTarget = "continuation"
	// TargetSynthetic is a computed future period; marking it paid first
	// materializes it into a continuation.
	TargetSynthetic PeriodTarget = "synthetic"
)

// MarkPeriodPaidInput identifies a period to settle. ContinuationID is
// required for TargetContinuation; PeriodStart and Amount are required for
// TargetSynthetic, where they become the new continuation record.
type MarkPeriodPaidInput struct {
	CampaignID     uuid.UUID
	Target         PeriodTarget
	ContinuationID *uuid.UUID
	PeriodStart    *time.Time
	Amount         *decimal.Decimal
	PaymentDate    time.Time
}

// UnmarkPeriodPaidInput identifies a settled period to revert. Synthetic
// periods cannot be unmarked, they were never paid.
type UnmarkPeriodPaidInput struct {
	CampaignID     uuid.UUID
	Target         PeriodTarget
	ContinuationID *uuid.UUID
}

// CampaignUseCase exposes campaign management and the per-month billing
// view built on the resolver.
type CampaignUseCase interface {
	List(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Create(ctx context.Context, c *domain.Campaign) error
	Update(ctx context.Context, c *domain.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SetActive pauses or resumes the campaign, recording the event date.
	SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error

	// MonthView resolves every campaign against the month and aggregates
	// totals.
	MonthView(ctx context.Context, month billing.MonthKey) (*billing.MonthSummary, error)

	MarkPeriodPaid(ctx context.Context, in MarkPeriodPaidInput) error
	UnmarkPeriodPaid(ctx context.Context, in UnmarkPeriodPaidInput) error
}

// ReminderResult describes one attempted notification.
type ReminderResult struct {
	ID       uuid.UUID
	Customer string
	Email    string
	Success  bool
	Err      string
}

// ReminderReport summarizes a reminder run.
type ReminderReport struct {
	Sent    int
	Failed  int
	Results []ReminderResult
}

// ReminderUseCase sends due-date notifications. Runs are idempotent per
// record: a record is marked once its reminder went out and is not picked
// up again until staff reset it.
type ReminderUseCase interface {
	// SendInstallmentReminders notifies customers of unpaid installments
	// due on the given day.
	SendInstallmentReminders(ctx context.Context, day time.Time) (*ReminderReport, error)
	// SendHostingReminders notifies customers of hosting renewals within
	// the lookahead window starting at the given day.
	SendHostingReminders(ctx context.Context, day time.Time) (*ReminderReport, error)
}
