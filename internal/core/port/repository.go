package port

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"naplata/internal/core/domain"
)

// ErrNotFound is returned by repositories when the requested record does
// not exist.
var ErrNotFound = errors.New("not found")

// CustomerRepository persists customers. Deleting a customer cascades to
// its installments, hosting records and campaigns.
type CustomerRepository interface {
	List(ctx context.Context, archived bool) ([]domain.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetArchived(ctx context.Context, id uuid.UUID, archived bool) error
}

// InstallmentFilter narrows installment listings. Nil fields are ignored.
type InstallmentFilter struct {
	CustomerID     *uuid.UUID
	Paid           *bool
	ArchivedOwners bool
}

// InstallmentRepository persists installments. List results carry the
// owning customer populated.
type InstallmentRepository interface {
	List(ctx context.Context, f InstallmentFilter) ([]domain.Installment, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Installment, error)
	Create(ctx context.Context, i *domain.Installment) error
	Update(ctx context.Context, i *domain.Installment) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DueOn returns unpaid installments due on the given day whose
	// reminder has not been sent yet.
	DueOn(ctx context.Context, day time.Time) ([]domain.Installment, error)
	SetReminderSent(ctx context.Context, id uuid.UUID, sent bool) error
}

// HostingFilter narrows hosting listings.
type HostingFilter struct {
	CustomerID     *uuid.UUID
	ArchivedOwners bool
}

// HostingRepository persists hosting records.
type HostingRepository interface {
	List(ctx context.Context, f HostingFilter) ([]domain.Hosting, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Hosting, error)
	Create(ctx context.Context, h *domain.Hosting) error
	Update(ctx context.Context, h *domain.Hosting) error
	Delete(ctx context.Context, id uuid.UUID) error

	// RenewingBetween returns records with a renewal date in [from, to]
	// whose reminder has not been sent yet.
	RenewingBetween(ctx context.Context, from, to time.Time) ([]domain.Hosting, error)
	SetReminderSent(ctx context.Context, id uuid.UUID, sent bool) error
}

// CampaignFilter narrows campaign listings.
type CampaignFilter struct {
	CustomerID     *uuid.UUID
	ArchivedOwners bool
}

// CampaignRepository persists campaigns together with their continuation
// periods. Continuations are owned by the campaign and deleted with it.
// List and Get return campaigns with the continuation list and customer
// populated; the list is in no guaranteed order.
type CampaignRepository interface {
	List(ctx context.Context, f CampaignFilter) ([]domain.Campaign, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Create(ctx context.Context, c *domain.Campaign) error
	Update(ctx context.Context, c *domain.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SetInitialPaid flips the paid flag of the initial period.
	SetInitialPaid(ctx context.Context, id uuid.UUID, paid bool, paymentDate *time.Time) error
	// SetActive toggles the campaign and records the pause or resume date.
	SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error

	AddContinuation(ctx context.Context, c *domain.Continuation) error
	SetContinuationPaid(ctx context.Context, id uuid.UUID, paid bool, paymentDate *time.Time) error
}

// EmailMessage is a rendered notification ready to send.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers email notifications.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// SMSSender delivers SMS notifications. Enabled lets callers skip
// rendering when delivery is switched off.
type SMSSender interface {
	Enabled() bool
	Send(ctx context.Context, to, message string) error
}
