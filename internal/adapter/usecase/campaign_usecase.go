package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"naplata/internal/core/billing"
	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

// CampaignService implements port.CampaignUseCase on top of the campaign
// repository and the billing resolver.
type CampaignService struct {
	repo port.CampaignRepository
}

// NewCampaignService creates a campaign service.
func NewCampaignService(repo port.CampaignRepository) *CampaignService {
	return &CampaignService{repo: repo}
}

func (s *CampaignService) List(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	return s.repo.List(ctx, f)
}

func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return s.repo.Get(ctx, id)
}

func (s *CampaignService) Create(ctx context.Context, c *domain.Campaign) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.StartDate.IsZero() {
		return &billing.ValidationError{Field: "startDate", Reason: "required"}
	}
	if c.InitialAmount.Sign() <= 0 {
		return &billing.ValidationError{Field: "initialAmount", Reason: "must be positive"}
	}
	if c.RecurringAmount.IsZero() {
		c.RecurringAmount = c.InitialAmount
	}
	c.Active = true
	return s.repo.Create(ctx, c)
}

// Update rewrites the editable fields of a campaign. The stored record is
// loaded first and everything the API does not carry on an edit — payment
// state, pause dates, start date, and a recurring amount or cutover date
// the request omitted — keeps its stored value. Without the merge a
// rename-only edit would zero the recurring amount and change what every
// future synthetic period bills.
func (s *CampaignService) Update(ctx context.Context, c *domain.Campaign) error {
	if c.InitialAmount.Sign() <= 0 {
		return &billing.ValidationError{Field: "initialAmount", Reason: "must be positive"}
	}
	existing, err := s.repo.Get(ctx, c.ID)
	if err != nil {
		return err
	}
	if c.RecurringAmount.IsZero() {
		c.RecurringAmount = existing.RecurringAmount
	}
	if c.RecurringAmountEffectiveDate == nil {
		c.RecurringAmountEffectiveDate = existing.RecurringAmountEffectiveDate
	}
	c.CustomerID = existing.CustomerID
	c.StartDate = existing.StartDate
	c.Paid = existing.Paid
	c.PaymentDate = existing.PaymentDate
	c.Active = existing.Active
	c.PausedAt = existing.PausedAt
	c.ResumedAt = existing.ResumedAt
	c.Continuations = existing.Continuations
	c.Customer = existing.Customer
	c.CreatedAt = existing.CreatedAt
	return s.repo.Update(ctx, c)
}

func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// SetActive pauses or resumes a campaign. The event date becomes pausedAt
// on pause and resumedAt on resume; the campaign's start date never
// changes.
func (s *CampaignService) SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error {
	return s.repo.SetActive(ctx, id, active, at)
}

// MonthView resolves every campaign against the month and aggregates
// totals across the resolved periods.
func (s *CampaignService) MonthView(ctx context.Context, month billing.MonthKey) (*billing.MonthSummary, error) {
	campaigns, err := s.repo.List(ctx, port.CampaignFilter{})
	if err != nil {
		return nil, err
	}
	summary, err := billing.SummarizeMonth(campaigns, month)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// MarkPeriodPaid settles one billing period. Initial periods live on the
// campaign row and continuations are addressed by id. A synthetic period
// has no identity yet: it is first materialized into a stored continuation
// and settled in the same step.
func (s *CampaignService) MarkPeriodPaid(ctx context.Context, in port.MarkPeriodPaidInput) error {
	paymentDate := in.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	switch in.Target {
	case port.TargetInitial:
		return s.repo.SetInitialPaid(ctx, in.CampaignID, true, &paymentDate)

	case port.TargetContinuation:
		if in.ContinuationID == nil {
			return &billing.ValidationError{Field: "continuationId", Reason: "required for continuation target"}
		}
		return s.repo.SetContinuationPaid(ctx, *in.ContinuationID, true, &paymentDate)

	case port.TargetSynthetic:
		if in.PeriodStart == nil || in.Amount == nil {
			return &billing.ValidationError{Field: "periodStart", Reason: "period start and amount are required to materialize a period"}
		}
		c, err := s.repo.Get(ctx, in.CampaignID)
		if err != nil {
			return err
		}
		// re-resolve the month to reject stale requests: the period may
		// have been materialized by someone else, or it may be the initial
		// period
		resolved, err := billing.Resolve(c, billing.MonthOf(*in.PeriodStart))
		if err != nil {
			return err
		}
		if resolved == nil {
			return &billing.IntegrityError{
				CampaignID: in.CampaignID,
				Reason:     fmt.Sprintf("no billing period in %s", billing.MonthOf(*in.PeriodStart)),
			}
		}
		if resolved.Kind != billing.PeriodSynthetic {
			return &billing.IntegrityError{
				CampaignID: in.CampaignID,
				Reason:     fmt.Sprintf("period in %s already exists as %s", billing.MonthOf(*in.PeriodStart), resolved.Kind),
			}
		}
		return s.repo.AddContinuation(ctx, &domain.Continuation{
			ID:          uuid.New(),
			CampaignID:  in.CampaignID,
			StartDate:   *in.PeriodStart,
			Amount:      *in.Amount,
			Paid:        true,
			PaymentDate: &paymentDate,
		})

	default:
		return fmt.Errorf("unknown period target %q", in.Target)
	}
}

// UnmarkPeriodPaid reverts a settled period. Synthetic periods were never
// paid and cannot be unmarked.
func (s *CampaignService) UnmarkPeriodPaid(ctx context.Context, in port.UnmarkPeriodPaidInput) error {
	switch in.Target {
	case port.TargetInitial:
		return s.repo.SetInitialPaid(ctx, in.CampaignID, false, nil)
	case port.TargetContinuation:
		if in.ContinuationID == nil {
			return &billing.ValidationError{Field: "continuationId", Reason: "required for continuation target"}
		}
		return s.repo.SetContinuationPaid(ctx, *in.ContinuationID, false, nil)
	default:
		return fmt.Errorf("cannot unmark period target %q", in.Target)
	}
}
