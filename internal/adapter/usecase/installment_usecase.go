package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

// InstallmentService implements port.InstallmentUseCase.
type InstallmentService struct {
	repo port.InstallmentRepository
}

func NewInstallmentService(repo port.InstallmentRepository) *InstallmentService {
	return &InstallmentService{repo: repo}
}

func (s *InstallmentService) List(ctx context.Context, f port.InstallmentFilter) ([]domain.Installment, error) {
	return s.repo.List(ctx, f)
}

func (s *InstallmentService) Create(ctx context.Context, i *domain.Installment) error {
	if i.Amount.Sign() <= 0 {
		return errors.New("installment amount must be positive")
	}
	if i.DueDate.IsZero() {
		return errors.New("due date is required")
	}
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return s.repo.Create(ctx, i)
}

func (s *InstallmentService) Update(ctx context.Context, i *domain.Installment) error {
	return s.repo.Update(ctx, i)
}

func (s *InstallmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// MarkPaid settles an installment. The payment date defaults to today.
func (s *InstallmentService) MarkPaid(ctx context.Context, id uuid.UUID, paymentDate time.Time, method domain.SettlementMethod) error {
	inst, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}
	if method == "" {
		method = domain.SettleManual
	}
	inst.Paid = true
	inst.PaymentDate = &paymentDate
	inst.SettlementMethod = method
	return s.repo.Update(ctx, inst)
}

// ResetReminder clears the reminder flag so the next run notifies again.
func (s *InstallmentService) ResetReminder(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetReminderSent(ctx, id, false)
}
