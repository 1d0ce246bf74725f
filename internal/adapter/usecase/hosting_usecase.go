package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

// HostingService implements port.HostingUseCase.
type HostingService struct {
	repo port.HostingRepository
}

func NewHostingService(repo port.HostingRepository) *HostingService {
	return &HostingService{repo: repo}
}

func (s *HostingService) List(ctx context.Context, f port.HostingFilter) ([]domain.Hosting, error) {
	return s.repo.List(ctx, f)
}

func (s *HostingService) Create(ctx context.Context, h *domain.Hosting) error {
	if h.RenewalDate.IsZero() {
		return errors.New("renewal date is required")
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return s.repo.Create(ctx, h)
}

func (s *HostingService) Update(ctx context.Context, h *domain.Hosting) error {
	return s.repo.Update(ctx, h)
}

func (s *HostingService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *HostingService) ResetReminder(ctx context.Context, id uuid.UUID) error {
	return s.repo.SetReminderSent(ctx, id, false)
}
