package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

type campaignRepoMock struct{ mock.Mock }

func (m *campaignRepoMock) List(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	args := m.Called(ctx, f)
	if v := args.Get(0); v != nil {
		return v.([]domain.Campaign), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *campaignRepoMock) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Campaign), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *campaignRepoMock) Create(ctx context.Context, c *domain.Campaign) error {
	return m.Called(ctx, c).Error(0)
}

func (m *campaignRepoMock) Update(ctx context.Context, c *domain.Campaign) error {
	return m.Called(ctx, c).Error(0)
}

func (m *campaignRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *campaignRepoMock) SetInitialPaid(ctx context.Context, id uuid.UUID, paid bool, paymentDate *time.Time) error {
	return m.Called(ctx, id, paid, paymentDate).Error(0)
}

func (m *campaignRepoMock) SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error {
	return m.Called(ctx, id, active, at).Error(0)
}

func (m *campaignRepoMock) AddContinuation(ctx context.Context, c *domain.Continuation) error {
	return m.Called(ctx, c).Error(0)
}

func (m *campaignRepoMock) SetContinuationPaid(ctx context.Context, id uuid.UUID, paid bool, paymentDate *time.Time) error {
	return m.Called(ctx, id, paid, paymentDate).Error(0)
}

type installmentRepoMock struct{ mock.Mock }

func (m *installmentRepoMock) List(ctx context.Context, f port.InstallmentFilter) ([]domain.Installment, error) {
	args := m.Called(ctx, f)
	if v := args.Get(0); v != nil {
		return v.([]domain.Installment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *installmentRepoMock) Get(ctx context.Context, id uuid.UUID) (*domain.Installment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Installment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *installmentRepoMock) Create(ctx context.Context, i *domain.Installment) error {
	return m.Called(ctx, i).Error(0)
}

func (m *installmentRepoMock) Update(ctx context.Context, i *domain.Installment) error {
	return m.Called(ctx, i).Error(0)
}

func (m *installmentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *installmentRepoMock) DueOn(ctx context.Context, day time.Time) ([]domain.Installment, error) {
	args := m.Called(ctx, day)
	if v := args.Get(0); v != nil {
		return v.([]domain.Installment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *installmentRepoMock) SetReminderSent(ctx context.Context, id uuid.UUID, sent bool) error {
	return m.Called(ctx, id, sent).Error(0)
}

type hostingRepoMock struct{ mock.Mock }

func (m *hostingRepoMock) List(ctx context.Context, f port.HostingFilter) ([]domain.Hosting, error) {
	args := m.Called(ctx, f)
	if v := args.Get(0); v != nil {
		return v.([]domain.Hosting), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hostingRepoMock) Get(ctx context.Context, id uuid.UUID) (*domain.Hosting, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Hosting), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hostingRepoMock) Create(ctx context.Context, h *domain.Hosting) error {
	return m.Called(ctx, h).Error(0)
}

func (m *hostingRepoMock) Update(ctx context.Context, h *domain.Hosting) error {
	return m.Called(ctx, h).Error(0)
}

func (m *hostingRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *hostingRepoMock) RenewingBetween(ctx context.Context, from, to time.Time) ([]domain.Hosting, error) {
	args := m.Called(ctx, from, to)
	if v := args.Get(0); v != nil {
		return v.([]domain.Hosting), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hostingRepoMock) SetReminderSent(ctx context.Context, id uuid.UUID, sent bool) error {
	return m.Called(ctx, id, sent).Error(0)
}

type mailerMock struct{ mock.Mock }

func (m *mailerMock) Send(ctx context.Context, msg port.EmailMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type smsMock struct {
	mock.Mock
	enabled bool
}

func (m *smsMock) Enabled() bool { return m.enabled }

func (m *smsMock) Send(ctx context.Context, to, message string) error {
	return m.Called(ctx, to, message).Error(0)
}
