package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"naplata/internal/core/billing"
	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

type campaignUseCaseMock struct {
	mock.Mock
}

func (m *campaignUseCaseMock) List(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *campaignUseCaseMock) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *campaignUseCaseMock) Create(ctx context.Context, c *domain.Campaign) error {
	return m.Called(ctx, c).Error(0)
}

func (m *campaignUseCaseMock) Update(ctx context.Context, c *domain.Campaign) error {
	return m.Called(ctx, c).Error(0)
}

func (m *campaignUseCaseMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *campaignUseCaseMock) SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error {
	return m.Called(ctx, id, active, at).Error(0)
}

func (m *campaignUseCaseMock) MonthView(ctx context.Context, month billing.MonthKey) (*billing.MonthSummary, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.MonthSummary), args.Error(1)
}

func (m *campaignUseCaseMock) MarkPeriodPaid(ctx context.Context, in port.MarkPeriodPaidInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *campaignUseCaseMock) UnmarkPeriodPaid(ctx context.Context, in port.UnmarkPeriodPaidInput) error {
	return m.Called(ctx, in).Error(0)
}

type reminderUseCaseMock struct {
	mock.Mock
}

func (m *reminderUseCaseMock) SendInstallmentReminders(ctx context.Context, day time.Time) (*port.ReminderReport, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ReminderReport), args.Error(1)
}

func (m *reminderUseCaseMock) SendHostingReminders(ctx context.Context, day time.Time) (*port.ReminderReport, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.ReminderReport), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(campaigns port.CampaignUseCase, reminders port.ReminderUseCase) *Handler {
	return NewHandler(nil, nil, nil, campaigns, reminders, testLogger(), "cron-secret")
}

func TestCampaignBillingEndpoint(t *testing.T) {
	campaigns := new(campaignUseCaseMock)
	month := billing.MonthKey{Year: 2025, Month: time.March}
	campaigns.On("MonthView", mock.Anything, month).Return(&billing.MonthSummary{
		Month: month,
		Lines: []billing.CampaignPeriod{
			{
				Campaign: &domain.Campaign{ID: uuid.New(), CampaignName: "search brand"},
				Period: billing.ResolvedPeriod{
					Kind:        billing.PeriodSynthetic,
					Amount:      decimal.NewFromInt(1500),
					PeriodStart: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
					PeriodEnd:   time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		Total:  decimal.NewFromInt(1500),
		Unpaid: decimal.NewFromInt(1500),
	}, nil)

	h := newTestHandler(campaigns, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/billing?month=2025-03", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp billingMonthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "2025-03", resp.Month)
	require.Len(t, resp.Lines, 1)
	require.Equal(t, "synthetic", resp.Lines[0].Period.Kind)
	require.True(t, resp.Total.Equal(decimal.NewFromInt(1500)))
}

func TestCampaignBillingEndpointBadMonth(t *testing.T) {
	h := newTestHandler(new(campaignUseCaseMock), nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/billing?month=march", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCampaignGetNotFound(t *testing.T) {
	campaigns := new(campaignUseCaseMock)
	id := uuid.New()
	campaigns.On("Get", mock.Anything, id).Return(nil, port.ErrNotFound)

	h := newTestHandler(campaigns, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/"+id.String(), nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReminderEndpointsRequireCronSecret(t *testing.T) {
	reminders := new(reminderUseCaseMock)
	reminders.On("SendInstallmentReminders", mock.Anything, mock.Anything).
		Return(&port.ReminderReport{Sent: 2}, nil)

	h := newTestHandler(nil, reminders)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reminders/installments", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/reminders/installments", nil)
	req.Header.Set("Authorization", "Bearer cron-secret")
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp reminderReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Sent)
}
