package httpadapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

type hostingUseCaseMock struct {
	mock.Mock
}

func (m *hostingUseCaseMock) List(ctx context.Context, f port.HostingFilter) ([]domain.Hosting, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hosting), args.Error(1)
}

func (m *hostingUseCaseMock) Create(ctx context.Context, h *domain.Hosting) error {
	return m.Called(ctx, h).Error(0)
}

func (m *hostingUseCaseMock) Update(ctx context.Context, h *domain.Hosting) error {
	return m.Called(ctx, h).Error(0)
}

func (m *hostingUseCaseMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *hostingUseCaseMock) ResetReminder(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Editing a hosting record must not re-arm a reminder that already went
// out; reminderSent round-trips through the edit.
func TestHostingUpdateKeepsReminderState(t *testing.T) {
	hosting := new(hostingUseCaseMock)

	var updated *domain.Hosting
	hosting.On("Update", mock.Anything, mock.AnythingOfType("*domain.Hosting")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*domain.Hosting)
		}).
		Return(nil)

	h := NewHandler(nil, nil, hosting, nil, nil, testLogger(), "cron-secret")

	id := uuid.New()
	customerID := uuid.New()
	body := `{
		"customerId": "` + customerID.String() + `",
		"renewalDate": "2026-04-01T00:00:00Z",
		"reminderSent": true
	}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/hosting/"+id.String(), strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, updated)
	require.Equal(t, id, updated.ID)
	require.True(t, updated.ReminderSent, "edit keeps the sent reminder flag")
}
