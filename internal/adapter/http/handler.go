package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"naplata/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the use case services, a logger for structured logging
// and a request validator. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	customers    port.CustomerUseCase
	installments port.InstallmentUseCase
	hosting      port.HostingUseCase
	campaigns    port.CampaignUseCase
	reminders    port.ReminderUseCase

	logger   *slog.Logger
	validate *validator.Validate

	// cronSecret guards the reminder trigger endpoints; they are meant to
	// be hit by a scheduler, not by staff.
	cronSecret string

	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	customers port.CustomerUseCase,
	installments port.InstallmentUseCase,
	hosting port.HostingUseCase,
	campaigns port.CampaignUseCase,
	reminders port.ReminderUseCase,
	logger *slog.Logger,
	cronSecret string,
) *Handler {
	h := &Handler{
		customers:    customers,
		installments: installments,
		hosting:      hosting,
		campaigns:    campaigns,
		reminders:    reminders,
		logger:       logger,
		validate:     validator.New(),
		cronSecret:   cronSecret,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.handleCustomerList)
			r.Post("/", h.handleCustomerCreate)
			r.Get("/{id}", h.handleCustomerGet)
			r.Put("/{id}", h.handleCustomerUpdate)
			r.Delete("/{id}", h.handleCustomerDelete)
			r.Post("/{id}/archive", h.handleCustomerArchive)
		})

		r.Route("/installments", func(r chi.Router) {
			r.Get("/", h.handleInstallmentList)
			r.Post("/", h.handleInstallmentCreate)
			r.Put("/{id}", h.handleInstallmentUpdate)
			r.Delete("/{id}", h.handleInstallmentDelete)
			r.Post("/{id}/pay", h.handleInstallmentMarkPaid)
			r.Post("/{id}/reset-reminder", h.handleInstallmentResetReminder)
		})

		r.Route("/hosting", func(r chi.Router) {
			r.Get("/", h.handleHostingList)
			r.Post("/", h.handleHostingCreate)
			r.Put("/{id}", h.handleHostingUpdate)
			r.Delete("/{id}", h.handleHostingDelete)
			r.Post("/{id}/reset-reminder", h.handleHostingResetReminder)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleCampaignList)
			r.Get("/billing", h.handleCampaignBilling)
			r.Post("/", h.handleCampaignCreate)
			r.Get("/{id}", h.handleCampaignGet)
			r.Put("/{id}", h.handleCampaignUpdate)
			r.Delete("/{id}", h.handleCampaignDelete)
			r.Post("/{id}/active", h.handleCampaignSetActive)
			r.Post("/{id}/periods/pay", h.handleCampaignMarkPeriodPaid)
			r.Post("/{id}/periods/unpay", h.handleCampaignUnmarkPeriodPaid)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireCronSecret)
			r.Post("/reminders/installments", h.handleInstallmentReminders)
			r.Post("/reminders/hosting", h.handleHostingReminders)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// requireCronSecret rejects reminder triggers without the shared bearer
// secret. An empty configured secret disables the endpoints entirely.
func (h *Handler) requireCronSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cronSecret == "" || r.Header.Get("Authorization") != "Bearer "+h.cronSecret {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
