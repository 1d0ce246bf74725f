package httpadapter

import (
	"net/http"
	"time"

	"naplata/internal/core/port"
)

// handleInstallmentReminders triggers the due-date reminder run for the
// current day and returns the delivery report.
func (h *Handler) handleInstallmentReminders(w http.ResponseWriter, r *http.Request) {
	report, err := h.reminders.SendInstallmentReminders(r.Context(), time.Now().UTC())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toReminderReportResponse(report))
}

// handleHostingReminders triggers the renewal reminder run for the
// current day and returns the delivery report.
func (h *Handler) handleHostingReminders(w http.ResponseWriter, r *http.Request) {
	report, err := h.reminders.SendHostingReminders(r.Context(), time.Now().UTC())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toReminderReportResponse(report))
}

func toReminderReportResponse(report *port.ReminderReport) reminderReportResponse {
	results := make([]reminderResultResponse, 0, len(report.Results))
	for _, res := range report.Results {
		results = append(results, reminderResultResponse{
			ID:       res.ID,
			Customer: res.Customer,
			Email:    res.Email,
			Success:  res.Success,
			Error:    res.Err,
		})
	}
	return reminderReportResponse{
		Sent:    report.Sent,
		Failed:  report.Failed,
		Results: results,
	}
}
