package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"naplata/internal/core/billing"
	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

// handleCampaignList lists campaigns with their continuations. Optional
// query parameters: `customer_id` and `archived`.
func (h *Handler) handleCampaignList(w http.ResponseWriter, r *http.Request) {
	var (
		q = r.URL.Query()
		f = port.CampaignFilter{ArchivedOwners: q.Get("archived") == "true"}
	)
	if cid := q.Get("customer_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			http.Error(w, "invalid customer_id", http.StatusBadRequest)
			return
		}
		f.CustomerID = &id
	}

	campaigns, err := h.campaigns.List(r.Context(), f)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		resp = append(resp, toCampaignResponse(&campaigns[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleCampaignBilling returns the billing view of one month: every
// campaign resolved to its period, with totals. The `month` query
// parameter uses the 2006-01 layout and defaults to the current month.
func (h *Handler) handleCampaignBilling(w http.ResponseWriter, r *http.Request) {
	month := billing.MonthOf(time.Now().UTC())
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := billing.ParseMonthKey(m)
		if err != nil {
			http.Error(w, "invalid month, want YYYY-MM", http.StatusBadRequest)
			return
		}
		month = parsed
	}

	summary, err := h.campaigns.MonthView(r.Context(), month)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBillingMonthResponse(summary))
}

func (h *Handler) handleCampaignGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	c := &domain.Campaign{
		ID:                           uuid.New(),
		CustomerID:                   req.CustomerID,
		CampaignName:                 req.CampaignName,
		AccountName:                  req.AccountName,
		StartDate:                    req.StartDate,
		InitialAmount:                req.InitialAmount,
		RecurringAmountEffectiveDate: req.RecurringAmountEffectiveDate,
	}
	if req.RecurringAmount != nil {
		c.RecurringAmount = *req.RecurringAmount
	}
	if err := h.campaigns.Create(r.Context(), c); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req campaignRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	c := &domain.Campaign{
		ID:                           id,
		CustomerID:                   req.CustomerID,
		CampaignName:                 req.CampaignName,
		AccountName:                  req.AccountName,
		StartDate:                    req.StartDate,
		InitialAmount:                req.InitialAmount,
		RecurringAmountEffectiveDate: req.RecurringAmountEffectiveDate,
	}
	if req.RecurringAmount != nil {
		c.RecurringAmount = *req.RecurringAmount
	}
	if err := h.campaigns.Update(r.Context(), c); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.campaigns.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCampaignSetActive pauses or resumes a campaign. The event date
// defaults to now; staff can backdate it.
func (h *Handler) handleCampaignSetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Active *bool      `json:"active" validate:"required"`
		At     *time.Time `json:"at"`
	}
	if !h.decodeBody(w, r, &req) {
		return
	}
	at := time.Now().UTC()
	if req.At != nil {
		at = *req.At
	}
	if err := h.campaigns.SetActive(r.Context(), id, *req.Active, at); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type periodPayRequest struct {
	Target         string           `json:"target" validate:"required,oneof=initial continuation synthetic"`
	ContinuationID *uuid.UUID       `json:"continuationId"`
	PeriodStart    *time.Time       `json:"periodStart"`
	Amount         *decimal.Decimal `json:"amount"`
	PaymentDate    *time.Time       `json:"paymentDate"`
}

// handleCampaignMarkPeriodPaid settles one billing period. Synthetic
// periods are materialized as continuations in the same call.
func (h *Handler) handleCampaignMarkPeriodPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req periodPayRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	// zero payment date means "today"; the service applies the default
	var paymentDate time.Time
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}
	err := h.campaigns.MarkPeriodPaid(r.Context(), port.MarkPeriodPaidInput{
		CampaignID:     id,
		Target:         port.PeriodTarget(req.Target),
		ContinuationID: req.ContinuationID,
		PeriodStart:    req.PeriodStart,
		Amount:         req.Amount,
		PaymentDate:    paymentDate,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCampaignUnmarkPeriodPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Target         string     `json:"target" validate:"required,oneof=initial continuation"`
		ContinuationID *uuid.UUID `json:"continuationId"`
	}
	if !h.decodeBody(w, r, &req) {
		return
	}
	err := h.campaigns.UnmarkPeriodPaid(r.Context(), port.UnmarkPeriodPaidInput{
		CampaignID:     id,
		Target:         port.PeriodTarget(req.Target),
		ContinuationID: req.ContinuationID,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
