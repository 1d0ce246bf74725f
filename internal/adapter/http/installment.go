package httpadapter

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"naplata/internal/core/domain"
	"naplata/internal/core/port"
)

// handleInstallmentList lists installments. Optional query parameters:
// `customer_id`, `paid` and `archived` (include records of archived
// customers).
func (h *Handler) handleInstallmentList(w http.ResponseWriter, r *http.Request) {
	var (
		q = r.URL.Query()
		f = port.InstallmentFilter{ArchivedOwners: q.Get("archived") == "true"}
	)
	if cid := q.Get("customer_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			http.Error(w, "invalid customer_id", http.StatusBadRequest)
			return
		}
		f.CustomerID = &id
	}
	if p := q.Get("paid"); p != "" {
		paid := p == "true"
		f.Paid = &paid
	}

	installments, err := h.installments.List(r.Context(), f)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]installmentResponse, 0, len(installments))
	for i := range installments {
		resp = append(resp, toInstallmentResponse(&installments[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleInstallmentCreate(w http.ResponseWriter, r *http.Request) {
	var req installmentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	inst := req.toDomain(uuid.New())
	if err := h.installments.Create(r.Context(), inst); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toInstallmentResponse(inst))
}

func (h *Handler) handleInstallmentUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req installmentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	inst := req.toDomain(id)
	if err := h.installments.Update(r.Context(), inst); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toInstallmentResponse(inst))
}

func (h *Handler) handleInstallmentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.installments.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleInstallmentMarkPaid settles an installment. PaymentDate defaults
// to today and the settlement method to manual.
func (h *Handler) handleInstallmentMarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		PaymentDate *time.Time `json:"paymentDate"`
		Method      string     `json:"method" validate:"omitempty,oneof=account1 account2 manual"`
	}
	if !h.decodeBody(w, r, &req) {
		return
	}
	// zero payment date means "today"; the service applies the default
	var paymentDate time.Time
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}
	err := h.installments.MarkPaid(r.Context(), id, paymentDate, domain.SettlementMethod(req.Method))
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleInstallmentResetReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.installments.ResetReminder(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
