package httpadapter

import (
	"net/http"

	"github.com/google/uuid"

	"naplata/internal/core/port"
)

// handleHostingList lists hosting records. Optional query parameters:
// `customer_id` and `archived`.
func (h *Handler) handleHostingList(w http.ResponseWriter, r *http.Request) {
	var (
		q = r.URL.Query()
		f = port.HostingFilter{ArchivedOwners: q.Get("archived") == "true"}
	)
	if cid := q.Get("customer_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			http.Error(w, "invalid customer_id", http.StatusBadRequest)
			return
		}
		f.CustomerID = &id
	}

	records, err := h.hosting.List(r.Context(), f)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]hostingResponse, 0, len(records))
	for i := range records {
		resp = append(resp, toHostingResponse(&records[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleHostingCreate(w http.ResponseWriter, r *http.Request) {
	var req hostingRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	rec := req.toDomain(uuid.New())
	if err := h.hosting.Create(r.Context(), rec); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toHostingResponse(rec))
}

func (h *Handler) handleHostingUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req hostingRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	rec := req.toDomain(id)
	if err := h.hosting.Update(r.Context(), rec); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toHostingResponse(rec))
}

func (h *Handler) handleHostingDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.hosting.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleHostingResetReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.hosting.ResetReminder(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
