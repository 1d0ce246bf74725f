package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// handleCustomerList lists customers. The `archived` query parameter
// switches to the archived bucket.
func (h *Handler) handleCustomerList(w http.ResponseWriter, r *http.Request) {
	archived := r.URL.Query().Get("archived") == "true"
	customers, err := h.customers.List(r.Context(), archived)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]customerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, toCustomerResponse(&customers[i]))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCustomerGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.customers.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

func (h *Handler) handleCustomerCreate(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	c := req.toDomain(uuid.New())
	if err := h.customers.Create(r.Context(), c); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCustomerResponse(c))
}

func (h *Handler) handleCustomerUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req customerRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	c := req.toDomain(id)
	if err := h.customers.Update(r.Context(), c); err != nil {
		h.respondError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

func (h *Handler) handleCustomerDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.customers.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCustomerArchive moves a customer in or out of the archive. The
// body carries the target state so the endpoint is idempotent.
func (h *Handler) handleCustomerArchive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req struct {
		Archived bool `json:"archived"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.customers.SetArchived(r.Context(), id, req.Archived); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
