package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/advance"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/handler/http/middleware"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/handler/http/response"
)

type AdvanceHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	ListByUser(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListDue(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	ClearAll(w http.ResponseWriter, r *http.Request)
}

type AdvanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &AdvanceHandlerImpl{advanceService: advanceService}
}

// Request implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req advance.RequestAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.WorkerID == "" {
		req.WorkerID = middleware.UserID(r)
	}

	created, err := h.advanceService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance request submitted", created)
}

// ListByUser implements AdvanceHandler.
func (h *AdvanceHandlerImpl) ListByUser(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "userId")

	advances, err := h.advanceService.ListByWorker(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, advances)
}

// ListPending implements AdvanceHandler.
func (h *AdvanceHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	advances, err := h.advanceService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, advances)
}

// ListDue implements AdvanceHandler.
func (h *AdvanceHandlerImpl) ListDue(w http.ResponseWriter, r *http.Request) {
	advances, err := h.advanceService.ListDue(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, advances)
}

// Decide implements AdvanceHandler.
func (h *AdvanceHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req advance.DecideAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	decided, err := h.advanceService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance decision recorded", decided)
}

// ClearAll implements AdvanceHandler.
func (h *AdvanceHandlerImpl) ClearAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.advanceService.ClearAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Deleted %d advance requests", n), nil)
}
