package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/work"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/handler/http/middleware"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/handler/http/response"
)

type WorkHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	ListByUser(w http.ResponseWriter, r *http.Request)

	Start(w http.ResponseWriter, r *http.Request)
	End(w http.ResponseWriter, r *http.Request)
	RequestOT(w http.ResponseWriter, r *http.Request)
	EndOT(w http.ResponseWriter, r *http.Request)

	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	DecideOT(w http.ResponseWriter, r *http.Request)
	ClearAll(w http.ResponseWriter, r *http.Request)
}

type WorkHandlerImpl struct {
	workService work.WorkService
}

func NewWorkHandler(workService work.WorkService) WorkHandler {
	return &WorkHandlerImpl{workService: workService}
}

// Submit implements WorkHandler.
func (h *WorkHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req work.SubmitWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.WorkerID == "" {
		req.WorkerID = middleware.UserID(r)
	}

	entry, err := h.workService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Status implements WorkHandler.
func (h *WorkHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerId")
	date := chi.URLParam(r, "date")

	entry, err := h.workService.Status(r.Context(), workerID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// ListByUser implements WorkHandler.
func (h *WorkHandlerImpl) ListByUser(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "userId")

	entries, err := h.workService.ListByWorker(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Start implements WorkHandler.
func (h *WorkHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	entry, err := h.workService.Start(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift started", entry)
}

// End implements WorkHandler.
func (h *WorkHandlerImpl) End(w http.ResponseWriter, r *http.Request) {
	entry, err := h.workService.End(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift ended", entry)
}

// RequestOT implements WorkHandler.
func (h *WorkHandlerImpl) RequestOT(w http.ResponseWriter, r *http.Request) {
	entry, err := h.workService.RequestOT(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime requested", entry)
}

// EndOT implements WorkHandler.
func (h *WorkHandlerImpl) EndOT(w http.ResponseWriter, r *http.Request) {
	entry, err := h.workService.EndOT(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime ended", entry)
}

// ListPending implements WorkHandler.
func (h *WorkHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	entries, err := h.workService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Approve implements WorkHandler.
func (h *WorkHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Entry ID is required", nil)
		return
	}

	entry, err := h.workService.Approve(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work entry approved", entry)
}

// DecideOT implements WorkHandler.
func (h *WorkHandlerImpl) DecideOT(w http.ResponseWriter, r *http.Request) {
	var req work.OTDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideOT decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	entry, err := h.workService.DecideOT(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime decision recorded", entry)
}

// ClearAll implements WorkHandler.
func (h *WorkHandlerImpl) ClearAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.workService.ClearAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Deleted %d work entries", n), nil)
}
