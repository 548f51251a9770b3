package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/payroll"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/handler/http/middleware"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/handler/http/response"
)

type PayrollHandler interface {
	My(w http.ResponseWriter, r *http.Request)
	ForWorker(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// My implements PayrollHandler.
func (h *PayrollHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	snapshot, err := h.payrollService.ForWorker(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// ForWorker implements PayrollHandler.
func (h *PayrollHandlerImpl) ForWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerId")
	if workerID == "" {
		response.BadRequest(w, "Worker ID is required", nil)
		return
	}

	snapshot, err := h.payrollService.ForWorker(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}
