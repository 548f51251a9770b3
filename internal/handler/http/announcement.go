package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/announcement"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/handler/http/response"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AnnouncementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &AnnouncementHandlerImpl{announcementService: announcementService}
}

// Create implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req announcement.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement posted", created)
}

// List implements AnnouncementHandler.
func (h *AnnouncementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, announcements)
}
