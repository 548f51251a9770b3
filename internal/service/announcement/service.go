package announcement

import (
	"context"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/announcement"
)

type AnnouncementServiceImpl struct {
	announcementRepo announcement.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{announcementRepo: announcementRepo}
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	a := announcement.Announcement{
		Content:  req.Content,
		Priority: announcement.Priority(req.Priority),
	}
	created, err := s.announcementRepo.Create(ctx, a)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	return announcement.NewAnnouncementResponse(created), nil
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]announcement.AnnouncementResponse, error) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, announcement.NewAnnouncementResponse(a))
	}
	return responses, nil
}
