package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/announcement"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/database"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

func (r *announcementRepositoryImpl) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (id, content, priority, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`

	a.ID = uuid.NewString()
	err := q.QueryRow(ctx, query, a.ID, a.Content, a.Priority).Scan(&a.CreatedAt)
	if err != nil {
		return announcement.Announcement{}, err
	}

	return a, nil
}

func (r *announcementRepositoryImpl) List(ctx context.Context) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, content, priority, created_at
		FROM announcements
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		if err := rows.Scan(&a.ID, &a.Content, &a.Priority, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}
