package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/work"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/database"
)

type workRepositoryImpl struct {
	db *database.DB
}

func NewWorkRepository(db *database.DB) work.WorkRepository {
	return &workRepositoryImpl{db: db}
}

const workColumns = `
	we.id, we.worker_id, we.date, we.start_time, we.end_time, we.break_minutes,
	we.notes, we.total_hours, we.ot_hours, we.ot_requested_at, we.ot_start_time,
	we.ot_end_time, we.status, we.is_approved, we.approved_at,
	we.created_at, we.updated_at, u.name AS worker_name
`

func scanWorkEntry(row pgx.Row) (work.WorkEntry, error) {
	var e work.WorkEntry
	err := row.Scan(
		&e.ID,
		&e.WorkerID,
		&e.Date,
		&e.StartTime,
		&e.EndTime,
		&e.BreakMinutes,
		&e.Notes,
		&e.TotalHours,
		&e.OTHours,
		&e.OTRequestedAt,
		&e.OTStartTime,
		&e.OTEndTime,
		&e.Status,
		&e.IsApproved,
		&e.ApprovedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.WorkerName,
	)
	return e, err
}

func (r *workRepositoryImpl) queryEntries(ctx context.Context, query string, args ...any) ([]work.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []work.WorkEntry
	for rows.Next() {
		e, err := scanWorkEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *workRepositoryImpl) Create(ctx context.Context, entry work.WorkEntry) (work.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_entries (
			id, worker_id, date, start_time, end_time, break_minutes,
			notes, total_hours, ot_hours, ot_requested_at, ot_start_time,
			ot_end_time, status, is_approved, approved_at,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	entry.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		entry.ID, entry.WorkerID, entry.Date, entry.StartTime, entry.EndTime, entry.BreakMinutes,
		entry.Notes, entry.TotalHours, entry.OTHours, entry.OTRequestedAt, entry.OTStartTime,
		entry.OTEndTime, entry.Status, entry.IsApproved, entry.ApprovedAt,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return work.WorkEntry{}, err
	}

	return entry, nil
}

func (r *workRepositoryImpl) GetByID(ctx context.Context, id string) (work.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workColumns + `
		FROM work_entries we
		JOIN users u ON we.worker_id = u.id
		WHERE we.id = $1
	`

	e, err := scanWorkEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return work.WorkEntry{}, work.ErrEntryNotFound
		}
		return work.WorkEntry{}, err
	}
	return e, nil
}

func (r *workRepositoryImpl) GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*work.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workColumns + `
		FROM work_entries we
		JOIN users u ON we.worker_id = u.id
		WHERE we.worker_id = $1 AND we.date = $2
	`

	e, err := scanWorkEntry(q.QueryRow(ctx, query, workerID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *workRepositoryImpl) Update(ctx context.Context, entry work.WorkEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_entries
		SET start_time = $2, end_time = $3, break_minutes = $4, notes = $5,
			total_hours = $6, ot_hours = $7, ot_requested_at = $8,
			ot_start_time = $9, ot_end_time = $10, status = $11,
			is_approved = $12, approved_at = $13, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		entry.ID, entry.StartTime, entry.EndTime, entry.BreakMinutes, entry.Notes,
		entry.TotalHours, entry.OTHours, entry.OTRequestedAt,
		entry.OTStartTime, entry.OTEndTime, entry.Status,
		entry.IsApproved, entry.ApprovedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return work.ErrEntryNotFound
	}
	return nil
}

func (r *workRepositoryImpl) ListByWorker(ctx context.Context, workerID string) ([]work.WorkEntry, error) {
	query := `
		SELECT ` + workColumns + `
		FROM work_entries we
		JOIN users u ON we.worker_id = u.id
		WHERE we.worker_id = $1
		ORDER BY we.date DESC
	`
	return r.queryEntries(ctx, query, workerID)
}

func (r *workRepositoryImpl) ListPending(ctx context.Context) ([]work.WorkEntry, error) {
	query := `
		SELECT ` + workColumns + `
		FROM work_entries we
		JOIN users u ON we.worker_id = u.id
		WHERE we.is_approved = false AND we.status IN ('pending', 'completed')
		ORDER BY we.date ASC, we.created_at ASC
	`
	return r.queryEntries(ctx, query)
}

func (r *workRepositoryImpl) GetActiveByWorker(ctx context.Context, workerID string) (*work.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workColumns + `
		FROM work_entries we
		JOIN users u ON we.worker_id = u.id
		WHERE we.worker_id = $1 AND we.status IN ('running', 'ot_requested', 'ot_running')
		ORDER BY we.start_time DESC
		LIMIT 1
	`

	e, err := scanWorkEntry(q.QueryRow(ctx, query, workerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *workRepositoryImpl) ListActive(ctx context.Context) ([]work.WorkEntry, error) {
	query := `
		SELECT ` + workColumns + `
		FROM work_entries we
		JOIN users u ON we.worker_id = u.id
		WHERE we.status IN ('running', 'ot_requested', 'ot_running')
		ORDER BY we.start_time ASC
	`
	return r.queryEntries(ctx, query)
}

func (r *workRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_entries`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
