package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/leave"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	l.id, l.worker_id, l.date, l.reason, l.status, l.decided_at,
	l.created_at, l.updated_at, u.name AS worker_name
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID,
		&l.WorkerID,
		&l.Date,
		&l.Reason,
		&l.Status,
		&l.DecidedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.WorkerName,
	)
	return l, err
}

func (r *leaveRepositoryImpl) queryLeaves(ctx context.Context, query string, args ...any) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (
			id, worker_id, date, reason, status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	l.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		l.ID, l.WorkerID, l.Date, l.Reason, l.Status,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return leave.Leave{}, err
	}

	return l, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN users u ON l.worker_id = u.id
		WHERE l.id = $1
	`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}
	return l, nil
}

func (r *leaveRepositoryImpl) Update(ctx context.Context, l leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $2, decided_at = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, l.ID, l.Status, l.DecidedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func (r *leaveRepositoryImpl) ListByWorker(ctx context.Context, workerID string) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN users u ON l.worker_id = u.id
		WHERE l.worker_id = $1
		ORDER BY l.date DESC
	`
	return r.queryLeaves(ctx, query, workerID)
}

func (r *leaveRepositoryImpl) ListPending(ctx context.Context) ([]leave.Leave, error) {
	query := `
		SELECT ` + leaveColumns + `
		FROM leaves l
		JOIN users u ON l.worker_id = u.id
		WHERE l.status = 'pending'
		ORDER BY l.created_at ASC
	`
	return r.queryLeaves(ctx, query)
}

func (r *leaveRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
