package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/advance"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

const advanceColumns = `
	a.id, a.worker_id, a.amount, a.reason, a.request_date, a.status,
	a.payment_date, a.decided_at, a.created_at, a.updated_at, u.name AS worker_name
`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(
		&a.ID,
		&a.WorkerID,
		&a.Amount,
		&a.Reason,
		&a.RequestDate,
		&a.Status,
		&a.PaymentDate,
		&a.DecidedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.WorkerName,
	)
	return a, err
}

func (r *advanceRepositoryImpl) queryAdvances(ctx context.Context, query string, args ...any) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, err
		}
		advances = append(advances, a)
	}
	return advances, rows.Err()
}

func (r *advanceRepositoryImpl) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (
			id, worker_id, amount, reason, request_date, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	a.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		a.ID, a.WorkerID, a.Amount, a.Reason, a.RequestDate, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return advance.Advance{}, err
	}

	return a, nil
}

func (r *advanceRepositoryImpl) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM advances a
		JOIN users u ON a.worker_id = u.id
		WHERE a.id = $1
	`

	a, err := scanAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, err
	}
	return a, nil
}

func (r *advanceRepositoryImpl) Update(ctx context.Context, a advance.Advance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advances
		SET status = $2, payment_date = $3, decided_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, a.ID, a.Status, a.PaymentDate, a.DecidedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}
	return nil
}

func (r *advanceRepositoryImpl) ListByWorker(ctx context.Context, workerID string) ([]advance.Advance, error) {
	query := `
		SELECT ` + advanceColumns + `
		FROM advances a
		JOIN users u ON a.worker_id = u.id
		WHERE a.worker_id = $1
		ORDER BY a.request_date DESC
	`
	return r.queryAdvances(ctx, query, workerID)
}

func (r *advanceRepositoryImpl) ListPending(ctx context.Context) ([]advance.Advance, error) {
	query := `
		SELECT ` + advanceColumns + `
		FROM advances a
		JOIN users u ON a.worker_id = u.id
		WHERE a.status = 'pending'
		ORDER BY a.created_at ASC
	`
	return r.queryAdvances(ctx, query)
}

func (r *advanceRepositoryImpl) ListDue(ctx context.Context, today time.Time) ([]advance.Advance, error) {
	query := `
		SELECT ` + advanceColumns + `
		FROM advances a
		JOIN users u ON a.worker_id = u.id
		WHERE a.status = 'scheduled' AND a.payment_date <= $1
		ORDER BY a.payment_date ASC
	`
	return r.queryAdvances(ctx, query, today)
}

func (r *advanceRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
