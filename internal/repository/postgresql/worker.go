package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

const workerColumns = `
	id, name, phone, password_hash, role, trade, monthly_salary,
	is_active, iqama_expiry, passport_expiry, created_at, updated_at
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	err := row.Scan(
		&w.ID,
		&w.Name,
		&w.Phone,
		&w.PasswordHash,
		&w.Role,
		&w.Trade,
		&w.MonthlySalary,
		&w.IsActive,
		&w.IqamaExpiry,
		&w.PassportExpiry,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	return w, err
}

func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, name, phone, password_hash, role, trade, monthly_salary,
			is_active, iqama_expiry, passport_expiry, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, NOW(), NOW()
		) RETURNING created_at, updated_at
	`

	w.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		w.ID, w.Name, w.Phone, w.PasswordHash, w.Role, w.Trade, w.MonthlySalary,
		w.IsActive, w.IqamaExpiry, w.PassportExpiry,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.Worker{}, worker.ErrPhoneExists
		}
		return worker.Worker{}, err
	}

	return w, nil
}

func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM users WHERE id = $1`

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}
	return w, nil
}

func (r *workerRepositoryImpl) GetByPhone(ctx context.Context, phone string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workerColumns + ` FROM users WHERE phone = $1`

	w, err := scanWorker(q.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}
	return w, nil
}

func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM users
		WHERE role = 'worker'
		ORDER BY is_active DESC, name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

func (r *workerRepositoryImpl) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = $2, phone = $3, password_hash = $4, trade = $5,
			monthly_salary = $6, is_active = $7, iqama_expiry = $8,
			passport_expiry = $9, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		w.ID, w.Name, w.Phone, w.PasswordHash, w.Trade,
		w.MonthlySalary, w.IsActive, w.IqamaExpiry, w.PassportExpiry,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return worker.ErrPhoneExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

func (r *workerRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND role = 'worker'
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}
	return nil
}

func (r *workerRepositoryImpl) ListExpiringDocuments(ctx context.Context, cutoff time.Time) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workerColumns + `
		FROM users
		WHERE role = 'worker' AND is_active = true
		  AND (iqama_expiry <= $1 OR passport_expiry <= $1)
		ORDER BY LEAST(COALESCE(iqama_expiry, 'infinity'::timestamptz), COALESCE(passport_expiry, 'infinity'::timestamptz)) ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}
