package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadform/internal/model"
	"leadform/pkg/metrics"
)

// ErrNotFound is returned when a submission id does not exist.
var ErrNotFound = errors.New("submission not found")

type SubmissionRepository struct {
	db *pgxpool.Pool
}

func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a new submission. The store assigns id and created_at.
func (r *SubmissionRepository) Create(ctx context.Context, s *model.Submission) error {
	query := `
        INSERT INTO submissions (name, contact_number, service, description, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id, created_at
    `
	start := time.Now()
	err := r.db.QueryRow(ctx, query, s.Name, s.ContactNumber, s.Service, s.Description).
		Scan(&s.ID, &s.CreatedAt)
	metrics.RecordDBQueryDuration("insert", "submissions", time.Since(start))
	return err
}

// List returns all submissions, newest first.
func (r *SubmissionRepository) List(ctx context.Context) ([]model.Submission, error) {
	query := `
        SELECT id, name, contact_number, service, description, created_at
        FROM submissions
        ORDER BY created_at DESC, id DESC
    `
	start := time.Now()
	rows, err := r.db.Query(ctx, query)
	metrics.RecordDBQueryDuration("list", "submissions", time.Since(start))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []model.Submission{}

	for rows.Next() {
		var s model.Submission
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.ContactNumber,
			&s.Service,
			&s.Description,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}

// FindByID returns a submission by id, or ErrNotFound.
func (r *SubmissionRepository) FindByID(ctx context.Context, id int64) (*model.Submission, error) {
	query := `
        SELECT id, name, contact_number, service, description, created_at
        FROM submissions
        WHERE id = $1
    `
	var s model.Submission
	start := time.Now()
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.ContactNumber,
		&s.Service,
		&s.Description,
		&s.CreatedAt,
	)
	metrics.RecordDBQueryDuration("find_by_id", "submissions", time.Since(start))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
