package jobs

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, user_id, title, company, description, location, url, source, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.UserID,
		job.Title,
		job.Company,
		job.Description,
		nullableString(job.Location),
		nullableString(job.URL),
		nullableString(job.Source),
		string(job.Status),
		job.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, jobID string) (Job, error) {
	const query = `
SELECT id, user_id, title, company, description, location, url, source, status, created_at, updated_at
FROM jobs
WHERE id = $1 AND user_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, jobID, userID)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Job, error) {
	const query = `
SELECT id, user_id, title, company, description, location, url, source, status, created_at, updated_at
FROM jobs
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, userID, jobID string, status Status) error {
	const query = `
UPDATE jobs SET status = $1, updated_at = now()
WHERE id = $2 AND user_id = $3`
	res, err := r.DB.ExecContext(ctx, query, string(status), jobID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, userID, jobID string) error {
	const query = `DELETE FROM jobs WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, jobID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var location, url, source sql.NullString
	var status string
	err := row.Scan(
		&job.ID,
		&job.UserID,
		&job.Title,
		&job.Company,
		&job.Description,
		&location,
		&url,
		&source,
		&status,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return Job{}, err
	}
	job.Location = location.String
	job.URL = url.String
	job.Source = source.String
	job.Status = Status(status)
	return job, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
