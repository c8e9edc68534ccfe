package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, file_name, storage_key, extracted_text, upload_date)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		nullableString(resume.StorageKey),
		nullableString(resume.ExtractedText),
		resume.UploadDate,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, extracted_text, upload_date
FROM resumes
WHERE id = $1 AND user_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, resumeID, userID)
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	const query = `
SELECT id, user_id, file_name, storage_key, extracted_text, upload_date
FROM resumes
WHERE user_id = $1
ORDER BY upload_date DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Resume, 0)
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) error {
	const query = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, resumeID, userID)
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

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var storageKey, extractedText sql.NullString
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&storageKey,
		&extractedText,
		&resume.UploadDate,
	)
	if err != nil {
		return Resume{}, err
	}
	resume.StorageKey = storageKey.String
	resume.ExtractedText = extractedText.String
	return resume, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
