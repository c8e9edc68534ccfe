package matchscores

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, score MatchScore) error {
	const query = `
INSERT INTO match_scores (id, user_id, job_id, resume_id, similarity_score, report, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now(), now())
ON CONFLICT (job_id, resume_id) DO UPDATE SET
  similarity_score = EXCLUDED.similarity_score,
  report = EXCLUDED.report,
  updated_at = now()`
	var report any
	if len(score.Report) > 0 {
		report = []byte(score.Report)
	}
	_, err := r.DB.ExecContext(ctx, query,
		score.ID,
		score.UserID,
		score.JobID,
		score.ResumeID,
		score.SimilarityScore,
		report,
	)
	return err
}

func (r *PGRepo) GetByJobAndResume(ctx context.Context, userID, jobID, resumeID string) (MatchScore, error) {
	const query = `
SELECT id, user_id, job_id, resume_id, similarity_score, report, created_at, updated_at
FROM match_scores
WHERE user_id = $1 AND job_id = $2 AND resume_id = $3
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID, jobID, resumeID)
	score, err := scanScore(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MatchScore{}, ErrNotFound
		}
		return MatchScore{}, err
	}
	return score, nil
}

func (r *PGRepo) ListByJob(ctx context.Context, userID, jobID string) ([]MatchScore, error) {
	const query = `
SELECT id, user_id, job_id, resume_id, similarity_score, report, created_at, updated_at
FROM match_scores
WHERE user_id = $1 AND job_id = $2
ORDER BY updated_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MatchScore, 0)
	for rows.Next() {
		score, err := scanScore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, score)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScore(row rowScanner) (MatchScore, error) {
	var score MatchScore
	var report []byte
	err := row.Scan(
		&score.ID,
		&score.UserID,
		&score.JobID,
		&score.ResumeID,
		&score.SimilarityScore,
		&report,
		&score.CreatedAt,
		&score.UpdatedAt,
	)
	if err != nil {
		return MatchScore{}, err
	}
	if len(report) > 0 {
		score.Report = append([]byte(nil), report...)
	}
	return score, nil
}
