package matchscores

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	score := MatchScore{
		ID:              "score-1",
		UserID:          "user-1",
		JobID:           "job-1",
		ResumeID:        "resume-1",
		SimilarityScore: 72.5,
		Report:          json.RawMessage(`{"match_percentage":72.5}`),
	}

	mock.ExpectExec("INSERT INTO match_scores").
		WithArgs(
			score.ID,
			score.UserID,
			score.JobID,
			score.ResumeID,
			score.SimilarityScore,
			sqlmock.AnyArg(), // report
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), score); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpsertNilReport(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("INSERT INTO match_scores").
		WithArgs("score-2", "user-1", "job-1", "resume-2", 50.0, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Upsert(context.Background(), MatchScore{
		ID:              "score-2",
		UserID:          "user-1",
		JobID:           "job-1",
		ResumeID:        "resume-2",
		SimilarityScore: 50.0,
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByJobAndResume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "job_id", "resume_id", "similarity_score", "report", "created_at", "updated_at",
	}).AddRow("score-1", "user-1", "job-1", "resume-1", 72.5, []byte(`{"match_percentage":72.5}`), now, now)

	mock.ExpectQuery("SELECT id, user_id, job_id, resume_id").
		WithArgs("user-1", "job-1", "resume-1").
		WillReturnRows(rows)

	got, err := repo.GetByJobAndResume(context.Background(), "user-1", "job-1", "resume-1")
	if err != nil {
		t.Fatalf("GetByJobAndResume: %v", err)
	}
	if got.SimilarityScore != 72.5 {
		t.Fatalf("unexpected score: %v", got.SimilarityScore)
	}
	if len(got.Report) == 0 {
		t.Fatal("expected report payload")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, user_id, job_id, resume_id").
		WithArgs("user-1", "job-x", "resume-x").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "job_id", "resume_id", "similarity_score", "report", "created_at", "updated_at",
		}))

	if _, err := repo.GetByJobAndResume(context.Background(), "user-1", "job-x", "resume-x"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepoUpsertKeepsCreatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first := MatchScore{ID: "a", UserID: "u", JobID: "j", ResumeID: "r", SimilarityScore: 40}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	got, err := repo.GetByJobAndResume(ctx, "u", "j", "r")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	created := got.CreatedAt

	second := MatchScore{ID: "b", UserID: "u", JobID: "j", ResumeID: "r", SimilarityScore: 60}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	got, err = repo.GetByJobAndResume(ctx, "u", "j", "r")
	if err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
	if got.SimilarityScore != 60 {
		t.Fatalf("score not replaced: %v", got.SimilarityScore)
	}
	if got.ID != "a" {
		t.Fatalf("ID should be stable across upserts, got %s", got.ID)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatal("CreatedAt changed on upsert")
	}
}
