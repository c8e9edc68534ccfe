package analysis

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/matchscores"
	"jobmatch-backend/internal/resumes"
	"jobmatch-backend/internal/shared/server/middleware"
	"jobmatch-backend/internal/shared/server/respond"
	"jobmatch-backend/internal/skillgap"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc    *Service
	Scores matchscores.Repo
}

func NewHandler(svc *Service, scores matchscores.Repo) *Handler {
	return &Handler{Svc: svc, Scores: scores}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs/:id/skill-gap-analysis", h.analyze)
	rg.GET("/jobs/:id/match-scores", h.listScores)
}

type analyzeRequest struct {
	ResumeID string `json:"resumeId"`
}

func (h *Handler) analyze(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	jobID := c.Param("id")

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.ResumeID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId is required", nil)
		return
	}

	result, err := h.Svc.Run(c.Request.Context(), userID, jobID, req.ResumeID)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		case errors.Is(err, resumes.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, jobs.ErrInvalidInput), errors.Is(err, resumes.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, skillgap.ErrEmptyResumeSkills):
			respond.Error(c, http.StatusUnprocessableEntity, "no_resume_skills", "no skills could be extracted from the resume", nil)
		case errors.Is(err, skillgap.ErrEmptyJobSkills):
			respond.Error(c, http.StatusUnprocessableEntity, "no_job_skills", "no requirements could be extracted from the job", nil)
		case errors.Is(err, ErrExtractionFailed):
			respond.Error(c, http.StatusBadGateway, "extraction_failed", "skill extraction failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) listScores(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	jobID := c.Param("id")

	scores, err := h.Scores.ListByJob(c.Request.Context(), userID, jobID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list match scores", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"items": scores})
}
