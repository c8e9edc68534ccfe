package analysis

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "user-1")
		c.Next()
	})
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestAnalyzeEndpoint(t *testing.T) {
	client := &scriptedLLM{resumeJSON: resumePayload, jobJSON: jobPayload}
	svc, jobID, resumeID, scores := newTestService(t, client)
	router := newTestRouter(NewHandler(svc, scores))

	body, _ := json.Marshal(map[string]string{"resumeId": resumeID})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID+"/skill-gap-analysis", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result struct {
		JobID           string  `json:"jobId"`
		SimilarityScore float64 `json:"similarityScore"`
		Report          struct {
			OverallMatchPercentage float64 `json:"overall_match_percentage"`
			MatchSummary           string  `json:"match_summary"`
		} `json:"report"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.JobID != jobID {
		t.Fatalf("unexpected job id: %s", result.JobID)
	}
	if result.Report.OverallMatchPercentage != 100.0 {
		t.Fatalf("unexpected match percentage: %v", result.Report.OverallMatchPercentage)
	}
	if result.Report.MatchSummary == "" {
		t.Fatal("missing match summary")
	}

	// The persisted score is listable.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID+"/match-scores", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("list scores: expected 200, got %d", resp.Code)
	}
	var listed struct {
		Items []struct {
			ResumeID        string  `json:"resumeId"`
			SimilarityScore float64 `json:"similarityScore"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode scores: %v", err)
	}
	if len(listed.Items) != 1 || listed.Items[0].ResumeID != resumeID {
		t.Fatalf("unexpected scores list: %+v", listed)
	}
}

func TestAnalyzeMissingResumeID(t *testing.T) {
	client := &scriptedLLM{resumeJSON: resumePayload, jobJSON: jobPayload}
	svc, jobID, _, scores := newTestService(t, client)
	router := newTestRouter(NewHandler(svc, scores))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID+"/skill-gap-analysis", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAnalyzeUnknownJob(t *testing.T) {
	client := &scriptedLLM{resumeJSON: resumePayload, jobJSON: jobPayload}
	svc, _, resumeID, scores := newTestService(t, client)
	router := newTestRouter(NewHandler(svc, scores))

	body, _ := json.Marshal(map[string]string{"resumeId": resumeID})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/missing/skill-gap-analysis", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestAnalyzeEmptyResumeSkills(t *testing.T) {
	client := &scriptedLLM{resumeJSON: `{}`, jobJSON: jobPayload}
	svc, jobID, resumeID, scores := newTestService(t, client)
	router := newTestRouter(NewHandler(svc, scores))

	body, _ := json.Marshal(map[string]string{"resumeId": resumeID})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID+"/skill-gap-analysis", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", resp.Code, resp.Body.String())
	}
}
