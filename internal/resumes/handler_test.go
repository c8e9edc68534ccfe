package resumes_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/bootstrap"
	sharedauth "jobmatch-backend/internal/shared/auth"
	"jobmatch-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func authHeader(t *testing.T) string {
	t.Helper()
	token, err := sharedauth.SignJWT("google:test-user", "test@example.com", "Test User", "")
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return "Bearer " + token
}

func uploadResume(t *testing.T, router http.Handler, auth, fileName, content string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", auth)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestResumeUploadAndGet(t *testing.T) {
	app := buildTestApp(t)
	auth := authHeader(t)

	resp := uploadResume(t, app.Router, auth, "resume.txt", "Senior Go developer with PostgreSQL experience")
	if resp.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID       string `json:"id"`
		FileName string `json:"fileName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode upload: %v", err)
	}
	if created.ID == "" || created.FileName != "resume.txt" {
		t.Fatalf("unexpected upload response: %+v", created)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+created.ID, nil)
	req.Header.Set("Authorization", auth)
	getResp := httptest.NewRecorder()
	app.Router.ServeHTTP(getResp, req)
	if getResp.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", getResp.Code)
	}
	var fetched struct {
		ID        string `json:"id"`
		TextChars int    `json:"textChars"`
	}
	if err := json.NewDecoder(getResp.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get: %v", err)
	}
	if fetched.ID != created.ID || fetched.TextChars == 0 {
		t.Fatalf("unexpected get response: %+v", fetched)
	}
}

func TestResumeUploadRequiresFile(t *testing.T) {
	app := buildTestApp(t)
	auth := authHeader(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", nil)
	req.Header.Set("Authorization", auth)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without file, got %d", resp.Code)
	}
}

func TestResumeListScopedToUser(t *testing.T) {
	app := buildTestApp(t)
	auth := authHeader(t)

	resp := uploadResume(t, app.Router, auth, "resume.txt", "Go developer")
	if resp.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d", resp.Code)
	}

	otherToken, err := sharedauth.SignJWT("google:other-user", "other@example.com", "", "")
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	listResp := httptest.NewRecorder()
	app.Router.ServeHTTP(listResp, req)
	if listResp.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", listResp.Code)
	}
	var listed struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Items) != 0 {
		t.Fatalf("expected empty list for other user, got %d items", len(listed.Items))
	}
}
