package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"jobmatch-backend/internal/llm"
)

type fakeLLM struct {
	response string
	err      error
	lastMsgs []llm.Message
}

func (f *fakeLLM) Complete(ctx context.Context, messages []llm.Message) (json.RawMessage, error) {
	f.lastMsgs = messages
	if f.err != nil {
		return nil, f.err
	}
	return json.RawMessage(f.response), nil
}

func (f *fakeLLM) Embed(ctx context.Context, text string) ([]float64, error) {
	return nil, errors.New("not used")
}

func TestExtractResumeSkills(t *testing.T) {
	fake := &fakeLLM{response: `{
		"technical_skills": [{"name": "python", "level": "advanced", "years_experience": 5, "evidence": "built services"}],
		"programming_languages": ["python", "go"],
		"total_experience_years": 6
	}`}
	ex := NewExtractor(fake)

	data, err := ex.ExtractResumeSkills(context.Background(), "Python developer, 6 years")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.TechnicalSkills) != 1 || data.TechnicalSkills[0].Name != "python" {
		t.Fatalf("unexpected technical skills: %+v", data.TechnicalSkills)
	}
	if data.TotalExperienceYears != 6 {
		t.Fatalf("unexpected experience years: %d", data.TotalExperienceYears)
	}
	if len(fake.lastMsgs) != 2 || fake.lastMsgs[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", fake.lastMsgs)
	}
	if !strings.Contains(fake.lastMsgs[1].Content, "Python developer, 6 years") {
		t.Fatal("resume text not interpolated into prompt")
	}
}

func TestExtractJobRequirements(t *testing.T) {
	fake := &fakeLLM{response: "```json\n" + `{
		"required_skills": [{"name": "go", "level": "intermediate", "importance": "high"}],
		"cloud_platforms": ["aws"]
	}` + "\n```"}
	ex := NewExtractor(fake)

	data, err := ex.ExtractJobRequirements(context.Background(), "Backend Engineer", "Go and AWS required")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.RequiredSkills) != 1 || data.RequiredSkills[0].Name != "go" {
		t.Fatalf("unexpected required skills: %+v", data.RequiredSkills)
	}
	if len(data.CloudPlatforms) != 1 || data.CloudPlatforms[0] != "aws" {
		t.Fatalf("unexpected cloud platforms: %+v", data.CloudPlatforms)
	}
	if !strings.Contains(fake.lastMsgs[1].Content, "Backend Engineer") {
		t.Fatal("job title not interpolated into prompt")
	}
}

func TestExtractEmptyText(t *testing.T) {
	ex := NewExtractor(&fakeLLM{})
	if _, err := ex.ExtractResumeSkills(context.Background(), "   "); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if _, err := ex.ExtractJobRequirements(context.Background(), "title", ""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestExtractPropagatesClientError(t *testing.T) {
	ex := NewExtractor(&fakeLLM{err: errors.New("provider down")})
	if _, err := ex.ExtractResumeSkills(context.Background(), "text"); err == nil {
		t.Fatal("expected error")
	}
}

func TestSanitizeJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain object", in: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around object", in: "Here you go: {\"a\":1} Done.", want: `{"a":1}`},
		{name: "no object", in: "sorry, cannot help", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeJSON(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("sanitizeJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
