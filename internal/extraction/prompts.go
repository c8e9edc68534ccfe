package extraction

import (
	_ "embed"
	"strings"

	"jobmatch-backend/internal/llm"
)

var (
	//go:embed prompts/resume_skills.txt
	resumeSkillsPrompt string
	//go:embed prompts/job_requirements.txt
	jobRequirementsPrompt string
)

const systemMessage = "You extract structured skill data from documents. Respond with a single JSON object and nothing else."

func buildResumeMessages(resumeText string) []llm.Message {
	prompt := strings.ReplaceAll(resumeSkillsPrompt, "{{RESUME_TEXT}}", resumeText)
	return []llm.Message{
		{Role: "system", Content: systemMessage},
		{Role: "user", Content: prompt},
	}
}

func buildJobMessages(jobTitle, jobDescription string) []llm.Message {
	prompt := strings.ReplaceAll(jobRequirementsPrompt, "{{JOB_TITLE}}", jobTitle)
	prompt = strings.ReplaceAll(prompt, "{{JOB_DESCRIPTION}}", jobDescription)
	return []llm.Message{
		{Role: "system", Content: systemMessage},
		{Role: "user", Content: prompt},
	}
}
