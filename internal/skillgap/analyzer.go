// Package skillgap implements the deterministic skill-matching and
// gap-analysis engine: it compares two independently extracted skill
// datasets and produces a reproducible match report with strengths, gaps,
// and learning recommendations.
package skillgap

import (
	"runtime/debug"

	"jobmatch-backend/internal/shared/telemetry"
	"jobmatch-backend/internal/skillgap/recommend"
)

// AnalyzeSkillGap is the single entry point for skill-gap analysis. Empty
// input on either side is a hard error; any internal fault is swallowed and
// replaced with a fixed degraded report so callers always receive a
// well-formed result.
func AnalyzeSkillGap(resumeData ResumeSkillData, jobData JobSkillData, jobTitle string) (report MatchReport, err error) {
	if resumeData.IsEmpty() {
		return MatchReport{}, ErrEmptyResumeSkills
	}
	if jobData.IsEmpty() {
		return MatchReport{}, ErrEmptyJobSkills
	}

	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("skillgap.analysis_panic", map[string]any{
				"job_title": jobTitle,
				"error":     rec,
				"stack":     string(debug.Stack()),
			})
			report = DegradedReport()
			err = nil
		}
	}()

	resumeMap := BuildResumeSkillMap(resumeData)
	jobMap := BuildJobRequirementMap(jobData)

	results := AnalyzeSkillMatches(resumeMap, jobMap, jobTitle)
	recommendations := recommend.FromGaps(toRecommendGaps(results.SkillGaps))

	return AssembleReport(results, recommendations, jobTitle), nil
}

// DegradedReport is the fixed fallback substituted for any internal
// computation failure. Callers always receive a well-formed report when
// usable input exists.
func DegradedReport() MatchReport {
	return MatchReport{
		OverallMatchPercentage:  50.0,
		MatchSummary:            "Analysis completed with limitations due to processing error",
		Strengths:               []SkillStrength{},
		SkillGaps:               []SkillGap{},
		LearningRecommendations: []recommend.Recommendation{},
		RecommendedNextSteps: []string{
			"Review job requirements manually and identify skills to develop",
		},
		ApplicationAdvice: "Consider your experience and skills against the job requirements",
	}
}

func toRecommendGaps(gaps []SkillGap) []recommend.Gap {
	out := make([]recommend.Gap, 0, len(gaps))
	for _, gap := range gaps {
		out = append(out, recommend.Gap{
			Skill:    gap.Skill,
			Priority: string(gap.Priority),
			Severity: string(gap.GapSeverity),
		})
	}
	return out
}
