package skillgap

import (
	"fmt"
	"strings"

	"jobmatch-backend/internal/skillgap/recommend"
)

// MatchReport is the terminal aggregate returned to callers. It is built
// fresh per analysis and never persisted by this package.
type MatchReport struct {
	OverallMatchPercentage  float64                    `json:"overall_match_percentage"`
	MatchSummary            string                     `json:"match_summary"`
	Strengths               []SkillStrength            `json:"strengths"`
	SkillGaps               []SkillGap                 `json:"skill_gaps"`
	LearningRecommendations []recommend.Recommendation `json:"learning_recommendations"`
	RecommendedNextSteps    []string                   `json:"recommended_next_steps"`
	ApplicationAdvice       string                     `json:"application_advice"`
}

// RecommendedNextSteps lists High-priority gap skills first, then
// Medium-priority ones. Low-priority gaps never surface here.
func RecommendedNextSteps(gaps []SkillGap) []string {
	steps := []string{}

	if high := gapSkillsWithPriority(gaps, PriorityHigh); len(high) > 0 {
		steps = append(steps, "Priority learning: "+strings.Join(high, ", "))
	}
	if medium := gapSkillsWithPriority(gaps, PriorityMedium); len(medium) > 0 {
		steps = append(steps, "Secondary focus: "+strings.Join(medium, ", "))
	}

	return steps
}

func gapSkillsWithPriority(gaps []SkillGap, priority Priority) []string {
	var out []string
	for _, gap := range gaps {
		if gap.Priority == priority {
			out = append(out, gap.Skill)
		}
	}
	return out
}

// ApplicationAdvice bands the match percentage into a fixed advice message.
func ApplicationAdvice(pct float64, jobTitle string) string {
	switch {
	case pct >= 80:
		return fmt.Sprintf("Excellent %.0f%% match! You're well-qualified for this %s position. Highlight your relevant experience and address any minor skill gaps.", pct, jobTitle)
	case pct >= 60:
		return fmt.Sprintf("Good %.0f%% match for this %s position. Emphasize your transferable skills and create a development plan for missing competencies.", pct, jobTitle)
	case pct >= 40:
		return fmt.Sprintf("Moderate %.0f%% match. Consider developing key missing skills before applying, but you have a solid foundation to build upon.", pct)
	default:
		return fmt.Sprintf("Limited %.0f%% match. Focus on building fundamental skills required for this %s role before applying.", pct, jobTitle)
	}
}

// AssembleReport combines match results with recommendations and advice into
// the final report.
func AssembleReport(results MatchResults, recommendations []recommend.Recommendation, jobTitle string) MatchReport {
	return MatchReport{
		OverallMatchPercentage:  results.OverallMatchPercentage,
		MatchSummary:            results.MatchSummary,
		Strengths:               results.Strengths,
		SkillGaps:               results.SkillGaps,
		LearningRecommendations: recommendations,
		RecommendedNextSteps:    RecommendedNextSteps(results.SkillGaps),
		ApplicationAdvice:       ApplicationAdvice(results.OverallMatchPercentage, jobTitle),
	}
}
