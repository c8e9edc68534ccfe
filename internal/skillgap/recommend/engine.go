// Package recommend turns skill gaps into deterministic learning
// recommendations.
package recommend

import (
	"fmt"
	"strings"
)

// Gap is the minimal gap representation the engine needs. It mirrors the
// matcher's gap shape without depending on it.
type Gap struct {
	Skill    string
	Priority string
	Severity string
}

// Recommendation is a learning suggestion derived from a single skill gap.
type Recommendation struct {
	Skill                 string   `json:"skill"`
	Priority              string   `json:"priority"`
	EstimatedLearningTime string   `json:"estimated_learning_time"`
	SuggestedApproach     string   `json:"suggested_approach"`
	Resources             []string `json:"resources"`
	ImmediateActions      []string `json:"immediate_actions"`
}

const severityMajor = "Major"

// Skill domains that take longer to become productive in from scratch.
var longRampTerms = []string{"aws", "cloud", "ai", "machine learning"}

// FromGaps produces one recommendation per gap, preserving gap order.
// Resources are intentionally generic rather than skill-specific.
func FromGaps(gaps []Gap) []Recommendation {
	out := make([]Recommendation, 0, len(gaps))
	for _, gap := range gaps {
		out = append(out, Recommendation{
			Skill:                 gap.Skill,
			Priority:              gap.Priority,
			EstimatedLearningTime: estimateLearningTime(gap),
			SuggestedApproach:     fmt.Sprintf("Focus on %s fundamentals and practical application", gap.Skill),
			Resources: []string{
				"Online courses",
				"Official documentation",
				"Hands-on projects",
			},
			ImmediateActions: []string{
				fmt.Sprintf("Start with %s basics and practice", gap.Skill),
			},
		})
	}
	return out
}

func estimateLearningTime(gap Gap) string {
	if gap.Severity != severityMajor {
		return "2-4 weeks"
	}
	lower := strings.ToLower(gap.Skill)
	for _, term := range longRampTerms {
		if strings.Contains(lower, term) {
			return "6-12 weeks"
		}
	}
	return "4-8 weeks"
}
