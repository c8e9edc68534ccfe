package skillgap

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// SkillStrength is a job requirement the resume satisfies at or above the
// required level.
type SkillStrength struct {
	Skill  string `json:"skill"`
	Reason string `json:"reason"`
}

// SkillGap is a job requirement the resume misses entirely (Major) or meets
// only below the required level (Minor).
type SkillGap struct {
	Skill         string      `json:"skill"`
	RequiredLevel SkillLevel  `json:"required_level"`
	CurrentLevel  SkillLevel  `json:"current_level"`
	Priority      Priority    `json:"priority"`
	Impact        string      `json:"impact"`
	GapSeverity   GapSeverity `json:"gap_severity"`
}

// MatchResults is the raw output of the match engine, before
// recommendations and advice are attached.
type MatchResults struct {
	Strengths              []SkillStrength
	SkillGaps              []SkillGap
	MatchedSkills          int
	TotalRequiredSkills    int
	OverallMatchPercentage float64
	MatchSummary           string
}

// AnalyzeSkillMatches walks every job requirement, resolves the best
// matching resume skill, and classifies the outcome as a strength or a gap.
// Requirements are visited in sorted key order so results are reproducible.
func AnalyzeSkillMatches(resumeMap ResumeSkillMap, jobMap JobRequirementMap, jobTitle string) MatchResults {
	strengths := []SkillStrength{}
	gaps := []SkillGap{}
	matched := 0
	totalRequired := 0
	for _, req := range jobMap {
		if req.Required {
			totalRequired++
		}
	}

	for _, jobSkill := range sortedKeys(jobMap) {
		req := jobMap[jobSkill]

		resumeKey, found := FindMatchingResumeSkill(jobSkill, resumeMap)
		if !found {
			// Absent preferred skills are informational only and produce
			// no gap entry.
			if req.Required {
				gaps = append(gaps, SkillGap{
					Skill:         titleCase(jobSkill),
					RequiredLevel: req.Level,
					CurrentLevel:  LevelNone,
					Priority:      MapImportanceToPriority(req.Importance),
					Impact:        fmt.Sprintf("Required skill for %s position", jobTitle),
					GapSeverity:   SeverityMajor,
				})
			}
			continue
		}

		resumeSkill := resumeMap[resumeKey]
		if CompareSkillLevels(resumeSkill.Level, req.Level) {
			strengths = append(strengths, SkillStrength{
				Skill: titleCase(jobSkill),
				Reason: fmt.Sprintf("%s level with %d years experience meets %s requirement",
					resumeSkill.Level, resumeSkill.YearsExperience, req.Level),
			})
			if req.Required {
				matched++
			}
			continue
		}

		gaps = append(gaps, SkillGap{
			Skill:         titleCase(jobSkill),
			RequiredLevel: req.Level,
			CurrentLevel:  resumeSkill.Level,
			Priority:      MapImportanceToPriority(req.Importance),
			Impact: fmt.Sprintf("Current %s level needs improvement to %s for %s",
				resumeSkill.Level, req.Level, jobTitle),
			GapSeverity: SeverityMinor,
		})
	}

	pct := float64(matched) / float64(max(totalRequired, 1)) * 100

	return MatchResults{
		Strengths:              strengths,
		SkillGaps:              gaps,
		MatchedSkills:          matched,
		TotalRequiredSkills:    totalRequired,
		OverallMatchPercentage: pct,
		MatchSummary: fmt.Sprintf("Matched %d of %d required skills. Overall compatibility: %.1f%%",
			matched, totalRequired, pct),
	}
}

// FindMatchingResumeSkill resolves a job requirement to a resume skill key.
// Resolution order: exact key, base-skill key, then substring overlap in
// either direction (first hit in sorted key order wins).
func FindMatchingResumeSkill(jobSkill string, resumeMap ResumeSkillMap) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(jobSkill))

	if _, ok := resumeMap[key]; ok {
		return key, true
	}

	base := ExtractBaseSkill(key)
	if _, ok := resumeMap[base]; ok {
		return base, true
	}

	for _, resumeKey := range sortedResumeKeys(resumeMap) {
		if strings.Contains(resumeKey, base) || strings.Contains(base, resumeKey) {
			return resumeKey, true
		}
	}

	return "", false
}

func sortedKeys(m JobRequirementMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedResumeKeys(m ResumeSkillMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// titleCase upper-cases the first letter of each word and lower-cases the
// rest, so map keys like "aws sagemaker" render as "Aws Sagemaker".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	startOfWord := true
	for _, r := range s {
		if unicode.IsLetter(r) {
			if startOfWord {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			startOfWord = false
			continue
		}
		b.WriteRune(r)
		startOfWord = true
	}
	return b.String()
}
