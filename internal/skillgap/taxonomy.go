package skillgap

import "strings"

// SkillLevel is a proficiency level attached to a resume skill or a job
// requirement. Levels form a total order via rank.
type SkillLevel string

const (
	LevelEntry        SkillLevel = "Entry"
	LevelBeginner     SkillLevel = "Beginner"
	LevelBasic        SkillLevel = "Basic"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelSenior       SkillLevel = "Senior"
	LevelExpert       SkillLevel = "Expert"
	LevelNone         SkillLevel = "None"
)

// Priority classifies how urgently a gap should be addressed.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Importance is the job-side weight of a requirement as extracted upstream.
type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
	ImportanceLow      Importance = "low"
)

// GapSeverity distinguishes a missing skill from an underleveled one.
type GapSeverity string

const (
	SeverityMajor GapSeverity = "Major"
	SeverityMinor GapSeverity = "Minor"
)

// SkillCategory labels a job requirement by kind.
type SkillCategory string

const (
	CategoryProgrammingLanguage SkillCategory = "programming_language"
	CategoryFramework           SkillCategory = "framework"
	CategoryTool                SkillCategory = "tool"
	CategoryCloudPlatform       SkillCategory = "cloud_platform"
	CategoryDatabase            SkillCategory = "database"
	CategorySoftSkill           SkillCategory = "soft_skill"
	CategoryDomain              SkillCategory = "domain"
	CategoryCertification       SkillCategory = "certification"
	CategoryOther               SkillCategory = "other"
)

var levelRanks = map[string]int{
	"entry":        1,
	"beginner":     1,
	"basic":        1,
	"intermediate": 2,
	"advanced":     3,
	"senior":       4,
	"expert":       4,
}

const (
	// Unknown level tokens rank differently per side. A resume claiming an
	// unrecognized level is treated as entry-level; a job asking for one is
	// treated as intermediate. The asymmetry is intentional: changing it
	// silently shifts match percentages.
	unknownResumeRank   = 1
	unknownRequiredRank = 2
)

func resumeLevelRank(level SkillLevel) int {
	if rank, ok := levelRanks[strings.ToLower(strings.TrimSpace(string(level)))]; ok {
		return rank
	}
	return unknownResumeRank
}

func requiredLevelRank(level SkillLevel) int {
	if rank, ok := levelRanks[strings.ToLower(strings.TrimSpace(string(level)))]; ok {
		return rank
	}
	return unknownRequiredRank
}

// CompareSkillLevels reports whether a resume-side level satisfies a
// job-side requirement.
func CompareSkillLevels(resumeLevel, requiredLevel SkillLevel) bool {
	return resumeLevelRank(resumeLevel) >= requiredLevelRank(requiredLevel)
}

// MapImportanceToPriority converts a job requirement's importance into a gap
// priority. Unrecognized values map to Low, never to an error.
func MapImportanceToPriority(importance Importance) Priority {
	switch strings.ToLower(strings.TrimSpace(string(importance))) {
	case "critical", "high":
		return PriorityHigh
	case "medium", "moderate":
		return PriorityMedium
	default:
		return PriorityLow
	}
}
