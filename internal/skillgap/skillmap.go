package skillgap

import "strings"

// TechnicalSkill is a detailed resume skill as produced by upstream
// extraction: named, leveled, with supporting evidence.
type TechnicalSkill struct {
	Name            string     `json:"name"`
	Level           SkillLevel `json:"level"`
	YearsExperience int        `json:"years_experience"`
	Evidence        string     `json:"evidence,omitempty"`
}

// SkillRequirement is a job-side requirement as produced by upstream
// extraction.
type SkillRequirement struct {
	Name       string        `json:"name"`
	Level      SkillLevel    `json:"level"`
	Category   SkillCategory `json:"category,omitempty"`
	Importance Importance    `json:"importance"`
}

// ResumeSkillData is the structured resume-side extraction output. Missing
// fields simply decode to their zero values; the builders tolerate sparse
// input.
type ResumeSkillData struct {
	TechnicalSkills      []TechnicalSkill `json:"technical_skills"`
	SoftSkills           []string         `json:"soft_skills"`
	Certifications       []string         `json:"certifications"`
	ProgrammingLanguages []string         `json:"programming_languages"`
	Frameworks           []string         `json:"frameworks"`
	Tools                []string         `json:"tools"`
	Domains              []string         `json:"domains"`
	Education            []string         `json:"education"`
	TotalExperienceYears int              `json:"total_experience_years"`
}

// JobSkillData is the structured job-side extraction output.
type JobSkillData struct {
	RequiredSkills       []SkillRequirement `json:"required_skills"`
	PreferredSkills      []SkillRequirement `json:"preferred_skills"`
	ProgrammingLanguages []string           `json:"programming_languages"`
	Frameworks           []string           `json:"frameworks"`
	Tools                []string           `json:"tools"`
	CloudPlatforms       []string           `json:"cloud_platforms"`
	Databases            []string           `json:"databases"`
	SoftSkills           []string           `json:"soft_skills"`
	Certifications       []string           `json:"certifications"`
	ExperienceRequired   string             `json:"experience_required"`
	EducationRequired    string             `json:"education_required"`
	SeniorityLevel       string             `json:"seniority_level"`
}

// IsEmpty reports whether no usable resume skills were extracted.
func (d ResumeSkillData) IsEmpty() bool {
	return len(d.TechnicalSkills) == 0 &&
		len(d.ProgrammingLanguages) == 0 &&
		len(d.Frameworks) == 0 &&
		len(d.Tools) == 0 &&
		len(d.Domains) == 0
}

// IsEmpty reports whether no usable job requirements were extracted.
func (d JobSkillData) IsEmpty() bool {
	return len(d.RequiredSkills) == 0 &&
		len(d.PreferredSkills) == 0 &&
		len(d.ProgrammingLanguages) == 0 &&
		len(d.Frameworks) == 0 &&
		len(d.Tools) == 0 &&
		len(d.CloudPlatforms) == 0 &&
		len(d.Databases) == 0
}

// ResumeSkillEntry is one normalized resume skill.
type ResumeSkillEntry struct {
	Level           SkillLevel
	YearsExperience int
	Evidence        string
}

// JobRequirementEntry is one normalized job requirement. Required entries
// count toward the match-percentage denominator; preferred ones do not.
type JobRequirementEntry struct {
	Level      SkillLevel
	Importance Importance
	Required   bool
}

// ResumeSkillMap indexes resume skills by lower-cased skill key.
type ResumeSkillMap map[string]ResumeSkillEntry

// JobRequirementMap indexes job requirements by lower-cased skill key.
type JobRequirementMap map[string]JobRequirementEntry

// BuildResumeSkillMap folds the resume-side extraction output into a uniform
// skill map. Typed technical skills are inserted first and always win; flat
// category lists only fill keys that are still absent, under a conservative
// Intermediate/1-year default so plain mentions are not scored as zero
// exposure.
func BuildResumeSkillMap(data ResumeSkillData) ResumeSkillMap {
	out := make(ResumeSkillMap, len(data.TechnicalSkills))

	for _, skill := range data.TechnicalSkills {
		key := strings.ToLower(strings.TrimSpace(skill.Name))
		if key == "" {
			continue
		}
		level := skill.Level
		if level == "" {
			level = LevelEntry
		}
		years := skill.YearsExperience
		if years < 0 {
			years = 0
		}
		out[key] = ResumeSkillEntry{
			Level:           level,
			YearsExperience: years,
			Evidence:        skill.Evidence,
		}
	}

	flatLists := [][]string{
		data.ProgrammingLanguages,
		data.Frameworks,
		data.Tools,
		data.Domains,
	}
	for _, list := range flatLists {
		for _, name := range list {
			key := strings.ToLower(strings.TrimSpace(name))
			if key == "" {
				continue
			}
			if _, exists := out[key]; exists {
				continue
			}
			out[key] = ResumeSkillEntry{
				Level:           LevelIntermediate,
				YearsExperience: 1,
				Evidence:        "Listed in resume",
			}
		}
	}

	return out
}

// BuildJobRequirementMap folds the job-side extraction output into a uniform
// requirement map. Precedence: explicit required skills, then preferred
// skills, then flat category lists. Flat entries also insert their base
// skill under the same default so compound names stay matchable.
func BuildJobRequirementMap(data JobSkillData) JobRequirementMap {
	out := make(JobRequirementMap, len(data.RequiredSkills)+len(data.PreferredSkills))

	for _, req := range data.RequiredSkills {
		key := strings.ToLower(strings.TrimSpace(req.Name))
		if key == "" {
			continue
		}
		level := req.Level
		if level == "" {
			level = LevelIntermediate
		}
		importance := req.Importance
		if importance == "" {
			importance = ImportanceMedium
		}
		out[key] = JobRequirementEntry{
			Level:      level,
			Importance: importance,
			Required:   true,
		}
	}

	for _, pref := range data.PreferredSkills {
		key := strings.ToLower(strings.TrimSpace(pref.Name))
		if key == "" {
			continue
		}
		if _, exists := out[key]; exists {
			continue
		}
		level := pref.Level
		if level == "" {
			level = LevelIntermediate
		}
		importance := pref.Importance
		if importance == "" {
			importance = ImportanceLow
		}
		out[key] = JobRequirementEntry{
			Level:      level,
			Importance: importance,
			Required:   false,
		}
	}

	flatDefault := JobRequirementEntry{
		Level:      LevelIntermediate,
		Importance: ImportanceMedium,
		Required:   true,
	}
	flatLists := [][]string{
		data.ProgrammingLanguages,
		data.Frameworks,
		data.Tools,
		data.CloudPlatforms,
		data.Databases,
	}
	for _, list := range flatLists {
		for _, name := range list {
			key := strings.ToLower(strings.TrimSpace(name))
			if key == "" {
				continue
			}
			if _, exists := out[key]; exists {
				continue
			}
			out[key] = flatDefault

			base := ExtractBaseSkill(key)
			if base == key {
				continue
			}
			if _, exists := out[base]; !exists {
				out[base] = flatDefault
			}
		}
	}

	return out
}
