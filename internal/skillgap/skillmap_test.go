package skillgap

import "testing"

func TestBuildResumeSkillMapTypedEntriesWin(t *testing.T) {
	data := ResumeSkillData{
		TechnicalSkills: []TechnicalSkill{
			{Name: "Python", Level: LevelAdvanced, YearsExperience: 5, Evidence: "Built data pipelines"},
		},
		// Flat list repeats the typed skill; it must not overwrite.
		ProgrammingLanguages: []string{"python", "Go"},
		Tools:                []string{"docker"},
	}

	m := BuildResumeSkillMap(data)

	py, ok := m["python"]
	if !ok {
		t.Fatalf("expected python key in resume map")
	}
	if py.Level != LevelAdvanced || py.YearsExperience != 5 {
		t.Fatalf("typed entry overwritten by flat default: %+v", py)
	}

	goSkill, ok := m["go"]
	if !ok {
		t.Fatalf("expected go key from flat list")
	}
	if goSkill.Level != LevelIntermediate || goSkill.YearsExperience != 1 || goSkill.Evidence != "Listed in resume" {
		t.Fatalf("flat-list default wrong: %+v", goSkill)
	}

	if _, ok := m["docker"]; !ok {
		t.Fatalf("expected docker key from tools list")
	}
}

func TestBuildResumeSkillMapDefaults(t *testing.T) {
	data := ResumeSkillData{
		TechnicalSkills: []TechnicalSkill{
			{Name: "Rust"},                              // empty level defaults to Entry
			{Name: "C++", YearsExperience: -3},          // negative years clamp to 0
			{Name: ""},                                  // nameless entries are dropped
			{Name: "  SQL  ", Level: LevelIntermediate}, // keys are trimmed + lower-cased
		},
	}

	m := BuildResumeSkillMap(data)

	if got := m["rust"].Level; got != LevelEntry {
		t.Fatalf("empty level = %q, want Entry", got)
	}
	if got := m["c++"].YearsExperience; got != 0 {
		t.Fatalf("negative years = %d, want 0", got)
	}
	if _, ok := m[""]; ok {
		t.Fatalf("nameless entry should be dropped")
	}
	if _, ok := m["sql"]; !ok {
		t.Fatalf("expected trimmed lower-cased key sql")
	}
}

func TestBuildJobRequirementMapPrecedence(t *testing.T) {
	data := JobSkillData{
		RequiredSkills: []SkillRequirement{
			{Name: "Python", Level: LevelSenior, Importance: ImportanceCritical},
		},
		PreferredSkills: []SkillRequirement{
			// Already present as required; must not demote it.
			{Name: "python", Level: LevelEntry, Importance: ImportanceLow},
			{Name: "GraphQL", Level: LevelIntermediate, Importance: ImportanceLow},
		},
		// Flat list repeats python; must not overwrite either.
		ProgrammingLanguages: []string{"python", "go"},
	}

	m := BuildJobRequirementMap(data)

	py := m["python"]
	if !py.Required || py.Level != LevelSenior || py.Importance != ImportanceCritical {
		t.Fatalf("required entry lost precedence: %+v", py)
	}

	gql := m["graphql"]
	if gql.Required {
		t.Fatalf("preferred skill marked required: %+v", gql)
	}

	goReq := m["go"]
	if !goReq.Required || goReq.Level != LevelIntermediate || goReq.Importance != ImportanceMedium {
		t.Fatalf("flat-list default wrong: %+v", goReq)
	}
}

func TestBuildJobRequirementMapInsertsBaseSkill(t *testing.T) {
	data := JobSkillData{
		CloudPlatforms: []string{"AWS SageMaker"},
	}

	m := BuildJobRequirementMap(data)

	if _, ok := m["aws sagemaker"]; !ok {
		t.Fatalf("expected compound key aws sagemaker")
	}
	base, ok := m["aws"]
	if !ok {
		t.Fatalf("expected base key aws inserted alongside compound skill")
	}
	if !base.Required || base.Level != LevelIntermediate || base.Importance != ImportanceMedium {
		t.Fatalf("base skill default wrong: %+v", base)
	}
}

func TestSkillDataIsEmpty(t *testing.T) {
	if !(ResumeSkillData{}).IsEmpty() {
		t.Fatalf("zero ResumeSkillData should be empty")
	}
	if !(JobSkillData{}).IsEmpty() {
		t.Fatalf("zero JobSkillData should be empty")
	}
	if (ResumeSkillData{Tools: []string{"git"}}).IsEmpty() {
		t.Fatalf("resume data with tools should not be empty")
	}
	if (JobSkillData{Databases: []string{"postgres"}}).IsEmpty() {
		t.Fatalf("job data with databases should not be empty")
	}
	// Soft skills alone do not make the data analyzable.
	if !(ResumeSkillData{SoftSkills: []string{"communication"}}).IsEmpty() {
		t.Fatalf("soft skills alone should still count as empty")
	}
}
