package skillgap

import "testing"

func TestCompareSkillLevelsMonotonicity(t *testing.T) {
	ranked := map[SkillLevel]int{
		"entry":        1,
		"Entry":        1,
		"BEGINNER":     1,
		"basic":        1,
		"Intermediate": 2,
		"intermediate": 2,
		"Advanced":     3,
		"senior":       4,
		"Senior":       4,
		"SENIOR":       4,
		"expert":       4,
		"Expert":       4,
	}

	for a, rankA := range ranked {
		for b, rankB := range ranked {
			got := CompareSkillLevels(a, b)
			want := rankA >= rankB
			if got != want {
				t.Fatalf("CompareSkillLevels(%q, %q) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestCompareSkillLevelsUnknownDefaults(t *testing.T) {
	cases := []struct {
		name     string
		resume   SkillLevel
		required SkillLevel
		want     bool
	}{
		// Unknown resume level ranks 1 and fails an Intermediate ask.
		{name: "unknown_resume_vs_intermediate", resume: "wizard", required: LevelIntermediate, want: false},
		{name: "unknown_resume_vs_entry", resume: "wizard", required: LevelEntry, want: true},
		// Unknown required level ranks 2, so Intermediate satisfies it but
		// Entry does not.
		{name: "intermediate_vs_unknown_required", resume: LevelIntermediate, required: "ninja", want: true},
		{name: "entry_vs_unknown_required", resume: LevelEntry, required: "ninja", want: false},
		{name: "both_unknown", resume: "wizard", required: "ninja", want: false},
		{name: "empty_strings", resume: "", required: "", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CompareSkillLevels(tc.resume, tc.required); got != tc.want {
				t.Fatalf("CompareSkillLevels(%q, %q) = %v, want %v", tc.resume, tc.required, got, tc.want)
			}
		})
	}
}

func TestMapImportanceToPriorityTotality(t *testing.T) {
	cases := []struct {
		importance Importance
		want       Priority
	}{
		{ImportanceCritical, PriorityHigh},
		{"Critical", PriorityHigh},
		{ImportanceHigh, PriorityHigh},
		{"HIGH", PriorityHigh},
		{ImportanceMedium, PriorityMedium},
		{"moderate", PriorityMedium},
		{"Moderate", PriorityMedium},
		{ImportanceLow, PriorityLow},
		{"nice-to-have", PriorityLow},
		{"", PriorityLow},
		{"  high  ", PriorityHigh},
	}

	for _, tc := range cases {
		got := MapImportanceToPriority(tc.importance)
		if got != tc.want {
			t.Fatalf("MapImportanceToPriority(%q) = %q, want %q", tc.importance, got, tc.want)
		}
		switch got {
		case PriorityHigh, PriorityMedium, PriorityLow:
		default:
			t.Fatalf("MapImportanceToPriority(%q) returned out-of-domain value %q", tc.importance, got)
		}
	}
}
