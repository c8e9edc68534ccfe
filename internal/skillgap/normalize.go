package skillgap

import "strings"

// baseSkillMappings collapses well-known compound or vendor-qualified names
// to the base skill used as the matching key. Loaded once, read-only.
var baseSkillMappings = map[string]string{
	"aws sagemaker": "aws",
	"aws bedrock":   "aws",
	"aws lambda":    "aws",
	"aws ec2":       "aws",
	"aws s3":        "aws",
	"aws rds":       "aws",
	"node.js":       "nodejs",
	"react.js":      "react",
	"vue.js":        "vue",
	"angular.js":    "angular",
}

// platformVendors are first words that identify a compound skill whose base
// is the platform itself (e.g. "azure functions" -> "azure").
var platformVendors = map[string]bool{
	"aws":       true,
	"azure":     true,
	"google":    true,
	"microsoft": true,
	"oracle":    true,
}

// ExtractBaseSkill returns the canonical base of a skill name. The result is
// always lower-cased and trimmed, and the function is a fixed point:
// ExtractBaseSkill(ExtractBaseSkill(x)) == ExtractBaseSkill(x).
func ExtractBaseSkill(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))

	if base, ok := baseSkillMappings[lower]; ok {
		return base
	}

	words := strings.Fields(lower)
	if len(words) > 1 && platformVendors[words[0]] {
		return words[0]
	}

	return lower
}
