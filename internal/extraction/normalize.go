package extraction

import "strings"

// skillAliases maps common skill name variants to canonical names. Both
// extractors run every skill through this table so downstream matching can
// rely on exact string equality.
var skillAliases = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"py":         "Python",
	"python":     "Python",
	"c#":         "C#",
	"csharp":     "C#",
	".net":       ".NET",
	"dotnet":     ".NET",

	"react.js": "React",
	"reactjs":  "React",
	"react":    "React",
	"vue.js":   "Vue",
	"vuejs":    "Vue",
	"node.js":  "Node.js",
	"nodejs":   "Node.js",
	"node":     "Node.js",
	"fastapi":  "FastAPI",

	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"psql":       "PostgreSQL",
	"mongo":      "MongoDB",
	"mongodb":    "MongoDB",

	"amazon web services":   "AWS",
	"aws":                   "AWS",
	"google cloud":          "GCP",
	"google cloud platform": "GCP",
	"gcp":                   "GCP",
	"microsoft azure":       "Azure",
	"azure":                 "Azure",

	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"docker":     "Docker",
	"terraform":  "Terraform",
	"ci/cd":      "CI/CD",
	"cicd":       "CI/CD",
}

// NormalizeSkillName normalizes a skill name to its canonical form.
func NormalizeSkillName(name string) string {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return ""
	}

	lower := strings.ToLower(normalized)
	if canonical, ok := skillAliases[lower]; ok {
		return canonical
	}

	// All-caps tokens are treated as acronyms and kept as-is (SQL, API, AWS).
	if normalized == strings.ToUpper(normalized) {
		return normalized
	}

	// Mixed case is assumed intentional (FastAPI, PyTorch).
	if normalized != strings.ToLower(normalized) {
		return normalized
	}

	// All-lowercase single words get a leading capital.
	if !strings.Contains(normalized, " ") {
		return strings.ToUpper(normalized[:1]) + normalized[1:]
	}

	return normalized
}

// NormalizeSkills normalizes a list of skill names, dropping empties and
// deduplicating while preserving first-seen order.
func NormalizeSkills(names []string) []string {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		canonical := NormalizeSkillName(name)
		if canonical == "" || seen[canonical] {
			continue
		}
		normalized = append(normalized, canonical)
		seen[canonical] = true
	}

	return normalized
}
