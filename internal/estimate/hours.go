// Package estimate provides deterministic effort estimates for skills: a
// fixed hours-per-category table used by recommendation fallbacks and
// learning-plan time aggregation.
package estimate

import "strings"

// DefaultHours is the estimate for skills outside every known category.
const DefaultHours = 10

// Per-category hour estimates. Membership is a fixed table, not a heuristic,
// so estimates never change between runs.
var categoryHours = []struct {
	hours  int
	skills []string
}{
	{15, []string{
		"python", "javascript", "java", "typescript", "csharp", "cpp", "go",
		"ruby", "php", "rust", "kotlin", "swift", "scala", "r",
	}},
	{12, []string{
		"sql", "postgresql", "mysql", "sqlite", "mongodb", "redis", "nosql",
		"database-design",
	}},
	{6, []string{
		"git", "github", "jira", "jenkins", "vim", "vscode", "confluence",
	}},
	{18, []string{
		"machine-learning", "deep-learning", "statistics", "data-science",
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
		"data-visualization", "nlp",
	}},
	{8, []string{
		"html", "css", "bootstrap", "tailwind", "sass", "markdown", "xml", "json",
	}},
	{10, []string{
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ci-cd",
		"linux", "cloud-computing",
	}},
}

var hoursBySkill = buildHoursIndex()

func buildHoursIndex() map[string]int {
	index := make(map[string]int)
	for _, cat := range categoryHours {
		for _, skill := range cat.skills {
			index[skill] = cat.hours
		}
	}
	return index
}

// SkillHours returns the estimated hours to close a typical gap in the given
// skill. Unrecognized skills get DefaultHours.
func SkillHours(skill string) int {
	if hours, ok := hoursBySkill[strings.ToLower(skill)]; ok {
		return hours
	}
	return DefaultHours
}
