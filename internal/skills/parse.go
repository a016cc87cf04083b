package skills

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pathforge/rolefit/internal/readiness"
)

// ParsePairs parses CLI skill flags of the form "name=level". A bare "name"
// with no level is allowed and gets defaultLevel, which is how raw skill
// lists from extractors enter the engine.
func ParsePairs(args []string, defaultLevel int) ([]readiness.UserSkill, error) {
	parsed := make([]readiness.UserSkill, 0, len(args))
	for _, arg := range args {
		name, levelText, hasLevel := strings.Cut(arg, "=")
		skill := Normalize(name)
		if skill == "" {
			return nil, fmt.Errorf("empty skill name in %q", arg)
		}

		level := defaultLevel
		if hasLevel {
			var err error
			level, err = strconv.Atoi(strings.TrimSpace(levelText))
			if err != nil {
				return nil, fmt.Errorf("skill %q: level %q is not an integer", skill, levelText)
			}
		}
		parsed = append(parsed, readiness.UserSkill{Skill: skill, Level: level})
	}
	return parsed, nil
}

type skillsFile struct {
	Skills []readiness.UserSkill `yaml:"skills"`
}

// LoadFile reads a YAML skills file of the form:
//
//	skills:
//	  - skill: python
//	    level: 2
//
// Skill names are normalized; levels are validated later by the engine.
func LoadFile(path string) ([]readiness.UserSkill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading skills file: %w", err)
	}

	var doc skillsFile
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parsing skills file %s: %w", path, err)
	}

	for i := range doc.Skills {
		doc.Skills[i].Skill = Normalize(doc.Skills[i].Skill)
	}
	return doc.Skills, nil
}
