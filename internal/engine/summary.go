package engine

import (
	"fmt"
	"strings"

	"github.com/pathforge/rolefit/internal/catalog"
	"github.com/pathforge/rolefit/internal/readiness"
)

// Summary renders a one-sentence plain-language summary of a role
// assessment for display layers. Deterministic: built purely from the
// assessment, no external calls.
func Summary(assessment readiness.RoleAssessment) string {
	percent := int(assessment.ReadinessScore * 100)
	role := titleCase(assessment.RoleName)

	if len(assessment.MissingSkills) == 0 {
		return fmt.Sprintf("You are %d%% ready for %s — no skill gaps against this profile.", percent, role)
	}

	focus := leadingGaps(assessment.MissingSkills, 2)
	return fmt.Sprintf("You are %d%% ready for %s (%s); focus on %s first.",
		percent, role, strings.ToLower(assessment.ReadinessLabel), strings.Join(focus, " and "))
}

// leadingGaps names the most critical gaps: must-have skills in gap order,
// topped up from nice-to-haves only when there are too few.
func leadingGaps(missing []readiness.MissingSkill, n int) []string {
	var names []string
	for _, m := range missing {
		if m.Importance == catalog.ImportanceMust {
			names = append(names, m.Skill)
		}
	}
	for _, m := range missing {
		if len(names) >= n {
			break
		}
		if m.Importance != catalog.ImportanceMust {
			names = append(names, m.Skill)
		}
	}
	if len(names) > n {
		names = names[:n]
	}
	return names
}

func titleCase(roleName string) string {
	words := strings.Split(roleName, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
