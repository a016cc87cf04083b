package readiness

import (
	"sort"

	"github.com/pathforge/rolefit/internal/catalog"
)

// DefaultTopN is how many roles an assessment returns.
const DefaultTopN = 5

// Rank evaluates every role in the catalog and returns the topN best matches
// sorted by readiness score descending. The sort is stable, so roles with
// equal scores keep catalog declaration order. Every role is scored; there is
// no early termination, since the top N cannot be known without all scores.
// Quick-win recommendations are left empty here and filled in by the caller.
func Rank(cat *catalog.Catalog, set SkillSet, weights Weights, topN int) []RoleAssessment {
	assessments := make([]RoleAssessment, 0, len(cat.Roles))
	for _, role := range cat.Roles {
		score, missing := Evaluate(role, set, weights)
		assessments = append(assessments, RoleAssessment{
			RoleName:       role.Name,
			ReadinessScore: score,
			ReadinessLabel: LabelForScore(score),
			MissingSkills:  missing,
		})
	}

	sort.SliceStable(assessments, func(i, j int) bool {
		return assessments[i].ReadinessScore > assessments[j].ReadinessScore
	})

	if topN > 0 && len(assessments) > topN {
		assessments = assessments[:topN]
	}
	return assessments
}
