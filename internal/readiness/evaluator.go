package readiness

import (
	"math"
	"sort"

	"github.com/pathforge/rolefit/internal/catalog"
)

// Weights controls how requirement importance tiers contribute to the
// readiness score. Must-have gaps always weigh more than nice-to-haves.
type Weights struct {
	Must       float64
	NiceToHave float64
}

// DefaultWeights matches the catalog's scoring model: a nice-to-have counts
// half as much as a must-have.
var DefaultWeights = Weights{Must: 1.0, NiceToHave: 0.5}

func (w Weights) of(importance catalog.Importance) float64 {
	if importance == catalog.ImportanceMust {
		return w.Must
	}
	return w.NiceToHave
}

// Evaluate scores one role against a skill set. Each requirement earns full
// weight when the user's level meets or exceeds the target, and partial
// credit level/target otherwise, in which case the requirement is also
// emitted as a MissingSkill. The score is the weighted credit over the
// weighted maximum, clamped to [0,1] and rounded to 3 decimals so repeated
// runs and cache keys stay stable.
func Evaluate(role catalog.Role, set SkillSet, weights Weights) (float64, []MissingSkill) {
	var earned, possible float64
	var missing []MissingSkill

	for _, req := range role.Requirements {
		w := weights.of(req.Importance)
		possible += w

		level := set[req.Skill]
		if level > MaxLevel {
			level = MaxLevel
		}
		if level >= req.TargetLevel {
			earned += w
			continue
		}

		earned += w * float64(level) / float64(req.TargetLevel)
		missing = append(missing, MissingSkill{
			Skill:        req.Skill,
			CurrentLevel: level,
			TargetLevel:  req.TargetLevel,
			GapDegree:    req.TargetLevel - level,
			Importance:   req.Importance,
		})
	}

	// Stable sort keeps catalog declaration order within equal gaps.
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].GapDegree > missing[j].GapDegree
	})

	score := 1.0
	if possible > 0 {
		score = earned / possible
	}
	score = math.Min(math.Max(score, 0), 1)
	return round3(score), missing
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
