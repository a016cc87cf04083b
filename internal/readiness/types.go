// Package readiness scores a set of user skills against role profiles. All
// computation is pure: the same catalog and skill set always produce the same
// assessments, which is what makes caching by skill set safe.
package readiness

import (
	"errors"
	"fmt"
	"sort"

	"github.com/pathforge/rolefit/internal/catalog"
)

// MaxLevel is the highest proficiency tier the model supports. Input levels
// above it are clamped, never rejected.
const MaxLevel = 3

// ErrInvalidSkillLevel is returned for negative input levels. Levels above
// MaxLevel are clamped instead.
var ErrInvalidSkillLevel = errors.New("skill level must not be negative")

// UserSkill is one self-reported or extracted skill with a proficiency tier
// (0=none, 1=basic, 2=intermediate, 3=advanced).
type UserSkill struct {
	Skill string `json:"skill" yaml:"skill"`
	Level int    `json:"level" yaml:"level"`
}

// SkillSet maps skill identifiers to clamped proficiency levels. Skills the
// user never mentioned are simply absent and read as level 0.
type SkillSet map[string]int

// NewSkillSet builds a SkillSet from user input. Levels above MaxLevel are
// capped; negative levels fail fast with ErrInvalidSkillLevel. Duplicate
// skill entries keep the highest level.
func NewSkillSet(skills []UserSkill) (SkillSet, error) {
	set := make(SkillSet, len(skills))
	for _, s := range skills {
		if s.Level < 0 {
			return nil, fmt.Errorf("skill %q: level %d: %w", s.Skill, s.Level, ErrInvalidSkillLevel)
		}
		level := s.Level
		if level > MaxLevel {
			level = MaxLevel
		}
		if existing, ok := set[s.Skill]; !ok || level > existing {
			set[s.Skill] = level
		}
	}
	return set, nil
}

// Pairs returns the set as a slice sorted by skill name. The ordering is what
// makes cache keys canonical regardless of input order.
func (s SkillSet) Pairs() []UserSkill {
	pairs := make([]UserSkill, 0, len(s))
	for skill, level := range s {
		pairs = append(pairs, UserSkill{Skill: skill, Level: level})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Skill < pairs[j].Skill })
	return pairs
}

// MissingSkill is a requirement the user does not yet satisfy. GapDegree is
// always positive: satisfied requirements are never emitted.
type MissingSkill struct {
	Skill        string             `json:"skill"`
	CurrentLevel int                `json:"current_level"`
	TargetLevel  int                `json:"target_level"`
	GapDegree    int                `json:"gap_degree"`
	Importance   catalog.Importance `json:"importance"`
}

// RoleAssessment is the scored result for one role: a readiness score in
// [0,1], its label band, missing skills ordered by gap degree descending then
// catalog order, and up to two rendered quick-win recommendations.
type RoleAssessment struct {
	RoleName                string         `json:"role_name"`
	ReadinessScore          float64        `json:"readiness_score"`
	ReadinessLabel          string         `json:"readiness_label"`
	MissingSkills           []MissingSkill `json:"missing_skills"`
	QuickWinRecommendations []string       `json:"quick_win_recommendations"`
}
