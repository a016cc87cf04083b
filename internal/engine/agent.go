// Package engine wires the catalog, gap scoring, recommendation selection,
// and the assessment cache into the single entry point callers use.
package engine

import (
	"github.com/pathforge/rolefit/internal/cache"
	"github.com/pathforge/rolefit/internal/catalog"
	"github.com/pathforge/rolefit/internal/readiness"
	"github.com/pathforge/rolefit/internal/recommend"
)

// DefaultRawSkillLevel is the proficiency assumed for skills supplied without
// a level, e.g. bare names from an upstream extractor.
const DefaultRawSkillLevel = 2

// Agent assesses skill sets against an immutable catalog. It owns the
// assessment cache; everything else it touches is read-only, so a single
// Agent is safe for concurrent use.
type Agent struct {
	catalog  *catalog.Catalog
	cache    *cache.Store
	weights  readiness.Weights
	topN     int
	rawLevel int
}

// Option customizes an Agent.
type Option func(*Agent)

// WithWeights overrides the importance weighting used for scoring.
func WithWeights(w readiness.Weights) Option {
	return func(a *Agent) { a.weights = w }
}

// WithTopN overrides how many roles an assessment returns.
func WithTopN(n int) Option {
	return func(a *Agent) { a.topN = n }
}

// WithRawSkillLevel overrides the level assigned to bare skill names.
func WithRawSkillLevel(level int) Option {
	return func(a *Agent) { a.rawLevel = level }
}

// New creates an Agent over a loaded catalog.
func New(cat *catalog.Catalog, opts ...Option) *Agent {
	a := &Agent{
		catalog:  cat,
		cache:    cache.NewStore(),
		weights:  readiness.DefaultWeights,
		topN:     readiness.DefaultTopN,
		rawLevel: DefaultRawSkillLevel,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assess scores the skill set against every catalog role and returns the top
// matches, each with its quick-win recommendations filled in. Results are
// cached by the canonical form of the skill set; forceRefresh recomputes but
// writes back under the same key.
func (a *Agent) Assess(userSkills []readiness.UserSkill, forceRefresh bool) ([]readiness.RoleAssessment, error) {
	set, err := readiness.NewSkillSet(userSkills)
	if err != nil {
		return nil, err
	}

	key := cache.KeyFor(set)
	result := a.cache.GetOrCompute(key, forceRefresh, func() []readiness.RoleAssessment {
		return a.assess(set)
	})
	return result, nil
}

// AssessRawSkills assesses bare skill names, assigning each the agent's raw
// skill level.
func (a *Agent) AssessRawSkills(names []string, forceRefresh bool) ([]readiness.RoleAssessment, error) {
	userSkills := make([]readiness.UserSkill, len(names))
	for i, name := range names {
		userSkills[i] = readiness.UserSkill{Skill: name, Level: a.rawLevel}
	}
	return a.Assess(userSkills, forceRefresh)
}

// AssessRole scores a single named role. Unknown role names are an error, not
// an empty assessment.
func (a *Agent) AssessRole(roleName string, userSkills []readiness.UserSkill) (readiness.RoleAssessment, error) {
	role, err := a.catalog.Role(roleName)
	if err != nil {
		return readiness.RoleAssessment{}, err
	}

	set, err := readiness.NewSkillSet(userSkills)
	if err != nil {
		return readiness.RoleAssessment{}, err
	}

	score, missing := readiness.Evaluate(role, set, a.weights)
	assessment := readiness.RoleAssessment{
		RoleName:       role.Name,
		ReadinessScore: score,
		ReadinessLabel: readiness.LabelForScore(score),
		MissingSkills:  missing,
	}
	a.attachQuickWins(&assessment)
	return assessment, nil
}

// Catalog exposes the agent's read-only catalog for rendering layers.
func (a *Agent) Catalog() *catalog.Catalog {
	return a.catalog
}

// CacheLen reports how many skill sets have been assessed and cached.
func (a *Agent) CacheLen() int {
	return a.cache.Len()
}

func (a *Agent) assess(set readiness.SkillSet) []readiness.RoleAssessment {
	assessments := readiness.Rank(a.catalog, set, a.weights, a.topN)
	for i := range assessments {
		a.attachQuickWins(&assessments[i])
	}
	return assessments
}

func (a *Agent) attachQuickWins(assessment *readiness.RoleAssessment) {
	recs := recommend.SelectQuickWins(assessment.MissingSkills, a.catalog)
	assessment.QuickWinRecommendations = recommend.RenderAll(recs)
}
