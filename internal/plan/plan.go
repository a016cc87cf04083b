// Package plan turns a role assessment into a phased learning plan with
// deterministic time estimates.
package plan

import (
	"fmt"
	"math"

	"github.com/pathforge/rolefit/internal/catalog"
	"github.com/pathforge/rolefit/internal/estimate"
	"github.com/pathforge/rolefit/internal/readiness"
	"github.com/pathforge/rolefit/internal/recommend"
)

// DefaultWeeklyHours is the study pace assumed when the caller does not set one.
const DefaultWeeklyHours = 8

// BufferFactor pads the raw hour total for schedule slack.
const BufferFactor = 1.1

// Item is one skill to work on within a phase.
type Item struct {
	Skill          string `json:"skill"`
	GapDegree      int    `json:"gap_degree"`
	Recommendation string `json:"recommendation"`
	EstHours       int    `json:"est_hours"`
}

// Phase groups items of similar urgency with an aggregated time frame.
type Phase struct {
	Name       string `json:"phase"`
	Items      []Item `json:"skills"`
	TotalHours int    `json:"phase_total_hours"`
	TimeFrame  string `json:"phase_time_frame"`
}

// Plan is the full phased roadmap for one role.
type Plan struct {
	RoleName      string  `json:"role_name"`
	Phases        []Phase `json:"phases"`
	TotalHours    int     `json:"overall_total_hours"`
	BufferedHours int     `json:"overall_buffered_hours"`
	WeeklyHours   int     `json:"weekly_hours"`
	TimeFrame     string  `json:"overall_time_frame"`
}

// Phase names in order of urgency. Foundation takes the widest gaps, Polish
// the near-complete skills and nice-to-haves.
const (
	phaseFoundation = "Phase 1: Foundation"
	phaseCore       = "Phase 2: Core Skills"
	phasePolish     = "Phase 3: Polish"
)

// Build assembles a 3-phase plan from an assessment's missing skills.
// Must-have gaps land in a phase by gap degree (3 → Foundation, 2 → Core,
// 1 → Polish); nice-to-have gaps always land in Polish. Each item carries the
// catalog's best resource for its gap size and an estimated hour count, and
// every phase gets an aggregated time frame at the given weekly pace.
func Build(assessment readiness.RoleAssessment, cat *catalog.Catalog, weeklyHours int) Plan {
	if weeklyHours <= 0 {
		weeklyHours = DefaultWeeklyHours
	}

	phases := []Phase{
		{Name: phaseFoundation},
		{Name: phaseCore},
		{Name: phasePolish},
	}

	for _, m := range assessment.MissingSkills {
		idx := 2
		if m.Importance == catalog.ImportanceMust {
			switch m.GapDegree {
			case 3:
				idx = 0
			case 2:
				idx = 1
			}
		}
		phases[idx].Items = append(phases[idx].Items, buildItem(m, cat))
	}

	p := Plan{
		RoleName:    assessment.RoleName,
		WeeklyHours: weeklyHours,
	}
	for _, phase := range phases {
		if len(phase.Items) == 0 {
			continue
		}
		for _, item := range phase.Items {
			phase.TotalHours += item.EstHours
		}
		phase.TimeFrame = timeFrame(phase.TotalHours, weeklyHours)
		p.TotalHours += phase.TotalHours
		p.Phases = append(p.Phases, phase)
	}

	p.BufferedHours = int(math.Round(float64(p.TotalHours) * BufferFactor))
	p.TimeFrame = timeFrame(p.BufferedHours, weeklyHours)
	return p
}

func buildItem(m readiness.MissingSkill, cat *catalog.Catalog) Item {
	return Item{
		Skill:          m.Skill,
		GapDegree:      m.GapDegree,
		EstHours:       estimate.SkillHours(m.Skill),
		Recommendation: recommend.Resolve(m, cat).Render(),
	}
}

// timeFrame renders "33 hours (~5 weeks at 8 hrs/week)"; weeks round up.
func timeFrame(hours, weeklyHours int) string {
	weeks := (hours + weeklyHours - 1) / weeklyHours
	return fmt.Sprintf("%d hours (~%d weeks at %d hrs/week)", hours, weeks, weeklyHours)
}
