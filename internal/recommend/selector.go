// Package recommend selects quick-win actions for a role's missing skills.
// Selection produces tagged recommendations first; turning them into
// user-facing strings is a separate rendering step, so callers never have to
// sniff strings to tell a micro-task from a course.
package recommend

import (
	"sort"

	"github.com/pathforge/rolefit/internal/catalog"
	"github.com/pathforge/rolefit/internal/estimate"
	"github.com/pathforge/rolefit/internal/readiness"
)

// MaxQuickWins caps how many recommendations a role assessment carries.
const MaxQuickWins = 2

// Kind tags what a recommendation resolves to.
type Kind string

const (
	KindMicroTask Kind = "micro_task" // short practice exercise for a small gap
	KindCourse    Kind = "course"     // full course for a larger gap
	KindFallback  Kind = "fallback"   // generic guidance for uncataloged skills
)

// Recommendation is one selected quick win. Exactly one of MicroTask, Course,
// or Hours is meaningful, indicated by Kind.
type Recommendation struct {
	Skill     string
	GapDegree int
	Kind      Kind
	MicroTask string
	Course    catalog.Course
	Hours     int
}

// SelectQuickWins picks the highest-leverage gaps to act on: must-have skills
// only, largest gap first (ties keep input order, which is catalog order),
// capped at MaxQuickWins. Nice-to-have gaps are never selected, even when no
// must-have gap exists.
func SelectQuickWins(missing []readiness.MissingSkill, cat *catalog.Catalog) []Recommendation {
	var critical []readiness.MissingSkill
	for _, m := range missing {
		if m.Importance == catalog.ImportanceMust {
			critical = append(critical, m)
		}
	}

	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].GapDegree > critical[j].GapDegree
	})
	if len(critical) > MaxQuickWins {
		critical = critical[:MaxQuickWins]
	}

	recs := make([]Recommendation, 0, len(critical))
	for _, m := range critical {
		recs = append(recs, Resolve(m, cat))
	}
	return recs
}

// Resolve maps one gap to an action. Small gaps (degree 1) prefer a
// micro-task, larger gaps prefer a course; either falls through to the other
// resource when its own list is empty, and to generic guidance when the skill
// has no catalog entry at all.
func Resolve(m readiness.MissingSkill, cat *catalog.Catalog) Recommendation {
	rec := Recommendation{Skill: m.Skill, GapDegree: m.GapDegree}

	entry, ok := cat.Entry(m.Skill)
	if ok {
		preferMicroTask := m.GapDegree == 1
		if preferMicroTask && len(entry.MicroTasks) > 0 {
			rec.Kind = KindMicroTask
			rec.MicroTask = entry.MicroTasks[0]
			return rec
		}
		if len(entry.Courses) > 0 {
			rec.Kind = KindCourse
			rec.Course = entry.Courses[0]
			return rec
		}
		if len(entry.MicroTasks) > 0 {
			rec.Kind = KindMicroTask
			rec.MicroTask = entry.MicroTasks[0]
			return rec
		}
	}

	rec.Kind = KindFallback
	rec.Hours = estimate.SkillHours(m.Skill)
	return rec
}
