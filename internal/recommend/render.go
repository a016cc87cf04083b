package recommend

import "fmt"

// Render turns a recommendation into the human-readable instruction shown to
// users. Micro-tasks are rendered verbatim; courses and fallbacks use fixed
// templates.
func (r Recommendation) Render() string {
	switch r.Kind {
	case KindMicroTask:
		return r.MicroTask
	case KindCourse:
		return fmt.Sprintf("Start with course %s – '%s' (%s, %s)",
			r.Course.ID, r.Course.Name, r.Course.Duration, r.Course.Provider)
	default:
		return fmt.Sprintf("Dedicate %d-%d hours to comprehensive training in %s.",
			r.Hours, r.Hours+4, r.Skill)
	}
}

// RenderAll renders a selection in order.
func RenderAll(recs []Recommendation) []string {
	rendered := make([]string, len(recs))
	for i, r := range recs {
		rendered[i] = r.Render()
	}
	return rendered
}
