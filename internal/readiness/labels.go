package readiness

// Readiness label text. The outer band boundaries (>=0.90 and <0.20) are hard
// contract; the 0.70 and 0.20 cut points between the middle bands are our
// chosen configuration.
const (
	LabelReady      = "Ready / Strong fit"
	LabelWorkable   = "Workable with targeted upskilling"
	LabelGaps       = "Significant gaps to close"
	LabelFoundation = "Needs foundation"
)

// LabelForScore maps a readiness score to its band, first match wins.
func LabelForScore(score float64) string {
	switch {
	case score >= 0.9:
		return LabelReady
	case score >= 0.7:
		return LabelWorkable
	case score >= 0.2:
		return LabelGaps
	default:
		return LabelFoundation
	}
}
