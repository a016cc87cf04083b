package readiness

import "testing"

func TestLabelForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, LabelReady},
		{0.9, LabelReady},
		{0.89, LabelWorkable},
		{0.7, LabelWorkable},
		{0.69, LabelGaps},
		{0.2, LabelGaps},
		{0.19, LabelFoundation},
		{0.0, LabelFoundation},
	}

	for _, tt := range tests {
		if got := LabelForScore(tt.score); got != tt.want {
			t.Errorf("LabelForScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
