package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/pathforge/rolefit/internal/engine"
	"github.com/pathforge/rolefit/internal/readiness"
)

// ConsoleFormatter formats reports for terminal display.
type ConsoleFormatter struct {
	quiet   bool
	verbose bool
	out     io.Writer
}

// NewConsoleFormatter creates a new ConsoleFormatter writing to stdout.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:   quiet,
		verbose: verbose,
		out:     os.Stdout,
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	readyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	workStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	gapsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))  // gray
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func styleForScore(score float64) lipgloss.Style {
	switch {
	case score >= 0.9:
		return readyStyle
	case score >= 0.7:
		return workStyle
	case score >= 0.2:
		return gapsStyle
	default:
		return lowStyle
	}
}

// Format prints the ranked assessments with their quick wins. Quiet mode
// prints one line per role; verbose mode adds the full missing-skill list.
func (f *ConsoleFormatter) Format(report *Report) error {
	if !f.quiet {
		fmt.Fprintln(f.out, headerStyle.Render("Role Readiness"))
		fmt.Fprintln(f.out)
	}

	for i, assessment := range report.Assessments {
		f.printAssessment(i+1, assessment)
	}
	return nil
}

func (f *ConsoleFormatter) printAssessment(rank int, a readiness.RoleAssessment) {
	style := styleForScore(a.ReadinessScore)
	percent := int(a.ReadinessScore * 100)

	fmt.Fprintf(f.out, "%d. %s %s\n",
		rank,
		style.Render(fmt.Sprintf("%-28s %3d%%", a.RoleName, percent)),
		a.ReadinessLabel)

	if f.quiet {
		return
	}

	fmt.Fprintf(f.out, "   %s\n", dimStyle.Render(engine.Summary(a)))

	for _, rec := range a.QuickWinRecommendations {
		fmt.Fprintf(f.out, "   → %s\n", rec)
	}

	if f.verbose && len(a.MissingSkills) > 0 {
		fmt.Fprintf(f.out, "   Missing skills:\n")
		for _, m := range a.MissingSkills {
			fmt.Fprintf(f.out, "     - %s: level %d→%d (gap %d, %s)\n",
				m.Skill, m.CurrentLevel, m.TargetLevel, m.GapDegree, m.Importance)
		}
	}
	fmt.Fprintln(f.out)
}
