package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pathforge/rolefit/internal/engine"
)

// MarkdownFormatter formats reports as Markdown.
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter. An empty outputFile
// writes to stdout.
func NewMarkdownFormatter(verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format writes the report as a Markdown document.
func (f *MarkdownFormatter) Format(report *Report) error {
	var builder strings.Builder

	builder.WriteString("# Role Readiness Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	if len(report.Skills) > 0 {
		skills := make([]string, len(report.Skills))
		for i, s := range report.Skills {
			skills[i] = fmt.Sprintf("%s (level %d)", s.Skill, s.Level)
		}
		builder.WriteString(fmt.Sprintf("**Skills:** %s\n\n", strings.Join(skills, ", ")))
	}

	// Summary table
	builder.WriteString("## Matched Roles\n\n")
	builder.WriteString("| # | Role | Readiness | Label |\n")
	builder.WriteString("|---|------|-----------|-------|\n")
	for i, a := range report.Assessments {
		builder.WriteString(fmt.Sprintf("| %d | %s | %d%% | %s |\n",
			i+1, a.RoleName, int(a.ReadinessScore*100), a.ReadinessLabel))
	}
	builder.WriteString("\n")

	// Per-role detail
	for _, a := range report.Assessments {
		builder.WriteString(fmt.Sprintf("## %s\n\n", a.RoleName))
		builder.WriteString(engine.Summary(a) + "\n\n")

		if len(a.QuickWinRecommendations) > 0 {
			builder.WriteString("**Quick wins:**\n\n")
			for _, rec := range a.QuickWinRecommendations {
				builder.WriteString(fmt.Sprintf("- %s\n", rec))
			}
			builder.WriteString("\n")
		}

		if f.verbose && len(a.MissingSkills) > 0 {
			builder.WriteString("| Skill | Current | Target | Gap | Importance |\n")
			builder.WriteString("|-------|---------|--------|-----|------------|\n")
			for _, m := range a.MissingSkills {
				builder.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %s |\n",
					m.Skill, m.CurrentLevel, m.TargetLevel, m.GapDegree, m.Importance))
			}
			builder.WriteString("\n")
		}
	}

	if f.outputFile == "" {
		_, err := os.Stdout.WriteString(builder.String())
		return err
	}
	if err := os.WriteFile(f.outputFile, []byte(builder.String()), 0644); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}
	return nil
}
