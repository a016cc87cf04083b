// Package output renders assessment reports for the console and for file
// formats.
package output

import (
	"fmt"
	"time"

	"github.com/pathforge/rolefit/internal/config"
	"github.com/pathforge/rolefit/internal/readiness"
)

// Report is the renderable outcome of an assessment run.
type Report struct {
	Skills      []readiness.UserSkill
	Assessments []readiness.RoleAssessment
	StartTime   time.Time
}

// Formatter renders a report to its destination.
type Formatter interface {
	Format(report *Report) error
}

// NewFormatter creates the formatter for the configured format.
func NewFormatter(cfg *config.Config) (Formatter, error) {
	switch cfg.Format {
	case "console":
		return NewConsoleFormatter(cfg.Quiet, cfg.Verbose), nil
	case "json":
		return NewJSONFormatter(true, cfg.Output), nil
	case "markdown":
		return NewMarkdownFormatter(cfg.Verbose, cfg.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}
