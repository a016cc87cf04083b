package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pathforge/rolefit/internal/engine"
	"github.com/pathforge/rolefit/internal/readiness"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter. An empty outputFile writes to
// stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport is the top-level JSON document.
type JSONReport struct {
	Header       JSONHeader            `json:"header"`
	Skills       []readiness.UserSkill `json:"skills"`
	MatchedRoles []JSONAssessment      `json:"matched_roles"`
}

// JSONHeader identifies the producing tool and run.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Duration  string `json:"duration"`
}

// JSONAssessment is a role assessment plus its rendered summary.
type JSONAssessment struct {
	readiness.RoleAssessment
	Summary string `json:"summary"`
}

// Format writes the report as JSON.
func (f *JSONFormatter) Format(report *Report) error {
	doc := JSONReport{
		Header: JSONHeader{
			Tool:      "rolefit",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
			Duration:  time.Since(report.StartTime).Round(time.Millisecond).String(),
		},
		Skills:       report.Skills,
		MatchedRoles: make([]JSONAssessment, len(report.Assessments)),
	}
	if doc.Skills == nil {
		doc.Skills = []readiness.UserSkill{}
	}
	for i, a := range report.Assessments {
		doc.MatchedRoles[i] = JSONAssessment{
			RoleAssessment: a,
			Summary:        engine.Summary(a),
		}
	}

	var data []byte
	var err error
	if f.indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("error marshaling report: %w", err)
	}
	data = append(data, '\n')

	if f.outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}
	return nil
}
