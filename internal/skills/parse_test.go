package skills

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pathforge/rolefit/internal/readiness"
)

func TestParsePairs(t *testing.T) {
	got, err := ParsePairs([]string{"python=3", "SQL=1", "js=2"}, 2)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []readiness.UserSkill{
		{Skill: "python", Level: 3},
		{Skill: "sql", Level: 1},
		{Skill: "javascript", Level: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParsePairs = %v, want %v", got, want)
	}
}

func TestParsePairs_BareNameGetsDefault(t *testing.T) {
	got, err := ParsePairs([]string{"python", "sql=1"}, 2)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got[0].Level != 2 {
		t.Errorf("bare name should get the default level, got %d", got[0].Level)
	}
	if got[1].Level != 1 {
		t.Errorf("explicit level overridden, got %d", got[1].Level)
	}
}

func TestParsePairs_Errors(t *testing.T) {
	if _, err := ParsePairs([]string{"python=high"}, 2); err == nil {
		t.Error("expected error for non-integer level")
	}
	if _, err := ParsePairs([]string{"=2"}, 2); err == nil {
		t.Error("expected error for empty skill name")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills.yaml")
	content := `skills:
  - skill: Python
    level: 3
  - skill: k8s
    level: 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []readiness.UserSkill{
		{Skill: "python", Level: 3},
		{Skill: "kubernetes", Level: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadFile = %v, want %v", got, want)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("skills: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
