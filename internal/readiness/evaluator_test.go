package readiness

import (
	"errors"
	"testing"

	"github.com/pathforge/rolefit/internal/catalog"
)

func testRole() catalog.Role {
	return catalog.Role{
		Name: "data-scientist",
		Requirements: []catalog.Requirement{
			{Skill: "python", TargetLevel: 3, Importance: catalog.ImportanceMust},
			{Skill: "sql", TargetLevel: 3, Importance: catalog.ImportanceMust},
			{Skill: "statistics", TargetLevel: 3, Importance: catalog.ImportanceMust},
			{Skill: "pandas", TargetLevel: 3, Importance: catalog.ImportanceMust},
			{Skill: "jupyter", TargetLevel: 2, Importance: catalog.ImportanceNiceToHave},
		},
	}
}

func TestNewSkillSet(t *testing.T) {
	tests := []struct {
		name    string
		input   []UserSkill
		want    SkillSet
		wantErr bool
	}{
		{
			name:  "levels above max are clamped",
			input: []UserSkill{{Skill: "python", Level: 5}, {Skill: "sql", Level: 4}},
			want:  SkillSet{"python": 3, "sql": 3},
		},
		{
			name:    "negative level fails fast",
			input:   []UserSkill{{Skill: "python", Level: -1}},
			wantErr: true,
		},
		{
			name:  "duplicates keep the highest level",
			input: []UserSkill{{Skill: "sql", Level: 1}, {Skill: "sql", Level: 2}, {Skill: "sql", Level: 0}},
			want:  SkillSet{"sql": 2},
		},
		{
			name:  "empty input is a valid empty set",
			input: nil,
			want:  SkillSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSkillSet(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidSkillLevel) {
					t.Errorf("expected ErrInvalidSkillLevel, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d skills, got %d", len(tt.want), len(got))
			}
			for skill, level := range tt.want {
				if got[skill] != level {
					t.Errorf("skill %s: expected level %d, got %d", skill, level, got[skill])
				}
			}
		})
	}
}

func TestEvaluate_PerfectMatch(t *testing.T) {
	set := SkillSet{"python": 3, "sql": 3, "statistics": 3, "pandas": 3, "jupyter": 3}

	score, missing := Evaluate(testRole(), set, DefaultWeights)

	if score < 0.9 {
		t.Errorf("expected score >= 0.9 for perfect match, got %v", score)
	}
	if score != 1.0 {
		t.Errorf("expected exact 1.0, got %v", score)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing skills, got %d", len(missing))
	}
}

func TestEvaluate_EmptySkills(t *testing.T) {
	score, missing := Evaluate(testRole(), SkillSet{}, DefaultWeights)

	if score >= 0.2 {
		t.Errorf("empty skills must score below 0.2, got %v", score)
	}
	if len(missing) != 5 {
		t.Errorf("expected every requirement missing, got %d", len(missing))
	}
	for _, m := range missing {
		if m.CurrentLevel != 0 {
			t.Errorf("skill %s: expected current level 0, got %d", m.Skill, m.CurrentLevel)
		}
		if m.GapDegree != m.TargetLevel {
			t.Errorf("skill %s: expected gap %d, got %d", m.Skill, m.TargetLevel, m.GapDegree)
		}
	}
}

func TestEvaluate_GapDegrees(t *testing.T) {
	set := SkillSet{"python": 1, "sql": 3}

	_, missing := Evaluate(testRole(), set, DefaultWeights)

	byName := make(map[string]MissingSkill, len(missing))
	for _, m := range missing {
		byName[m.Skill] = m
	}

	python, ok := byName["python"]
	if !ok {
		t.Fatal("python should be missing")
	}
	if python.CurrentLevel != 1 || python.TargetLevel != 3 || python.GapDegree != 2 {
		t.Errorf("python gap: got current=%d target=%d gap=%d, want 1/3/2",
			python.CurrentLevel, python.TargetLevel, python.GapDegree)
	}

	pandas, ok := byName["pandas"]
	if !ok {
		t.Fatal("pandas should be missing")
	}
	if pandas.CurrentLevel != 0 || pandas.GapDegree != 3 {
		t.Errorf("pandas gap: got current=%d gap=%d, want 0/3", pandas.CurrentLevel, pandas.GapDegree)
	}

	if _, ok := byName["sql"]; ok {
		t.Error("sql meets its target and must not be missing")
	}
}

func TestEvaluate_MissingSortedByGapThenCatalogOrder(t *testing.T) {
	// statistics and pandas both gap 3, python gap 2, jupyter gap 1.
	set := SkillSet{"python": 1, "sql": 3, "jupyter": 1}

	_, missing := Evaluate(testRole(), set, DefaultWeights)

	want := []string{"statistics", "pandas", "python", "jupyter"}
	if len(missing) != len(want) {
		t.Fatalf("expected %d missing skills, got %d", len(want), len(missing))
	}
	for i, skill := range want {
		if missing[i].Skill != skill {
			t.Errorf("position %d: expected %s, got %s", i, skill, missing[i].Skill)
		}
	}
}

func TestEvaluate_PartialCreditAndWeights(t *testing.T) {
	role := catalog.Role{
		Name: "role",
		Requirements: []catalog.Requirement{
			{Skill: "a", TargetLevel: 3, Importance: catalog.ImportanceMust},
			{Skill: "b", TargetLevel: 2, Importance: catalog.ImportanceNiceToHave},
		},
	}

	// a: 1/3 credit at weight 1.0, b: unmet at weight 0.5.
	score, _ := Evaluate(role, SkillSet{"a": 1}, DefaultWeights)
	want := (1.0 / 3.0) / 1.5
	if diff := score - round3(want); diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected score %v, got %v", round3(want), score)
	}

	// Satisfying the nice-to-have moves the score less than satisfying the must.
	withNice, _ := Evaluate(role, SkillSet{"b": 2}, DefaultWeights)
	withMust, _ := Evaluate(role, SkillSet{"a": 3}, DefaultWeights)
	if withNice >= withMust {
		t.Errorf("nice-to-have (%v) should weigh less than must (%v)", withNice, withMust)
	}
}

func TestEvaluate_LevelClampingEquivalence(t *testing.T) {
	role := testRole()

	clamped, _ := Evaluate(role, SkillSet{"python": 5, "sql": 5, "statistics": 5, "pandas": 5, "jupyter": 5}, DefaultWeights)
	exact, _ := Evaluate(role, SkillSet{"python": 3, "sql": 3, "statistics": 3, "pandas": 3, "jupyter": 3}, DefaultWeights)

	if clamped != exact {
		t.Errorf("level 5 must behave exactly like level 3: got %v vs %v", clamped, exact)
	}
}

func TestEvaluate_ScoreRounding(t *testing.T) {
	role := catalog.Role{
		Name: "role",
		Requirements: []catalog.Requirement{
			{Skill: "a", TargetLevel: 3, Importance: catalog.ImportanceMust},
			{Skill: "b", TargetLevel: 3, Importance: catalog.ImportanceMust},
			{Skill: "c", TargetLevel: 3, Importance: catalog.ImportanceMust},
		},
	}

	// 1/3 exactly, which has no finite decimal expansion.
	score, _ := Evaluate(role, SkillSet{"a": 3}, DefaultWeights)
	if score != 0.333 {
		t.Errorf("expected 0.333 after rounding, got %v", score)
	}
}
