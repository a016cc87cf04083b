// Package catalog holds the static role and course data the readiness engine
// scores against. A Catalog is loaded once at startup, validated, and treated
// as immutable for the life of the process.
package catalog

import (
	"errors"
	"strings"
)

// ErrRoleNotFound is returned when a single-role lookup names a role that is
// not in the catalog.
var ErrRoleNotFound = errors.New("role not found in catalog")

// Importance classifies how much a requirement weighs in readiness scoring.
type Importance string

const (
	ImportanceMust       Importance = "must"
	ImportanceNiceToHave Importance = "nice_to_have"
)

// Valid reports whether the importance is one of the known tiers.
func (i Importance) Valid() bool {
	return i == ImportanceMust || i == ImportanceNiceToHave
}

// Requirement is one skill a role asks for, with the proficiency level the
// role expects (1-3) and how critical the skill is.
type Requirement struct {
	Skill       string     `yaml:"skill" json:"skill"`
	TargetLevel int        `yaml:"target_level" json:"target_level"`
	Importance  Importance `yaml:"importance" json:"importance"`
}

// Role is a named profile of skill requirements. Requirement order is the
// declaration order from the catalog file and is meaningful: it breaks ties
// when gaps are ranked.
type Role struct {
	Name         string        `yaml:"name" json:"name"`
	Requirements []Requirement `yaml:"requirements" json:"requirements"`
}

// Course is a single catalog course offering for a skill.
type Course struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Provider string `yaml:"provider" json:"provider"`
	Duration string `yaml:"duration" json:"duration"`
}

// Entry holds the learning resources known for one skill: full courses for
// large gaps and short micro-tasks (1-4h practice exercises) for small ones.
// Both lists are ordered by preference.
type Entry struct {
	Courses    []Course `yaml:"courses" json:"courses"`
	MicroTasks []string `yaml:"micro_tasks" json:"micro_tasks"`
}

// Catalog is the complete static configuration: role profiles in declaration
// order plus per-skill course entries.
type Catalog struct {
	Roles   []Role
	Entries map[string]Entry
}

// Role returns the role with the given name.
func (c *Catalog) Role(name string) (Role, error) {
	for _, r := range c.Roles {
		if r.Name == name {
			return r, nil
		}
	}
	return Role{}, ErrRoleNotFound
}

// Entry returns the course entry for a skill. Lookup is case-insensitive so
// "Python" and "python" resolve to the same entry.
func (c *Catalog) Entry(skill string) (Entry, bool) {
	if e, ok := c.Entries[skill]; ok {
		return e, true
	}
	for key, e := range c.Entries {
		if strings.EqualFold(key, skill) {
			return e, true
		}
	}
	return Entry{}, false
}

// RoleNames returns role names in catalog declaration order.
func (c *Catalog) RoleNames() []string {
	names := make([]string, len(c.Roles))
	for i, r := range c.Roles {
		names[i] = r.Name
	}
	return names
}
