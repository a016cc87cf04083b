package catalog

import (
	"embed"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// MinRoles is the smallest catalog the ranker contract allows: assessments
// always return the top 5 roles, so a loaded catalog must hold at least 5.
const MinRoles = 5

type rolesDoc struct {
	Roles []Role `yaml:"roles"`
}

type coursesDoc struct {
	Skills map[string]Entry `yaml:"skills"`
}

// New builds a Catalog from already-decoded data and checks its invariants.
// Intended for tests and callers that assemble synthetic catalogs in code;
// file-based loading goes through Load.
func New(roles []Role, entries map[string]Entry) (*Catalog, error) {
	c := &Catalog{Roles: roles, Entries: entries}
	if c.Entries == nil {
		c.Entries = make(map[string]Entry)
	}
	if err := verify(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the embedded default catalog and merges any overlay files whose
// paths match the given doublestar glob patterns. Overlays replace roles by
// name and course entries by skill; unmatched patterns are not an error, but
// an unreadable or malformed file is: the engine cannot operate without valid
// static configuration.
func Load(overlayPatterns ...string) (*Catalog, error) {
	v, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("loading catalog schema: %w", err)
	}

	c := &Catalog{Entries: make(map[string]Entry)}

	for _, name := range []string{"data/roles.yaml", "data/courses.yaml"} {
		content, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading embedded catalog %s: %w", name, err)
		}
		if err := mergeDocument(c, v, content, name); err != nil {
			return nil, err
		}
	}

	for _, pattern := range overlayPatterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, path := range matches {
			content, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading catalog overlay %s: %w", path, err)
			}
			if err := mergeDocument(c, v, content, path); err != nil {
				return nil, err
			}
		}
	}

	if err := verify(c); err != nil {
		return nil, err
	}
	if len(c.Roles) < MinRoles {
		return nil, fmt.Errorf("catalog holds %d roles, need at least %d", len(c.Roles), MinRoles)
	}
	return c, nil
}

// mergeDocument validates one YAML document against the schema and folds its
// roles or course entries into the catalog. A document may carry either a
// top-level "roles" list or a top-level "skills" map.
func mergeDocument(c *Catalog, v *validator, content []byte, source string) error {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", source, err)
	}

	if _, ok := raw["roles"]; ok {
		if err := v.validate("#Roles", raw, source); err != nil {
			return err
		}
		var doc rolesDoc
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return fmt.Errorf("parsing %s: %w", source, err)
		}
		for _, role := range doc.Roles {
			mergeRole(c, role)
		}
		return nil
	}

	if _, ok := raw["skills"]; ok {
		if err := v.validate("#Courses", raw, source); err != nil {
			return err
		}
		var doc coursesDoc
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return fmt.Errorf("parsing %s: %w", source, err)
		}
		for skill, entry := range doc.Skills {
			c.Entries[skill] = entry
		}
		return nil
	}

	return fmt.Errorf("%s: expected a top-level \"roles\" or \"skills\" key", source)
}

func mergeRole(c *Catalog, role Role) {
	for i, existing := range c.Roles {
		if existing.Name == role.Name {
			c.Roles[i] = role
			return
		}
	}
	c.Roles = append(c.Roles, role)
}

// verify enforces the invariants the CUE schema cannot express across
// documents: unique role names and at most one requirement per skill within
// a role.
func verify(c *Catalog) error {
	seenRoles := make(map[string]bool, len(c.Roles))
	for _, role := range c.Roles {
		if role.Name == "" {
			return fmt.Errorf("catalog contains a role with an empty name")
		}
		if seenRoles[role.Name] {
			return fmt.Errorf("role %q declared more than once", role.Name)
		}
		seenRoles[role.Name] = true

		seenSkills := make(map[string]bool, len(role.Requirements))
		for _, req := range role.Requirements {
			if req.Skill == "" {
				return fmt.Errorf("role %q has a requirement with an empty skill", role.Name)
			}
			if seenSkills[req.Skill] {
				return fmt.Errorf("role %q requires skill %q more than once", role.Name, req.Skill)
			}
			seenSkills[req.Skill] = true
			if req.TargetLevel < 1 || req.TargetLevel > 3 {
				return fmt.Errorf("role %q skill %q: target level %d out of range 1-3", role.Name, req.Skill, req.TargetLevel)
			}
			if !req.Importance.Valid() {
				return fmt.Errorf("role %q skill %q: unknown importance %q", role.Name, req.Skill, req.Importance)
			}
		}
	}
	return nil
}
