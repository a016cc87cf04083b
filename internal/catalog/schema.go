package catalog

import (
	"embed"
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema/*.cue
var schemaFS embed.FS

// validator checks decoded catalog documents against the embedded CUE schema
// before they are accepted into a Catalog.
type validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

func newValidator() (*validator, error) {
	v := &validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}

	entries, err := schemaFS.ReadDir("schema")
	if err != nil {
		return nil, fmt.Errorf("reading embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile(filepath.Join("schema", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return nil, fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}

		// catalog.cue exposes #Roles and #Courses; index definitions by name.
		for _, def := range []string{"#Roles", "#Courses"} {
			val := inst.Value().LookupPath(cue.ParsePath(def))
			if val.Exists() {
				v.schemas[def] = val
			}
		}
	}

	if len(v.schemas) == 0 {
		return nil, fmt.Errorf("no catalog schema definitions found")
	}
	return v, nil
}

// validate unifies decoded YAML data with the named definition. A unification
// failure means the document is malformed, which is fatal at load time.
func (v *validator) validate(def string, data map[string]any, source string) error {
	schema, ok := v.schemas[def]
	if !ok {
		return fmt.Errorf("schema definition %s not loaded", def)
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return fmt.Errorf("%s: encoding data: %w", source, encErr)
	}

	unified := schema.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", source, err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s: schema validation failed: %w", source, err)
	}
	return nil
}
