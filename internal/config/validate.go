package config

import (
	"bytes"
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaCUE []byte

// ValidateYAML checks a YAML document against the embedded #Config schema.
// Unknown keys are rejected.
func ValidateYAML(name string, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE)
	if schema.Err() != nil {
		return fmt.Errorf("cannot compile CUE schema: %w", schema.Err())
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	file, err := cueyaml.Extract(name, data)
	if err != nil {
		return fmt.Errorf("cannot parse YAML config: %w", err)
	}
	value := ctx.BuildFile(file)
	if value.Err() != nil {
		return fmt.Errorf("cannot build YAML config: %w", value.Err())
	}

	final := def.Unify(value)
	if err := final.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
