// Package validation checks inbound JSON payloads against the entity
// schemas embedded under schemas/.
package validation

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/qri-io/jsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema names. Create schemas enforce required fields; update schemas
// accept any subset of fields.
const (
	ProfileCreate    = "profile.create"
	ProfileUpdate    = "profile.update"
	ProjectCreate    = "project.create"
	ProjectUpdate    = "project.update"
	ExperienceCreate = "experience.create"
	ExperienceUpdate = "experience.update"
	SkillCreate      = "skill.create"
	SkillUpdate      = "skill.update"
	BudgetCreate     = "budget.create"
)

// Problem is one schema violation.
type Problem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error reports a payload that does not match its schema.
type Error struct {
	Schema   string
	Problems []Problem
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Path+": "+p.Message)
	}
	return fmt.Sprintf("%s: invalid payload: %s", e.Schema, strings.Join(msgs, "; "))
}

// Validator holds the compiled schemas.
type Validator struct {
	// qri-io/jsonschema keeps a package level registry; validations are
	// serialized.
	mu      sync.Mutex
	schemas map[string]*jsonschema.Schema
}

// New compiles the embedded schemas.
func New() (*Validator, error) {
	return Load(schemaFS)
}

// Load compiles every schemas/<entity>.json in fsys into a create and an
// update variant.
func Load(fsys fs.FS) (*Validator, error) {
	entries, err := fs.ReadDir(fsys, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read schemas dir: %w", err)
	}

	v := &Validator{schemas: make(map[string]*jsonschema.Schema)}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		entity := strings.TrimSuffix(e.Name(), ".json")

		b, err := fs.ReadFile(fsys, path.Join("schemas", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", entity, err)
		}

		create, err := compile(b)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", entity, err)
		}
		v.schemas[entity+".create"] = create

		patch, err := withoutRequired(b)
		if err != nil {
			return nil, fmt.Errorf("derive update schema %s: %w", entity, err)
		}
		update, err := compile(patch)
		if err != nil {
			return nil, fmt.Errorf("compile update schema %s: %w", entity, err)
		}
		v.schemas[entity+".update"] = update
	}

	return v, nil
}

func compile(b []byte) (*jsonschema.Schema, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(b, rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func withoutRequired(b []byte) ([]byte, error) {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	delete(raw, "required")
	return json.Marshal(raw)
}

// Names lists the loaded schema names, sorted.
func (v *Validator) Names() []string {
	out := make([]string, 0, len(v.schemas))
	for name := range v.schemas {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Validate checks body against the named schema. A mismatch, including
// malformed JSON, is reported as *Error.
func (v *Validator) Validate(ctx context.Context, name string, body []byte) error {
	rs, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	if !json.Valid(body) {
		return &Error{Schema: name, Problems: []Problem{{Path: "/", Message: "body is not valid JSON"}}}
	}

	v.mu.Lock()
	keyErrs, err := rs.ValidateBytes(ctx, body)
	v.mu.Unlock()
	if err != nil {
		return &Error{Schema: name, Problems: []Problem{{Path: "/", Message: err.Error()}}}
	}
	if len(keyErrs) == 0 {
		return nil
	}

	problems := make([]Problem, 0, len(keyErrs))
	for _, ke := range keyErrs {
		p := ke.PropertyPath
		if p == "" {
			p = "/"
		}
		problems = append(problems, Problem{Path: p, Message: ke.Message})
	}
	return &Error{Schema: name, Problems: problems}
}
