package chatflow

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rahultadvi/chatflow/pkg/editor"
	"github.com/rahultadvi/chatflow/pkg/flow"
)

// New opens an editor session for a persisted automation record. A nil
// record starts a new automation.
func New(rec *flow.Record, opts ...editor.Option) *editor.Editor {
	return editor.New(rec, opts...)
}

// Open loads an automation definition from a YAML or JSON file and opens an
// editor session for it.
func Open(path string, opts ...editor.Option) (*editor.Editor, error) {
	rec, err := LoadRecord(path)
	if err != nil {
		return nil, err
	}
	return editor.New(rec, opts...), nil
}

// LoadRecord reads an automation record from a definition file. The format
// is chosen by extension: .json is JSON, everything else is parsed as YAML.
func LoadRecord(path string) (*flow.Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}

	var rec flow.Record
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return &rec, nil
	}
	if err := yaml.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &rec, nil
}
