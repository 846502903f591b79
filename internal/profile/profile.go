// Package profile loads optional output profiles: small JSON or YAML
// files overriding the sheet name used for each logical table.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/prozkosny/pydata-zdenka/pkg/vypis"
)

// Profile maps logical table names to output sheet names. Keys must be
// known logical names; values are capped at 31 characters, the xlsx
// sheet-name limit.
type Profile struct {
	Sheets map[string]string `json:"sheets" yaml:"sheets" validate:"dive,required,max=31"`
}

// FromFile loads a profile from a JSON or YAML file and validates it.
func FromFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var p Profile

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return Profile{}, fmt.Errorf("failed to parse JSON profile: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Profile{}, fmt.Errorf("failed to parse YAML profile: %w", err)
		}
	default:
		return Profile{}, fmt.Errorf("unsupported profile file format: %s", ext)
	}

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks that every key is a known logical table name and that
// the sheet names satisfy the struct constraints.
func (p Profile) Validate() error {
	for key := range p.Sheets {
		if !slices.Contains(vypis.TableNames, key) {
			return fmt.Errorf("unknown table name %q in profile (known: %s)",
				key, strings.Join(vypis.TableNames, ", "))
		}
	}
	return validator.New().Struct(p)
}
