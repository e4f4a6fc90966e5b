// Package welltag extracts well sample records from lab spreadsheet exports
// and reassembles selected subsets into formatted tag reports.
package welltag

import (
	"fmt"
	"os"
	"time"

	"github.com/ukaji3/welltag-go/pkg/welltag/models"
	"github.com/ukaji3/welltag-go/pkg/welltag/output"
	"gopkg.in/yaml.v2"
)

// Options configures extraction and export.
type Options struct {
	// Schema is the positional layout of the source export.
	Schema models.Schema
	// Style is the report presentation.
	Style output.Style
	// Now supplies the fallback month and year for unparseable sampling dates.
	// If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Schema: models.DefaultSchema(),
		Style:  output.DefaultStyle(),
	}
}

// FallbackDate returns the date substituted for unparseable sampling dates.
func (o Options) FallbackDate() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// LoadSchema reads a YAML schema override. Keys absent from the file keep
// their default values.
func LoadSchema(path string) (models.Schema, error) {
	s := models.DefaultSchema()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, &FileError{Path: path, Op: OpLoad, Err: err}
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse schema %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid schema %s: %w", path, err)
	}
	return s, nil
}
