// Package pathfile reads and writes pathway definitions as YAML or HCL.
package pathfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/pathway/internal/pathway"
)

// ErrUnknownFormat is returned for file extensions other than .yaml, .yml and .hcl.
var ErrUnknownFormat = errors.New("unknown path file format")

// ErrNoPathways is returned when a file parses but defines nothing.
var ErrNoPathways = errors.New("no pathways defined")

// Format identifies a definition file syntax.
type Format int

const (
	YAML Format = iota
	HCL
)

// FormatOf picks a format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".hcl":
		return HCL, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Base(path))
	}
}

// Load reads every pathway defined in a file.
func Load(path string) ([]pathway.Definition, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var defs []pathway.Definition
	switch format {
	case HCL:
		defs, err = decodeHCL(data, path)
	default:
		defs, err = decodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("loading %s: %w", path, ErrNoPathways)
	}
	return defs, nil
}

// Save writes definitions in the format implied by the file extension.
func Save(path string, defs []pathway.Definition) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case HCL:
		data = encodeHCL(defs)
	default:
		data, err = encodeYAML(defs)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
