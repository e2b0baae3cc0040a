package settings

import (
	"os"

	api "github.com/elecreview/voltage-planner/api/v1alpha1"
	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Load reads a settings file (YAML or JSON) holding the wire-size catalog
// tables and the reserve-percent templates. The engine consumes the parsed
// tables as read-only data; only the first table of each sequence is
// authoritative.
func Load(path string) (*api.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading settings file")
	}

	return Parse(content)
}

// Parse decodes settings from YAML or JSON bytes.
func Parse(content []byte) (*api.Settings, error) {
	s := &api.Settings{}
	if err := yaml.Unmarshal(content, s); err != nil {
		return nil, errors.Wrap(err, "parsing settings")
	}
	return s, nil
}

// LoadOrDefault returns empty settings when no path is configured. Empty
// settings are valid: the engine degrades to the default wire size and a
// zero reserve margin.
func LoadOrDefault(path string) (*api.Settings, error) {
	if path == "" {
		return &api.Settings{}, nil
	}
	return Load(path)
}
