package tables

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk shape of a tables override file
//
//	title: Unicorn Clicker
//	mascot: 🦄
//	awards:
//	  - {id: sparkles, threshold: 3, symbol: ✨}
//	levels:
//	  - {id: cloudy, name: Cloudy, goal: 15, badge: ☁️}
type fileFormat struct {
	Title  string  `yaml:"title"`
	Mascot string  `yaml:"mascot"`
	Awards []Award `yaml:"awards"`
	Levels []Level `yaml:"levels"`
}

// Load reads and validates a YAML tables file
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tables file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("tables file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML tables; unknown keys are rejected
func Parse(data []byte) (*Tables, error) {
	var f fileFormat
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTables, err)
	}
	return New(f.Title, f.Mascot, f.Awards, f.Levels)
}

// Marshal encodes tables in the same format Parse accepts
func (t *Tables) Marshal() ([]byte, error) {
	return yaml.Marshal(fileFormat{
		Title:  t.title,
		Mascot: t.mascot,
		Awards: t.awards,
		Levels: t.levels,
	})
}
