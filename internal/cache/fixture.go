package cache

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fixtureDocument mirrors the on-disk YAML shape for a metadata cache
// fixture, used by the CLI and by tests that want a cache populated from a
// readable document rather than built up with Go literals.
type fixtureDocument struct {
	Schemas map[string]struct {
		Tables map[string]struct {
			Columns  []string `yaml:"columns"`
			Triggers []string `yaml:"triggers"`
		} `yaml:"tables"`
		Views    []string `yaml:"views"`
		Routines []string `yaml:"routines"`
		Events   []string `yaml:"events"`
	} `yaml:"schemas"`
	Engines       []string `yaml:"engines"`
	LogfileGroups []string `yaml:"logfileGroups"`
	Tablespaces   []string `yaml:"tablespaces"`
	Charsets      []string `yaml:"charsets"`
	Collations    []string `yaml:"collations"`
	Variables     []string `yaml:"variables"`
	Udfs          []string `yaml:"udfs"`
}

// LoadFixture reads a YAML document at path and builds a Memory cache from
// it. See fixtureDocument for the expected shape.
func LoadFixture(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cache fixture %q: %w", path, err)
	}

	var doc fixtureDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse cache fixture %q: %w", path, err)
	}

	m := NewMemory()
	for schemaName, schemaDoc := range doc.Schemas {
		schema := &Schema{
			Tables:   make(map[string]*Table),
			Views:    schemaDoc.Views,
			Routines: schemaDoc.Routines,
			Events:   schemaDoc.Events,
		}
		for tableName, tableDoc := range schemaDoc.Tables {
			schema.Tables[tableName] = &Table{
				Columns:  tableDoc.Columns,
				Triggers: tableDoc.Triggers,
			}
		}
		m.Schemas[schemaName] = schema
	}
	m.Engines = doc.Engines
	m.LogfileGroups = doc.LogfileGroups
	m.Tablespaces = doc.Tablespaces
	m.Charsets = doc.Charsets
	m.Collations = doc.Collations
	m.Variables = doc.Variables
	m.Udfs = doc.Udfs

	return m, nil
}
