package cache

import (
	"sort"
	"strings"
)

// Table holds a table's column names plus its trigger names, keyed
// case-sensitively as stored (matching is case-insensitive at query time).
type Table struct {
	Columns  []string
	Triggers []string
}

// Schema is one schema's worth of object names.
type Schema struct {
	Tables   map[string]*Table
	Views    []string
	Routines []string
	Events   []string
}

// Memory is an in-memory MetadataCache backed by plain Go maps and slices.
// It is safe for concurrent readers: callers build a Memory once (e.g. from
// a fixture) and never mutate it afterwards.
type Memory struct {
	Schemas       map[string]*Schema
	Engines       []string
	LogfileGroups []string
	Tablespaces   []string
	Charsets      []string
	Collations    []string
	Variables     []string
	Udfs          []string
}

// NewMemory returns an empty cache ready to be populated.
func NewMemory() *Memory {
	return &Memory{Schemas: make(map[string]*Schema)}
}

func matchPrefix(names []string, prefix string) []string {
	var out []string
	lowerPrefix := strings.ToLower(prefix)
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lowerPrefix) {
			out = append(out, name)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

func (m *Memory) schema(name string) *Schema {
	for key, schema := range m.Schemas {
		if strings.EqualFold(key, name) {
			return schema
		}
	}
	return nil
}

func (s *Schema) table(name string) *Table {
	if s == nil {
		return nil
	}
	for key, table := range s.Tables {
		if strings.EqualFold(key, name) {
			return table
		}
	}
	return nil
}

func (m *Memory) MatchingSchemas(prefix string) []string {
	names := make([]string, 0, len(m.Schemas))
	for name := range m.Schemas {
		names = append(names, name)
	}
	return matchPrefix(names, prefix)
}

func (m *Memory) MatchingTables(schema, prefix string) []string {
	s := m.schema(schema)
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	return matchPrefix(names, prefix)
}

func (m *Memory) MatchingViews(schema, prefix string) []string {
	s := m.schema(schema)
	if s == nil {
		return nil
	}
	return matchPrefix(s.Views, prefix)
}

func (m *Memory) MatchingColumns(schema, table, prefix string) []string {
	t := m.schema(schema).table(table)
	if t == nil {
		return nil
	}
	return matchPrefix(t.Columns, prefix)
}

func (m *Memory) MatchingRoutines(schema, prefix string) []string {
	s := m.schema(schema)
	if s == nil {
		return nil
	}
	return matchPrefix(s.Routines, prefix)
}

func (m *Memory) MatchingTriggers(schema, table, prefix string) []string {
	t := m.schema(schema).table(table)
	if t == nil {
		return nil
	}
	return matchPrefix(t.Triggers, prefix)
}

func (m *Memory) MatchingEvents(schema, prefix string) []string {
	s := m.schema(schema)
	if s == nil {
		return nil
	}
	return matchPrefix(s.Events, prefix)
}

func (m *Memory) MatchingEngines(prefix string) []string       { return matchPrefix(m.Engines, prefix) }
func (m *Memory) MatchingLogfileGroups(prefix string) []string { return matchPrefix(m.LogfileGroups, prefix) }
func (m *Memory) MatchingTablespaces(prefix string) []string   { return matchPrefix(m.Tablespaces, prefix) }
func (m *Memory) MatchingCharsets(prefix string) []string      { return matchPrefix(m.Charsets, prefix) }
func (m *Memory) MatchingCollations(prefix string) []string    { return matchPrefix(m.Collations, prefix) }
func (m *Memory) MatchingVariables(prefix string) []string     { return matchPrefix(m.Variables, prefix) }
func (m *Memory) MatchingUdfs(prefix string) []string          { return matchPrefix(m.Udfs, prefix) }
