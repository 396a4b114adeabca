package completion

import (
	"strings"
	"testing"

	"github.com/antlr4-go/antlr/v4"
	mysql "github.com/bytebase/mysql-parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebelice/mysqlcomplete/internal/cache"
)

// caretIn strips the "|" marker out of s and returns the remaining text plus
// the 0-based line/column the marker was found at.
func caretIn(s string) (text string, line, column int) {
	idx := strings.IndexByte(s, '|')
	if idx < 0 {
		return s, 0, len(s)
	}
	for i := 0; i < idx; i++ {
		if s[i] == '\n' {
			line++
			column = 0
		} else {
			column++
		}
	}
	return s[:idx] + s[idx+1:], line, column
}

func fixtureCache(t *testing.T) *cache.Memory {
	t.Helper()
	m := cache.NewMemory()
	m.Schemas["db"] = &cache.Schema{
		Tables: map[string]*cache.Table{
			"t1": {Columns: []string{"a", "b"}, Triggers: []string{"trg"}},
			"t2": {Columns: []string{"c", "d"}},
		},
		Views:    []string{"v1"},
		Routines: []string{"proc1"},
		Events:   []string{"ev1"},
	}
	m.Schemas["db1"] = &cache.Schema{
		Tables: map[string]*cache.Table{},
		Views:  []string{"view_a", "view_b"},
	}
	return m
}

func complete(t *testing.T, input, defaultSchema string, uppercase bool, mc *cache.Memory) []ProposalEntry {
	t.Helper()
	text, line, column := caretIn(input)

	stream := antlr.NewInputStream(text)
	lexer := mysql.NewMySQLLexer(stream)
	tokens := antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel)
	parser := mysql.NewMySQLParser(tokens)

	return GetCodeCompletionList(line, column, defaultSchema, uppercase, parser, "", mc)
}

func labelsOf(entries []ProposalEntry, kind Kind) []string {
	var out []string
	for _, e := range entries {
		if e.Kind == kind {
			out = append(out, e.Label)
		}
	}
	return out
}

// TestSelectFromColumnsAndTables covers spec.md §8 scenario 1: keywords,
// columns and tables are all proposed right after SELECT with a known FROM.
func TestSelectFromColumnsAndTables(t *testing.T) {
	mc := fixtureCache(t)
	entries := complete(t, "SELECT | FROM t1", "db", false, mc)
	require.NotEmpty(t, entries)

	assert.Contains(t, labelsOf(entries, Keyword), "all")
	assert.Contains(t, labelsOf(entries, Keyword), "distinct")
	assert.Contains(t, labelsOf(entries, Column), "a")
	assert.Contains(t, labelsOf(entries, Column), "b")
	assert.Contains(t, labelsOf(entries, Table), "t1")
}

// TestAliasQualifiedColumn covers spec.md §8 scenario 2: a typed alias
// prefix resolves to the alias's real table for column lookup.
func TestAliasQualifiedColumn(t *testing.T) {
	mc := fixtureCache(t)
	entries := complete(t, "SELECT a.| FROM t1 AS a", "db", false, mc)

	cols := labelsOf(entries, Column)
	assert.Contains(t, cols, "a")
	assert.Contains(t, cols, "b")
}

// TestTableRefProposesSchemasAndTables covers spec.md §8 scenario 3: an
// empty FROM clause offers schemas and tables, never columns.
func TestTableRefProposesSchemasAndTables(t *testing.T) {
	mc := fixtureCache(t)
	entries := complete(t, "SELECT x FROM |", "db", false, mc)

	assert.Contains(t, labelsOf(entries, Schema), "db")
	assert.Contains(t, labelsOf(entries, Schema), "db1")
	assert.Contains(t, labelsOf(entries, Table), "t1")
	assert.Empty(t, labelsOf(entries, Column))
}

// TestTriggerNewOldColumns covers spec.md §8 scenario 4: NEW./OLD. inside a
// CREATE TRIGGER body resolve to the trigger's subject table's columns.
func TestTriggerNewOldColumns(t *testing.T) {
	mc := fixtureCache(t)
	entries := complete(t, "CREATE TRIGGER trg BEFORE INSERT ON t1 FOR EACH ROW SELECT new.| ", "db", false, mc)

	cols := labelsOf(entries, Column)
	assert.Contains(t, cols, "a")
	assert.Contains(t, cols, "b")
}

// TestCrossStatementColumnsDoNotLeak covers spec.md §1's non-goal: a
// second, unrelated statement's FROM list must not feed column proposals
// into an earlier statement's caret.
func TestCrossStatementColumnsDoNotLeak(t *testing.T) {
	mc := fixtureCache(t)
	entries := complete(t, "SELECT | FROM t1; SELECT * FROM t2", "db", false, mc)

	cols := labelsOf(entries, Column)
	assert.Contains(t, cols, "a")
	assert.Contains(t, cols, "b")
	assert.NotContains(t, cols, "c")
	assert.NotContains(t, cols, "d")
}

// TestDropViewOnlyProposesViews covers spec.md §8 scenario 5.
func TestDropViewOnlyProposesViews(t *testing.T) {
	mc := fixtureCache(t)
	entries := complete(t, "DROP VIEW db1.|", "db", false, mc)

	assert.Contains(t, labelsOf(entries, View), "view_a")
	assert.Contains(t, labelsOf(entries, View), "view_b")
	assert.Empty(t, labelsOf(entries, Table))
	assert.Empty(t, labelsOf(entries, Column))
}

// TestUppercaseKeywordsOnlyAffectsKeywords covers spec.md §8's round-trip
// property: the uppercase flag flips Keyword case only.
func TestUppercaseKeywordsOnlyAffectsKeywords(t *testing.T) {
	mc := fixtureCache(t)
	lower := complete(t, "SELECT | FROM t1", "db", false, mc)
	upper := complete(t, "SELECT | FROM t1", "db", true, mc)

	assert.Contains(t, labelsOf(upper, Keyword), "ALL")
	assert.Contains(t, labelsOf(lower, Keyword), "all")
	assert.ElementsMatch(t, labelsOf(lower, Table), labelsOf(upper, Table))
	assert.ElementsMatch(t, labelsOf(lower, Column), labelsOf(upper, Column))
}

// TestDeterminism covers spec.md §8: identical input, identical output.
func TestDeterminism(t *testing.T) {
	mc := fixtureCache(t)
	first := complete(t, "SELECT | FROM t1", "db", false, mc)
	second := complete(t, "SELECT | FROM t1", "db", false, mc)
	assert.Equal(t, first, second)
}

// TestGroupsAreSortedAndDeduped covers spec.md §8's ordering/dedup invariants.
func TestGroupsAreSortedAndDeduped(t *testing.T) {
	mc := fixtureCache(t)
	entries := complete(t, "SELECT | FROM t1", "db", false, mc)

	byKind := map[Kind][]string{}
	for _, e := range entries {
		byKind[e.Kind] = append(byKind[e.Kind], e.Label)
	}
	for kind, labels := range byKind {
		seen := map[string]bool{}
		for i, label := range labels {
			lower := strings.ToLower(label)
			assert.False(t, seen[lower], "duplicate label %q in kind %v", label, kind)
			seen[lower] = true
			if i > 0 {
				assert.LessOrEqual(t, strings.ToLower(labels[i-1]), lower, "labels out of order for kind %v", kind)
			}
		}
	}
}

// TestNoForwardPeeking covers spec.md §8: replacing text strictly after the
// caret's nesting level must not change non-column proposals.
func TestNoForwardPeeking(t *testing.T) {
	mc := fixtureCache(t)
	a := complete(t, "SELECT | FROM t1", "db", false, mc)
	b := complete(t, "SELECT | FROM t1 WHERE b = 1 ORDER BY a", "db", false, mc)

	assert.ElementsMatch(t, labelsOf(a, Table), labelsOf(b, Table))
	assert.ElementsMatch(t, labelsOf(a, Schema), labelsOf(b, Schema))
}
