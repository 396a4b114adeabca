package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Token kind constants local to this test file; the package itself is
// grammar-agnostic and takes these through Vocabulary.
const (
	tkID = iota + 1
	tkComma
	tkDot
	tkOpenParen
	tkCloseParen
	tkSemicolon
	tkFrom
	tkSelect
	tkAs
	tkOn
	tkUsing
	tkWhere
	tkGroupBy
	tkHaving
	tkOrderBy
	tkLimit
	tkUnion
	tkJoin
	tkInner
	tkOuter
	tkLeft
	tkRight
	tkCross
	tkStraight
	tkNatural
)

func testVocab() Vocabulary {
	return Vocabulary{
		IsID:       func(t int) bool { return t == tkID },
		Comma:      tkComma,
		Dot:        tkDot,
		OpenParen:  tkOpenParen,
		CloseParen: tkCloseParen,
		Semicolon:  tkSemicolon,
		From:       tkFrom,
		Select:     tkSelect,
		As:         tkAs,
		On:         tkOn,
		Using:      tkUsing,
		Where:      tkWhere,
		GroupBy:    tkGroupBy,
		Having:     tkHaving,
		OrderBy:    tkOrderBy,
		Limit:      tkLimit,
		Union:      tkUnion,
		Join:       tkJoin,
		Inner:      tkInner,
		Outer:      tkOuter,
		Left:       tkLeft,
		Right:      tkRight,
		Cross:      tkCross,
		Straight:   tkStraight,
		Natural:    tkNatural,
	}
}

func id(text string) Token { return Token{Type: tkID, Text: text} }
func tok(typ int) Token    { return Token{Type: typ} }

func TestSnapshotSimpleFromList(t *testing.T) {
	tokens := []Token{
		tok(tkSelect), id("a"),
		tok(tkFrom), id("db"), tok(tkDot), id("t1"), tok(tkAs), id("x"),
		tok(tkComma), id("t2"),
	}
	c := New(testVocab(), tokens)
	caret := len(tokens) - 1
	refs := c.Snapshot(caret)

	require.Len(t, refs, 2)
	assert.Equal(t, TableReference{Schema: "db", Table: "t1", Alias: "x"}, refs[0])
	assert.Equal(t, TableReference{Table: "t2"}, refs[1])
}

func TestSnapshotJoinChain(t *testing.T) {
	tokens := []Token{
		tok(tkSelect), id("a"),
		tok(tkFrom), id("t1"),
		tok(tkLeft), tok(tkJoin), id("t2"), tok(tkOn), id("t1"), tok(tkDot), id("a"),
	}
	c := New(testVocab(), tokens)
	refs := c.Snapshot(len(tokens) - 1)

	require.Len(t, refs, 2)
	assert.Equal(t, "t1", refs[0].Table)
	assert.Equal(t, "t2", refs[1].Table)
}

func TestSnapshotDerivedTableScope(t *testing.T) {
	// SELECT a FROM (SELECT b FROM inner_t) AS d
	tokens := []Token{
		tok(tkSelect), id("a"),
		tok(tkFrom),
		tok(tkOpenParen), tok(tkSelect), id("b"), tok(tkFrom), id("inner_t"), tok(tkCloseParen),
		tok(tkAs), id("d"),
	}
	c := New(testVocab(), tokens)

	// Caret inside the derived table's own scope (on "inner_t"): only the
	// inner reference is visible, the outer alias "d" is not a
	// TableReference (it names the derived table, not a real table).
	innerCaret := 7
	refs := c.Snapshot(innerCaret)
	require.Len(t, refs, 1)
	assert.Equal(t, "inner_t", refs[0].Table)
}

func TestSnapshotOuterScopeVisibleFromNestedCaret(t *testing.T) {
	// SELECT a FROM t1, (SELECT b FROM t2) AS d WHERE a = 1
	tokens := []Token{
		tok(tkSelect), id("a"),
		tok(tkFrom), id("t1"), tok(tkComma),
		tok(tkOpenParen), tok(tkSelect), id("b"), tok(tkFrom), id("t2"), tok(tkCloseParen),
		tok(tkAs), id("d"),
		tok(tkWhere), id("a"),
	}
	c := New(testVocab(), tokens)

	// Caret inside the derived table (on "t2"): the enclosing query's "t1"
	// must still be visible.
	nestedCaret := 9
	refs := c.Snapshot(nestedCaret)
	var names []string
	for _, r := range refs {
		names = append(names, r.Table)
	}
	assert.Contains(t, names, "t1")
}

func TestSnapshotCrossStatementReferencesDoNotLeak(t *testing.T) {
	// SELECT x FROM t1; SELECT y FROM t2
	tokens := []Token{
		tok(tkSelect), id("x"), tok(tkFrom), id("t1"), tok(tkSemicolon),
		tok(tkSelect), id("y"), tok(tkFrom), id("t2"),
	}
	c := New(testVocab(), tokens)

	firstStatementCaret := 3 // on "t1"
	refs := c.Snapshot(firstStatementCaret)
	require.Len(t, refs, 1)
	assert.Equal(t, "t1", refs[0].Table)

	secondStatementCaret := len(tokens) - 1 // on "t2"
	refs = c.Snapshot(secondStatementCaret)
	require.Len(t, refs, 1)
	assert.Equal(t, "t2", refs[0].Table)
}

func TestSnapshotBacktickUnquoting(t *testing.T) {
	tokens := []Token{
		tok(tkSelect), id("a"),
		tok(tkFrom), {Type: tkID, Text: "`my table`"},
	}
	c := New(testVocab(), tokens)
	refs := c.Snapshot(len(tokens) - 1)
	require.Len(t, refs, 1)
	assert.Equal(t, "my table", refs[0].Table)
}
