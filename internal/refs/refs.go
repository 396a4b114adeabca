// Package refs harvests FROM-clause table references (schema/table/alias)
// visible at a caret position, across nested query scopes, so that column
// completion can be scoped to the relations actually in play.
//
// It works lexically over the default-channel token stream rather than the
// parse tree: the original MySQL Workbench implementation this behavior is
// grounded on shipped collectRemainingTableReferences as an empty listener
// skeleton, so there is no tree-walking contract to reuse here. A single
// recursive-descent scan over FROM lists, JOIN chains and parenthesized
// subqueries gives the same externally observable result — every reference
// lexically in scope at the caret, from every enclosing query and from the
// remainder of the caret's own scope — without requiring a successful full
// parse.
package refs

import (
	"log/slog"

	"github.com/rebelice/mysqlcomplete/internal/scanner"
)

// TableReference is a single FROM-clause binding. Alias is empty when the
// reference is addressed by Table directly.
type TableReference struct {
	Schema string
	Table  string
	Alias  string
}

// Token is the minimal token shape the collector needs: kind and raw text.
type Token struct {
	Type int
	Text string
}

// Vocabulary carries the grammar-specific token kinds the collector needs
// to recognize, injected by the caller so this package stays grammar
// agnostic (mirroring how the resolver package takes its dot symbol and
// identifier predicate from outside).
type Vocabulary struct {
	IsID func(tokenType int) bool

	Comma      int
	Dot        int
	OpenParen  int
	CloseParen int
	Semicolon  int

	From   int
	Select int
	As     int
	On     int
	Using  int

	// Clause keywords that terminate a FROM list when seen at depth 0.
	Where, GroupBy, Having, OrderBy, Limit, Union int

	// Keywords that introduce or continue a join.
	Join, Inner, Outer, Left, Right, Cross, Straight, Natural int
}

// Collector scans a fixed token slice for table references, lazily on
// Snapshot.
type Collector struct {
	vocab  Vocabulary
	tokens []Token
}

// New returns a collector over tokens (expected to be the default-channel
// tokens of the whole buffer, in order).
func New(vocab Vocabulary, tokens []Token) *Collector {
	return &Collector{vocab: vocab, tokens: tokens}
}

// scope is one query nesting level: a SELECT's own FROM-list references,
// plus the nested query scopes discovered while scanning it.
type scope struct {
	start, end int
	ownRefs    []TableReference
	children   []*scope
}

func (s *scope) childContaining(index int) *scope {
	for _, child := range s.children {
		if index >= child.start && index < child.end {
			return child
		}
	}
	return nil
}

// Snapshot returns every table reference visible at caretIndex: the FROM
// lists of every query scope enclosing the caret (outermost first), plus,
// for the innermost enclosing scope, references found anywhere in it
// regardless of whether they lexically precede or follow the caret.
//
// A top-level semicolon always starts a fresh statement: references from
// one statement never leak into a caret sitting in a later one, there is no
// cross-statement scope analysis.
func (c *Collector) Snapshot(caretIndex int) []TableReference {
	root := c.parseStatements(0, len(c.tokens))

	node := root.childContaining(caretIndex)
	if node == nil {
		return nil
	}

	var result []TableReference
	for ; node != nil; node = node.childContaining(caretIndex) {
		result = append(result, node.ownRefs...)
	}
	return result
}

// parseStatements splits [start, end) into sibling statement scopes at
// every depth-0 semicolon (depth tracked by parens, since a semicolon can
// never terminate a statement while inside one) and parses each separately,
// so scanFromList never needs to reason about what follows it.
func (c *Collector) parseStatements(start, end int) *scope {
	root := &scope{start: start, end: end}

	depth := 0
	stmtStart := start
	for i := start; i < end; i++ {
		switch c.tokens[i].Type {
		case c.vocab.OpenParen:
			depth++
		case c.vocab.CloseParen:
			if depth > 0 {
				depth--
			}
		case c.vocab.Semicolon:
			if depth == 0 {
				root.children = append(root.children, c.parseScope(stmtStart, i+1))
				stmtStart = i + 1
			}
		}
	}
	if stmtStart < end {
		root.children = append(root.children, c.parseScope(stmtStart, end))
	}
	return root
}

func (c *Collector) parseScope(start, end int) *scope {
	s := &scope{start: start, end: end}

	i := start
	for i < end {
		switch {
		case c.tokens[i].Type == c.vocab.OpenParen && c.peekIsSelect(i+1, end):
			closeIdx := c.matchParen(i, end)
			s.children = append(s.children, c.parseScope(i+1, closeIdx))
			i = closeIdx + 1

		case c.tokens[i].Type == c.vocab.OpenParen:
			// Not a query scope itself (grouping, function call argument
			// list, ...), but it may still contain one, e.g. a scalar
			// subquery used as an expression. Keep scanning inside it and
			// adopt anything found as a child of the current scope.
			closeIdx := c.matchParen(i, end)
			nested := c.parseScope(i+1, closeIdx)
			s.children = append(s.children, nested.children...)
			s.ownRefs = append(s.ownRefs, nested.ownRefs...)
			i = closeIdx + 1

		case c.tokens[i].Type == c.vocab.From:
			i = c.scanFromList(s, i+1, end)

		default:
			i++
		}
	}
	return s
}

// scanFromList consumes a comma/JOIN separated table-reference list
// starting at i, recording references (and any nested subquery scopes)
// into s, and returns the index of the first token not part of the list.
func (c *Collector) scanFromList(s *scope, start, end int) int {
	i := start
	expectItem := true

	for i < end {
		t := c.tokens[i].Type

		if t == c.vocab.CloseParen || t == c.vocab.Semicolon || c.isClauseTerminator(t) {
			break
		}

		switch {
		case t == c.vocab.Comma:
			expectItem = true
			i++

		case c.isJoinKeyword(t):
			expectItem = true
			i++

		case t == c.vocab.On || t == c.vocab.Using:
			i = c.skipJoinCondition(i+1, end)
			expectItem = false

		case expectItem && t == c.vocab.OpenParen:
			closeIdx := c.matchParen(i, end)
			s.children = append(s.children, c.parseScope(i+1, closeIdx))
			i = closeIdx + 1
			_, next := c.scanAlias(i, end) // derived table alias: not surfaced as a TableReference.
			i = next
			expectItem = false

		case expectItem && c.vocab.IsID(t):
			ref, next := c.scanTableRef(i, end)
			s.ownRefs = append(s.ownRefs, ref)
			i = next
			expectItem = false

		default:
			i++
		}
	}
	return i
}

// scanTableRef reads a (possibly schema-qualified) table name followed by
// an optional alias, starting at i.
func (c *Collector) scanTableRef(i, end int) (TableReference, int) {
	var parts []string
	parts = append(parts, scanner.Unquote(c.tokens[i].Text))
	i++

	for i < end && c.tokens[i].Type == c.vocab.Dot {
		i++
		if i < end && c.vocab.IsID(c.tokens[i].Type) {
			parts = append(parts, scanner.Unquote(c.tokens[i].Text))
			i++
		}
	}

	var ref TableReference
	switch len(parts) {
	case 1:
		ref.Table = parts[0]
	default:
		ref.Schema = parts[0]
		ref.Table = parts[1]
	}

	alias, next := c.scanAlias(i, end)
	ref.Alias = alias
	return ref, next
}

func (c *Collector) scanAlias(i, end int) (string, int) {
	if i < end && c.tokens[i].Type == c.vocab.As {
		i++
		if i < end && c.vocab.IsID(c.tokens[i].Type) {
			return scanner.Unquote(c.tokens[i].Text), i + 1
		}
		return "", i
	}

	if i < end && c.vocab.IsID(c.tokens[i].Type) {
		return scanner.Unquote(c.tokens[i].Text), i + 1
	}

	return "", i
}

func (c *Collector) skipJoinCondition(i, end int) int {
	depth := 0
	for i < end {
		t := c.tokens[i].Type
		switch {
		case t == c.vocab.OpenParen:
			depth++
		case t == c.vocab.CloseParen:
			if depth == 0 {
				return i
			}
			depth--
		case depth == 0 && (t == c.vocab.Comma || t == c.vocab.Semicolon || c.isJoinKeyword(t) || c.isClauseTerminator(t)):
			return i
		}
		i++
	}
	return i
}

func (c *Collector) peekIsSelect(i, end int) bool {
	return i < end && c.tokens[i].Type == c.vocab.Select
}

func (c *Collector) matchParen(openIdx, end int) int {
	depth := 0
	for i := openIdx; i < end; i++ {
		switch c.tokens[i].Type {
		case c.vocab.OpenParen:
			depth++
		case c.vocab.CloseParen:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	slog.Debug("reference collector: unmatched open paren, buffer likely truncated mid-edit", "index", openIdx)
	return end
}

func (c *Collector) isClauseTerminator(t int) bool {
	v := c.vocab
	return t == v.Where || t == v.GroupBy || t == v.Having || t == v.OrderBy || t == v.Limit || t == v.Union
}

func (c *Collector) isJoinKeyword(t int) bool {
	v := c.vocab
	return t == v.Join || t == v.Inner || t == v.Outer || t == v.Left || t == v.Right || t == v.Cross || t == v.Straight || t == v.Natural
}
