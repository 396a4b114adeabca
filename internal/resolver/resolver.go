// Package resolver classifies the partially typed, dotted object reference
// around the caret (schema.table.column and friends) by rescanning tokens
// immediately before the caret. It never looks past the caret: what hasn't
// been typed yet is not something the engine should guess at.
package resolver

import (
	"log/slog"

	"github.com/rebelice/mysqlcomplete/internal/scanner"
)

// ObjectFlags says which parts of a dotted identifier the caller should
// offer completions for.
type ObjectFlags uint8

const (
	ShowSchemas ObjectFlags = 1 << iota
	ShowTables
	ShowColumns
	ShowFirst
	ShowSecond
)

// Has reports whether all bits of want are set in f.
func (f ObjectFlags) Has(want ObjectFlags) bool {
	return f&want == want
}

// IdentifierChecker reports whether a token kind denotes an identifier
// (plain or quoted) in the grammar under completion.
type IdentifierChecker func(tokenType int) bool

// DotSymbol is supplied by the caller because the token kind for "." is
// grammar specific.
type Resolver struct {
	Scanner   *scanner.Scanner
	IsID      IdentifierChecker
	DotSymbol int
}

// New returns a resolver bound to s, using isID to recognize identifier
// tokens and dotSymbol as the DOT_SYMBOL token kind.
func New(s *scanner.Scanner, isID IdentifierChecker, dotSymbol int) *Resolver {
	return &Resolver{Scanner: s, IsID: isID, DotSymbol: dotSymbol}
}

// SimpleQualifier handles the up-to-two-segment case ([id] [. [id]]) and
// returns what should be shown plus the qualifier segment, if one was
// fully typed before the caret.
func (r *Resolver) SimpleQualifier() (ObjectFlags, string) {
	s := r.Scanner
	position := s.TokenIndex()

	if s.TokenChannel() != 0 {
		s.Next(true)
	}

	if !s.Is(r.DotSymbol) && !r.IsID(s.TokenType()) {
		s.Previous(true)
	}

	if position > 0 {
		if r.IsID(s.TokenType()) && s.LookBack() == r.DotSymbol {
			s.Previous(true)
		}
		if s.Is(r.DotSymbol) && r.IsID(s.LookBack()) {
			s.Previous(true)
		}
	}

	var temp string
	if r.IsID(s.TokenType()) {
		temp = scanner.Unquote(s.TokenText())
		s.Next(true)
	}

	if !s.Is(r.DotSymbol) || position <= s.TokenIndex() {
		return ShowFirst | ShowSecond, ""
	}

	return ShowSecond, temp
}

// SchemaTableQualifier handles the up-to-three-segment case
// ([id] [. [id] [. [id]]]) used for column references, returning what
// should be shown plus schema and table segments typed before the caret.
//
// When exactly one segment was typed, schema and table are both set to it
// (the caller cannot yet tell whether it names a schema or a table); the
// Driver treats schema == table as an invitation to also admit the default
// schema.
func (r *Resolver) SchemaTableQualifier() (flags ObjectFlags, schema, table string) {
	s := r.Scanner
	position := s.TokenIndex()

	if s.TokenChannel() != 0 {
		s.Next(true)
	}

	if !s.Is(r.DotSymbol) && !r.IsID(s.TokenType()) {
		s.Previous(true)
	}

	if position > 0 {
		if r.IsID(s.TokenType()) && s.LookBack() == r.DotSymbol {
			s.Previous(true)
		}
		if s.Is(r.DotSymbol) && r.IsID(s.LookBack()) {
			s.Previous(true)
			if s.LookBack() == r.DotSymbol {
				s.Previous(true)
				if r.IsID(s.LookBack()) {
					s.Previous(true)
				}
			}
		}
	}

	var temp string
	if r.IsID(s.TokenType()) {
		temp = scanner.Unquote(s.TokenText())
		s.Next(true)
	}

	if !s.Is(r.DotSymbol) || position <= s.TokenIndex() {
		return ShowSchemas | ShowTables | ShowColumns, "", ""
	}

	s.Next(true) // Skip the dot.
	table = temp
	schema = temp
	slog.Debug("qualifier resolver: one segment typed before caret, schema/table split is ambiguous", "segment", temp)

	if r.IsID(s.TokenType()) {
		temp = scanner.Unquote(s.TokenText())
		s.Next(true)

		if !s.Is(r.DotSymbol) || position <= s.TokenIndex() {
			return ShowTables | ShowColumns, schema, table
		}

		table = temp
		return ShowColumns, schema, table
	}

	return ShowTables | ShowColumns, schema, table
}
