// Package completion is the public entry point of the MySQL code-completion
// engine: given a parsed buffer and a caret position, it returns the
// ordered list of proposals legal at that position. The heavy lifting —
// ATN-level candidate collection, qualifier resolution and table-reference
// harvesting — lives in internal/c3, internal/resolver and internal/refs;
// this package wires them together and maps their output to concrete
// cache-backed proposals, per spec.md §4.5.
package completion

import (
	"log/slog"
	"strings"

	"github.com/antlr4-go/antlr/v4"
	mysql "github.com/bytebase/mysql-parser"

	"github.com/rebelice/mysqlcomplete/internal/c3"
	"github.com/rebelice/mysqlcomplete/internal/cache"
	"github.com/rebelice/mysqlcomplete/internal/refs"
	"github.com/rebelice/mysqlcomplete/internal/resolver"
	"github.com/rebelice/mysqlcomplete/internal/scanner"
	"github.com/rebelice/mysqlcomplete/internal/synonyms"
)

// GetCodeCompletionList computes the ordered completion proposals for a
// caret inside a SQL buffer already fed to parser. caretLine is 0-based,
// caretColumn is a 0-based byte offset within that line. See spec.md §6.
func GetCodeCompletionList(
	caretLine, caretColumn int,
	defaultSchema string,
	uppercaseKeywords bool,
	parser *mysql.MySQLParser,
	functionNames string,
	mc cache.MetadataCache,
) []ProposalEntry {
	stream, ok := parser.GetTokenStream().(*antlr.CommonTokenStream)
	if !ok {
		slog.Debug("code completion: token stream is not buffered, cannot proceed")
		return nil
	}

	d := &driver{
		parser:        parser,
		defaultSchema: defaultSchema,
		uppercase:     uppercaseKeywords,
		functions:     functionNames,
		cache:         mc,
		vocabulary:    parser.GetVocabulary(),
		scan:          scanner.New(stream),
		groups:        newGroups(),
	}

	caretTokenIndex := d.caretTokenIndex(caretLine, caretColumn)
	candidates := d.collectCandidates(caretTokenIndex)
	d.queryType, d.triggerTable = detectQueryType(stream)

	d.scan.AdvanceToPosition(caretLine+1, caretColumn)
	d.scan.Push()
	defer d.scan.Pop()

	d.emitTokenCandidates(candidates)
	d.emitRuleCandidates(candidates, stream, caretTokenIndex)

	return d.groups.flatten()
}

// driver holds the per-request state threaded through the mapping step.
// A fresh driver is allocated for every call; nothing here is shared
// between requests except the read-only cache.
type driver struct {
	parser        *mysql.MySQLParser
	defaultSchema string
	uppercase     bool
	functions     string
	cache         cache.MetadataCache
	vocabulary    antlr.Vocabulary
	scan          *scanner.Scanner
	groups        *groups
	queryType     queryType
	triggerTable  refs.TableReference

	referencesOnce bool
	references     []refs.TableReference
}

type queryType int

const (
	queryUnknown queryType = iota
	queryCreateTrigger
)

// caretTokenIndex locates the original-stream token index the caret is at,
// the value the candidate collector expects.
func (d *driver) caretTokenIndex(caretLine, caretColumn int) int {
	d.scan.AdvanceToPosition(caretLine+1, caretColumn)
	return d.scan.TokenIndex()
}

func (d *driver) collectCandidates(caretTokenIndex int) *c3.CandidatesCollection {
	core := c3.New(d.parser)
	core.IgnoredTokens = ignoredTokens
	core.PreferredRules = preferredRules
	core.NoSeparatorRequiredFor = noSeparatorRequiredFor

	candidates := core.CollectCandidates(caretTokenIndex, nil)

	// NOT2 is a NOT variant with special meaning in the operator precedence
	// chain; for completion purposes it's the same as NOT. See spec.md §4.2.
	for from, to := range synonyms.PrecedenceRemap {
		if seq, ok := candidates.Tokens[from]; ok {
			candidates.Tokens[to] = seq
			delete(candidates.Tokens, from)
		}
	}

	return candidates
}

// detectQueryType scans from the start of the buffer for the keyword
// sequence that identifies a CREATE TRIGGER statement, the only query type
// the driver needs to distinguish (spec.md SPEC_FULL.md §4, item 1). For a
// trigger it also reads the subject table off "... ON tbl_name FOR EACH
// ROW": CREATE TRIGGER bodies have no FROM clause of their own, so
// internal/refs (which only ever binds tables it sees in a FROM list) would
// otherwise never learn what table NEW./OLD. refer to.
func detectQueryType(stream *antlr.CommonTokenStream) (queryType, refs.TableReference) {
	sc := scanner.New(stream)
	sc.Seek(0)
	if !sc.Is(mysql.MySQLLexerCREATE_SYMBOL) {
		return queryUnknown, refs.TableReference{}
	}
	sc.Next(true)
	if !sc.Is(mysql.MySQLLexerTRIGGER_SYMBOL) {
		return queryUnknown, refs.TableReference{}
	}

	return queryCreateTrigger, scanTriggerSubjectTable(sc)
}

// scanTriggerSubjectTable advances sc (already positioned on TRIGGER) past
// the trigger name and timing/event keywords to the ON clause, and reads
// the, possibly schema-qualified, table name that follows it.
func scanTriggerSubjectTable(sc *scanner.Scanner) refs.TableReference {
	for sc.Next(true) {
		if sc.Is(mysql.MySQLLexerSEMICOLON_SYMBOL) {
			return refs.TableReference{}
		}
		if sc.Is(mysql.MySQLLexerON_SYMBOL) {
			sc.Next(true)
			return scanQualifiedTableName(sc)
		}
	}
	return refs.TableReference{}
}

// scanQualifiedTableName reads a one- or two-segment dotted identifier
// (schema.table or table) with sc positioned on its first segment.
func scanQualifiedTableName(sc *scanner.Scanner) refs.TableReference {
	if !isIdentifierToken(sc.TokenType()) {
		return refs.TableReference{}
	}
	first := scanner.Unquote(sc.TokenText())

	if !sc.Next(true) || !sc.Is(mysql.MySQLLexerDOT_SYMBOL) {
		return refs.TableReference{Table: first}
	}
	if !sc.Next(true) || !isIdentifierToken(sc.TokenType()) {
		return refs.TableReference{Table: first}
	}
	return refs.TableReference{Schema: first, Table: scanner.Unquote(sc.TokenText())}
}

func isIdentifierToken(tokenType int) bool {
	return tokenType == mysql.MySQLLexerIDENTIFIER || tokenType == mysql.MySQLLexerBACK_TICK_QUOTED_ID
}

func (d *driver) resolver() *resolver.Resolver {
	return resolver.New(d.scan, isIdentifierToken, mysql.MySQLLexerDOT_SYMBOL)
}

// restoreToCaret re-synchronizes the scanner to the caret save-point before
// a rule mapping step runs, then re-establishes the save-point for the next
// one, per spec.md §4.5 step 4 ("restore scanner to caret").
func (d *driver) restoreToCaret() {
	if !d.scan.Pop() {
		slog.Debug("code completion: scanner save-point stack was empty on restore")
	}
	d.scan.Push()
}
