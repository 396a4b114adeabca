package completion

import (
	"strings"

	"github.com/antlr4-go/antlr/v4"
	mysql "github.com/bytebase/mysql-parser"

	"github.com/rebelice/mysqlcomplete/internal/c3"
	"github.com/rebelice/mysqlcomplete/internal/refs"
	"github.com/rebelice/mysqlcomplete/internal/resolver"
	"github.com/rebelice/mysqlcomplete/internal/scanner"
)

// emitTokenCandidates renders the token half of a CandidatesCollection into
// Keyword and runtime-Function proposals, per spec.md §4.5 step 3.
func (d *driver) emitTokenCandidates(candidates *c3.CandidatesCollection) {
	for tokenType, follow := range candidates.Tokens {
		entry := d.renderToken(tokenType)

		if len(follow) > 0 && follow[0] == mysql.MySQLLexerOPEN_PAR_SYMBOL {
			d.groups.runtimeFunctions.insert(strings.ToLower(entry) + "()")
			continue
		}

		for _, following := range follow {
			entry += " " + d.renderToken(following)
		}
		if !d.uppercase {
			entry = strings.ToLower(entry)
		}
		d.groups.keywords.insert(entry)
	}
}

// renderToken turns a token kind into its surface spelling: the grammar's
// display name, with the conventional "_SYMBOL" suffix stripped, or
// unquoted if there is no such suffix (operators and punctuation have a
// quoted literal display name, which renders without its quotes).
func (d *driver) renderToken(tokenType int) string {
	name := d.vocabulary.GetDisplayName(tokenType)
	if strings.HasSuffix(name, "_SYMBOL") {
		return strings.TrimSuffix(name, "_SYMBOL")
	}
	return scanner.Unquote(name)
}

// emitRuleCandidates renders the rule half of a CandidatesCollection by
// dispatching each preferred rule to its object-backed proposal group, per
// spec.md §4.5 step 4.
func (d *driver) emitRuleCandidates(candidates *c3.CandidatesCollection, stream *antlr.CommonTokenStream, caretTokenIndex int) {
	for ruleID := range candidates.Rules {
		d.restoreToCaret()
		d.dispatchRule(ruleID, stream, caretTokenIndex)
	}
}

func (d *driver) dispatchRule(ruleID int, stream *antlr.CommonTokenStream, caretTokenIndex int) {
	switch ruleID {
	case mysql.MySQLParserRULE_schemaRef:
		d.groups.schemas.insertAll(d.cache.MatchingSchemas(""))

	case mysql.MySQLParserRULE_tableRef, mysql.MySQLParserRULE_filterTableRef, mysql.MySQLParserRULE_tableRefNoDb:
		flags, qualifier := d.resolver().SimpleQualifier()
		if flags.Has(resolver.ShowFirst) {
			d.groups.schemas.insertAll(d.cache.MatchingSchemas(""))
		}
		if flags.Has(resolver.ShowSecond) {
			schema := d.schemaOrDefault(qualifier)
			d.groups.tables.insertAll(d.cache.MatchingTables(schema, ""))
			d.groups.views.insertAll(d.cache.MatchingViews(schema, ""))
		}

	case mysql.MySQLParserRULE_tableRefWithWildcard:
		flags, schema, _ := d.resolver().SchemaTableQualifier()
		if flags.Has(resolver.ShowSchemas) {
			d.groups.schemas.insertAll(d.cache.MatchingSchemas(""))
		}
		if flags.Has(resolver.ShowTables) {
			effective := d.schemaOrDefault(schema)
			d.groups.tables.insertAll(d.cache.MatchingTables(effective, ""))
			d.groups.views.insertAll(d.cache.MatchingViews(effective, ""))
		}

	case mysql.MySQLParserRULE_columnRef, mysql.MySQLParserRULE_columnInternalRef, mysql.MySQLParserRULE_tableWild:
		d.dispatchColumnRef(ruleID, stream, caretTokenIndex)

	case mysql.MySQLParserRULE_viewRef:
		flags, qualifier := d.resolver().SimpleQualifier()
		if flags.Has(resolver.ShowFirst) {
			d.groups.schemas.insertAll(d.cache.MatchingSchemas(""))
		}
		if flags.Has(resolver.ShowSecond) {
			d.groups.views.insertAll(d.cache.MatchingViews(d.schemaOrDefault(qualifier), ""))
		}

	case mysql.MySQLParserRULE_functionRef, mysql.MySQLParserRULE_functionCall:
		flags, qualifier := d.resolver().SimpleQualifier()
		if qualifier == "" {
			for _, udf := range d.cache.MatchingUdfs("") {
				d.groups.runtimeFunctions.insert(udf + "()")
			}
		}
		if flags.Has(resolver.ShowFirst) {
			d.groups.schemas.insertAll(d.cache.MatchingSchemas(""))
		}
		if flags.Has(resolver.ShowSecond) {
			d.groups.functions.insertAll(d.cache.MatchingRoutines(d.schemaOrDefault(qualifier), ""))
		}

	case mysql.MySQLParserRULE_runtimeFunctionCall:
		for _, name := range strings.Fields(d.functions) {
			d.groups.runtimeFunctions.insert(name + "()")
		}

	case mysql.MySQLParserRULE_triggerRef:
		flags, qualifier := d.resolver().SimpleQualifier()
		if flags.Has(resolver.ShowFirst) {
			d.groups.schemas.insertAll(d.cache.MatchingTables(d.defaultSchema, ""))
		}
		if flags.Has(resolver.ShowSecond) {
			d.groups.triggers.insertAll(d.cache.MatchingTriggers(d.defaultSchema, qualifier, ""))
		}

	case mysql.MySQLParserRULE_eventRef:
		flags, qualifier := d.resolver().SimpleQualifier()
		if flags.Has(resolver.ShowFirst) {
			d.groups.schemas.insertAll(d.cache.MatchingSchemas(""))
		}
		if flags.Has(resolver.ShowSecond) {
			d.groups.events.insertAll(d.cache.MatchingEvents(d.schemaOrDefault(qualifier), ""))
		}

	case mysql.MySQLParserRULE_procedureRef:
		flags, qualifier := d.resolver().SimpleQualifier()
		if flags.Has(resolver.ShowFirst) {
			d.groups.schemas.insertAll(d.cache.MatchingSchemas(""))
		}
		if flags.Has(resolver.ShowSecond) {
			d.groups.procedures.insertAll(d.cache.MatchingRoutines(d.schemaOrDefault(qualifier), ""))
		}

	case mysql.MySQLParserRULE_engineRef:
		d.groups.engines.insertAll(d.cache.MatchingEngines(""))

	case mysql.MySQLParserRULE_logfileGroupRef:
		d.groups.logfileGroups.insertAll(d.cache.MatchingLogfileGroups(""))

	case mysql.MySQLParserRULE_tablespaceRef:
		d.groups.tablespaces.insertAll(d.cache.MatchingTablespaces(""))

	case mysql.MySQLParserRULE_charsetName:
		d.groups.charsets.insertAll(d.cache.MatchingCharsets(""))

	case mysql.MySQLParserRULE_collationName:
		d.groups.collations.insertAll(d.cache.MatchingCollations(""))

	case mysql.MySQLParserRULE_systemVariable:
		d.groups.systemVars.insertAll(d.cache.MatchingVariables(""))

	case mysql.MySQLParserRULE_userVariable:
		d.groups.userVars.insert("<user variable>")

	case mysql.MySQLParserRULE_labelRef:
		d.groups.userVars.insert("<block labels>")

	// No cache query is wired to these: ServerRef has no getMatchingServerNames
	// equivalent in the cache contract (spec.md SPEC_FULL.md §4, item 5); User,
	// SetSystemVariable and the helper identifier rules exist only so C3's
	// follow-set computation for sibling rules isn't affected by their absence.
	case mysql.MySQLParserRULE_serverRef,
		mysql.MySQLParserRULE_user,
		mysql.MySQLParserRULE_setSystemVariable,
		mysql.MySQLParserRULE_parameterName,
		mysql.MySQLParserRULE_procedureName,
		mysql.MySQLParserRULE_identifier,
		mysql.MySQLParserRULE_labelIdentifier:
	}
}

// dispatchColumnRef implements spec.md §4.5 step 5: the column-proposal
// sub-policy shared by ColumnRef, ColumnInternalRef and TableWild.
func (d *driver) dispatchColumnRef(ruleID int, stream *antlr.CommonTokenStream, caretTokenIndex int) {
	flags, schema, table := d.resolver().SchemaTableQualifier()
	if flags.Has(resolver.ShowSchemas) {
		d.groups.schemas.insertAll(d.cache.MatchingSchemas(""))
	}

	references := d.referenceSnapshot(stream, caretTokenIndex)

	schemas := []string{}
	if schema != "" {
		schemas = []string{schema}
	} else {
		for _, ref := range references {
			if ref.Schema != "" && !containsFold(schemas, ref.Schema) {
				schemas = append(schemas, ref.Schema)
			}
		}
	}
	if len(schemas) == 0 {
		schemas = []string{d.defaultSchema}
	}

	if flags.Has(resolver.ShowTables) {
		for _, s := range schemas {
			d.groups.tables.insertAll(d.cache.MatchingTables(s, ""))
		}

		if ruleID == mysql.MySQLParserRULE_columnRef {
			for _, s := range schemas {
				d.groups.views.insertAll(d.cache.MatchingViews(s, ""))
			}
			for _, ref := range references {
				admit := (schema == "" && ref.Schema == "") || containsFold(schemas, ref.Schema)
				if !admit {
					continue
				}
				label := ref.Table
				if ref.Alias != "" {
					label = ref.Alias
				}
				d.groups.tables.insert(label)
			}
		}
	}

	if flags.Has(resolver.ShowColumns) {
		// Schema and table come out equal when the resolver could not yet
		// tell whether a single typed segment names a schema or a table;
		// admit the default schema too in that case.
		if schema == table && !containsFold(schemas, d.defaultSchema) {
			schemas = append(schemas, d.defaultSchema)
		}

		var tables []string
		switch {
		case table != "":
			tables = append(tables, table)
			for _, ref := range references {
				if strings.EqualFold(table, ref.Alias) {
					tables = append(tables, ref.Table)
					break
				}
			}
		case ruleID == mysql.MySQLParserRULE_columnRef && len(references) > 0:
			for _, ref := range references {
				if !containsFold(tables, ref.Table) {
					tables = append(tables, ref.Table)
				}
			}
		}

		d.insertColumns(schemas, tables)

		// Trigger special case: NEW./OLD. resolve to the trigger's subject
		// table, the first reference collected for a CREATE TRIGGER body.
		if d.queryType == queryCreateTrigger && len(references) > 0 &&
			(strings.EqualFold(table, "old") || strings.EqualFold(table, "new")) {
			d.insertColumns(schemas, []string{references[0].Table})
		}
	}
}

func (d *driver) insertColumns(schemas, tables []string) {
	for _, s := range schemas {
		for _, t := range tables {
			d.groups.columns.insertAll(d.cache.MatchingColumns(s, t, ""))
		}
	}
}

func (d *driver) schemaOrDefault(qualifier string) string {
	if qualifier == "" {
		return d.defaultSchema
	}
	return qualifier
}

func containsFold(list []string, want string) bool {
	for _, item := range list {
		if strings.EqualFold(item, want) {
			return true
		}
	}
	return false
}

// referenceSnapshot lazily computes the flattened, caret-scoped table
// reference list (spec.md §4.4), caching it for the remainder of the
// request: every ColumnRef/ColumnInternalRef/TableWild candidate in one
// completion call shares the same snapshot.
func (d *driver) referenceSnapshot(stream *antlr.CommonTokenStream, caretTokenIndex int) []refs.TableReference {
	if d.referencesOnce {
		return d.references
	}
	d.referencesOnce = true

	tokens, caretFiltered := buildReferenceTokens(stream, caretTokenIndex)
	collector := refs.New(referenceVocabulary(), tokens)
	d.references = collector.Snapshot(caretFiltered)

	// A CREATE TRIGGER body has no FROM clause for the collector to find;
	// its subject table (read off the ON clause in detectQueryType) stands
	// in as the implicit first reference, the one NEW./OLD. resolve against.
	if d.queryType == queryCreateTrigger && d.triggerTable.Table != "" {
		d.references = append([]refs.TableReference{d.triggerTable}, d.references...)
	}

	return d.references
}

// buildReferenceTokens projects the full token stream down to its
// default-channel tokens (the shape internal/refs operates over) and
// translates caretTokenIndex — an index into the unfiltered stream — into
// the corresponding index in that filtered slice.
func buildReferenceTokens(stream *antlr.CommonTokenStream, caretTokenIndex int) ([]refs.Token, int) {
	all := stream.GetAllTokens()

	var tokens []refs.Token
	caretFiltered := -1
	for _, tok := range all {
		if tok.GetChannel() != antlr.TokenDefaultChannel {
			continue
		}
		if caretFiltered == -1 && tok.GetTokenIndex() >= caretTokenIndex {
			caretFiltered = len(tokens)
		}
		tokens = append(tokens, refs.Token{Type: tok.GetTokenType(), Text: tok.GetText()})
	}
	if caretFiltered == -1 {
		caretFiltered = len(tokens) - 1
	}
	return tokens, caretFiltered
}

func referenceVocabulary() refs.Vocabulary {
	return refs.Vocabulary{
		IsID: isIdentifierToken,

		Comma:      mysql.MySQLLexerCOMMA_SYMBOL,
		Dot:        mysql.MySQLLexerDOT_SYMBOL,
		OpenParen:  mysql.MySQLLexerOPEN_PAR_SYMBOL,
		CloseParen: mysql.MySQLLexerCLOSE_PAR_SYMBOL,
		Semicolon:  mysql.MySQLLexerSEMICOLON_SYMBOL,

		From:   mysql.MySQLLexerFROM_SYMBOL,
		Select: mysql.MySQLLexerSELECT_SYMBOL,
		As:     mysql.MySQLLexerAS_SYMBOL,
		On:     mysql.MySQLLexerON_SYMBOL,
		Using:  mysql.MySQLLexerUSING_SYMBOL,

		Where:   mysql.MySQLLexerWHERE_SYMBOL,
		GroupBy: mysql.MySQLLexerGROUP_SYMBOL,
		Having:  mysql.MySQLLexerHAVING_SYMBOL,
		OrderBy: mysql.MySQLLexerORDER_SYMBOL,
		Limit:   mysql.MySQLLexerLIMIT_SYMBOL,
		Union:   mysql.MySQLLexerUNION_SYMBOL,

		Join:     mysql.MySQLLexerJOIN_SYMBOL,
		Inner:    mysql.MySQLLexerINNER_SYMBOL,
		Outer:    mysql.MySQLLexerOUTER_SYMBOL,
		Left:     mysql.MySQLLexerLEFT_SYMBOL,
		Right:    mysql.MySQLLexerRIGHT_SYMBOL,
		Cross:    mysql.MySQLLexerCROSS_SYMBOL,
		Straight: mysql.MySQLLexerSTRAIGHT_JOIN_SYMBOL,
		Natural:  mysql.MySQLLexerNATURAL_SYMBOL,
	}
}
