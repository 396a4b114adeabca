package completion

// groups holds one completionSet per proposal group. Two groups
// (functions, procedures) both emit Kind == Routine entries but are kept
// separate so their relative emission order matches spec.md §4.5 step 7 —
// function names are offered before procedure names even though both are
// "routine" proposals. Indexes/Users/Plugins have no wired cache query (no
// rule in the dispatch table ever populates them) and so have no group
// here; an always-empty group would not change the observable
// order anyway.
type groups struct {
	keywords         *completionSet
	columns          *completionSet
	tables           *completionSet
	views            *completionSet
	schemas          *completionSet
	functions        *completionSet
	procedures       *completionSet
	triggers         *completionSet
	events           *completionSet
	engines          *completionSet
	logfileGroups    *completionSet
	tablespaces      *completionSet
	charsets         *completionSet
	collations       *completionSet
	userVars         *completionSet
	runtimeFunctions *completionSet
	systemVars       *completionSet
}

func newGroups() *groups {
	return &groups{
		keywords:         newCompletionSet(Keyword),
		columns:          newCompletionSet(Column),
		tables:           newCompletionSet(Table),
		views:            newCompletionSet(View),
		schemas:          newCompletionSet(Schema),
		functions:        newCompletionSet(Routine),
		procedures:       newCompletionSet(Routine),
		triggers:         newCompletionSet(Trigger),
		events:           newCompletionSet(Event),
		engines:          newCompletionSet(Engine),
		logfileGroups:    newCompletionSet(LogfileGroup),
		tablespaces:      newCompletionSet(Tablespace),
		charsets:         newCompletionSet(Charset),
		collations:       newCompletionSet(Collation),
		userVars:         newCompletionSet(UserVar),
		runtimeFunctions: newCompletionSet(Function),
		systemVars:       newCompletionSet(SystemVar),
	}
}

// flatten concatenates every group in the fixed precedence order required
// by spec.md §4.5 step 7.
func (g *groups) flatten() []ProposalEntry {
	ordered := []*completionSet{
		g.keywords,
		g.columns,
		g.tables,
		g.views,
		g.schemas,
		g.functions,
		g.procedures,
		g.triggers,
		g.events,
		g.engines,
		g.logfileGroups,
		g.tablespaces,
		g.charsets,
		g.collations,
		g.userVars,
		g.runtimeFunctions,
		g.systemVars,
	}

	var result []ProposalEntry
	for _, set := range ordered {
		result = append(result, set.sorted()...)
	}
	return result
}
