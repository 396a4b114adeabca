// Package cache defines the read-only metadata cache contract the
// completion driver queries for concrete object names (schemas, tables,
// columns, routines, ...), plus an in-memory implementation suitable for
// tests and for a small CLI fixture.
//
// Every lookup is a prefix match, case-insensitive, and returns a sorted
// list of names; duplicates in the stored data are not removed. A cache miss or an unknown schema/table is not
// an error: it yields an empty slice, exactly like a known object with no
// matches. Implementations must be safe for concurrent readers; nothing in
// this package mutates the store while answering a query.
package cache

// MetadataCache is the adapter the completion driver uses to resolve
// resolved qualifiers into concrete proposal labels. Every method takes a
// (possibly empty) typed prefix; an empty prefix returns every name of that
// kind known to the cache.
type MetadataCache interface {
	MatchingSchemas(prefix string) []string
	MatchingTables(schema, prefix string) []string
	MatchingViews(schema, prefix string) []string
	MatchingColumns(schema, table, prefix string) []string
	MatchingRoutines(schema, prefix string) []string
	MatchingTriggers(schema, table, prefix string) []string
	MatchingEvents(schema, prefix string) []string
	MatchingEngines(prefix string) []string
	MatchingLogfileGroups(prefix string) []string
	MatchingTablespaces(prefix string) []string
	MatchingCharsets(prefix string) []string
	MatchingCollations(prefix string) []string
	MatchingVariables(prefix string) []string
	MatchingUdfs(prefix string) []string
}
