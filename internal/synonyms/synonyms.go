// Package synonyms carries the MySQL grammar's static keyword-synonym table
// and the small registry of precedence-variant token remaps. Both are
// immutable data, loaded once and shared read-only across completion
// requests; see spec.md §4.6 and §4.2.
package synonyms

import mysql "github.com/bytebase/mysql-parser"

// Table maps a canonical keyword token kind to the alternate spellings the
// grammar also accepts. It is not consulted when emitting Keyword proposals
// (the canonical spelling from the grammar vocabulary is always used), but
// is retained verbatim from the original MySQL Workbench implementation to
// preserve its accepted-keyword coverage for any future surface rendering
// that wants to offer a synonym alongside the canonical spelling.
var Table = map[int][]string{
	mysql.MySQLLexerCHAR_SYMBOL:          {"CHARACTER"},
	mysql.MySQLLexerNOW_SYMBOL:           {"CURRENT_TIMESTAMP", "LOCALTIME", "LOCALTIMESTAMP"},
	mysql.MySQLLexerDAY_SYMBOL:           {"DAYOFMONTH", "SQL_TSI_DAY"},
	mysql.MySQLLexerDECIMAL_SYMBOL:       {"DEC"},
	mysql.MySQLLexerDISTINCT_SYMBOL:      {"DISTINCTROW"},
	mysql.MySQLLexerCOLUMNS_SYMBOL:       {"FIELDS"},
	mysql.MySQLLexerFLOAT_SYMBOL:         {"FLOAT4"},
	mysql.MySQLLexerDOUBLE_SYMBOL:        {"FLOAT8"},
	mysql.MySQLLexerINT_SYMBOL:           {"INTEGER", "INT4"},
	mysql.MySQLLexerRELAY_THREAD_SYMBOL:  {"IO_THREAD"},
	mysql.MySQLLexerSUBSTRING_SYMBOL:     {"MID", "SUBSTR"},
	mysql.MySQLLexerMID_SYMBOL:           {"MEDIUMINT"},
	mysql.MySQLLexerMEDIUMINT_SYMBOL:     {"MIDDLEINT", "INT3"},
	mysql.MySQLLexerNDBCLUSTER_SYMBOL:    {"NDB"},
	mysql.MySQLLexerREGEXP_SYMBOL:        {"RLIKE"},
	mysql.MySQLLexerDATABASE_SYMBOL:      {"SCHEMA"},
	mysql.MySQLLexerDATABASES_SYMBOL:     {"SCHEMAS"},
	mysql.MySQLLexerUSER_SYMBOL:          {"SESSION_USER"},
	mysql.MySQLLexerSTD_SYMBOL:           {"STDDEV"},
	mysql.MySQLLexerVARCHAR_SYMBOL:       {"VARCHARACTER"},
	mysql.MySQLLexerVARIANCE_SYMBOL:      {"VAR_POP"},
	mysql.MySQLLexerTINYINT_SYMBOL:       {"INT1"},
	mysql.MySQLLexerSMALLINT_SYMBOL:      {"INT2"},
	mysql.MySQLLexerBIGINT_SYMBOL:        {"INT8"},
	mysql.MySQLLexerFRAC_SECOND_SYMBOL:   {"SQL_TSI_FRAC_SECOND"},
	mysql.MySQLLexerSECOND_SYMBOL:        {"SQL_TSI_SECOND"},
	mysql.MySQLLexerMINUTE_SYMBOL:        {"SQL_TSI_MINUTE"},
	mysql.MySQLLexerHOUR_SYMBOL:          {"SQL_TSI_HOUR"},
	mysql.MySQLLexerWEEK_SYMBOL:          {"SQL_TSI_WEEK"},
	mysql.MySQLLexerMONTH_SYMBOL:         {"SQL_TSI_MONTH"},
	mysql.MySQLLexerQUARTER_SYMBOL:       {"SQL_TSI_QUARTER"},
	mysql.MySQLLexerYEAR_SYMBOL:          {"SQL_TSI_YEAR"},
}

// PrecedenceRemap lists token kinds the grammar exposes as a second variant
// of an existing keyword purely for operator-precedence reasons: the
// Driver folds a remapped kind's follow-sequence into the canonical kind
// before grouping token candidates into proposals, so the two variants
// never show up as separate keyword proposals.
//
// Only the one pair the original implementation hard-codes is kept here
// (spec.md's Open Question: "add others only with grammar evidence"); a
// second grammar-verified entry can be added without touching the Driver.
var PrecedenceRemap = map[int]int{
	mysql.MySQLLexerNOT2_SYMBOL: mysql.MySQLLexerNOT_SYMBOL,
}
