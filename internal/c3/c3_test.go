package c3_test

import (
	"testing"

	"github.com/antlr4-go/antlr/v4"
	mysql "github.com/bytebase/mysql-parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rebelice/mysqlcomplete/internal/c3"
)

func parse(t *testing.T, sql string) (*mysql.MySQLParser, *antlr.CommonTokenStream) {
	t.Helper()
	input := antlr.NewInputStream(sql)
	lexer := mysql.NewMySQLLexer(input)
	tokens := antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel)
	return mysql.NewMySQLParser(tokens), tokens
}

// TestCollectCandidatesFindsTableRefAfterFrom exercises the collector
// directly (bypassing the completion package's mapping layer) against the
// real MySQL grammar: right after FROM, TableRef must be among the
// preferred rules reported.
func TestCollectCandidatesFindsTableRefAfterFrom(t *testing.T) {
	parser, tokens := parse(t, "SELECT * FROM ")
	tokens.Fill()
	caretTokenIndex := len(tokens.GetAllTokens()) - 1 // EOF

	core := c3.New(parser)
	core.IgnoredTokens = map[int]bool{
		mysql.MySQLLexerIDENTIFIER: true,
		mysql.MySQLParserEOF:       true,
	}
	core.PreferredRules = map[int]bool{
		mysql.MySQLParserRULE_tableRef: true,
	}

	candidates := core.CollectCandidates(caretTokenIndex, nil)
	require.NotNil(t, candidates)
	assert.Contains(t, candidates.Rules, mysql.MySQLParserRULE_tableRef)
}

// TestCollectCandidatesOffersSelectKeywordAtStart exercises the token half
// of a CandidatesCollection: at the very start of the buffer, SELECT (among
// other statement-introducing keywords) must be offered.
func TestCollectCandidatesOffersSelectKeywordAtStart(t *testing.T) {
	parser, tokens := parse(t, "")
	tokens.Fill()

	core := c3.New(parser)
	candidates := core.CollectCandidates(0, nil)

	require.NotNil(t, candidates)
	assert.Contains(t, candidates.Tokens, mysql.MySQLLexerSELECT_SYMBOL)
}
