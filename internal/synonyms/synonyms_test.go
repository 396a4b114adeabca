package synonyms

import (
	"testing"

	mysql "github.com/bytebase/mysql-parser"
	"github.com/stretchr/testify/assert"
)

func TestTableCarriesKnownSynonyms(t *testing.T) {
	assert.Contains(t, Table[mysql.MySQLLexerNOW_SYMBOL], "CURRENT_TIMESTAMP")
	assert.Contains(t, Table[mysql.MySQLLexerDATABASE_SYMBOL], "SCHEMA")
	assert.Contains(t, Table[mysql.MySQLLexerREGEXP_SYMBOL], "RLIKE")
}

func TestPrecedenceRemapIsSinglePairPerSpec(t *testing.T) {
	assert.Equal(t, mysql.MySQLLexerNOT_SYMBOL, PrecedenceRemap[mysql.MySQLLexerNOT2_SYMBOL])
	assert.Len(t, PrecedenceRemap, 1, "spec's open question: add others only with grammar evidence")
}
