// Package scanner provides a cursor over a buffered antlr token stream,
// filtering hidden-channel tokens and supporting save-point based
// look-around, as needed by the qualifier resolver and reference collector.
package scanner

import (
	"strings"

	"github.com/antlr4-go/antlr/v4"
)

// Scanner is a cursor over the non-hidden tokens of a buffered token stream.
// It is not safe for concurrent use.
type Scanner struct {
	tokens     []antlr.Token
	index      int
	tokenStack []int
}

// New fills the given stream and returns a Scanner positioned at its first token.
func New(input *antlr.CommonTokenStream) *Scanner {
	input.Fill()
	return &Scanner{
		tokens: input.GetAllTokens(),
	}
}

// TokenIndex returns the current cursor position.
func (s *Scanner) TokenIndex() int {
	return s.index
}

// Seek moves the cursor directly to index, if in range.
func (s *Scanner) Seek(index int) {
	if index >= 0 && index < len(s.tokens) {
		s.index = index
	}
}

// TokenType returns the kind of the token under the cursor.
func (s *Scanner) TokenType() int {
	if len(s.tokens) == 0 {
		return antlr.TokenInvalidType
	}
	return s.tokens[s.index].GetTokenType()
}

// TokenChannel returns the channel of the token under the cursor.
func (s *Scanner) TokenChannel() int {
	if len(s.tokens) == 0 {
		return antlr.TokenDefaultChannel
	}
	return s.tokens[s.index].GetChannel()
}

// TokenText returns the raw (still quoted) text of the token under the cursor.
func (s *Scanner) TokenText() string {
	if len(s.tokens) == 0 {
		return ""
	}
	return s.tokens[s.index].GetText()
}

// Is reports whether the token under the cursor has the given kind.
func (s *Scanner) Is(tokenType int) bool {
	return s.TokenType() == tokenType
}

// Next advances the cursor by one token, optionally skipping hidden-channel
// tokens. It reports whether it moved.
func (s *Scanner) Next(skipHidden bool) bool {
	for s.index < len(s.tokens)-1 {
		s.index++
		if s.tokens[s.index].GetChannel() == antlr.TokenDefaultChannel || !skipHidden {
			return true
		}
	}
	return false
}

// Previous moves the cursor back by one token, optionally skipping
// hidden-channel tokens. It reports whether it moved.
func (s *Scanner) Previous(skipHidden bool) bool {
	for s.index > 0 {
		s.index--
		if s.tokens[s.index].GetChannel() == antlr.TokenDefaultChannel || !skipHidden {
			return true
		}
	}
	return false
}

// LookBack returns the kind of the previous non-hidden token without moving
// the cursor, or antlr.TokenInvalidType if there is none.
func (s *Scanner) LookBack() int {
	index := s.index
	for index > 0 {
		index--
		if s.tokens[index].GetChannel() == antlr.TokenDefaultChannel {
			return s.tokens[index].GetTokenType()
		}
	}
	return antlr.TokenInvalidType
}

// Push saves the current cursor position on a LIFO stack.
func (s *Scanner) Push() {
	s.tokenStack = append(s.tokenStack, s.index)
}

// Pop restores the most recently pushed cursor position. It reports whether
// there was a save-point to restore.
func (s *Scanner) Pop() bool {
	if len(s.tokenStack) == 0 {
		return false
	}
	s.index = s.tokenStack[len(s.tokenStack)-1]
	s.tokenStack = s.tokenStack[:len(s.tokenStack)-1]
	return true
}

// AdvanceToPosition sets the cursor to the first token whose span contains
// or starts at/after (line, column). A position past EOF clamps to the EOF
// token. It reports whether any token exists at all.
func (s *Scanner) AdvanceToPosition(line, column int) bool {
	if len(s.tokens) == 0 {
		return false
	}

	i := 0
	for ; i < len(s.tokens); i++ {
		tok := s.tokens[i]
		tokenLine := tok.GetLine()
		if tokenLine < line {
			continue
		}

		tokenColumn := tok.GetColumn()
		tokenLength := tok.GetStop() - tok.GetStart() + 1
		if tokenLine == line && tokenColumn <= column && column < tokenColumn+tokenLength {
			s.index = i
			break
		}

		if tokenLine > line || tokenColumn > column {
			if i == 0 {
				s.index = 0
				return true
			}
			s.index = i - 1
			break
		}
	}

	if i == len(s.tokens) {
		s.index = len(s.tokens) - 1
	}

	return true
}

// Unquote strips backticks or single/double quotes from an identifier or
// string literal and unescapes doubled quote characters inside.
func Unquote(text string) string {
	if len(text) < 2 {
		return text
	}

	first := text[0]
	last := text[len(text)-1]
	if first != last {
		return text
	}

	switch first {
	case '`', '\'', '"':
		inner := text[1 : len(text)-1]
		doubled := string(first) + string(first)
		return strings.ReplaceAll(inner, doubled, string(first))
	default:
		return text
	}
}
