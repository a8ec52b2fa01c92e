// Package lexer splits transliterated text into phonetic units using greedy
// longest-match lookup against a varna table.
package lexer

import (
	"iter"
	"strings"

	"github.com/f3rmion/shiksha/internal/varna"
)

// Token is either a matched unit or a single character the table does not know.
type Token struct {
	unit      varna.Unit
	unmatched rune
	matched   bool
}

// Matched returns a token for a table unit.
func Matched(u varna.Unit) Token {
	return Token{unit: u, matched: true}
}

// Unmatched returns a token for a character absent from the table.
func Unmatched(r rune) Token {
	return Token{unmatched: r}
}

// IsUnit reports whether the token is a matched unit.
func (t Token) IsUnit() bool { return t.matched }

// Unit returns the matched unit. Only meaningful when IsUnit is true.
func (t Token) Unit() varna.Unit { return t.unit }

// Rune returns the unmatched character. Only meaningful when IsUnit is false.
func (t Token) Rune() rune { return t.unmatched }

func (t Token) String() string {
	if t.matched {
		return t.unit.Key
	}
	return string(t.unmatched)
}

// Lexer segments text against a fixed table.
type Lexer struct {
	table *varna.Table
}

// New creates a lexer over the given table.
func New(table *varna.Table) *Lexer {
	return &Lexer{table: table}
}

// Table returns the table the lexer matches against.
func (l *Lexer) Table() *varna.Table {
	return l.table
}

// Tokens returns the token sequence for text. At each position the 3, 2 and
// then 1 character windows are tried in that order and the first hit wins;
// a position matching nothing yields one unmatched token. Windows running
// past the end of the input are skipped and earlier choices are never
// revisited. The sequence may be iterated any number of times.
func (l *Lexer) Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		runes := []rune(text)
		for i := 0; i < len(runes); {
			tok, width := l.match(runes, i)
			if !yield(tok) {
				return
			}
			i += width
		}
	}
}

// Segment collects Tokens into a slice.
func (l *Lexer) Segment(text string) []Token {
	var out []Token
	for tok := range l.Tokens(text) {
		out = append(out, tok)
	}
	return out
}

func (l *Lexer) match(runes []rune, i int) (Token, int) {
	for n := varna.MaxKeyLen; n >= 1; n-- {
		if i+n > len(runes) {
			continue
		}
		if u, ok := l.table.Lookup(string(runes[i : i+n])); ok {
			return Matched(u), n
		}
	}
	return Unmatched(runes[i]), 1
}

// Join renders a token sequence with keys separated by sep.
func Join(tokens []Token, sep string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}
