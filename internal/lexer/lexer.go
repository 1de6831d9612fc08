package lexer

import (
	"bufio"
	"fmt"

	"github.com/lag-lang/lag/internal/diagnostics"
	"github.com/lag-lang/lag/internal/lexer/token"
)

// Mode selects which of the two scanning grammars applies to the stream.
// The caller (the grammar parser) switches modes at the regex-body
// boundaries; the scanner itself is stateless across calls.
type Mode int

const (
	// ModeRawSymbol scans regex-body syntax: metacharacters, character
	// classes, quantifiers and escapes.
	ModeRawSymbol Mode = iota
	// ModeAggregate scans statement-level keywords and identifiers and
	// skips // comments.
	ModeAggregate
)

type MalformedIdentifierError struct {
	Lexeme string
	Pos    token.Pos
}

func (err *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("Invalid identifier: %s", err.Lexeme)
}

type Lexer struct {
	filename  string
	collector *diagnostics.Collector
	cursor    *cursor
}

func New(filename string, reader *bufio.Reader, collector *diagnostics.Collector) *Lexer {
	return &Lexer{filename: filename, collector: collector, cursor: newCursor(filename, reader)}
}

// Next scans one token under the given mode. Exactly one token is returned
// per call until the stream is exhausted, after which every call returns
// the EOF token.
func (lex *Lexer) Next(mode Mode) (*token.Token, error) {
	if mode == ModeAggregate {
		return lex.nextAggregate()
	}
	return lex.nextRawSymbol()
}

// Useful for testing
func (lex *Lexer) Tokenize(mode Mode) ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok, err := lex.Next(mode)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, nil
}

// nextRawSymbol dispatches on the (current, lookahead) pair. The case order
// is a contract: two-character lexemes share a leading character with
// single-character ones and must be tried first.
func (lex *Lexer) nextRawSymbol() (*token.Token, error) {
	lex.cursor.skipWhitespace()

	pos := lex.cursor.Position()
	cur, ok := lex.cursor.next()
	if !ok {
		return token.New(token.EOI, token.EOF, pos), nil
	}
	lookahead, hasLookahead := lex.cursor.peek()

	switch {
	case cur == '[' && hasLookahead && lookahead == '^':
		lex.cursor.skip()
		return token.New("[^", token.SET_START_NEGATE, pos), nil
	case cur == '[':
		return token.New("[", token.SET_START, pos), nil
	case cur == '-' && hasLookahead && lookahead == ']':
		lex.cursor.skip()
		return token.New("-]", token.DASH_SET_END, pos), nil
	case cur == ']':
		return token.New("]", token.SET_END, pos), nil
	case cur == '(':
		return token.New("(", token.OPEN_PAREN, pos), nil
	case cur == ')':
		return token.New(")", token.CLOSE_PAREN, pos), nil
	case cur == '/':
		return token.New("/", token.SLASH, pos), nil
	case cur == '*':
		return token.New("*", token.STAR, pos), nil
	case cur == '+':
		return token.New("+", token.PLUS, pos), nil
	case cur == '?':
		return token.New("?", token.QUESTION, pos), nil
	case cur == '-':
		return token.New("-", token.DASH, pos), nil
	case cur == '|':
		return token.New("|", token.PIPE, pos), nil
	case cur == '\\':
		if !hasLookahead {
			// Trailing backslash with nothing to escape
			return token.New(`\`, token.CHARACTER, pos), nil
		}
		lex.cursor.skip()
		return token.New(string(decodeEscape(lookahead)), token.CHARACTER, pos), nil
	default:
		return token.New(string(cur), token.CHARACTER, pos), nil
	}
}

func (lex *Lexer) nextAggregate() (*token.Token, error) {
	for {
		pos := lex.cursor.Position()
		cur, ok := lex.cursor.next()
		if !ok {
			return token.New(token.EOI, token.EOF, pos), nil
		}

		if cur == '/' {
			if lookahead, ok := lex.cursor.peek(); ok && lookahead == '/' {
				lex.skipLineComment()
				continue
			}
		}

		if isIdentifierChar(cur) {
			return lex.getIdOrKeyword(cur, pos)
		}

		// Whitespace and anything else that cannot start an identifier
		// produces no token in this mode.
	}
}

// getIdOrKeyword accumulates the maximal identifier lexeme starting at
// first, then classifies it as a keyword, a valid identifier, or a
// malformed one.
func (lex *Lexer) getIdOrKeyword(first byte, pos token.Pos) (*token.Token, error) {
	lexeme := string(first) + lex.cursor.readWhile(isIdentifierChar)

	if kind, ok := token.KEYWORDS[lexeme]; ok {
		return token.New(lexeme, kind, pos), nil
	}

	if !validIdentifier(lexeme) {
		err := &MalformedIdentifierError{Lexeme: lexeme, Pos: pos}
		lex.collector.ReportAndSave(diagnostics.Diag{Message: err.Error()})
		return nil, err
	}
	return token.New(lexeme, token.ID, pos), nil
}

func (lex *Lexer) skipLineComment() {
	for {
		character, ok := lex.cursor.next()
		if !ok || character == '\n' {
			return
		}
	}
}

// validIdentifier reports whether lexeme is a well-formed identifier:
// a letter or underscore followed by letters, digits or underscores.
// Maximal munch already guarantees the tail, so in practice only a
// leading digit can fail here.
func validIdentifier(lexeme string) bool {
	if !isLetter(lexeme[0]) && lexeme[0] != '_' {
		return false
	}
	for i := 1; i < len(lexeme); i++ {
		if !isIdentifierChar(lexeme[i]) {
			return false
		}
	}
	return true
}

func decodeEscape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'f':
		return '\f'
	case 'v':
		return '\v'
	case 'r':
		return '\r'
	default:
		// Escaped metacharacters stand for themselves
		return ch
	}
}

func isIdentifierChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
