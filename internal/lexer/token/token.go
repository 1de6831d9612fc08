package token

import "fmt"

// EOI is the lexeme carried by the end-of-input token.
const EOI = "$"

type Token struct {
	Lexeme string
	Kind   Kind
	Pos    Pos
}

func New(lexeme string, kind Kind, pos Pos) *Token {
	return &Token{Lexeme: lexeme, Kind: kind, Pos: pos}
}

func (token *Token) Name() string {
	if token.Kind == ID || token.Kind == CHARACTER {
		return token.Lexeme
	}
	return token.Kind.String()
}

func (token *Token) String() string {
	return fmt.Sprintf("%s | %q | %s", token.Kind, token.Lexeme, token.Pos)
}
