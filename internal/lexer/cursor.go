package lexer

import (
	"bufio"

	"github.com/lag-lang/lag/internal/lexer/token"
)

// cursor owns the read position over the input stream. The scanner never
// seeks backward: at most one byte is peeked beyond the current one.
type cursor struct {
	reader *bufio.Reader
	pos    token.Pos
}

func newCursor(filename string, reader *bufio.Reader) *cursor {
	return &cursor{reader: reader, pos: token.NewPosition(filename, 1, 1)}
}

func (cursor *cursor) next() (byte, bool) {
	character, err := cursor.reader.ReadByte()
	if err != nil {
		return 0, false
	}
	cursor.pos.Move(character)
	return character, true
}

func (cursor *cursor) peek() (byte, bool) {
	bytes, err := cursor.reader.Peek(1)
	if err != nil {
		return 0, false
	}
	return bytes[0], true
}

func (cursor *cursor) skip() {
	cursor.next()
}

func (cursor *cursor) readWhile(isValid func(byte) bool) string {
	var lexeme []byte
	for {
		character, ok := cursor.peek()
		if !ok || !isValid(character) {
			break
		}
		cursor.skip()
		lexeme = append(lexeme, character)
	}
	return string(lexeme)
}

func (cursor *cursor) skipWhitespace() {
	cursor.readWhile(func(ch byte) bool {
		return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f' || ch == '\v'
	})
}

func (cursor *cursor) Position() token.Pos {
	return cursor.pos
}
