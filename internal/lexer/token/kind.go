package token

import "log"

type Kind int

const (
	// EOF
	EOF Kind = iota

	// Keywords
	CLASS
	TOKEN
	IGNORE

	// Identifier
	ID

	// [
	SET_START
	// [^
	SET_START_NEGATE
	// ]
	SET_END
	// -]
	DASH_SET_END

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN

	// /
	SLASH
	// |
	PIPE

	// Any literal or escape-decoded character inside a regex body
	CHARACTER

	// -
	DASH
	// *
	STAR
	// +
	PLUS
	// ?
	QUESTION
)

var KEYWORDS map[string]Kind = map[string]Kind{
	"class":  CLASS,
	"token":  TOKEN,
	"ignore": IGNORE,
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "EOF"
	case CLASS:
		return "class"
	case TOKEN:
		return "token"
	case IGNORE:
		return "ignore"
	case ID:
		return "ID"
	case SET_START:
		return "["
	case SET_START_NEGATE:
		return "[^"
	case SET_END:
		return "]"
	case DASH_SET_END:
		return "-]"
	case OPEN_PAREN:
		return "("
	case CLOSE_PAREN:
		return ")"
	case SLASH:
		return "/"
	case PIPE:
		return "|"
	case CHARACTER:
		return "CHARACTER"
	case DASH:
		return "-"
	case STAR:
		return "*"
	case PLUS:
		return "+"
	case QUESTION:
		return "?"
	default:
		log.Fatalf("String() method not defined for the following token kind '%d'", kind)
	}
	return ""
}
