package main

import (
	"fmt"
	"os"

	"github.com/lag-lang/lag/internal/lexer"
)

type Command int

const (
	COMMAND_SCAN Command = iota
	COMMAND_REPL
	COMMAND_HELP
)

type CliResult struct {
	Command Command
	Path    string
	Mode    lexer.Mode
}

var HELP_COMMAND string = `lag - lexical analyzer generator front end.
Scans a lexer specification file into the token stream consumed by the
grammar parser.

Usage:
  lag <command> [arguments]

Available Commands:
  scan <path> [-regex]   Scan a specification file and print its tokens
      <path>        Path to the specification file
      -regex        Scan in raw-symbol (regex body) mode instead of
                    the default aggregate (keyword/identifier) mode

  repl                   Interactively scan lines and inspect tokens

  help                   Show this help message

Examples:
  lag scan tokens.lag            Scan tokens.lag in aggregate mode
  lag scan body.lag -regex       Scan body.lag in raw-symbol mode
  lag repl                       Start the token inspection REPL
`

func cli() (CliResult, error) {
	result := CliResult{}

	args := os.Args[1:]
	if len(args) == 0 {
		result.Command = COMMAND_HELP
		return result, nil
	}

	command := args[0]
	switch command {
	case "help":
		result.Command = COMMAND_HELP
	case "repl":
		result.Command = COMMAND_REPL
	case "scan":
		result.Command = COMMAND_SCAN
		result.Mode = lexer.ModeAggregate

		if len(args) < 2 {
			return result, fmt.Errorf("scan requires a file path")
		}
		result.Path = args[1]

		_, err := os.Stat(result.Path)
		if err != nil {
			return result, fmt.Errorf("no such file or directory: %s", result.Path)
		}

		for _, arg := range args[2:] {
			switch arg {
			case "-regex":
				result.Mode = lexer.ModeRawSymbol
			default:
				return result, fmt.Errorf("unknown flag: %s", arg)
			}
		}
	default:
		return result, fmt.Errorf("unknown command: %s", command)
	}
	return result, nil
}
