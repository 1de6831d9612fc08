package main

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/lag-lang/lag/internal/diagnostics"
	"github.com/lag-lang/lag/internal/lexer"
	"github.com/lag-lang/lag/internal/lexer/token"
)

func main() {
	args, err := cli()
	if err != nil {
		log.Fatal(err)
	}

	switch args.Command {
	case COMMAND_HELP:
		fmt.Print(HELP_COMMAND)
	case COMMAND_REPL:
		os.Exit(repl())
	case COMMAND_SCAN:
		scanFile(args.Path, args.Mode)
	}
}

func scanFile(path string, mode lexer.Mode) {
	file, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	collector := diagnostics.New()
	lex := lexer.New(path, bufio.NewReader(file), collector)

	for {
		tok, err := lex.Next(mode)
		if err != nil {
			var malformed *lexer.MalformedIdentifierError
			if errors.As(err, &malformed) {
				// The diagnostic was already emitted by the collector.
				// Scanning a malformed spec is a hard stop, not a failure
				// of this tool.
				os.Exit(0)
			}
			log.Fatal(err)
		}

		fmt.Println(tok)
		if tok.Kind == token.EOF {
			break
		}
	}
}
