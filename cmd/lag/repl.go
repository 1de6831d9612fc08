package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/lag-lang/lag/internal/diagnostics"
	"github.com/lag-lang/lag/internal/lexer"
	"github.com/lag-lang/lag/internal/lexer/token"
)

const (
	historyFile = ".lag_history"
	prompt      = "lag> "
)

var banner = `lag token REPL
Type a line to scan it. Ctrl+D exits.
REPL commands:
  :aggregate   Scan in aggregate (keyword/identifier) mode (default)
  :regex       Scan in raw-symbol (regex body) mode
  :quit        Exit the REPL
`

func repl() int {
	fmt.Print(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	mode := lexer.ModeAggregate
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			case ":regex":
				mode = lexer.ModeRawSymbol
				fmt.Println("raw-symbol mode")
			case ":aggregate":
				mode = lexer.ModeAggregate
				fmt.Println("aggregate mode")
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		scanLine(line, mode)
		ln.AppendHistory(line)
	}
}

func scanLine(line string, mode lexer.Mode) {
	collector := diagnostics.New()
	lex := lexer.New("repl", bufio.NewReader(strings.NewReader(line)), collector)

	for {
		tok, err := lex.Next(mode)
		if err != nil {
			// The collector already printed the diagnostic; unlike a file
			// scan, the REPL keeps going.
			return
		}
		fmt.Println(tok)
		if tok.Kind == token.EOF {
			return
		}
	}
}
