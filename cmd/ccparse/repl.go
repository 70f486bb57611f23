package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"minicc/pkg/compiler"
)

const (
	historyFile = ".ccparse_history"
	promptMain  = "cc> "
	promptCont  = "... "
)

// prompter is the part of *liner.State the read loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
}

func runRepl(opts options, stdout, stderr io.Writer) error {
	fmt.Fprintf(stdout, "ccparse (mode %s). Type :quit to exit.\n", opts.mode)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	return replLoop(ln, ln.AppendHistory, opts, stdout, stderr)
}

// replLoop reads entries until end of input or :quit and reports each one.
func replLoop(p prompter, remember func(string), opts options, stdout, stderr io.Writer) error {
	for {
		src, ok, err := readByParseProbe(p, opts.mode)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(stdout)
			return nil
		}

		trimmed := strings.TrimSpace(src)
		switch {
		case trimmed == "":
			continue
		case trimmed == ":quit":
			return nil
		case strings.HasPrefix(trimmed, ":"):
			fmt.Fprintln(stdout, "unknown command. Type :quit to exit.")
			continue
		}

		report(stdout, stderr, opts, "", src)
		remember(strings.ReplaceAll(src, "\n", " "))
	}
}

// readByParseProbe collects lines until they parse or fail for a reason
// other than running out of input. ok is false at end of input.
func readByParseProbe(p prompter, mode compiler.Mode) (src string, ok bool, err error) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := p.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			return "", false, nil
		case errors.Is(err, liner.ErrPromptAborted):
			b.Reset()
			continue
		case err != nil:
			return "", false, err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src = b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true, nil
		}
		_, perr := compiler.Parse(src, compiler.Config{Mode: mode})
		if perr != nil && compiler.IsIncomplete(perr) && strings.TrimSpace(line) != "" {
			continue
		}
		return src, true, nil
	}
}
