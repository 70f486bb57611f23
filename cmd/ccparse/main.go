// Command ccparse lexes and parses C-like source files and prints the token
// stream, the syntax tree or the symbol table.
//
//	ccparse [flags] file.c...
//	ccparse -mode expr -e '1 + 2 * 3'
//	ccparse -repl
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"minicc/pkg/compiler"
	"minicc/pkg/utils"
)

// options are the parsed command-line flags.
type options struct {
	mode    compiler.Mode
	tokens  bool
	ast     bool
	symbols bool
	repl    bool
	inline  string
	jobs    int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ccparse: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	fs := flag.NewFlagSet("ccparse", flag.ContinueOnError)
	fs.SetOutput(stderr)

	modeName := fs.String("mode", compiler.ModeTranslationUnit.String(), "grammar entry point: unit, function, block, statement or expr")
	tokens := fs.Bool("tokens", false, "print the token stream")
	ast := fs.Bool("ast", true, "print the syntax tree")
	symbols := fs.Bool("symbols", false, "print the symbol table after parsing")
	repl := fs.Bool("repl", false, "start an interactive prompt")
	inline := fs.String("e", "", "parse `source` given on the command line instead of files")
	jobs := fs.Int("j", runtime.GOMAXPROCS(0), "maximum number of files parsed in parallel")
	if err := fs.Parse(args); err != nil {
		return options{}, nil, err
	}

	mode, err := compiler.ParseMode(*modeName)
	if err != nil {
		return options{}, nil, err
	}
	if *jobs < 1 {
		return options{}, nil, fmt.Errorf("-j must be at least 1, got %d", *jobs)
	}
	opts := options{
		mode:    mode,
		tokens:  *tokens,
		ast:     *ast,
		symbols: *symbols,
		repl:    *repl,
		inline:  *inline,
		jobs:    *jobs,
	}
	return opts, fs.Args(), nil
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, files, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	switch {
	case opts.repl:
		if err := runRepl(opts, stdout, stderr); err != nil {
			log.Printf("repl: %v", err)
			return 1
		}
		return 0
	case opts.inline != "":
		if !report(stdout, stderr, opts, "<inline>", opts.inline) {
			return 1
		}
		return 0
	case len(files) == 0:
		fmt.Fprintln(stderr, "usage: ccparse [flags] file.c...  (or -e source, or -repl)")
		return 2
	}

	ok, err := parseFiles(files, opts, stdout, stderr)
	if err != nil {
		log.Print(err)
		return 1
	}
	if !ok {
		return 1
	}
	return 0
}

// fileReport is the rendered output for one input file.
type fileReport struct {
	out, diag strings.Builder
	ok        bool
}

// parseFiles parses every file concurrently, each with its own lexer, parser
// and symbol table, and prints the reports in argument order. It returns
// false if any file failed to parse; err is set only for I/O failures.
func parseFiles(files []string, opts options, stdout, stderr io.Writer) (bool, error) {
	reports := make([]*fileReport, len(files))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(opts.jobs)

	for i, name := range files {
		i, name := i, name // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := utils.ReadSource(name)
			if err != nil {
				return err
			}
			r := &fileReport{}
			r.ok = report(&r.out, &r.diag, opts, src.Name, src.Text)
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	ok := true
	for i, r := range reports {
		if len(files) > 1 {
			fmt.Fprintf(stdout, "== %s\n", files[i])
		}
		io.WriteString(stdout, r.out.String())
		io.WriteString(stderr, r.diag.String())
		ok = ok && r.ok
	}
	return ok, nil
}

// report parses src and writes the requested views to out, or the formatted
// error to diag. It returns whether the parse succeeded.
func report(out, diag io.Writer, opts options, name, src string) bool {
	if opts.tokens {
		tokens, err := compiler.Lex(src)
		for _, tok := range tokens {
			fmt.Fprintln(out, " ", tok)
		}
		if err != nil {
			fmt.Fprintln(diag, compiler.FormatError(err, name, src))
			return false
		}
	}

	res, err := compiler.Parse(src, compiler.Config{Mode: opts.mode})
	if err != nil {
		fmt.Fprintln(diag, compiler.FormatError(err, name, src))
		return false
	}
	if opts.ast {
		io.WriteString(out, compiler.Dump(res.Root()))
	}
	if opts.symbols {
		io.WriteString(out, res.Symbols.String())
	}
	return true
}
