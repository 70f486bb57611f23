package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunInline(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "expr", "-e", "1 + 2 * 3"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	want := "BinaryOp +\n  Constant 1\n  BinaryOp *\n    Constant 2\n    Constant 3\n"
	if stdout.String() != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout.String(), want)
	}
}

func TestRunInlineError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "statement", "-e", "1 2;"}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "<inline>:1:3: expected one of ; + - * /") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "  |> 1 2;\n  |>   ^") {
		t.Errorf("stderr missing caret snippet: %q", stderr.String())
	}
}

func TestRunTokensAndSymbols(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-mode", "function", "-tokens", "-ast=false", "-symbols", "-e", "int f(float a) { return a; }"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "TYPE_KEYWORD") || !strings.Contains(out, "RETURN_KEYWORD") {
		t.Errorf("token stream missing:\n%s", out)
	}
	if strings.Contains(out, "FunctionDeclaration") {
		t.Errorf("AST printed despite -ast=false:\n%s", out)
	}
	if !strings.Contains(out, "variable (Type: float)") {
		t.Errorf("symbol table missing parameter:\n%s", out)
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.c", "int main() { return 0; }\n")
	other := writeFile(t, dir, "other.c", "double half(double x) { return x / 2; }\n")
	bad := writeFile(t, dir, "bad.c", "int main() {\n  return 1 +;\n}\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-j", "2", good, bad, other}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}

	out := stdout.String()
	iGood := strings.Index(out, "== "+good)
	iBad := strings.Index(out, "== "+bad)
	iOther := strings.Index(out, "== "+other)
	if iGood < 0 || iBad < 0 || iOther < 0 || !(iGood < iBad && iBad < iOther) {
		t.Errorf("reports out of order:\n%s", out)
	}
	if !strings.Contains(out, "FunctionDeclaration double half(double x)") {
		t.Errorf("missing AST for other.c:\n%s", out)
	}
	if !strings.Contains(stderr.String(), bad+":2:13: expected one of IDENTIFIER INTEGER + - (") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"No Input", nil, 2},
		{"Bad Mode", []string{"-mode", "program", "x.c"}, 2},
		{"Bad Jobs", []string{"-j", "0", "x.c"}, 2},
		{"Missing File", []string{filepath.Join(os.TempDir(), "does-not-exist.c")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.code {
				t.Errorf("exit code %d, want %d (stderr: %s)", code, tt.code, stderr.String())
			}
		})
	}
}

// scriptedPrompter replays lines as if typed at the prompt.
type scriptedPrompter struct {
	lines   []string
	prompts []string
}

func (s *scriptedPrompter) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestReplLoop(t *testing.T) {
	p := &scriptedPrompter{lines: []string{
		"int f() {",
		"  return 1;",
		"}",
		":help",
		"int g() { return 1 2; }",
		":quit",
		"int never() {}",
	}}
	var history []string
	var stdout, stderr bytes.Buffer
	opts := options{ast: true}

	if err := replLoop(p, func(s string) { history = append(history, s) }, opts, &stdout, &stderr); err != nil {
		t.Fatalf("replLoop() error = %v", err)
	}

	wantPrompts := []string{promptMain, promptCont, promptCont, promptMain, promptMain, promptMain}
	if strings.Join(p.prompts, "|") != strings.Join(wantPrompts, "|") {
		t.Errorf("prompts = %q, want %q", p.prompts, wantPrompts)
	}
	if !strings.Contains(stdout.String(), "FunctionDeclaration int f()") {
		t.Errorf("stdout missing AST:\n%s", stdout.String())
	}
	if !strings.Contains(stdout.String(), "unknown command") {
		t.Errorf("stdout missing command hint:\n%s", stdout.String())
	}
	if !strings.Contains(stderr.String(), "1:20: expected one of") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if len(history) != 2 || history[0] != "int f() {   return 1; }" {
		t.Errorf("history = %q", history)
	}
	if len(p.lines) != 1 {
		t.Errorf("loop kept reading after :quit")
	}
}

type failingPrompter struct{}

func (failingPrompter) Prompt(string) (string, error) { return "", errors.New("terminal gone") }

func TestReplLoopPromptError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := replLoop(failingPrompter{}, func(string) {}, options{}, &stdout, &stderr)
	if err == nil || err.Error() != "terminal gone" {
		t.Errorf("replLoop() error = %v", err)
	}
}
