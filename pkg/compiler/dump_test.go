package compiler

import "testing"

func TestDump(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		input    string
		expected string
	}{
		{
			name:  "Function",
			mode:  ModeFunction,
			input: "int f(int a, float b) { int c = -a; return c * (b + 1); }",
			expected: `FunctionDeclaration int f(int a, float b)
  Block
    Assignment
      Variable int c
      BinaryOp *
        Constant -1
        Variable a
    ReturnStatement
      BinaryOp *
        Variable c
        BinaryOp +
          Variable b
          Constant 1
`,
		},
		{
			name:  "Translation Unit",
			mode:  ModeTranslationUnit,
			input: "int f() { return 1; } double g() {}",
			expected: `TranslationUnit
  FunctionDeclaration int f()
    Block
      ReturnStatement
        Constant 1
  FunctionDeclaration double g()
    Block
`,
		},
		{
			name:     "Expression",
			mode:     ModeExpression,
			input:    "x / 2",
			expected: "BinaryOp /\n  Variable x\n  Constant 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.input, Config{Mode: tt.mode})
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := Dump(res.Root()); got != tt.expected {
				t.Errorf("Dump() mismatch\n got:\n%s\n want:\n%s", got, tt.expected)
			}
		})
	}

	if got := Dump(nil); got != "<nil>\n" {
		t.Errorf("Dump(nil) = %q", got)
	}
}

func TestNodeString(t *testing.T) {
	fn, err := ParseFunction("int f(int a) { int b = a + 1; return b; }")
	if err != nil {
		t.Fatalf("ParseFunction() error = %v", err)
	}
	if got, want := fn.String(), "FunctionDeclaration(int f(int a), body=Block(len=2))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := fn.Body.Statements[0].String(), "Assignment(int b = (a + 1))"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := fn.Body.Statements[1].String(), "ReturnStatement(b)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
