package compiler

import (
	"errors"
	"testing"
)

func FuzzParse(f *testing.F) {
	f.Add("int f() { return 1; }")
	f.Add("int main(int a, float b) { double c = -a * (b + 2); c / 3; return c; }")
	f.Add("1 2;")
	f.Add("int f( {")
	f.Add("return @;")
	f.Add("99999999999999999999999")

	f.Fuzz(func(t *testing.T, src string) {
		for _, mode := range []Mode{ModeTranslationUnit, ModeFunction, ModeBlock, ModeStatement, ModeExpression} {
			res, err := Parse(src, Config{Mode: mode})
			if err != nil {
				if res != nil {
					t.Fatalf("%s: result returned alongside error %v", mode, err)
				}
				var lexErr *LexError
				var synErr *SyntaxError
				if !errors.As(err, &lexErr) && !errors.As(err, &synErr) {
					t.Fatalf("%s: unexpected error type %T: %v", mode, err, err)
				}
				_ = FormatError(err, "fuzz", src)
				continue
			}
			_ = Dump(res.Root())
		}
	})
}
