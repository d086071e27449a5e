package fuzztests

import (
	"testing"

	"trygap/internal/diag"
	"trygap/internal/lexer"
	"trygap/internal/source"
	"trygap/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.js", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})
		// every token consumes at least one byte, so the count is bounded
		for n := 0; ; n++ {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
			if n > len(input)+1 {
				t.Fatalf("lexer did not reach EOF after %d tokens", n)
			}
		}
	})
}
