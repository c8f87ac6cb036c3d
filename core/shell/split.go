// Package shell compiles a single input line into a validated pipeline
// of stage descriptors. It recognizes exactly three operators: "|"
// separates stages, "<" and ">" redirect a stage's standard input and
// output. There is no quoting, escaping, globbing or expansion of any
// kind; tokens are whitespace-delimited words.
package shell

import "strings"

// Operator tokens. Anything else is a program name or argument.
const (
	OpPipe   = "|"
	OpInput  = "<"
	OpOutput = ">"
)

// IsOperator reports whether tok is one of the three recognized
// operator tokens.
func IsOperator(tok string) bool {
	switch tok {
	case OpPipe, OpInput, OpOutput:
		return true
	}
	return false
}

// Tokenize splits one stage's text into non-empty tokens on runs of
// whitespace. Empty input yields no tokens.
func Tokenize(stage string) []string {
	return strings.Fields(stage)
}

// Split breaks an input line into the token sequences of its pipeline
// stages, cut at each "|" that stands alone as a token. Splitting
// happens after tokenization so a "|" embedded inside a word, such as
// the filename "a|b", is never treated as a stage separator.
//
// A line with no pipe token yields a single stage. An empty line
// yields one empty stage so compilation reports a missing command
// instead of silently succeeding.
func Split(line string) [][]string {
	var out [][]string
	stage := []string{}
	for _, tok := range Tokenize(line) {
		if tok == OpPipe {
			out = append(out, stage)
			stage = []string{}
			continue
		}
		stage = append(stage, tok)
	}
	out = append(out, stage)
	return out
}
