package shell

import "errors"

// Compile errors surfaced to the user verbatim after the
// "Invalid command:" prefix.
var (
	ErrMultipleInput  = errors.New("multiple input happened")
	ErrMultipleOutput = errors.New("multiple output happened")
	ErrNeedInputFile  = errors.New("need input file name after <")
	ErrNeedOutputFile = errors.New("need output file name after >")
	ErrBadInputFile   = errors.New("invalid input file name")
	ErrBadOutputFile  = errors.New("invalid output file name")
	ErrNoCommand      = errors.New("No command find")
)

// Stage describes one program invocation within a pipeline: its
// argument vector, optional redirections, and whether it is connected
// to its neighbors by pipes.
type Stage struct {
	// Args is the argument vector; Args[0] names the program.
	Args []string

	// InputRedirect and OutputRedirect are file paths for "<" and ">"
	// redirections, empty when absent.
	InputRedirect  string
	OutputRedirect string

	// ReadsFromPrevious and WritesToNext mark the pipe connections of
	// this stage. Both are false for a single-stage pipeline.
	ReadsFromPrevious bool
	WritesToNext      bool

	// Err holds the first compile error found in this stage. A stage
	// with a non-nil Err must never be launched.
	Err error
}

// Pipeline is the ordered sequence of stages compiled from one input
// line. It is built fresh per line and carries no state across lines.
type Pipeline []*Stage

// Err returns the first compile error across the pipeline's stages in
// order, or nil if every stage is valid.
func (p Pipeline) Err() error {
	for _, s := range p {
		if s.Err != nil {
			return s.Err
		}
	}
	return nil
}

// Compile parses and validates one input line, producing one stage per
// pipeline element. Every stage is compiled even when an earlier one
// fails, so each stage's own error is available; the caller must check
// Err before launching anything.
func Compile(line string) Pipeline {
	groups := Split(line)
	pipeline := make(Pipeline, 0, len(groups))
	for i, tokens := range groups {
		pipeline = append(pipeline, compileStage(tokens, i, len(groups)))
	}
	return pipeline
}

// compileStage scans one stage's tokens left to right. The first error
// stops the scan for this stage.
func compileStage(tokens []string, index, total int) *Stage {
	stage := &Stage{
		ReadsFromPrevious: total > 1 && index > 0,
		WritesToNext:      total > 1 && index < total-1,
	}

	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case OpInput:
			if stage.InputRedirect != "" {
				stage.Err = ErrMultipleInput
				return stage
			}
			if i+1 >= len(tokens) {
				stage.Err = ErrNeedInputFile
				return stage
			}
			i++
			stage.InputRedirect = tokens[i]
			if IsOperator(stage.InputRedirect) {
				stage.Err = ErrBadInputFile
				return stage
			}

		case OpOutput:
			if stage.OutputRedirect != "" {
				stage.Err = ErrMultipleOutput
				return stage
			}
			if i+1 >= len(tokens) {
				stage.Err = ErrNeedOutputFile
				return stage
			}
			i++
			stage.OutputRedirect = tokens[i]
			if IsOperator(stage.OutputRedirect) {
				stage.Err = ErrBadOutputFile
				return stage
			}

		default:
			stage.Args = append(stage.Args, tokens[i])
		}
	}

	if len(stage.Args) == 0 {
		stage.Err = ErrNoCommand
	}
	return stage
}
