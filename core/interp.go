// Package core ties the pipeline compiler and executor into an
// interactive, line-oriented interpreter.
package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/shenjiangqiu/shell/core/config"
	"github.com/shenjiangqiu/shell/core/logger"
	"github.com/shenjiangqiu/shell/core/pipeline"
	"github.com/shenjiangqiu/shell/core/shell"
)

var diagColor = color.New(color.FgRed)

// Interpreter reads one line at a time, compiles it into a pipeline,
// runs it, and reports each stage's termination status. It carries no
// state from one line to the next beyond the last exit status.
type Interpreter struct {
	Config *config.Configuration
	Log    *logger.SessionLogger

	stdin  io.ReadCloser
	stdout io.Writer
	stderr io.Writer

	lastStatus int
	quit       bool
}

// NewInterpreter wires an interpreter to the given streams. Pass the
// session logger from config.OpenEventLog, or a logger.Discard
// session when event logging is off.
func NewInterpreter(cfg *config.Configuration, log *logger.SessionLogger, stdin io.ReadCloser, stdout, stderr io.Writer) *Interpreter {
	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}

	if log == nil {
		log = logger.Discard().NewSession()
	}

	return &Interpreter{
		Config: cfg,
		Log:    log,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// LastStatus returns the status of the most recent pipeline or
// builtin: the last stage's exit code, or 1 after a compile error.
func (i *Interpreter) LastStatus() int {
	return i.lastStatus
}

// Quitting reports whether a builtin or line policy asked the
// interpreter to stop.
func (i *Interpreter) Quitting() bool {
	return i.quit
}

// Run reads and interprets lines until end of input or an exit
// request. A terminal gets a readline-driven loop with history and
// line editing; anything else gets a plain scanner that still prints
// the prompt before each line, so piped scripts see the same output
// an interactive user would.
func (i *Interpreter) Run() error {
	if f, ok := i.stdin.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
		return i.runReadline()
	}
	return i.runPlain()
}

func (i *Interpreter) runReadline() error {
	cfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(i.stdin),
		Stdout: i.stdout,
		Stderr: i.stderr,
		FuncIsTerminal: func() bool {
			return true
		},
	}
	if err := cfg.Init(); err != nil {
		return err
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		rl.SetPrompt(i.Config.Prompt)
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // input closed, quit

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return err
		}

		i.Interpret(line)
		if i.quit {
			return nil
		}
	}
}

func (i *Interpreter) runPlain() error {
	scanner := bufio.NewScanner(i.stdin)
	for {
		fmt.Fprint(i.stdout, i.Config.Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		i.Interpret(scanner.Text())
		if i.quit {
			return nil
		}
	}
}

// Interpret handles one input line: line policies, builtins, then
// compile and run. The compiled pipeline never outlives the call.
func (i *Interpreter) Interpret(line string) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		i.quit = i.Config.OnEmptyLine == config.PolicyExit
		return

	case strings.HasPrefix(trimmed, "#"):
		i.quit = i.Config.OnCommentLine == config.PolicyExit
		return
	}

	tokens := shell.Tokenize(line)
	if builtin, ok := AllBuiltins[tokens[0]]; ok {
		i.lastStatus = builtin.Main(i, tokens)
		_ = i.Log.Builtin(line, tokens[0])
		return
	}

	compiled := shell.Compile(line)
	if err := compiled.Err(); err != nil {
		diagColor.Fprintf(i.stderr, "Invalid command:%v\n", err)
		i.lastStatus = 1
		_ = i.Log.CompileError(line, err)
		return
	}

	results, runErr := pipeline.Run(compiled, i.stderr)
	_ = pipeline.WriteReport(i.stdout, results)
	if runErr != nil {
		fmt.Fprintln(i.stderr, runErr)
	}

	statuses := make([]string, 0, len(results))
	for _, r := range results {
		statuses = append(statuses, r.String())
	}
	_ = i.Log.Run(line, statuses)

	if len(results) > 0 {
		i.lastStatus = results[len(results)-1].Code
	}
}
