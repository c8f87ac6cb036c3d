package core

import (
	"fmt"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/pborman/getopt/v2"
)

// AllBuiltins holds a list of all registered shell builtins. Builtins
// run inside the interpreter process, before any pipeline is compiled.
var AllBuiltins = make(map[string]Builtin)

type Builtin interface {
	Main(i *Interpreter, args []string) int
}

type BuiltinFunc func(i *Interpreter, args []string) int

func (f BuiltinFunc) Main(i *Interpreter, args []string) int {
	return f(i, args)
}

var _ Builtin = (BuiltinFunc)(nil)

func init() {
	AllBuiltins["exit"] = BuiltinFunc(Exit)
	AllBuiltins["help"] = BuiltinFunc(Help)
}

// Exit is the exit shell builtin. With no argument it reuses the last
// status, so "exit" after a failing pipeline propagates the failure.
func Exit(i *Interpreter, args []string) int {
	opts := getopt.New()
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	optErr := opts.Getopt(args, nil)
	if optErr != nil || *helpOpt {
		fmt.Fprintln(i.stdout, "usage: exit [N]")
		fmt.Fprintln(i.stdout, "Exit the shell with status N, or the last status.")
		if optErr != nil {
			return 2
		}
		return 0
	}

	code := i.lastStatus
	if rest := opts.Args(); len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			fmt.Fprintf(i.stderr, "exit: %s: numeric argument required\n", rest[0])
			n = 2
		}
		code = n
	}

	i.quit = true
	return code
}

// Help is the help shell builtin.
func Help(i *Interpreter, args []string) int {
	opts := getopt.New()
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if optErr := opts.Getopt(args, nil); optErr != nil || *helpOpt {
		fmt.Fprintln(i.stdout, "usage: help")
		fmt.Fprintln(i.stdout, "List shell builtins and operators.")
		return 0
	}

	names := make([]string, 0, len(AllBuiltins))
	for name := range AllBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(i.stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "Builtins:")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s\n", name)
	}
	fmt.Fprintln(w, "Operators:")
	fmt.Fprintln(w, "\t|\tconnect one stage's output to the next stage's input")
	fmt.Fprintln(w, "\t<\tread standard input from a file")
	fmt.Fprintln(w, "\t>\twrite standard output to a file")
	w.Flush()
	return 0
}
