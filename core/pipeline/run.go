// Package pipeline materializes a compiled shell pipeline as live OS
// processes, wires their descriptors, and collects one termination
// status per stage in launch order.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/shenjiangqiu/shell/core/shell"
)

// launchFailureCode is the status recorded for a stage that never
// reached exec: a redirection file that would not open, a program that
// could not be found, or a failed spawn. It matches the wait status of
// a child calling exit(-1).
const launchFailureCode = 255

// proc tracks one launched (or failed-to-launch) stage until it is
// collected.
type proc struct {
	args   []string
	handle *os.Process // nil when the stage never launched
}

// Run launches every stage of a compiled pipeline and waits for each
// in launch order, returning one Result per stage. Launch failures of
// a single stage are local to it: the OS error goes to stderr, the
// stage gets a synthetic non-zero Result, and its siblings run and are
// collected normally.
//
// Run returns an error only for control-plane failures: a pipeline
// that still carries a compile error, a pipe that could not be
// created, or a wait that failed. In the latter two cases the Results
// gathered so far are returned alongside the error.
func Run(p shell.Pipeline, stderr io.Writer) ([]Result, error) {
	if err := p.Err(); err != nil {
		return nil, err
	}

	restore, err := saveStdin()
	if err != nil {
		return nil, fmt.Errorf("saving stdin: %w", err)
	}
	defer restore()

	procs := make([]*proc, 0, len(p))

	// Exactly one pipe is in flight at a time: created just before the
	// stage that writes it, its read end held only until the next
	// stage is launched. prevRead is that held read end.
	var prevRead *os.File
	for _, stage := range p {
		var nextRead, writeEnd *os.File
		if stage.WritesToNext {
			nextRead, writeEnd, err = os.Pipe()
			if err != nil {
				if prevRead != nil {
					prevRead.Close()
				}
				results, waitErr := collect(procs)
				if waitErr != nil {
					return results, waitErr
				}
				return results, fmt.Errorf("cannot create the pipe: %w", err)
			}
		}

		procs = append(procs, launch(stage, prevRead, writeEnd, stderr))

		// The parent's copies of every descriptor handed to the child
		// are closed as soon as the stage is launched. A write end
		// left open here would keep the downstream reader from ever
		// seeing end-of-stream.
		if prevRead != nil {
			prevRead.Close()
		}
		if writeEnd != nil {
			writeEnd.Close()
		}
		prevRead = nextRead
	}

	return collect(procs)
}

// launch starts one stage. prevRead and writeEnd are the pipe ends the
// stage is connected to, either possibly nil; the caller remains
// responsible for closing them. Redirections override pipe ends, the
// same way the original descriptor is replaced after pipe wiring.
//
// Descriptors from os.Pipe and os.Open are close-on-exec, so the child
// only ever sees the three descriptors passed in Files; the unused end
// of the in-flight pipe never leaks across exec.
func launch(stage *shell.Stage, prevRead, writeEnd *os.File, stderr io.Writer) *proc {
	pr := &proc{args: stage.Args}

	var toClose []*os.File
	defer func() {
		for _, f := range toClose {
			f.Close()
		}
	}()

	stdin, stdout := os.Stdin, os.Stdout
	if stage.ReadsFromPrevious {
		stdin = prevRead
	}
	if stage.WritesToNext {
		stdout = writeEnd
	}

	if stage.InputRedirect != "" {
		f, err := os.Open(stage.InputRedirect)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return pr
		}
		toClose = append(toClose, f)
		stdin = f
	}
	if stage.OutputRedirect != "" {
		f, err := os.OpenFile(stage.OutputRedirect, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return pr
		}
		toClose = append(toClose, f)
		stdout = f
	}

	path, err := exec.LookPath(stage.Args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return pr
	}

	handle, err := os.StartProcess(path, stage.Args, &os.ProcAttr{
		Files: []*os.File{stdin, stdout, os.Stderr},
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return pr
	}

	pr.handle = handle
	return pr
}

// collect waits for each stage in launch order, blocking on the first
// until it exits even when a later stage finishes sooner. A failed
// wait aborts collection; the Results gathered so far are returned
// with the error.
func collect(procs []*proc) ([]Result, error) {
	results := make([]Result, 0, len(procs))
	for _, pr := range procs {
		res := Result{Args: pr.args}
		if pr.handle == nil {
			res.Code = launchFailureCode
			results = append(results, res)
			continue
		}

		state, err := pr.handle.Wait()
		if err != nil {
			return results, err
		}
		if signaled(state) {
			res.Signaled = true
		} else {
			res.Code = state.ExitCode()
		}
		results = append(results, res)
	}
	return results, nil
}
