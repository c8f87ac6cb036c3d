package pipeline

import (
	"fmt"
	"io"
	"strings"
)

// Result records the termination of one pipeline stage.
type Result struct {
	// Args is the stage's argument vector as compiled.
	Args []string

	// Code is the exit code reported by the program, or 255 when the
	// stage failed before exec. Meaningless when Signaled is set.
	Code int

	// Signaled marks a stage terminated by a signal rather than a
	// normal exit; no numeric code is reported for it.
	Signaled bool
}

// String renders the one-line status report for the stage.
func (r Result) String() string {
	if r.Signaled {
		return fmt.Sprintf("%s Signal Rec!", strings.Join(r.Args, " "))
	}
	return fmt.Sprintf("%s exit status: %d", strings.Join(r.Args, " "), r.Code)
}

// WriteReport emits one status line per stage, in launch order.
func WriteReport(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}
