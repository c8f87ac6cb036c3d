package pipeline

import "golang.org/x/sys/unix"

// saveStdin duplicates descriptor 0 and returns a restore function
// that puts the saved descriptor back. Run acquires it on entry and
// restores it on every exit path, so redirection side effects of a
// pipeline can never outlive the line that caused them.
func saveStdin() (restore func() error, err error) {
	saved, err := unix.Dup(0)
	if err != nil {
		return nil, err
	}
	return func() error {
		defer unix.Close(saved)
		return unix.Dup3(saved, 0, 0)
	}, nil
}
