// Package term clears the terminal attached to a writer.
package term

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// clearSequence moves the cursor home, clears the screen, and drops the
// scrollback buffer.
const clearSequence = "\x1b[H\x1b[2J\x1b[3J"

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Clear wipes the terminal behind w. Writers that are not terminals are
// left untouched so redirected output never picks up escape codes.
func Clear(w io.Writer) error {
	if !IsTerminal(w) {
		return nil
	}
	if err := enableVirtualTerminal(w.(*os.File)); err != nil {
		return fmt.Errorf("enable terminal escapes: %w", err)
	}
	if _, err := io.WriteString(w, clearSequence); err != nil {
		return fmt.Errorf("clear terminal: %w", err)
	}
	return nil
}
