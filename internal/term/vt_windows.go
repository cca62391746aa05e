//go:build windows

package term

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

// enableVirtualTerminal turns on ANSI escape processing for the console.
// Cygwin and MSYS ptys already interpret escapes.
func enableVirtualTerminal(f *os.File) error {
	if isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	handle := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return err
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return nil
	}
	return windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
