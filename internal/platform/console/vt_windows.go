//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

// utf8CodePage is the Windows code page identifier for UTF-8.
const utf8CodePage = 65001

// EnableVirtualTerminal switches the console behind f to UTF-8 output and
// turns on ANSI escape processing, which the colors and the box-drawing
// characters need on older Windows consoles. It returns an error when f
// is not a console.
func EnableVirtualTerminal(f *os.File) error {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	//nolint:errcheck // Best effort, older consoles keep their code page
	kernel32.NewProc("SetConsoleOutputCP").Call(uintptr(utf8CodePage))

	h := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
}
