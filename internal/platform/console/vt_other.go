//go:build !windows

package console

import "os"

// EnableVirtualTerminal is a no-op outside Windows: terminals already
// interpret ANSI escapes.
func EnableVirtualTerminal(*os.File) error {
	return nil
}
