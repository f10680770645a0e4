//go:build windows

package githook

import (
	"io/fs"
	"os"
)

// permissionsSupported reports whether the platform has POSIX permission bits.
const permissionsSupported = false

// setMode is a no-op: Windows has no execute bit and git for Windows runs
// hooks through its bundled sh regardless.
func setMode(string, os.FileMode) error {
	return nil
}

func isExecutable(fs.FileMode) bool {
	return true
}
