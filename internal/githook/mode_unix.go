//go:build !windows

package githook

import (
	"io/fs"
	"os"
)

// permissionsSupported reports whether the platform has POSIX permission bits.
const permissionsSupported = true

func setMode(path string, mode os.FileMode) error {
	return os.Chmod(path, mode)
}

func isExecutable(mode fs.FileMode) bool {
	return mode&0o100 != 0
}
