//go:build !windows

package system

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// checkWritable проверяет право записи в файл
func checkWritable(path string) error {
	if err := unix.Access(path, unix.W_OK); err != nil {
		return &fs.PathError{Op: "access", Path: path, Err: err}
	}
	return nil
}
