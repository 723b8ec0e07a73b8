//go:build windows

package system

import (
	"io/fs"

	"golang.org/x/sys/windows"
)

// checkWritable проверяет право записи в файл
func checkWritable(path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return &fs.PathError{Op: "access", Path: path, Err: err}
	}

	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return &fs.PathError{Op: "access", Path: path, Err: err}
	}

	if attrs&windows.FILE_ATTRIBUTE_READONLY != 0 {
		return &fs.PathError{Op: "access", Path: path, Err: fs.ErrPermission}
	}

	return nil
}
