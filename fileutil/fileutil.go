// Package fileutil provides small path and file metadata helpers.
//
// Predicates (Exists, IsFile, IsDir) never fail: a path that cannot be
// inspected reports false. The pure path helpers (Name, Extension,
// DirPath, ParentDir) treat both / and \ as separators regardless of
// platform and never touch the filesystem.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFile reports that a path exists but is not a regular file.
var ErrNotFile = errors.New("fileutil: not a regular file")

// Exists reports whether path exists, whatever its type.
func Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Size returns the size in bytes of the regular file at path.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("fileutil: failed to stat path: %w", err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%w: %s", ErrNotFile, path)
	}
	return info.Size(), nil
}

// ModTime returns the last modification time of the regular file at path.
func ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("fileutil: failed to stat path: %w", err)
	}
	if !info.Mode().IsRegular() {
		return time.Time{}, fmt.Errorf("%w: %s", ErrNotFile, path)
	}
	return info.ModTime(), nil
}

// lastSeparator returns the index of the last / or \ in path, or -1.
func lastSeparator(path string) int {
	return max(strings.LastIndexByte(path, '/'), strings.LastIndexByte(path, '\\'))
}

// Name returns the final element of path. A path ending in a separator
// has an empty name.
func Name(path string) string {
	return path[lastSeparator(path)+1:]
}

// Extension returns the extension of the final path element, including
// the leading dot, or "" when there is none. A name that starts with a
// dot (".bashrc") has no extension.
func Extension(path string) string {
	name := Name(path)
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return ""
	}
	return name[dot:]
}

// NameWithoutExt returns the final path element with its extension
// stripped, so Name(p) == NameWithoutExt(p) + Extension(p).
func NameWithoutExt(path string) string {
	return strings.TrimSuffix(Name(path), Extension(path))
}

// HasExtension reports whether path's extension equals ext, compared
// case-insensitively. ext includes the leading dot, e.g. ".png".
func HasExtension(path, ext string) bool {
	got := Extension(path)
	return got != "" && strings.EqualFold(got, ext)
}

// DirPath returns everything before the final separator: "" when the
// separator is the first byte, "." when there is no separator at all.
func DirPath(path string) string {
	sep := lastSeparator(path)
	if sep < 0 {
		return "."
	}
	return path[:sep]
}

// ParentDir returns the parent directory of path. Trailing separators
// are ignored, the filesystem root collapses to "/", and a path with no
// parent yields ".".
func ParentDir(path string) string {
	if path == "" {
		return ""
	}
	trimmed := strings.TrimRight(path, "/\\")
	if trimmed == "" {
		return "/"
	}
	sep := lastSeparator(trimmed)
	if sep < 0 {
		return "."
	}
	if sep == 0 {
		return "/"
	}
	return trimmed[:sep]
}

// AppDir returns the directory containing the running executable.
func AppDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("fileutil: failed to locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}
