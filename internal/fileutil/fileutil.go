package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

const HiddenPrefix = "."

func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenPrefix)
}

// FilterVisibleFiles keeps entries that are not directories and not hidden.
func FilterVisibleFiles(entries []os.FileInfo) []os.FileInfo {
	return lo.Filter(entries, func(entry os.FileInfo, _ int) bool {
		return !entry.IsDir() && !IsHidden(entry.Name())
	})
}

// FilterDirectories keeps directory entries, hidden ones included.
func FilterDirectories(entries []os.FileInfo) []os.FileInfo {
	return lo.Filter(entries, func(entry os.FileInfo, _ int) bool {
		return entry.IsDir()
	})
}

// IsRegularFile reports whether info describes a regular file, following a
// symlink through fs when the entry is one.
func IsRegularFile(fs afero.Fs, path string, info os.FileInfo) bool {
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := fs.Stat(path)
		if err != nil {
			return false
		}
		info = target
	}
	return info.Mode().IsRegular()
}

// WriteFile writes data to path, creating parent directories and truncating
// any existing file.
func WriteFile(fs afero.Fs, path string, data []byte) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// CopyFromOS copies a file from the host filesystem into fs.
func CopyFromOS(fs afero.Fs, src, dest string) (int64, error) {
	sourceFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	if err := fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return 0, fmt.Errorf("failed to create destination directory: %w", err)
	}

	destinationFile, err := fs.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destinationFile.Close()

	n, err := io.Copy(destinationFile, sourceFile)
	if err != nil {
		return n, fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err := destinationFile.Sync(); err != nil {
		return n, fmt.Errorf("failed to sync destination file: %w", err)
	}

	return n, nil
}
