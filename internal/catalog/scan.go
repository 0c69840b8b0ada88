package catalog

import (
	"emuscan/internal/fileutil"
	"emuscan/internal/stringutil"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Scan reads root and builds a Catalog. Each immediate subdirectory is a
// system, dot-prefixed ones included; its visible regular files, extension stripped, are its games.
// Nested directories inside a system are ignored.
func Scan(fs afero.Fs, root string, logger *slog.Logger) (*Catalog, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return nil, newCatalogError("stat", root, err)
	}
	if !info.IsDir() {
		return nil, newCatalogError("stat", root, ErrNotDirectory)
	}

	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, newCatalogError("read_root", root, err)
	}

	collator := NewCollator()
	var systems []System

	for _, dir := range fileutil.FilterDirectories(entries) {
		systemPath := filepath.Join(root, dir.Name())

		games, err := scanSystem(fs, systemPath, collator)
		if err != nil {
			return nil, err
		}

		logger.Debug("Scanned system", "system", dir.Name(), "games", len(games))
		systems = append(systems, System{Name: dir.Name(), Games: games})
	}

	return New(systems), nil
}

func scanSystem(fs afero.Fs, systemPath string, collator *Collator) ([]string, error) {
	entries, err := afero.ReadDir(fs, systemPath)
	if err != nil {
		return nil, newCatalogError("read_system", systemPath, err)
	}

	games := lo.FilterMap(fileutil.FilterVisibleFiles(entries), func(entry os.FileInfo, _ int) (string, bool) {
		if !fileutil.IsRegularFile(fs, filepath.Join(systemPath, entry.Name()), entry) {
			return "", false
		}
		return stringutil.StripExtension(entry.Name()), true
	})

	collator.Sort(games)
	return games, nil
}
