package domain

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/shock/pyliner/internal/adapter"
	m "github.com/shock/pyliner/internal/model"
)

// installDirMarker identifies directories holding installed distributions.
const installDirMarker = "site-packages"

// distInfoSuffix marks a distribution metadata directory.
const distInfoSuffix = ".dist-info"

// directURLFile is the metadata file recording how a distribution was
// installed (PEP 610).
const directURLFile = "direct_url.json"

// fileURLScheme prefixes local filesystem URLs in install metadata.
const fileURLScheme = "file://"

// directURL is the subset of direct_url.json consulted for editable installs.
type directURL struct {
	URL     string `json:"url"`
	DirInfo struct {
		Editable bool `json:"editable"`
	} `json:"dir_info"`
}

// SearchPathResolver assembles the ordered list of root directories in which
// bare module references are resolved. Order determines precedence: the entry
// file's directory first, then the interpreter's sys.path, then discovered
// editable-install source directories.
type SearchPathResolver struct {
	storage adapter.Storage
	sysPath adapter.SysPathProvider
}

// NewSearchPathResolver constructs a SearchPathResolver.
func NewSearchPathResolver(storage adapter.Storage, sysPath adapter.SysPathProvider) *SearchPathResolver {
	return &SearchPathResolver{storage: storage, sysPath: sysPath}
}

// Roots returns the search roots for a run starting in entryDir.
func (r *SearchPathResolver) Roots(entryDir m.Path) ([]m.Path, error) {
	roots := []m.Path{entryDir}
	seen := map[m.Path]struct{}{entryDir: {}}

	sysPaths, err := r.sysPath.SysPath()
	if err != nil {
		return nil, err
	}

	for _, path := range sysPaths {
		if _, ok := seen[path]; ok {
			continue
		}

		seen[path] = struct{}{}
		roots = append(roots, path)
	}

	editable, err := r.editableRoots(roots)
	if err != nil {
		return nil, err
	}

	for _, path := range editable {
		if _, ok := seen[path]; ok {
			continue
		}

		seen[path] = struct{}{}
		roots = append(roots, path)
	}

	slog.Debug("search roots resolved", "count", len(roots))

	return roots, nil
}

// editableRoots scans installed-package directories for distributions whose
// metadata declares an editable install pointing at a local source tree.
// Malformed metadata is a boundary format violation and aborts the run.
func (r *SearchPathResolver) editableRoots(roots []m.Path) ([]m.Path, error) {
	var found []m.Path

	for _, root := range roots {
		if !strings.Contains(string(root), installDirMarker) || !r.storage.IsDir(root) {
			continue
		}

		entries, err := r.storage.ListDir(root)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			if !strings.HasSuffix(entry, distInfoSuffix) {
				continue
			}

			metaPath := m.Path(filepath.Join(string(root), entry, directURLFile))
			if !r.storage.Exists(metaPath) {
				continue
			}

			raw, err := r.storage.ReadFile(metaPath)
			if err != nil {
				return nil, err
			}

			var meta directURL
			if err := json.Unmarshal(raw, &meta); err != nil {
				return nil, fmt.Errorf("malformed %s: %w", metaPath, err)
			}

			if !meta.DirInfo.Editable || !strings.HasPrefix(meta.URL, fileURLScheme) {
				continue
			}

			local := m.Path(strings.TrimPrefix(meta.URL, fileURLScheme))

			slog.Debug("editable install discovered", "dist", entry, "path", local)
			found = append(found, local)
		}
	}

	return found, nil
}
