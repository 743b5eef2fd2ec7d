package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mugiliam/labcatalog/internal/apperrors"
	"github.com/rs/zerolog/log"
)

var documentExtensions = []string{".yaml", ".yml", ".json"}

func isDocumentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range documentExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadDocument reads a catalog document from disk. Images are resolved
// relative to the directory containing the file.
func LoadDocument(ctx context.Context, path string) (*Document, apperrors.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("path", path).Msg("failed to read catalog document")
		return nil, ErrUnableToReadDocument.Err(err)
	}
	d, apperr := NewDocument(ctx, data, WithSource(path, filepath.Dir(path)))
	if apperr != nil {
		return nil, apperr.Msg(path + ": " + apperr.Error())
	}
	log.Ctx(ctx).Debug().Str("path", path).Str("catalog", d.Name()).Int("entries", d.Len()).Msg("loaded catalog document")
	return d, nil
}

// expandPaths replaces directories by the catalog documents they contain.
// Directories are not searched recursively. The result is sorted per argument.
func expandPaths(paths []string) ([]string, apperrors.Error) {
	var files []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, ErrUnableToReadDocument.Err(err)
		}
		if !fi.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, ErrUnableToReadDocument.Err(err)
		}
		var dirFiles []string
		for _, e := range entries {
			if e.IsDir() || !isDocumentFile(e.Name()) {
				continue
			}
			dirFiles = append(dirFiles, filepath.Join(p, e.Name()))
		}
		sort.Strings(dirFiles)
		files = append(files, dirFiles...)
	}
	return files, nil
}

// Load reads every catalog document named by paths into a Catalog.
func Load(ctx context.Context, paths ...string) (*Catalog, apperrors.Error) {
	files, err := expandPaths(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoDocuments
	}
	docs := make([]*Document, 0, len(files))
	for _, f := range files {
		d, err := LoadDocument(ctx, f)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return New(docs...), nil
}
