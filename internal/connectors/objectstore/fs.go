package objectstore

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arkivio/docload/internal/core/domain"
)

func init() {
	RegisterScheme("fs", func(opts map[string]string) (Backend, error) {
		root := opts["root"]
		if root == "" {
			return nil, fmt.Errorf("%w: fs backend requires a root option", domain.ErrInvalidInput)
		}
		return &fsBackend{root: root}, nil
	})
}

// fsBackend serves a local directory tree as an object store.
// Object paths are slash-separated and relative to the root.
type fsBackend struct {
	root string
}

var _ Backend = (*fsBackend)(nil)

func (b *fsBackend) Scan(_ context.Context, prefix string) ([]Entry, error) {
	dir := b.localPath(prefix)

	var entries []Entry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(b.root, path)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{
			Path: filepath.ToSlash(rel),
			Size: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", prefix, err)
	}

	return entries, nil
}

func (b *fsBackend) Read(_ context.Context, path string) (io.ReadCloser, error) {
	return os.Open(b.localPath(path))
}

func (b *fsBackend) Stat(_ context.Context, path string) (Entry, error) {
	info, err := os.Stat(b.localPath(path))
	if err != nil {
		return Entry{}, err
	}
	return Entry{Path: strings.TrimPrefix(path, "/"), Size: info.Size()}, nil
}

func (b *fsBackend) localPath(path string) string {
	return filepath.Join(b.root, filepath.FromSlash(strings.TrimPrefix(path, "/")))
}
