package frontmatter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrDirectoryRead matches failures to list the documents directory.
var ErrDirectoryRead = errors.New("frontmatter: directory read failed")

// ErrDocumentRead matches failures to read a listed document.
var ErrDocumentRead = errors.New("frontmatter: document read failed")

// Loader lists and reads the documents of a single directory. Label is the
// directory as the user named it and prefixes every reported path.
type Loader struct {
	fs    fs.FS
	label string
}

// NewLoader constructs a Loader over the root of filesystem.
func NewLoader(filesystem fs.FS, label string) *Loader {
	return &Loader{fs: filesystem, label: label}
}

// DirLoader returns a Loader for a directory on disk.
func DirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir), dir)
}

// List returns the regular files directly inside the root, in lexical
// directory-listing order. Sub-directories are not traversed.
func (l *Loader) List() ([]string, error) {
	entries, err := fs.ReadDir(l.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryRead, l.label, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the contents of a listed document.
func (l *Loader) Read(name string) ([]byte, error) {
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDocumentRead, l.Path(name), err)
	}
	return data, nil
}

// Path returns name as a path under the loader's label.
func (l *Loader) Path(name string) string {
	if l.label == "" {
		return name
	}
	return filepath.Join(l.label, name)
}
