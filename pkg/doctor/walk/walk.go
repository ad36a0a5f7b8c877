// Package walk provides a post-order file-tree traversal parameterized by a
// per-entry visitor, kept separate from check execution so the walk can be
// tested and reused on its own.
package walk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Visitor is invoked once per visited entry. Returning an error aborts the
// traversal.
type Visitor func(path string, entry fs.DirEntry) error

// Walk traverses the tree rooted at root depth-first, children before their
// parent: a directory's entries are visited (recursing into subdirectories)
// and the directory itself is reported last. Entries are visited in the
// lexical order returned by os.ReadDir, so traversal order is deterministic.
//
// The root itself is not reported. Any directory read error aborts the whole
// traversal.
func Walk(root string, visit Visitor) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("reading %s: %w", root, err)
	}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		if entry.IsDir() {
			if err := Walk(path, visit); err != nil {
				return err
			}
		}

		if err := visit(path, entry); err != nil {
			return err
		}
	}

	return nil
}
