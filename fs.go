package snipper

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ReadFile reads the whole file at path in fs.
func ReadFile(fs http.FileSystem, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ioutil.ReadAll(f)
}

// WalkFileSystem walks fs breadth-first, in name order, and calls walkFn with the path and
// contents of each file for which filter returns true. Dot-files and dot-dirs are skipped.
func WalkFileSystem(fs http.FileSystem, filter func(path string) bool, walkFn func(path string, data []byte) error) error {
	root, err := fs.Open("/")
	if err != nil {
		return err
	}
	fi, err := root.Stat()
	root.Close()
	if err != nil {
		return err
	}

	type queueItem struct {
		path string
		fi   os.FileInfo
	}
	queue := []queueItem{{path: "/", fi: fi}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.path != "/" && strings.HasPrefix(item.fi.Name(), ".") {
			continue
		}
		switch {
		case item.fi.Mode().IsDir():
			dir, err := fs.Open(item.path)
			if err != nil {
				return err
			}
			entries, err := dir.Readdir(-1)
			dir.Close()
			if err != nil {
				return err
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
			for _, e := range entries {
				queue = append(queue, queueItem{path: filepath.ToSlash(filepath.Join(item.path, e.Name())), fi: e})
			}
		case item.fi.Mode().IsRegular():
			path := strings.TrimPrefix(item.path, "/")
			if filter != nil && !filter(path) {
				continue
			}
			data, err := ReadFile(fs, item.path)
			if err != nil {
				return errors.WithMessagef(err, "read %s", item.path)
			}
			if err := walkFn(path, data); err != nil {
				return errors.WithMessagef(err, "walk %s", item.path)
			}
		default:
			return fmt.Errorf("file %s has unsupported mode %o (symlinks and other special files are not supported)", item.path, item.fi.Mode())
		}
	}
	return nil
}

// HitsFromFileSystem returns one hit per file of fs accepted by filter. The file path is the hit
// ID and the file contents (tagged text) its single field, field, with both snippets and a dynamic
// passage requested.
func HitsFromFileSystem(fs http.FileSystem, filter func(path string) bool, field string) ([]Hit, error) {
	var hits []Hit
	err := WalkFileSystem(fs, filter, func(path string, data []byte) error {
		hits = append(hits, Hit{
			ID:     path,
			Fields: []Field{{Name: field, Content: string(data), Snip: true, DynSnip: true}},
		})
		return nil
	})
	return hits, err
}
