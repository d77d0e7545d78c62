package snipper

import (
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/tools/godoc/vfs/httpfs"
	"golang.org/x/tools/godoc/vfs/mapfs"
)

func TestWalkFileSystem(t *testing.T) {
	wantAllPaths := []string{
		"e.txt",
		"a/b.txt",
		"f/g.txt",
		"f/h.txt",
		"a/c/d.txt",
	}
	files := make(map[string]string, len(wantAllPaths))
	for _, path := range wantAllPaths {
		files[path] = "data " + path
	}
	files["x/y.png"] = ""        // add file that does not pass the isText filter
	files[".git/config.txt"] = "" // dot-dirs are skipped
	fs := httpfs.New(mapfs.New(files))

	var allPaths []string
	isText := func(path string) bool { return filepath.Ext(path) == ".txt" }
	collect := func(path string, data []byte) error {
		if want := "data " + path; string(data) != want {
			t.Errorf("%s: got data %q, want %q", path, data, want)
		}
		allPaths = append(allPaths, path)
		return nil
	}
	if err := WalkFileSystem(fs, isText, collect); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(allPaths, wantAllPaths) {
		t.Errorf("got paths %v, want %v", allPaths, wantAllPaths)
	}
}

func TestHitsFromFileSystem(t *testing.T) {
	fs := httpfs.New(mapfs.New(map[string]string{
		"a.txt":   "\x1fhello\x1f world",
		"b/c.txt": "plain",
	}))
	hits, err := HitsFromFileSystem(fs, nil, "content")
	if err != nil {
		t.Fatal(err)
	}
	want := []Hit{
		{ID: "a.txt", Fields: []Field{{Name: "content", Content: "\x1fhello\x1f world", Snip: true, DynSnip: true}}},
		{ID: "b/c.txt", Fields: []Field{{Name: "content", Content: "plain", Snip: true, DynSnip: true}}},
	}
	if !reflect.DeepEqual(hits, want) {
		t.Errorf("got hits %+v, want %+v", hits, want)
	}
}
