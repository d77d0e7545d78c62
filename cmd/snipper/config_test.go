package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sourcegraph/snipper"
)

func TestConfigFromPaths(t *testing.T) {
	dir, err := ioutil.TempDir("", "snipper")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	missing := filepath.Join(dir, "missing.yaml")
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.json")
	if err := ioutil.WriteFile(first, []byte("lowerBound: 10\nupperBound: 20\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(second, []byte(`{"lowerBound": 30, "upperBound": 40}`), 0600); err != nil {
		t.Fatal(err)
	}

	t.Run("first existing wins", func(t *testing.T) {
		conf, err := configFromPaths(missing + string(os.PathListSeparator) + first + string(os.PathListSeparator) + second)
		if err != nil {
			t.Fatal(err)
		}
		if conf.LowerBound != 10 || conf.UpperBound != 20 {
			t.Errorf("got bounds %d/%d, want 10/20", conf.LowerBound, conf.UpperBound)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		conf, err := configFromPaths(missing)
		if err != nil {
			t.Fatal(err)
		}
		if conf != snipper.DefaultConfig() {
			t.Errorf("got %+v, want defaults", conf)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		if err := ioutil.WriteFile(bad, []byte("upperBound: 1\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := configFromPaths(bad); err == nil {
			t.Error("got nil error, want non-nil")
		}
	})
}
