package main

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sourcegraph/snipper"
)

func composerFromFlags() (*snipper.Composer, error) {
	conf, err := configFromPaths(*configPath)
	if err != nil {
		return nil, err
	}
	return snipper.NewComposer(conf)
}

// configFromPaths reads the first configuration file that exists in the list of paths, or returns
// the default configuration if there is none.
func configFromPaths(pathList string) (snipper.Config, error) {
	for _, path := range filepath.SplitList(pathList) {
		data, err := ioutil.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return snipper.Config{}, errors.WithMessage(err, "reading snipper config file (from -config flag)")
		}
		conf, err := snipper.ParseConfig(data)
		if err != nil {
			return snipper.Config{}, errors.WithMessagef(err, "config file %s", path)
		}
		return conf, nil
	}
	log.Printf("# No snipper config file found (search paths: %s), using defaults.", pathList)
	return snipper.DefaultConfig(), nil
}
