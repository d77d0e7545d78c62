package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sourcegraph/snipper"
)

// batchRequest is the JSON input of the batch subcommand.
type batchRequest struct {
	Query   string        `json:"query"`
	Bolding *bool         `json:"bolding"`
	Hits    []snipper.Hit `json:"hits"`
}

func init() {
	flagSet := flag.NewFlagSet("batch", flag.ExitOnError)
	var (
		inFile  = flagSet.String("in", "", "read the JSON request {query, bolding, hits} from `file` (default: stdin)")
		dir     = flagSet.String("dir", "", "make one hit per file in `dir` instead of reading a JSON request")
		ext     = flagSet.String("ext", ".txt", "with -dir, only use files with this `extension` (empty means all files)")
		query   = flagSet.String("query", "", "with -dir, the free-text `query` for dynamic passages")
		html    = flagSet.Bool("html", false, "print an HTML preview instead of JSON")
		outFile = flagSet.String("out", "", "write the output to `file` (default: stdout)")
	)

	handler := func(args []string) error {
		flagSet.Parse(args)
		if flagSet.NArg() != 0 {
			return &usageError{errors.New("unexpected arguments")}
		}

		var req batchRequest
		if *dir != "" {
			hits, err := snipper.HitsFromFileSystem(http.Dir(*dir), extFilter(*ext), "content")
			if err != nil {
				return err
			}
			req = batchRequest{Query: *query, Hits: hits}
		} else {
			data, err := readInput(*inFile)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(data, &req); err != nil {
				return errors.WithMessage(err, "reading batch request")
			}
		}

		composer, err := composerFromFlags()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := runBatch(&buf, composer, req, *html); err != nil {
			return err
		}
		if *outFile == "" {
			_, err := io.Copy(os.Stdout, &buf)
			return err
		}
		return ioutil.WriteFile(*outFile, buf.Bytes(), 0666)
	}

	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "compose snippets for many hits",
		LongDescription:  "The batch subcommand composes snippets and dynamic passages for a batch of hits, read as JSON or made from the files of a directory, and prints the results as JSON or as an HTML preview.",
		aliases:          []string{"b"},
		handler:          handler,
	})
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(path)
}

func extFilter(ext string) func(path string) bool {
	if ext == "" {
		return nil
	}
	return func(path string) bool { return filepath.Ext(path) == ext }
}

func runBatch(w io.Writer, composer *snipper.Composer, req batchRequest, html bool) error {
	bolding := req.Bolding == nil || *req.Bolding
	results, err := composer.ComposeHits(context.Background(), req.Query, bolding, req.Hits)
	if err != nil {
		return err
	}
	if html {
		return snipper.WriteHTML(w, results)
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
