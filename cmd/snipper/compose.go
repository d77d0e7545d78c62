package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/sourcegraph/snipper"
)

func init() {
	flagSet := flag.NewFlagSet("compose", flag.ExitOnError)
	var (
		query      = flagSet.String("query", "", "free-text `query` for the dynamic passage")
		noBolding  = flagSet.Bool("no-bolding", false, "ignore highlight markers (no snippets are composed)")
		jsonOutput = flagSet.Bool("json", false, "print the field snippets as JSON")
		passage    = flagSet.Bool("passage", false, "also print the dynamic passage")
	)

	handler := func(args []string) error {
		flagSet.Parse(args)
		if flagSet.NArg() > 1 {
			return &usageError{fmt.Errorf("expected at most 1 file argument, got %d", flagSet.NArg())}
		}

		var in io.Reader = os.Stdin
		if flagSet.NArg() == 1 {
			f, err := os.Open(flagSet.Arg(0))
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		data, err := ioutil.ReadAll(in)
		if err != nil {
			return err
		}

		composer, err := composerFromFlags()
		if err != nil {
			return err
		}
		return composeText(os.Stdout, composer, string(data), *query, !*noBolding, *jsonOutput, *passage)
	}

	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "compose snippets for one field",
		LongDescription:  "The compose subcommand reads highlighter-tagged text from a file (or stdin) and prints the composed snippets, one per line, with the configured tags around the highlighted ranges.",
		aliases:          []string{"c"},
		handler:          handler,
	})
}

func composeText(w io.Writer, composer *snipper.Composer, tagged, query string, bolding, jsonOutput, passage bool) error {
	hit := snipper.Hit{Fields: []snipper.Field{{Name: "text", Content: tagged, Snip: true, DynSnip: passage}}}
	result, err := composer.ComposeHit(context.Background(), query, bolding, hit)
	if err != nil {
		return err
	}
	fs := result.Snippets["text"]

	if jsonOutput {
		data, err := json.MarshalIndent(fs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for _, r := range fs.Snippets {
		if _, err := fmt.Fprintln(w, r.Highlighted(composer.Config.Tags)); err != nil {
			return err
		}
	}
	if passage {
		_, err := fmt.Fprintf(w, "passage: %s\n", result.Passages["text"])
		return err
	}
	return nil
}
