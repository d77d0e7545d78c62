package main

import (
	"flag"
	"log"
	"os"
	"text/template"
)

var usage = template.Must(template.New("").Parse(`snipper composes short, readable snippets of text around the matches an upstream highlighter marked.
For more information, see https://github.com/sourcegraph/snipper.

Usage:

  snipper [options] command [command options]

The options are:

{{call .FlagUsage }}
The commands are:
{{range .Commands}}
  {{printf "%- 15s" .NameAndAliases}} {{.ShortDescription}}
{{- end}}

Use "snipper [command] -h" for more information about a command.

`))

var (
	configPath = flag.String("config", "snipper.yaml"+string(os.PathListSeparator)+"snipper.json", "search `paths` for the snipper configuration file (the first that exists is used)")
)

// commands contains all registered subcommands.
var commands commander

func main() {
	log.SetFlags(0)
	log.SetPrefix("")
	commands.run(flag.CommandLine, "snipper", usage, os.Args[1:])
}
