package main

import (
	"flag"
	"log"
	"net"
	"net/http"
)

func init() {
	flagSet := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		httpAddr = flagSet.String("http", ":5090", "HTTP listen address")
		basePath = flagSet.String("base", "/", "base URL `path` of the snippets and preview endpoints")
	)

	handler := func(args []string) error {
		flagSet.Parse(args)

		host, port, err := net.SplitHostPort(*httpAddr)
		if err != nil {
			return err
		}
		if host == "" {
			host = "0.0.0.0"
		}

		composer, err := composerFromFlags()
		if err != nil {
			return err
		}
		log.Printf("# Snippets are available at http://%s:%s%ssnippets (POST)", host, port, *basePath)
		return http.ListenAndServe(*httpAddr, composer.Handler(*basePath))
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "start a web server that composes snippets",
		LongDescription:  "The serve subcommand starts a web server that composes snippets for hits POSTed as JSON to the snippets endpoint and renders an HTML preview of them at the preview endpoint.",
		handler:          handler,
	})
}
