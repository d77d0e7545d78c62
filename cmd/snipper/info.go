package main

import (
	"encoding/json"
	"flag"
	"fmt"
)

func init() {
	flagSet := flag.NewFlagSet("info", flag.ExitOnError)

	handler := func(args []string) error {
		flagSet.Parse(args)
		conf, err := configFromPaths(*configPath)
		if err != nil {
			return err
		}

		confJSON, err := json.MarshalIndent(conf, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(confJSON))
		return nil
	}

	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "print snipper configuration",
		LongDescription:  "The info subcommand prints the configuration that the other subcommands use.",
		handler:          handler,
	})
}
