package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/template"
)

// commandLine is the top-level flag set.
var commandLine = flag.CommandLine

// command is a subcommand handler and its flag set.
type command struct {
	// FlagSet is the flag set for the command.
	FlagSet *flag.FlagSet

	// ShortDescription is shown in the top-level help message.
	ShortDescription string

	// LongDescription is shown in the command's help message.
	LongDescription string

	aliases []string

	// handler is invoked with the command's arguments (after the command name).
	handler func(args []string) error
}

func (c *command) NameAndAliases() string {
	return strings.Join(append([]string{c.FlagSet.Name()}, c.aliases...), ",")
}

func (c *command) matches(name string) bool {
	if name == c.FlagSet.Name() {
		return true
	}
	for _, alias := range c.aliases {
		if name == alias {
			return true
		}
	}
	return false
}

// printUsage writes the command's help message to w.
func (c *command) printUsage(w io.Writer, cmdName string) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s [options] %s", cmdName, c.FlagSet.Name())
	if hasFlags(c.FlagSet) {
		fmt.Fprint(w, " [command options]")
	}
	fmt.Fprintln(w)
	if c.LongDescription != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, c.LongDescription)
		fmt.Fprintln(w)
	}
	if hasFlags(c.FlagSet) {
		fmt.Fprintln(w, "The command options are:")
		fmt.Fprintln(w)
		c.FlagSet.PrintDefaults()
	}
}

// commander represents a top-level command with subcommands.
type commander []*command

func (c commander) lookup(name string) *command {
	for _, cmd := range c {
		if cmd.matches(name) {
			return cmd
		}
	}
	return nil
}

// run parses the top-level flags, runs the named subcommand, and exits.
func (c commander) run(flagSet *flag.FlagSet, cmdName string, usage *template.Template, args []string) {
	flagSet.Usage = func() {
		data := struct {
			FlagUsage func() string
			Commands  []*command
		}{
			FlagUsage: func() string { flagSet.PrintDefaults(); return "" },
			Commands:  c,
		}
		if err := usage.Execute(flagSet.Output(), data); err != nil {
			log.Fatal(err)
		}
	}
	if !flagSet.Parsed() {
		flagSet.Parse(args)
	}

	if flagSet.Arg(0) == "help" || flagSet.NArg() == 0 {
		flagSet.Usage()
		os.Exit(0)
	}

	for _, cmd_ := range c {
		cmd := cmd_
		cmd.FlagSet.Usage = func() { cmd.printUsage(commandLine.Output(), cmdName) }
	}

	name := flagSet.Arg(0)
	cmd := c.lookup(name)
	if cmd == nil {
		log.Printf("%s: unknown subcommand %q", cmdName, name)
		log.Fatalf("Run '%s help' for usage.", cmdName)
	}
	os.Exit(c.exitCode(cmd, cmd.handler(flagSet.Args()[1:])))
}

// exitCode reports err (if any) and returns the process exit code for it.
func (c commander) exitCode(cmd *command, err error) int {
	switch e := err.(type) {
	case nil:
		return 0
	case *usageError:
		log.Println(e)
		cmd.FlagSet.Usage()
		return 2
	case *exitCodeError:
		if e.error != nil {
			log.Println(e.error)
		}
		return e.exitCode
	default:
		log.Println(err)
		return 1
	}
}

func hasFlags(flagSet *flag.FlagSet) bool {
	var ok bool
	flagSet.VisitAll(func(*flag.Flag) { ok = true })
	return ok
}

// usageError is an error type that subcommands can return in order to signal
// that a usage error has occurred.
type usageError struct {
	error
}

// exitCodeError is an error type that subcommands can return in order to
// specify the exact exit code.
type exitCodeError struct {
	error
	exitCode int
}
