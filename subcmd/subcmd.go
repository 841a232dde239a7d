// Package subcmd builds the metallum binary's subcommands. A Subcommand is
// a flag.FlagSet whose usage text also covers the positional argument, for
// the subcommands that take one.
package subcmd

import (
	"flag"
	"fmt"
	"os"
)

type Subcommand struct {
	*flag.FlagSet
	doc string
	arg *arg
}

type arg struct {
	name     string
	typename string
	usage    string
}

func New(name, doc string) *Subcommand {
	sc := &Subcommand{
		FlagSet: flag.NewFlagSet(name, flag.ContinueOnError),
		doc:     doc,
	}
	sc.FlagSet.Usage = sc.usage
	return sc
}

// SetArg declares the subcommand's positional argument for the usage text
// and for ParseArg.
func (sc *Subcommand) SetArg(name, typename, usage string) *Subcommand {
	sc.arg = &arg{name: name, typename: typename, usage: usage}
	return sc
}

// ParseArg parses flags and returns the declared positional argument. A
// missing or extra argument prints usage and exits, like a flag error.
func (sc *Subcommand) ParseArg(args []string) (string, error) {
	if err := sc.Parse(args); err != nil {
		return "", err
	}
	if sc.NArg() != 1 {
		sc.Usage()
		os.Exit(2)
	}
	return sc.Arg(0), nil
}

func (sc *Subcommand) usage() {
	out := sc.Output()
	fmt.Fprintf(out, "\n%s\n\n", sc.doc)
	if sc.arg != nil {
		fmt.Fprintf(out, "  metallum %s [flags] <%s>\n\n", sc.Name(), sc.arg.name)
	} else {
		fmt.Fprintf(out, "  metallum %s [flags]\n\n", sc.Name())
	}
	fmt.Fprintf(out, "flags:\n")
	sc.PrintDefaults()
	if sc.arg != nil {
		fmt.Fprintf(out, "  <%s> %s\n", sc.arg.name, sc.arg.typename)
		fmt.Fprintf(out, "  \t%s\n", sc.arg.usage)
	}
}
