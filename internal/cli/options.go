// Package cli parses the demo's command line and dispatches to one of a
// small closed set of actions.
package cli

import (
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

const (
	AppVersion = "0.1"
	appYear    = "2025"
	appAuthor  = "The monads authors"
	appLicense = "This is free software: you are free to change and redistribute it.\n" +
		"There is NO WARRANTY, to the extent permitted by law.\n"

	appDoc = "A small program to demonstrate the Maybe and Result containers " +
		"and their bind/pipe chaining.\n\n" +
		"Mandatory arguments to long options are mandatory for short options too."

	usageSynopsis = "[-h|--help] [--usage] [-V|--version]"
)

type Options struct {
	Help    bool `short:"h" long:"help" description:"Print this help message and exit"`
	Usage   bool `long:"usage" description:"Print a short usage message and exit"`
	Version bool `short:"V" long:"version" description:"Print version information and exit"`

	// Unsupported collects every token that is not one of the options above.
	Unsupported []string `no-flag:"true"`
}

func newParser(execName string, opts *Options) *flags.Parser {
	p := flags.NewNamedParser(execName, flags.IgnoreUnknown|flags.PassDoubleDash)
	p.LongDescription = appDoc
	if _, err := p.AddGroup("General Options", "", opts); err != nil {
		// the option struct is static; a failure here is a tag typo
		panic(err)
	}
	return p
}

// Parse never fails: unknown options, positionals and malformed options all
// end up in Unsupported.
func Parse(execName string, args []string) (Options, *flags.Parser) {
	var opts Options
	p := newParser(execName, &opts)

	rest, err := p.ParseArgs(args)
	if err != nil {
		zap.S().Debugw("malformed option", "error", err)
		// on error go-flags returns the failing token and what follows it,
		// dropping the unknown tokens collected before it
		head, _ := p.ParseArgs(args[:len(args)-len(rest)])
		rest = append(head, rest...)
	}
	opts.Unsupported = append(opts.Unsupported, rest...)
	return opts, p
}
