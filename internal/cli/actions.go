package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

type Action int

const (
	ActionDemo Action = iota
	ActionUnsupported
	ActionHelp
	ActionUsage
	ActionVersion
)

func (a Action) String() string {
	switch a {
	case ActionUnsupported:
		return "unsupported"
	case ActionHelp:
		return "help"
	case ActionUsage:
		return "usage"
	case ActionVersion:
		return "version"
	default:
		return "demo"
	}
}

// Select applies the priority unsupported > help > usage > version > demo.
func Select(opts Options) Action {
	switch {
	case len(opts.Unsupported) > 0:
		return ActionUnsupported
	case opts.Help:
		return ActionHelp
	case opts.Usage:
		return ActionUsage
	case opts.Version:
		return ActionVersion
	default:
		return ActionDemo
	}
}

// Env is what an action may touch.
type Env struct {
	ExecName string
	Stdout   io.Writer
	Stderr   io.Writer
	// Demo runs the default action.
	Demo func(w io.Writer)
}

type handler func(env Env, opts Options, p *flags.Parser) int

var handlers = map[Action]handler{
	ActionUnsupported: showUnsupported,
	ActionHelp:        showHelp,
	ActionUsage:       showUsage,
	ActionVersion:     showVersion,
	ActionDemo:        runDemo,
}

// Run parses args, picks the action and returns the process exit code.
func Run(env Env, args []string) int {
	opts, p := Parse(env.ExecName, args)
	action := Select(opts)
	zap.S().Debugw("selected action", "action", action.String(), "args", args)
	return handlers[action](env, opts, p)
}

func showUnsupported(env Env, opts Options, _ *flags.Parser) int {
	fmt.Fprintf(env.Stderr, "%s: Unsupported options: %s \n", env.ExecName, strings.Join(opts.Unsupported, " "))
	fmt.Fprintf(env.Stdout, "Try '%s --help' for more information.\n", env.ExecName)
	return ExitFailure
}

func showHelp(env Env, _ Options, p *flags.Parser) int {
	p.WriteHelp(env.Stdout)
	return ExitSuccess
}

func showUsage(env Env, _ Options, _ *flags.Parser) int {
	fmt.Fprintf(env.Stdout, "Usage: %s %s\n", env.ExecName, usageSynopsis)
	return ExitSuccess
}

func showVersion(env Env, _ Options, _ *flags.Parser) int {
	fmt.Fprintf(env.Stdout, "%s %s Copyright (C) %s %s\n%s", env.ExecName, AppVersion, appYear, appAuthor, appLicense)
	return ExitSuccess
}

func runDemo(env Env, _ Options, _ *flags.Parser) int {
	if env.Demo == nil {
		zap.S().Errorw("no demo configured", "exec", env.ExecName)
		return ExitFailure
	}
	env.Demo(env.Stdout)
	return ExitSuccess
}
