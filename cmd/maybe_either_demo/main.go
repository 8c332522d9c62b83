package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ib-77/monads/internal/cli"
	"github.com/ib-77/monads/internal/config"
	"github.com/ib-77/monads/internal/demo"
	"github.com/ib-77/monads/internal/expensive"
	"github.com/ib-77/monads/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	execName := filepath.Base(os.Args[0])

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", execName, err)
		return cli.ExitFailure
	}

	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", execName, err)
		return cli.ExitFailure
	}
	defer logger.Sync()

	undo := zap.ReplaceGlobals(logger)
	defer undo()

	traceLog := logger
	if !cfg.TracePayload {
		traceLog = zap.NewNop()
	}
	factory := expensive.NewFactory(traceLog)

	return cli.Run(cli.Env{
		ExecName: execName,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Demo: func(w io.Writer) {
			demo.Run(context.Background(), w, execName, factory)
		},
	}, os.Args[1:])
}
