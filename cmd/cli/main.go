package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/qrforge/internal/app"
	"github.com/vk/qrforge/internal/cli"
	"github.com/vk/qrforge/internal/decode"
	"github.com/vk/qrforge/internal/encode"
	"github.com/vk/qrforge/internal/fsutil"
	"github.com/vk/qrforge/internal/hclconf"
)

// main is the entrypoint for the qrforge application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Stdin, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and
// error handling.
func run(outW, errW io.Writer, inR io.Reader, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete defaults loader and adapters to pass to
	// the app.
	loader := hclconf.NewLoader()
	qrApp, err := app.NewApp(outW, errW, inR, appConfig, loader, encode.NewAdapter(), decode.NewAdapter())
	if err != nil {
		return err
	}

	return qrApp.Run(context.Background())
}

// exitCode maps each failure class to its documented process exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, app.ErrUsage), errors.Is(err, encode.ErrBadColor):
		return 2
	case errors.Is(err, decode.ErrFileNotFound):
		return 3
	case errors.Is(err, decode.ErrUnreadableImage):
		return 4
	case errors.Is(err, decode.ErrNoQRFound):
		return 5
	case errors.Is(err, encode.ErrCapacity):
		return 6
	case errors.Is(err, fsutil.ErrDirCreate):
		return 7
	}
	return 1
}
