package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/JonMunkholm/addrjoin/internal/config"
	"github.com/JonMunkholm/addrjoin/internal/core"
	"github.com/JonMunkholm/addrjoin/internal/logging"
	"github.com/joho/godotenv"
)

const usage = `
    Joins data in source CSV files on Address_Number and Street fields and writes output as CSV.

        Usage: addrjoin <input-file-1.csv> <input-file-2.csv> <output-file.csv>
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	// Load .env file if it exists (Overload overwrites existing env vars)
	envErr := godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format, stderr)
	ctx = logging.WithRunID(ctx)
	logger := logging.FromContext(ctx)

	if envErr == nil {
		logger.Debug("loaded .env file")
	}
	logger.Debug("configuration loaded", "config", cfg.String())

	primary, lookup, output, err := parseArgs(args)
	if err != nil {
		return fail(logger, stderr, err)
	}

	stats, err := core.NewPipeline(cfg.Input.MaxFileSize).Run(ctx, primary, lookup, output)
	if err != nil {
		return fail(logger, stderr, err)
	}

	logger.Info("join complete",
		"records", stats.Primary,
		"matched", stats.Matched,
		"no_match", stats.NoMatch,
	)
	return 0
}

// parseArgs validates the positional arguments. The output path must not
// exist yet; this is checked before any input is read.
func parseArgs(args []string) (primary, lookup, output string, err error) {
	if len(args) != 3 {
		return "", "", "", &core.UsageError{
			Reason: fmt.Sprintf("invalid command line: expected 3 arguments, got %d", len(args)),
		}
	}

	primary, lookup, output = args[0], args[1], args[2]

	_, statErr := os.Stat(output)
	switch {
	case statErr == nil:
		return "", "", "", &core.UsageError{Reason: "output file " + output, Err: fs.ErrExist}
	case !errors.Is(statErr, fs.ErrNotExist):
		return "", "", "", &core.WriteError{Path: output, Err: statErr}
	}

	return primary, lookup, output, nil
}

// fail reports err and returns the exit code. Parse errors name the file;
// usage errors also print usage.
func fail(logger *slog.Logger, stderr io.Writer, err error) int {
	msg := core.MapError(err)
	logger.Error("join failed", "error", err, "code", msg.Code)

	var parseErr *core.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintf(stderr, "Error: %s: %s\n", parseErr.File, core.FormatUserError(err))
	} else {
		fmt.Fprintf(stderr, "Error: %s\n", core.FormatUserError(err))
	}
	if errors.Is(err, core.ErrUsage) {
		fmt.Fprint(stderr, usage)
	}
	return 1
}
