// Command fileglob enumerates files beneath a root directory that match
// one or more MSBuild-dialect include globs and no exclude glob.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/globkit/fileglob/internal/enumerate"
	"github.com/globkit/fileglob/internal/filesystem"
	"github.com/globkit/fileglob/internal/globconfig"
	"github.com/globkit/fileglob/internal/logging"
	"github.com/globkit/fileglob/internal/respfile"
	"github.com/globkit/fileglob/internal/wildcard"
)

type cliFlags struct {
	root       *string
	include    *string
	exclude    *string
	respFile   *string
	ignoreCase *bool
	win32      *bool
	verbosity  *string
	logFile    *string
	filters    *string
	ignoreFile *string
}

// setupCliAndLogger parses command-line flags and initializes the
// structured logger, mirroring IgorBayerl-ReportGenerator's cmd/main.go
// setupCliAndLogger.
func setupCliAndLogger() (*cliFlags, logging.VerbosityLevel, io.Closer, error) {
	flags := &cliFlags{
		root:       flag.String("root", ".", "Root directory to enumerate"),
		include:    flag.String("include", "", "Include glob specifications (semicolon-separated)"),
		exclude:    flag.String("exclude", "", "Exclude glob specifications (semicolon-separated)"),
		respFile:   flag.String("respfile", "", "Response file of additional include specs, one per line"),
		ignoreCase: flag.Bool("ignorecase", false, "Force case-insensitive matching regardless of host platform"),
		win32:      flag.Bool("win32", false, "Use the Win32 wildcard dialect (*.* matches anything)"),
		verbosity:  flag.String("verbosity", "Info", "Logging verbosity level (Verbose, Info, Warning, Error, Off)"),
		logFile:    flag.String("logfile", "", "Redirect logs to a file instead of stderr"),
		filters:    flag.String("pathfilters", "", "Supplementary +/- regex filters applied after enumeration (semicolon-separated)"),
		ignoreFile: flag.String("ignorefile", ".globignore", "Per-directory override exclude file name (empty disables)"),
	}
	flag.Parse()

	level, ok := logging.ParseVerbosity(*flags.verbosity)
	if !ok {
		return nil, 0, nil, fmt.Errorf("invalid verbosity level %q", *flags.verbosity)
	}

	var logOutput io.Writer = os.Stderr
	var closer io.Closer
	if *flags.logFile != "" {
		f, err := os.OpenFile(*flags.logFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("opening log file %s: %w", *flags.logFile, err)
		}
		logOutput = f
		closer = f
	}

	logger := logging.NewLogger(level, logOutput)
	slog.SetDefault(logger)

	return flags, level, closer, nil
}

func buildConfiguration(fsys filesystem.Filesystem, flags *cliFlags, verbosity logging.VerbosityLevel) (*globconfig.Configuration, error) {
	includeSpecs := strings.Split(*flags.include, ";")

	if *flags.respFile != "" {
		lines, err := respfile.Load(fsys, *flags.respFile)
		if err != nil {
			return nil, fmt.Errorf("loading response file: %w", err)
		}
		includeSpecs = append(includeSpecs, lines...)
	}

	casing := wildcard.PlatformDefault
	if *flags.ignoreCase {
		casing = wildcard.CaseInsensitive
	}
	dialect := wildcard.Simple
	if *flags.win32 {
		dialect = wildcard.Win32
	}

	var filters []string
	if *flags.filters != "" {
		filters = strings.Split(*flags.filters, ";")
	}

	return globconfig.NewConfiguration(*flags.root, includeSpecs,
		globconfig.WithExcludes(strings.Split(*flags.exclude, ";")),
		globconfig.WithCasing(casing),
		globconfig.WithDialect(dialect),
		globconfig.WithVerbosity(verbosity),
		globconfig.WithIgnoreFileName(*flags.ignoreFile),
		globconfig.WithPathFilters(filters),
	)
}

func run() error {
	flags, verbosity, closer, err := setupCliAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	logger := slog.Default()
	fsys := filesystem.DefaultFS{}

	cfg, err := buildConfiguration(fsys, flags, verbosity)
	if err != nil {
		return fmt.Errorf("building configuration: %w", err)
	}

	isWindowsHost := filesystem.IsWindowsHost(fsys.Platform())
	files, err := enumerate.Run(fsys, isWindowsHost, cfg, logger)
	if err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println(f)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("fileglob failed", "error", err)
		os.Exit(1)
	}
}
