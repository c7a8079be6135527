package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dirtree/internal/compare"
	"dirtree/internal/config"
	"dirtree/internal/hash"
	"dirtree/internal/printer"
	"dirtree/internal/progress"
)

var errChangesDetected = errors.New("changes detected")

// compareError marks failures of the compare command that happen before a
// comparison could be made.
type compareError struct {
	err error
}

func (e *compareError) Error() string { return e.err.Error() }
func (e *compareError) Unwrap() error { return e.err }

// Exit codes:
//
//	0 - success, or no changes for compare
//	1 - general error, or changes detected by compare
//	2 - compare could not read the listing or the tree
func exitCode(err error) int {
	var cmpErr *compareError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &cmpErr):
		return 2
	default:
		return 1
	}
}

type options struct {
	configPath string
	indent     int
	header     bool
	progress   bool
	verbose    bool

	cfg *config.Config
}

func (o *options) printerOptions(extra ...printer.Option) []printer.Option {
	return append([]printer.Option{
		printer.WithIndent(o.cfg.Indent),
		printer.WithHeader(o.cfg.Header),
	}, extra...)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "dirtree [flags] <directory>",
		Short:         "Print the folder/file structure of a directory",
		Long:          "Print the folder/file structure of a directory, indenting each entry by its depth.\n\nExit codes:\n  0 - Success\n  1 - General error",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetOutput(stderr)
			logrus.SetLevel(logrus.WarnLevel)
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}

			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logrus.Debugf("Loaded config from %s: indent=%d header=%t", opts.configPath, cfg.Indent, cfg.Header)

			if cmd.Flags().Changed("indent") {
				cfg.Indent = opts.indent
			}
			if cmd.Flags().Changed("header") {
				cfg.Header = opts.header
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(stdout, args[0], opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Config file path")
	flags.IntVarP(&opts.indent, "indent", "i", printer.DefaultIndent, "Spaces per depth level")
	flags.BoolVar(&opts.header, "header", false, "Print a banner naming the directory before the tree")
	flags.BoolVar(&opts.progress, "progress", false, "Show a spinner on stderr while listing")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.AddCommand(newDigestCmd(stdout, opts))
	rootCmd.AddCommand(newCompareCmd(stdout, opts))
	rootCmd.AddCommand(newVersionCmd(stdout))

	return rootCmd
}

func runPrint(stdout io.Writer, root string, opts *options) error {
	spinner := progress.New(opts.progress)
	defer spinner.Finish()

	logrus.Debugf("Walking %s", root)
	p := printer.New(stdout, opts.printerOptions(printer.WithObserver(spinner.Observe))...)
	stats, err := p.Print(root)
	if err != nil {
		return err
	}
	logrus.Debugf("Listed %d directories and %d files", stats.Dirs, stats.Files)
	return nil
}

func newDigestCmd(stdout io.Writer, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "digest [flags] <directory>",
		Short: "Print the xxHash of a directory listing",
		Long:  "Print the xxHash of the listing that dirtree would print for a directory.\nTwo runs against an unchanged tree print the same digest.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := hash.NewWriter()
			stats, err := printer.New(w, opts.printerOptions()...).Print(args[0])
			if err != nil {
				return err
			}
			logrus.Debugf("Hashed listing of %d directories and %d files", stats.Dirs, stats.Files)

			fmt.Fprintf(stdout, "%s  %s\n", w.Hex(), args[0])
			return nil
		},
	}
}

func newCompareCmd(stdout io.Writer, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [flags] <listing.txt> <directory>",
		Short: "Compare a saved listing against the current directory",
		Long:  "Compare a saved listing against the current directory.\n\nExit codes:\n  0 - No changes\n  1 - Changes detected\n  2 - Error",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(stdout, args[0], args[1], opts)
		},
	}
}

func runCompare(stdout io.Writer, listingPath, root string, opts *options) error {
	savedSum, err := hash.HashFile(listingPath)
	if err != nil {
		return &compareError{fmt.Errorf("failed to load listing: %w", err)}
	}

	current := hash.NewWriter()
	var buf bytes.Buffer
	if _, err := printer.New(io.MultiWriter(current, &buf), opts.printerOptions()...).Print(root); err != nil {
		return &compareError{err}
	}

	if savedSum == current.Hex() {
		logrus.Debugf("Listing digest %s unchanged", savedSum)
		fmt.Fprintln(stdout, compare.FormatReport(&compare.CompareResult{}))
		return nil
	}

	file, err := os.Open(listingPath)
	if err != nil {
		return &compareError{fmt.Errorf("failed to load listing: %w", err)}
	}
	defer file.Close()

	oldPaths, err := printer.Parse(file, opts.cfg.Indent)
	if err != nil {
		return &compareError{fmt.Errorf("failed to parse listing %s: %w", listingPath, err)}
	}
	newPaths, err := printer.Parse(&buf, opts.cfg.Indent)
	if err != nil {
		return &compareError{fmt.Errorf("failed to parse current listing: %w", err)}
	}

	result := compare.Compare(oldPaths, newPaths)
	fmt.Fprintln(stdout, compare.FormatReport(result))

	if result.HasChanges() {
		return errChangesDetected
	}
	return nil
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "dirtree version %s\n", version)
		},
	}
}
