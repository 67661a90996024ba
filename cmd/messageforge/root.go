package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	forgeinternal "github.com/kinghuynh/messageforge/internal/forge"
	"github.com/kinghuynh/messageforge/internal/logger"
)

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "messageforge [flags] [patterns]",
		Short: "Generate message type code",
		Long: `Generate constructors, accessors, mutators, and the message interface
implementation of message types declared in "//go:build messageforge" files.

The generated code is written to messageforge_gen.go in each package.

Examples:
  messageforge                  # Generate for the package in the working directory
  messageforge ./...            # Generate for all packages
  messageforge check ./...      # Check if generated files are up to date`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringP(keyOutput, "o", "messageforge_gen.go", "output file name")
	flags.StringP(keyTags, "b", "", "comma-separated build tags")
	flags.BoolP(keyTests, "t", false, "include tests")
	flags.StringP(keyColor, "c", "auto", "colorize (auto|always|never)")
	flags.CountP(keyVerbose, "v", "increase log verbosity (-v, -vv)")
	flags.Bool(keyJSONLogs, false, "write logs in JSON")
	flags.StringVar(&configFile, "config", "", "config file (default: messageforge.yaml in the working directory)")

	// run resolves the options and the generated code, then calls fn with
	// them. Errors are printed here, so the caller only decides the exit code.
	run := func(cmd *cobra.Command, args []string, fn func(wd string, outs map[string][]byte) error) error {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}

		opts, err := loadOptions(cmd.Flags(), wd, configFile)
		if err != nil {
			fail(false, err)
			return err
		}

		color, err := opts.colorEnabled()
		if err != nil {
			fail(false, err)
			return err
		}

		logger.Initialize(os.Stderr, opts.JSONLogs, opts.Verbose)

		outs, err := forgeinternal.Main(cmd.Context(), wd, os.Environ(), opts.Tags, opts.Tests, opts.Output, args)
		if err == nil {
			err = fn(wd, outs)
		}
		if err != nil {
			fail(color, err)
			return err
		}
		return nil
	}

	root.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, func(wd string, outs map[string][]byte) error {
			return writeOutputs(cmd, wd, outs)
		})
	}

	check := &cobra.Command{
		Use:   "check [patterns]",
		Short: "Check if generated files are up to date",
		Long: `Generate code in memory and compare it with the files on disk.

Exit codes:
  0 - Generated files are up to date
  1 - Generated files are out of date, or generation failed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, func(wd string, outs map[string][]byte) error {
				stale, err := staleOutputs(wd, outs)
				if err != nil {
					return err
				}
				if len(stale) != 0 {
					for _, out := range stale {
						fmt.Fprintln(cmd.OutOrStdout(), "Out of date:", out)
					}
					return errors.WithHint(errors.Newf("%d generated files are out of date", len(stale)), "run messageforge to regenerate them")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Up to date")
				return nil
			})
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Show messageforge version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "messageforge", Version)
		},
	}

	root.AddCommand(check, version)
	return root
}

func init() {
	// Development builds leave the header unstamped.
	if Version != "dev" {
		forgeinternal.Version = Version
	}
}

// writeOutputs writes the generated files in a stable order.
func writeOutputs(cmd *cobra.Command, wd string, outs map[string][]byte) error {
	for _, out := range sortedOutputs(outs) {
		path := out
		if !filepath.IsAbs(path) {
			path = filepath.Join(wd, path)
		}
		if err := os.WriteFile(path, outs[out], 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", out)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Generated:", out)
	}
	return nil
}

// staleOutputs returns the generated files whose contents differ from the
// files on disk, including missing files.
func staleOutputs(wd string, outs map[string][]byte) ([]string, error) {
	var stale []string
	for _, out := range sortedOutputs(outs) {
		path := out
		if !filepath.IsAbs(path) {
			path = filepath.Join(wd, path)
		}

		code, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			stale = append(stale, out)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", out)
		}
		if !forgeinternal.SameCode(code, outs[out]) {
			stale = append(stale, out)
		}
	}
	return stale, nil
}

func sortedOutputs(outs map[string][]byte) []string {
	names := make([]string, 0, len(outs))
	for name := range outs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
