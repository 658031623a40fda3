// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package cli provides the command-line interface for routedoc.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	output  string
	format  string
	verbose bool
	quiet   bool
)

// Writers for the print helpers, rebound to the command's streams before each run.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "routedoc",
	Short: "Static API documentation generator for Next.js route handlers",
	Long: `routedoc scans a Next.js API route tree (app/api/**/route.ts and
pages/api/**), infers each handler's methods, parameters, request body,
responses and authentication from the source text, and renders the result
as JSON, Markdown, OpenAPI or a React viewer component.

Example:
  routedoc generate                    # Scan the current directory into api-docs.json
  routedoc generate ./web -f openapi   # Write an OpenAPI document
  routedoc check --ci                  # Fail when api-docs.json is stale
  routedoc serve                       # Edit api-docs.json in the browser
  routedoc watch                       # Regenerate on every change`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		stdout = cmd.OutOrStdout()
		stderr = cmd.ErrOrStderr()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: routedoc.yaml)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output file path (default: api-docs.json)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: json, markdown, openapi, react (default: json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(serveCmd)
}

// GetConfigFile returns the config file path from the flag.
func GetConfigFile() string {
	return cfgFile
}

// IsVerbose returns whether verbose output is enabled.
func IsVerbose() bool {
	return verbose
}

// IsQuiet returns whether quiet mode is enabled.
func IsQuiet() bool {
	return quiet
}

// newLogger returns the structured logger for core packages: debug with
// --verbose, warnings otherwise, nothing with --quiet.
func newLogger() *slog.Logger {
	if quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// printInfo prints a message if not in quiet mode.
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(stdout, format+"\n", args...)
	}
}

// printVerbose prints a message if verbose mode is enabled.
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(stdout, format+"\n", args...)
	}
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(stderr, "Error: "+format+"\n", args...)
}
