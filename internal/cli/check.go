// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/routedoc/routedoc/internal/docdiff"
	"github.com/routedoc/routedoc/internal/render"
)

// Exit codes for check command
const (
	ExitCodeMatch      = 0 // Documentation matches implementation
	ExitCodeDifference = 1 // Documentation differs from implementation
	ExitCodeCheckError = 2 // Error during analysis
)

// ExitError carries a process exit code out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var (
	checkStrict  bool
	checkIgnore  []string
	checkCI      bool
	checkAgainst string
)

var checkCmd = &cobra.Command{
	Use:   "check [root]",
	Short: "Check if the documentation matches the current handlers",
	Long: `Check validates that your JSON documentation matches your current code.

This command scans the route tree and compares the result with the existing
JSON documentation, endpoint by endpoint. It's useful for CI pipelines to
ensure the documentation is always in sync with the implementation.

Exit codes (with --ci):
  0  Documentation matches implementation
  1  Documentation differs from implementation
  2  Error during analysis

Example:
  routedoc check                          # Compare against api-docs.json
  routedoc check --against docs/api.json  # Compare against another file
  routedoc check --ci                     # CI mode with exit codes
  routedoc check --ignore "/api/internal/**"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", true, "fail on any difference")
	checkCmd.Flags().StringSliceVar(&checkIgnore, "ignore", nil, "endpoint path globs to ignore in comparison")
	checkCmd.Flags().BoolVar(&checkCI, "ci", false, "CI mode: use exit codes for status")
	checkCmd.Flags().StringVar(&checkAgainst, "against", "", "JSON documentation to compare (default: the json output file)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	err := check(cmd, args)
	if err == nil || !checkCI {
		return err
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &ExitError{Code: ExitCodeCheckError, Err: err}
}

func check(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	existingPath := checkAgainst
	if existingPath == "" {
		existingPath = cfg.Output
		if cfg.Format != "json" {
			existingPath = mergeSource(cfg)
		}
	}
	if existingPath == "" {
		return fmt.Errorf("check compares JSON documentation; use --against for format %s", cfg.Format)
	}

	printVerbose("Check configuration:")
	printVerbose("  Strict mode: %t", checkStrict)
	printVerbose("  CI mode: %t", checkCI)
	printVerbose("  Documentation file: %s", existingPath)

	// Check if documentation file exists
	if _, err := os.Stat(existingPath); os.IsNotExist(err) {
		printInfo("Run 'routedoc generate' first to create the documentation file")
		return &ExitError{Code: ExitCodeDifference, Err: fmt.Errorf("documentation file not found: %s", existingPath)}
	}

	existing, err := render.ReadJSONFile(existingPath)
	if err != nil {
		return fmt.Errorf("failed to read existing documentation: %w", err)
	}

	generated, err := scanProject(cfg, newLogger())
	if err != nil {
		return err
	}

	result, err := applyIgnorePatterns(docdiff.NewDiffer().Diff(existing, generated), checkIgnore)
	if err != nil {
		return err
	}

	if result.IsEmpty() {
		printInfo("Documentation is in sync with implementation")
		return nil
	}

	printInfo("Documentation differs from implementation:\n")
	printInfo("%s", docdiff.FormatDiff(result))

	if result.HasBreakingChanges {
		printError("Breaking changes detected!")
	}

	printInfo("Run 'routedoc generate' to update the documentation file")

	if checkStrict || checkCI {
		return &ExitError{Code: ExitCodeDifference, Err: errors.New("documentation differs from implementation")}
	}
	return nil
}

// applyIgnorePatterns filters out changes whose path matches a doublestar glob.
func applyIgnorePatterns(result *docdiff.DiffResult, patterns []string) (*docdiff.DiffResult, error) {
	if len(patterns) == 0 {
		return result, nil
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid ignore pattern %q", p)
		}
	}

	filtered := &docdiff.DiffResult{Changes: []docdiff.EndpointChange{}}
	for _, change := range result.Changes {
		if !matchesAnyPattern(change.Path, patterns) {
			filtered.Changes = append(filtered.Changes, change)
		}
	}

	// Recalculate breaking changes
	filtered.HasBreakingChanges = filtered.Count(docdiff.DiffTypeRemoved) > 0
	filtered.Summary = generateFilteredSummary(filtered)
	return filtered, nil
}

// matchesAnyPattern checks if a path matches any of the given patterns.
func matchesAnyPattern(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// generateFilteredSummary generates a summary for filtered results.
func generateFilteredSummary(result *docdiff.DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected (after applying filters)"
	}
	summary := fmt.Sprintf("%d endpoint(s) added, %d removed, %d modified",
		result.Count(docdiff.DiffTypeAdded),
		result.Count(docdiff.DiffTypeRemoved),
		result.Count(docdiff.DiffTypeModified))
	if result.HasBreakingChanges {
		summary += " [BREAKING CHANGES DETECTED]"
	}
	return summary
}
