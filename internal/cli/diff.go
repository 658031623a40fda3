// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routedoc/routedoc/internal/docdiff"
	"github.com/routedoc/routedoc/internal/render"
	"github.com/routedoc/routedoc/pkg/types"
)

var diffRoot string

var diffCmd = &cobra.Command{
	Use:   "diff [file1] [file2]",
	Short: "Compare two JSON documentation files",
	Long: `Compare two JSON documentation files and show the endpoint differences.

If only one file is provided, it will be compared against the documentation
generated from the current source code.

If no files are provided, the json output file will be compared against
what would be generated from the current source code.

Example:
  routedoc diff                           # Compare current vs generated
  routedoc diff api-docs.json             # Compare file vs generated
  routedoc diff old.json new.json         # Compare two files
  routedoc diff --root ./web old.json     # Generate from another root`,
	Args: cobra.MaximumNArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffRoot, "root", "", "project root to scan when comparing against generated output")
}

func runDiff(cmd *cobra.Command, args []string) error {
	var rootArgs []string
	if diffRoot != "" {
		rootArgs = []string{diffRoot}
	}
	cfg, err := loadConfig(rootArgs)
	if err != nil {
		return err
	}

	var before, after *types.Documentation
	switch len(args) {
	case 0:
		printVerbose("Comparing %s against generated...", cfg.Output)
		before, err = render.ReadJSONFile(cfg.Output)
	case 1:
		printVerbose("Comparing %s against generated...", args[0])
		before, err = render.ReadJSONFile(args[0])
	case 2:
		printVerbose("Comparing %s against %s...", args[0], args[1])
		if before, err = render.ReadJSONFile(args[0]); err == nil {
			after, err = render.ReadJSONFile(args[1])
		}
	}
	if err != nil {
		return err
	}

	if after == nil {
		if after, err = scanProject(cfg, newLogger()); err != nil {
			return err
		}
	}

	result := docdiff.NewDiffer().Diff(before, after)
	fmt.Fprint(stdout, docdiff.FormatDiff(result))
	if !result.IsEmpty() {
		fmt.Fprintln(stdout)
	}
	return nil
}
