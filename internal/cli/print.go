// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routedoc/routedoc/internal/render"
	"github.com/routedoc/routedoc/pkg/types"
)

var printRoot string

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Print the documentation to stdout",
	Long: `Print the documentation to standard output.

If a JSON documentation file is provided, it is re-rendered in the selected
format. Otherwise the route tree is scanned and the result printed.

This is useful for piping the output to other tools or for quick inspection.

Example:
  routedoc print                      # Scan and print JSON
  routedoc print api-docs.json -f md  # Render an existing file as Markdown
  routedoc print -f openapi           # Print an OpenAPI document
  routedoc print | jq '.endpoints'    # Pipe to jq for processing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringVar(&printRoot, "root", "", "project root to scan")
}

func runPrint(cmd *cobra.Command, args []string) error {
	var rootArgs []string
	if printRoot != "" {
		rootArgs = []string{printRoot}
	}
	cfg, err := loadConfig(rootArgs)
	if err != nil {
		return err
	}

	printVerbose("Print configuration:")
	printVerbose("  Format: %s", cfg.Format)

	var doc *types.Documentation
	if len(args) > 0 {
		doc, err = render.ReadJSONFile(args[0])
	} else {
		doc, err = scanProject(cfg, newLogger())
	}
	if err != nil {
		return err
	}

	r, err := rendererFor(cfg)
	if err != nil {
		return err
	}
	data, err := renderBytes(r, doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, string(data))
	return err
}
