// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"github.com/spf13/cobra"
)

var (
	generateMerge    bool
	generateValidate bool
	generateDryRun   bool
	generateWorkers  int
	generateIgnore   []string
)

var generateCmd = &cobra.Command{
	Use:   "generate [root]",
	Short: "Generate API documentation from route handlers",
	Long: `Generate API documentation by scanning a Next.js route tree.

The generate command finds every route handler under the root directory,
infers its endpoints and writes them in the selected format.

Formats:
  json      Documentation model as JSON (default)
  markdown  Human-readable reference (alias: md)
  openapi   OpenAPI 3.0 document, YAML or JSON by output extension (alias: swagger)
  react     TSX viewer component with the documentation embedded (alias: tsx)

Example:
  routedoc generate                           # Scan the current directory
  routedoc generate ./web                     # Scan another project
  routedoc generate -f openapi -o api.json    # OpenAPI as JSON
  routedoc generate --merge                   # Keep hand-edited titles and tags
  routedoc generate --dry-run                 # Preview without writing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateMerge, "merge", false, "keep hand edits from the existing JSON documentation")
	generateCmd.Flags().BoolVar(&generateValidate, "validate", false, "validate OpenAPI output before writing")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "preview output without writing to file")
	generateCmd.Flags().IntVarP(&generateWorkers, "workers", "w", 0, "number of files processed concurrently")
	generateCmd.Flags().StringSliceVarP(&generateIgnore, "ignore", "i", nil, "glob patterns to exclude")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if generateMerge {
		cfg.Generation.Merge = true
	}
	if generateValidate {
		cfg.Generation.Validate = true
	}
	if generateWorkers > 0 {
		cfg.Workers = generateWorkers
	}
	if len(generateIgnore) > 0 {
		cfg.Ignore = generateIgnore
	}

	printVerbose("Configuration:")
	printVerbose("  Root: %s", cfg.Root)
	printVerbose("  Output: %s", cfg.Output)
	printVerbose("  Format: %s", cfg.Format)
	printVerbose("  Workers: %d", cfg.Workers)

	if generateDryRun {
		printVerbose("Dry run mode - no files will be written")
	}

	g := &generation{
		cfg:      cfg,
		logger:   newLogger(),
		merge:    cfg.Generation.Merge,
		validate: cfg.Generation.Validate,
		dryRun:   generateDryRun,
	}
	n, err := g.run(cmd.Context())
	if err != nil {
		return err
	}

	if !generateDryRun {
		printInfo("Documented %d endpoints in %s", n, cfg.Output)
	}
	return nil
}
