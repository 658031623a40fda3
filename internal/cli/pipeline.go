// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/routedoc/routedoc/internal/config"
	"github.com/routedoc/routedoc/internal/docdiff"
	"github.com/routedoc/routedoc/internal/openapi"
	"github.com/routedoc/routedoc/internal/render"
	"github.com/routedoc/routedoc/internal/scan"
	"github.com/routedoc/routedoc/pkg/types"
)

// loadConfig loads the config file, applies global flag overrides and an
// optional root argument, and validates the result.
func loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply command-line overrides
	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Without an explicit output, the default file name follows the format.
	if output == "" && cfg.Output == config.Default().Output {
		if r := render.Get(cfg.Format); r != nil {
			cfg.Output = strings.TrimSuffix(cfg.Output, filepath.Ext(cfg.Output)) + r.Extension()
		}
	}

	return cfg, nil
}

// scanProject runs a scan with the configured options. A missing root comes
// back unwrapped so callers can match scan.ErrRootNotFound.
func scanProject(cfg *config.Config, logger *slog.Logger) (*types.Documentation, error) {
	printVerbose("Scanning %s", cfg.Root)

	doc, err := scan.Run(scan.Options{
		RootPath: cfg.Root,
		Ignore:   cfg.Ignore,
		Info: types.Info{
			Title:       cfg.Info.Title,
			Version:     cfg.Info.Version,
			Description: cfg.Info.Description,
		},
		Workers: cfg.Workers,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	printVerbose("Found %d endpoints", doc.TotalEndpoints)
	return doc, nil
}

// rendererFor resolves the configured format. OpenAPI output follows the
// output file extension for YAML versus JSON.
func rendererFor(cfg *config.Config) (render.Renderer, error) {
	r, err := render.Lookup(cfg.Format)
	if err != nil {
		return nil, err
	}
	if oa, ok := r.(*render.OpenAPIRenderer); ok {
		return oa.WithEncoding(openapi.EncodingForPath(cfg.Output)), nil
	}
	return r, nil
}

// renderBytes renders doc with r into memory.
func renderBytes(r render.Renderer, doc *types.Documentation) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(doc, &buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", r.Name(), err)
	}
	return buf.Bytes(), nil
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// mergeSource returns the JSON file holding hand edits, or "" if there is none.
func mergeSource(cfg *config.Config) string {
	if cfg.Server.File != "" {
		return cfg.Server.File
	}
	if r := render.Get(cfg.Format); r != nil && r.Name() == "json" {
		return cfg.Output
	}
	return ""
}

// mergeExisting carries hand edits from the merge source into doc.
func mergeExisting(cfg *config.Config, doc *types.Documentation) (*types.Documentation, error) {
	path := mergeSource(cfg)
	if path == "" {
		printVerbose("No JSON source to merge for format %s", cfg.Format)
		return doc, nil
	}
	existing, err := render.ReadJSONFile(path)
	if errors.Is(err, os.ErrNotExist) {
		printVerbose("Nothing to merge: %s does not exist", path)
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s for merge: %w", path, err)
	}
	printVerbose("Merging hand edits from %s", path)
	return docdiff.MergeDefault(existing, doc), nil
}

// generation is one scan-render-write cycle shared by generate and watch.
type generation struct {
	cfg      *config.Config
	logger   *slog.Logger
	merge    bool
	validate bool
	dryRun   bool
}

// run executes the cycle and returns the number of endpoints written.
func (g *generation) run(ctx context.Context) (int, error) {
	doc, err := scanProject(g.cfg, g.logger)
	if err != nil {
		return 0, err
	}

	if g.merge {
		if doc, err = mergeExisting(g.cfg, doc); err != nil {
			return 0, err
		}
	}

	r, err := rendererFor(g.cfg)
	if err != nil {
		return 0, err
	}
	data, err := renderBytes(r, doc)
	if err != nil {
		return 0, err
	}

	if g.validate {
		if r.Name() != "openapi" {
			return 0, fmt.Errorf("--validate requires the openapi format, got %s", r.Name())
		}
		if err := openapi.Validate(ctx, data); err != nil {
			return 0, err
		}
		printVerbose("OpenAPI document is valid")
	}

	if g.dryRun {
		_, err := stdout.Write(data)
		return doc.TotalEndpoints, err
	}

	if err := writeOutput(g.cfg.Output, data); err != nil {
		return 0, err
	}
	return doc.TotalEndpoints, nil
}
