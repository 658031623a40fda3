// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/routedoc/routedoc/internal/config"
	"github.com/routedoc/routedoc/internal/server"
)

var (
	serveAddr string
	serveFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON documentation for editing",
	Long: `Serve the JSON documentation over HTTP so it can be inspected and edited.

Routes:
  GET   /api/docs                   Full documentation
  PUT   /api/docs                   Replace the documentation
  GET   /api/docs/endpoints/:index  One endpoint
  PATCH /api/docs/endpoints/:index  Update title, description or tags
  GET   /healthz                    Liveness probe

Edits are written back to the file atomically. Run 'routedoc generate --merge'
afterwards to keep them across regenerations.

Example:
  routedoc serve                          # Serve api-docs.json on 127.0.0.1:4400
  routedoc serve --addr :8080             # Listen on another address
  routedoc serve --file docs/api.json     # Serve another file`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config: 127.0.0.1:4400)")
	serveCmd.Flags().StringVar(&serveFile, "file", "", "JSON documentation file (default: the json output file)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if output != "" {
		cfg.Output = output
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveFile != "" {
		cfg.Server.File = serveFile
	}

	srv := server.New(server.Config{
		Addr:   cfg.Server.Addr,
		File:   cfg.EditFile(),
		Logger: newLogger(),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printInfo("Serving %s on http://%s", cfg.EditFile(), srv.Addr())
	printInfo("Press Ctrl+C to stop")

	return srv.Serve(ctx)
}
