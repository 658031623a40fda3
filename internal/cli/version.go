// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routedoc/routedoc/internal/openapi"
	"github.com/routedoc/routedoc/internal/render"
)

// Build metadata, set with -ldflags "-X github.com/routedoc/routedoc/internal/cli.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the routedoc build and its output formats",
	Long: `Print the routedoc release, the commit and date it was built from, the Go
toolchain, the registered output formats and the OpenAPI version it emits.

Binaries installed with 'go install' report the module version when no
release version was stamped at link time.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if versionShort {
			cmd.Println(resolvedVersion())
			return
		}
		cmd.Printf("routedoc %s\n", resolvedVersion())
		cmd.Printf("  Commit:     %s\n", Commit)
		cmd.Printf("  Build Date: %s\n", BuildDate)
		cmd.Printf("  Go Version: %s\n", runtime.Version())
		cmd.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		cmd.Printf("  Formats:    %s\n", strings.Join(render.List(), ", "))
		cmd.Printf("  OpenAPI:    %s\n", openapi.DefaultVersion)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
}

// resolvedVersion prefers the stamped Version, then the module version.
func resolvedVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// GetVersionInfo returns a one-line build summary.
func GetVersionInfo() string {
	return fmt.Sprintf("routedoc %s (commit: %s, built: %s)", resolvedVersion(), Commit, BuildDate)
}
