// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a command and returns output and error.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

// resetFlags restores every flag variable to its default; cobra keeps
// values between Execute calls on the shared rootCmd.
func resetFlags(t *testing.T) {
	t.Helper()
	cfgFile, output, format = "", "", ""
	verbose, quiet = false, false
	generateMerge, generateValidate, generateDryRun = false, false, false
	generateWorkers, generateIgnore = 0, nil
	checkStrict, checkIgnore, checkCI, checkAgainst = true, nil, false, ""
	diffRoot, printRoot = "", ""
	watchDebounce, watchMerge = 0, false
	serveAddr, serveFile = "", ""
	initForce, initInteractive = false, false
	initTitle, initVersion, initDescription = "", "", ""
	versionShort = false

	// The help flag is not reset by cobra between Execute calls.
	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		if f := c.Flags().Lookup("help"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
}

// setupTestDir creates a temporary project with the given files and makes
// it the working directory.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	resetFlags(t)

	tmpDir := t.TempDir()
	for path, content := range files {
		fullPath := filepath.Join(tmpDir, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	}
	chdir(t, tmpDir)
	return tmpDir
}

func TestRootCommand_Help(t *testing.T) {
	resetFlags(t)
	output, err := executeCommand(rootCmd, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "routedoc")
	assert.Contains(t, output, "routedoc scans a Next.js API route tree")
	assert.Contains(t, output, "Available Commands")
	for _, sub := range []string{"generate", "init", "check", "diff", "watch", "print", "serve", "version"} {
		assert.Contains(t, output, sub)
	}
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		expected string
	}{
		{"config flag short", "-c", "config file"},
		{"config flag long", "--config", "config file"},
		{"output flag short", "-o", "output file path"},
		{"output flag long", "--output", "output file path"},
		{"format flag short", "-f", "output format"},
		{"format flag long", "--format", "output format"},
		{"verbose flag short", "-v", "verbose output"},
		{"verbose flag long", "--verbose", "verbose output"},
		{"quiet flag short", "-q", "suppress"},
		{"quiet flag long", "--quiet", "suppress"},
	}

	resetFlags(t)
	output, err := executeCommand(rootCmd, "--help")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, output, tt.flag)
			assert.Contains(t, output, tt.expected)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)
	output, err := executeCommand(rootCmd, "version")
	require.NoError(t, err)

	assert.Contains(t, output, "routedoc")
	assert.Contains(t, output, "Commit")
	assert.Contains(t, output, "Build Date")
	assert.Contains(t, output, "Go Version")
	assert.Contains(t, output, "OS/Arch")
	assert.Contains(t, output, "Formats:    json, markdown, openapi, react")
	assert.Contains(t, output, "OpenAPI:    3.0.3")
}

func TestVersionCommand_Short(t *testing.T) {
	resetFlags(t)
	output, err := executeCommand(rootCmd, "version", "--short")
	require.NoError(t, err)

	assert.Equal(t, resolvedVersion()+"\n", output)
	assert.NotContains(t, output, "Commit")
}

func TestResolvedVersion_Stamped(t *testing.T) {
	old := Version
	Version = "v1.4.0"
	t.Cleanup(func() { Version = old })

	assert.Equal(t, "v1.4.0", resolvedVersion())
	assert.Contains(t, GetVersionInfo(), "routedoc v1.4.0")
}

func TestSubcommand_Help(t *testing.T) {
	tests := []struct {
		command  string
		contains []string
	}{
		{"init", []string{"Initialize a new routedoc configuration file", "--force", "--interactive", "--api-version"}},
		{"generate", []string{"Generate API documentation", "--merge", "--dry-run", "--validate", "--workers", "--ignore"}},
		{"check", []string{"Check validates that your JSON documentation", "--strict", "--ignore", "--ci", "--against"}},
		{"diff", []string{"Compare two JSON documentation files", "--root"}},
		{"watch", []string{"Watch for file changes", "--debounce", "--merge"}},
		{"print", []string{"Print the documentation", "--root"}},
		{"serve", []string{"PATCH /api/docs/endpoints/:index", "--addr", "--file"}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			resetFlags(t)
			output, err := executeCommand(rootCmd, tt.command, "--help")
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	resetFlags(t)
	_, err := executeCommand(rootCmd, "publish")
	assert.Error(t, err)
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Contains(t, info, "routedoc")
	assert.Contains(t, info, "commit")
	assert.Contains(t, info, "built")
}

func TestNewLogger_Levels(t *testing.T) {
	resetFlags(t)
	var buf bytes.Buffer
	stderr = &buf
	t.Cleanup(func() { stderr = os.Stderr })

	newLogger().Debug("hidden")
	newLogger().Warn("shown")

	verbose = true
	newLogger().Debug("debug-visible")

	verbose, quiet = false, true
	newLogger().Error("silenced")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "debug-visible")
	assert.NotContains(t, out, "silenced")
	resetFlags(t)
}
