// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/routedoc/routedoc/internal/config"
	"github.com/routedoc/routedoc/internal/render"
	"github.com/routedoc/routedoc/internal/util"
)

var (
	initForce       bool
	initInteractive bool
	initTitle       string
	initVersion     string
	initDescription string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new routedoc configuration file",
	Long: `Initialize a new routedoc configuration file in the current directory.

This command creates a routedoc.yaml file with sensible defaults
that you can customize for your project.

Features:
  - Infers the API title, version and description from package.json
  - Detects app/api and pages/api route trees, including under src/
  - Sets up the default ignore patterns

Example:
  routedoc init                         # Detect settings and create config
  routedoc init --force                 # Overwrite existing config
  routedoc init --interactive           # Interactive mode with prompts
  routedoc init --title "My API"        # Set custom API title`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "interactive mode with prompts")
	initCmd.Flags().StringVar(&initTitle, "title", "", "API title for the documentation info block")
	initCmd.Flags().StringVar(&initVersion, "api-version", "", "API version for the documentation info block")
	initCmd.Flags().StringVar(&initDescription, "description", "", "API description for the documentation info block")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := config.FileNames()[0]

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	// Determine project root
	projectRoot, err := filepath.Abs(".")
	if err != nil {
		return fmt.Errorf("failed to determine project root: %w", err)
	}

	// Create config with sensible defaults
	cfg := config.Default()

	if format != "" {
		if !render.Has(format) {
			return fmt.Errorf("unsupported format %q, must be one of: %s", format, strings.Join(render.List(), ", "))
		}
		cfg.Format = format
	}
	if output != "" {
		cfg.Output = output
	}

	// Detect project info from package.json
	info := detectProjectInfo(projectRoot)

	// Set API info from detection or flags
	if initTitle != "" {
		cfg.Info.Title = initTitle
	} else if info.Title != "" {
		cfg.Info.Title = info.Title
	}

	if initVersion != "" {
		cfg.Info.Version = initVersion
	} else if info.Version != "" {
		cfg.Info.Version = info.Version
	}

	if initDescription != "" {
		cfg.Info.Description = initDescription
	} else if info.Description != "" {
		cfg.Info.Description = info.Description
	}

	// Detect route trees based on project structure
	routeDirs := detectRouteDirs(projectRoot)
	if len(routeDirs) > 0 {
		printVerbose("Detected route trees: %s", strings.Join(routeDirs, ", "))
		if allUnder(routeDirs, "src/") {
			cfg.Root = "./src"
		}
	} else {
		printInfo("No app/api or pages/api directory found; scanning the whole project")
	}

	// Interactive mode
	if initInteractive && isTerminal() {
		cfg, err = interactiveInit(cfg, os.Stdin, stdout)
		if err != nil {
			return fmt.Errorf("interactive init failed: %w", err)
		}
	}

	// Build YAML with comments
	data, err := buildConfigYAML(cfg)
	if err != nil {
		return err
	}

	// Write config file
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("Root: %s", cfg.Root)
	printVerbose("Output: %s", cfg.Output)
	printVerbose("Format: %s", cfg.Format)

	return nil
}

// projectInfo holds information detected from the project.
type projectInfo struct {
	Name        string
	Title       string
	Version     string
	Description string
}

// detectProjectInfo detects project information from package.json.
func detectProjectInfo(projectRoot string) projectInfo {
	info := projectInfo{}

	data, err := os.ReadFile(filepath.Join(projectRoot, "package.json"))
	if err != nil {
		return info
	}

	var pkg struct {
		Name        string `json:"name"`
		Version     string `json:"version"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return info
	}

	info.Name = pkg.Name
	info.Version = pkg.Version
	info.Description = pkg.Description

	// "@acme/web-app" -> "Web App API"
	name := pkg.Name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name != "" {
		info.Title = util.TitleWords(name) + " API"
	}

	return info
}

// detectRouteDirs returns the route tree directories present in the project.
func detectRouteDirs(projectRoot string) []string {
	var dirs []string

	candidates := []string{
		"app/api",
		"pages/api",
		"src/app/api",
		"src/pages/api",
	}

	for _, c := range candidates {
		fullPath := filepath.Join(projectRoot, filepath.FromSlash(c))
		if stat, err := os.Stat(fullPath); err == nil && stat.IsDir() {
			dirs = append(dirs, c)
		}
	}

	return dirs
}

func allUnder(dirs []string, prefix string) bool {
	for _, d := range dirs {
		if !strings.HasPrefix(d, prefix) {
			return false
		}
	}
	return true
}

// isTerminal checks if stdin is a terminal.
func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// interactiveInit prompts the user for configuration options.
func interactiveInit(cfg *config.Config, in io.Reader, out io.Writer) (*config.Config, error) {
	reader := bufio.NewReader(in)

	prompt := func(label, current string) string {
		fmt.Fprintf(out, "%s [%s]: ", label, current)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return current
		}
		return answer
	}

	cfg.Info.Title = prompt("API Title", cfg.Info.Title)
	cfg.Info.Version = prompt("API Version", cfg.Info.Version)
	cfg.Info.Description = prompt("API Description", cfg.Info.Description)
	cfg.Root = prompt("Project root", cfg.Root)
	cfg.Format = prompt("Output format ("+strings.Join(render.List(), "/")+")", cfg.Format)
	cfg.Output = prompt("Output file", cfg.Output)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildConfigYAML builds a YAML config with a header comment.
func buildConfigYAML(cfg *config.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	header := `# routedoc configuration file
# Keys can be overridden with ROUTEDOC_* environment variables,
# e.g. ROUTEDOC_INFO_TITLE.

`
	return append([]byte(header), data...), nil
}
