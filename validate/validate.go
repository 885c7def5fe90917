// Command validate checks every game configuration file (.json, .yaml,
// .yml) in a configs directory. It reports:
//   - parse errors and the first failed validation rule
//   - the resolved key bindings
//   - whether the victory message formats a move count
//   - a name that differs from the file name it is loaded by
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/fifteen-puzzle/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// holds the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration file
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	config, err := engine.LoadGameConfig(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	k := config.Keys
	result.Errors = append(result.Errors,
		fmt.Sprintf("✓ Keys: up=%s down=%s left=%s right=%s quit=%s", k.Up, k.Down, k.Left, k.Right, k.Quit))

	if sample := fmt.Sprintf(config.Messages.Victory, 42); strings.Contains(sample, "42") {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Victory: %s", sample))
	} else {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("victory message does not print the move count: %q", sample))
	}

	stem := strings.TrimSuffix(result.File, filepath.Ext(result.File))
	if config.Name != stem {
		result.Errors = append(result.Errors,
			fmt.Sprintf("⚠ name %q differs from file name %q; select it with --config %s", config.Name, stem, stem))
	}

	return result
}

// findConfigs lists config files in dir, sorted by name
func findConfigs(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// report validates every file and prints a concise summary. It returns
// false if any file is invalid.
func report(w io.Writer, files []string) bool {
	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Errors {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Fprintln(w, "  ❌ "+err)
				}
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some configurations have errors")
	}
	return allValid
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "check game configuration files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing game configurations",
				Sources: cli.EnvVars("FIFTEEN_CONFIG_DIR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.String("config-dir")
			files, err := findConfigs(dir)
			if err != nil {
				return fmt.Errorf("finding config files: %w", err)
			}
			if len(files) == 0 {
				return cli.Exit(fmt.Sprintf("no configuration files in %s", dir), 1)
			}
			if !report(out, files) {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

// main validates the configs directory, exiting non-zero if any file is
// invalid
func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("validate failed")
	}
}
