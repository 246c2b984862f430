// Package cli implements the cobra-based labctl commands.
//
// labctl is a thin client over the patternlab HTTP API: todo CRUD for the
// demo API, plus catalog commands that list patterns, run their demos and
// fetch the published articles.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"patternlab/internal/tutorial"
)

// Global flag variables bound to persistent flags on the root command.
var (
	baseURL    string
	jsonOutput bool
)

// Version, Commit and Date are set at build time via ldflags,
// injected from the main package.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates the root labctl command. The root performs no
// action itself; subcommands carry the functionality.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "labctl",
		Short: "Client for the patternlab demo API and pattern catalog",
		Long: `labctl talks to a running patternlab server.

It manages todos on the demo API and browses the design-pattern catalog:
listing patterns, running their demos, and fetching published articles.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8080", "Base URL of the patternlab server")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddCommand(NewTodoCommand())
	rootCmd.AddCommand(NewPatternsCommand())

	return rootCmd
}

// Execute runs the root command and translates errors into exit codes.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// newClient builds the API client for the configured base URL.
func newClient() *tutorial.Client {
	return tutorial.New(baseURL)
}

func printError(err error) {
	var apiErr *tutorial.APIError
	if jsonOutput {
		errObj := map[string]any{"error": map[string]any{"message": err.Error()}}
		if errors.As(err, &apiErr) {
			errObj["error"] = map[string]any{
				"message":    apiErr.Message,
				"code":       apiErr.Code,
				"request_id": apiErr.RequestID,
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		return
	}

	if errors.As(err, &apiErr) {
		fmt.Fprintf(os.Stderr, "Error: %s (%s, request %s)\n", apiErr.Message, apiErr.Code, apiErr.RequestID)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}
