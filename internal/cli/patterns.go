package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"patternlab/internal/model"
)

// NewPatternsCommand groups the pattern catalog subcommands.
func NewPatternsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Browse the design-pattern catalog",
	}

	cmd.AddCommand(newPatternsListCommand())
	cmd.AddCommand(newPatternsRunCommand())
	cmd.AddCommand(newPatternsArticleCommand())

	return cmd
}

func newPatternsListCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patterns, err := newClient().Patterns(cmd.Context())
			if err != nil {
				return err
			}
			if category != "" {
				patterns = filterByCategory(patterns, category)
			}
			if jsonOutput {
				printJSON(map[string]any{"data": patterns})
				return nil
			}
			printPatternTable(patterns)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (creational, structural, principles)")

	return cmd
}

func newPatternsRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <slug>",
		Short: "Run a pattern demo and print its transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().RunPattern(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				printJSON(res)
				return nil
			}
			for _, line := range res.Transcript {
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newPatternsArticleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "article <slug>",
		Short: "Print the published article for a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := newClient().Article(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			os.Stdout.Write(body)
			return nil
		},
	}
}

func printPatternTable(patterns []model.Pattern) {
	if len(patterns) == 0 {
		fmt.Println("No patterns found.")
		return
	}

	sort.Slice(patterns, func(i, j int) bool { return patterns[i].Slug < patterns[j].Slug })

	fmt.Printf("%-12s %-22s %-12s %s\n", "SLUG", "NAME", "CATEGORY", "INTENT")
	for _, p := range patterns {
		fmt.Printf("%-12s %-22s %-12s %s\n", p.Slug, p.Name, p.Category, p.Intent)
	}
}

// filterByCategory returns the patterns whose category matches.
func filterByCategory(patterns []model.Pattern, category string) []model.Pattern {
	out := make([]model.Pattern, 0, len(patterns))
	for _, p := range patterns {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
