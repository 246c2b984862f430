package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"patternlab/internal/model"
	"patternlab/internal/tutorial"
)

// NewTodoCommand groups the todo subcommands (list, add, done, rm).
func NewTodoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos on the demo API",
	}

	cmd.AddCommand(newTodoListCommand())
	cmd.AddCommand(newTodoAddCommand())
	cmd.AddCommand(newTodoDoneCommand())
	cmd.AddCommand(newTodoRemoveCommand())

	return cmd
}

type todoListFlags struct {
	limit  int
	offset int
}

func newTodoListCommand() *cobra.Command {
	flags := &todoListFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().ListTodos(cmd.Context(), flags.limit, flags.offset)
			if err != nil {
				return err
			}
			if jsonOutput {
				printJSON(res)
				return nil
			}
			printTodoTable(res.Items, res.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.limit, "limit", 10, "Maximum number of todos to return")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "Number of todos to skip")

	return cmd
}

func newTodoAddCommand() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			todo, err := newClient().CreateTodo(cmd.Context(), owner, title)
			if err != nil {
				return err
			}
			if jsonOutput {
				printJSON(todo)
				return nil
			}
			fmt.Printf("Created %s: %s\n", todo.ID, todo.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner of the todo (required)")
	cmd.MarkFlagRequired("owner")

	return cmd
}

func newTodoDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			completed := true
			todo, err := newClient().UpdateTodo(cmd.Context(), args[0], tutorial.TodoUpdate{Completed: &completed})
			if err != nil {
				return err
			}
			if jsonOutput {
				printJSON(todo)
				return nil
			}
			fmt.Printf("Done %s: %s\n", todo.ID, todo.Title)
			return nil
		},
	}
}

func newTodoRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().DeleteTodo(cmd.Context(), args[0]); err != nil {
				return err
			}
			if !jsonOutput {
				fmt.Printf("Deleted %s\n", args[0])
			}
			return nil
		},
	}
}

func printTodoTable(todos []model.Todo, total int) {
	if len(todos) == 0 {
		fmt.Println("No todos found.")
		return
	}

	fmt.Printf("%-38s %-12s %-9s %s\n", "ID", "OWNER", "DONE", "TITLE")
	for _, td := range todos {
		fmt.Printf("%-38s %-12s %-9s %s\n", td.ID, td.Owner, formatCompleted(td.Completed), td.Title)
	}
	fmt.Printf("\n%d of %d shown\n", len(todos), total)
}

// formatCompleted renders the completion flag for the text table.
func formatCompleted(done bool) string {
	if done {
		return "yes"
	}
	return "no"
}
