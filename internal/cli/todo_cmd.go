package cli

import (
	"fmt"

	"github.com/mkoval/plotline/internal/domain"
	"github.com/spf13/cobra"
)

func newTodoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos attached to nodes",
	}
	cmd.AddCommand(
		newTodoAddCmd(app),
		newTodoToggleCmd(app),
		newTodoDeleteCmd(app),
	)
	return cmd
}

func newTodoAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <node-id> <text>",
		Short: "Add a todo to a node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			todo := domain.Todo{NodeID: args[0], Text: args[1]}
			if err := app.Store.AddTodo(cmd.Context(), args[0], todo); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Todo added.")
			return nil
		},
	}
}

func newTodoToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <todo-id>",
		Short: "Toggle a todo's completed state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.Store.FetchNodes(ctx); err != nil {
				return err
			}
			todo, ok := findTodo(app.Store.Nodes(), args[0])
			if !ok {
				return fmt.Errorf("todo %s not found", args[0])
			}
			todo.Completed = !todo.Completed
			if err := app.Store.UpdateTodo(ctx, todo); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Todo marked %s.\n", completedLabel(todo.Completed))
			return nil
		},
	}
}

func newTodoDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <todo-id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.DeleteTodo(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Todo deleted.")
			return nil
		},
	}
}

func findTodo(nodes []domain.Node, todoID string) (domain.Todo, bool) {
	for _, n := range nodes {
		for _, t := range n.Todos {
			if t.ID == todoID {
				return t, true
			}
		}
	}
	return domain.Todo{}, false
}

func completedLabel(completed bool) string {
	if completed {
		return "complete"
	}
	return "incomplete"
}
