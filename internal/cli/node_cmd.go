package cli

import (
	"fmt"
	"strings"

	"github.com/mkoval/plotline/internal/cli/formatter"
	"github.com/mkoval/plotline/internal/domain"
	"github.com/spf13/cobra"
)

func newNodeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Manage timeline nodes",
	}
	cmd.AddCommand(
		newNodeListCmd(app),
		newNodeAddCmd(app),
		newNodeDeleteCmd(app),
	)
	return cmd
}

func newNodeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all nodes with their todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := app.Store.FetchNodes(ctx); err != nil {
				return err
			}
			app.Store.LoadSettings(ctx)

			nodes := app.Store.Nodes()
			if len(nodes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No nodes yet.")
				return nil
			}

			if !app.interactive() {
				for _, n := range nodes {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d/%d\n",
						n.ID, string(n.Type), n.Date, n.Title, doneCount(n.Todos), len(n.Todos))
				}
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.NodeTable(nodes))
			return nil
		},
	}
}

func newNodeAddCmd(app *App) *cobra.Command {
	var (
		date        string
		nodeType    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidNodeTypes[nodeType] {
				return fmt.Errorf("invalid node type %q", nodeType)
			}
			node := domain.Node{
				Title:       strings.TrimSpace(args[0]),
				Date:        date,
				Type:        domain.NodeType(nodeType),
				Description: description,
				Todos:       []domain.Todo{},
			}
			if err := app.Store.AddNode(cmd.Context(), node); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Node created.")
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "node date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&nodeType, "type", string(domain.NodeNormal), "node type (normal|milestone)")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newNodeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <node-id>",
		Short: "Delete a node and its todos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.DeleteNode(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Node deleted.")
			return nil
		},
	}
}

func doneCount(todos []domain.Todo) int {
	n := 0
	for _, t := range todos {
		if t.Completed {
			n++
		}
	}
	return n
}
