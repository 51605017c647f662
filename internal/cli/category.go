package cli

import (
	"fmt"

	"github.com/super-sam-code/VyaparTracker/internal/dto"

	"github.com/spf13/cobra"
)

// NewCategoryCommand groups the category subcommands.
func NewCategoryCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage product categories",
	}
	cmd.AddCommand(
		newCategoryAddCommand(app, opts),
		newCategoryListCommand(app, opts),
	)
	return cmd
}

func newCategoryAddCommand(app *App, opts *RootOptions) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a category (name must be unique)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.CreateCategoryRequest{Name: name}
			if description != "" {
				req.Description = &description
			}
			if err := validateRequest(req); err != nil {
				return err
			}

			resp, err := app.Categories.Add(cmd.Context(), req)
			if err != nil {
				return err
			}
			app.Log.Info().Str("category_id", resp.ID).Str("name", resp.Name).Msg("category added")

			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added category %s (id %s)\n", resp.Name, resp.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "category name (required)")
	cmd.Flags().StringVar(&description, "description", "", "category description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryListCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Categories.List(cmd.Context())
			if err != nil {
				return err
			}
			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), categories)
			}
			rows := make([][]string, 0, len(categories))
			for _, c := range categories {
				rows = append(rows, []string{c.ID, c.Name, orDash(c.Description)})
			}
			return renderTable(cmd.OutOrStdout(), []string{"ID", "NAME", "DESCRIPTION"}, rows)
		},
	}
}
