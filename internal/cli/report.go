package cli

import (
	"fmt"
	"strconv"

	"github.com/super-sam-code/VyaparTracker/internal/infra"

	"github.com/spf13/cobra"
)

// NewReportCommand groups the read-only report subcommands.
func NewReportCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Inventory and GST reports",
	}
	cmd.AddCommand(
		newReportLowStockCommand(app, opts),
		newReportGSTCommand(app, opts),
		newReportCategoriesCommand(app, opts),
		newReportTopStockCommand(app, opts),
	)
	return cmd
}

func newReportLowStockCommand(app *App, opts *RootOptions) *cobra.Command {
	var (
		threshold int
		pdfPath   string
	)

	cmd := &cobra.Command{
		Use:   "low-stock",
		Short: "Products at or below their reorder level",
		RunE: func(cmd *cobra.Command, args []string) error {
			var override *int
			if cmd.Flags().Changed("threshold") {
				override = &threshold
			}
			items, err := app.Reports.LowStock(cmd.Context(), override)
			if err != nil {
				return err
			}

			if pdfPath != "" {
				path, err := infra.WriteLowStockPDF(items, pdfPath)
				if err != nil {
					return err
				}
				app.Log.Info().Str("path", path).Int("items", len(items)).Msg("low-stock PDF written")
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			}

			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), items)
			}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{
					item.ProductID,
					item.Name,
					strconv.Itoa(item.Quantity),
					strconv.Itoa(item.ReorderLevel),
				})
			}
			return renderTable(cmd.OutOrStdout(),
				[]string{"ID", "NAME", "QUANTITY", "REORDER AT"}, rows)
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 0, "override the per-product reorder level")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "write the report to a PDF file instead of stdout")

	return cmd
}

func newReportGSTCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gst",
		Short: "Stock value and GST amount per tax rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Reports.GSTSummary(cmd.Context())
			if err != nil {
				return err
			}
			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), rows)
			}
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{
					r.Rate.String() + "%",
					strconv.Itoa(r.Products),
					r.StockValue.StringFixed(2),
					r.GSTAmount.StringFixed(2),
				})
			}
			return renderTable(cmd.OutOrStdout(),
				[]string{"RATE", "PRODUCTS", "STOCK VALUE", "GST AMOUNT"}, table)
		},
	}
}

func newReportCategoriesCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Product count per category",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Reports.CategoryDistribution(cmd.Context())
			if err != nil {
				return err
			}
			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), rows)
			}
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{r.Category, strconv.FormatInt(r.Products, 10)})
			}
			return renderTable(cmd.OutOrStdout(), []string{"CATEGORY", "PRODUCTS"}, table)
		},
	}
}

func newReportTopStockCommand(app *App, opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top-stock",
		Short: "Highest stock levels by quantity",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := limit
			if !cmd.Flags().Changed("limit") {
				n = app.Config.TopStockLimit
			}
			rows, err := app.Reports.TopStock(cmd.Context(), n)
			if err != nil {
				return err
			}
			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), rows)
			}
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{r.Name, strconv.Itoa(r.Quantity)})
			}
			return renderTable(cmd.OutOrStdout(), []string{"NAME", "QUANTITY"}, table)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "number of products to show")

	return cmd
}
