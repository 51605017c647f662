package cli

import (
	"fmt"
	"strconv"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"
	"github.com/super-sam-code/VyaparTracker/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// NewProductCommand groups the product CRUD subcommands.
func NewProductCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage products",
	}
	cmd.AddCommand(
		newProductAddCommand(app, opts),
		newProductListCommand(app, opts),
		newProductGetCommand(app, opts),
		newProductUpdateCommand(app, opts),
		newProductDeleteCommand(app),
	)
	return cmd
}

// parseDecimalFlag converts a price/percentage flag to decimal, classifying
// bad input as a validation failure rather than a storage one.
func parseDecimalFlag(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, apperror.Newf(apperror.ErrValidation, "%s must be numeric, got %q", name, value)
	}
	return d, nil
}

func newProductAddCommand(app *App, opts *RootOptions) *cobra.Command {
	var (
		name, description, categoryID, supplierID string
		costPrice, sellingPrice, gstPercentage    string
		hsnCode                                   string
		initialStock                              int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product (provisions its inventory record atomically)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cost, err := parseDecimalFlag("cost", costPrice)
			if err != nil {
				return err
			}
			price, err := parseDecimalFlag("price", sellingPrice)
			if err != nil {
				return err
			}
			gst, err := parseDecimalFlag("gst", gstPercentage)
			if err != nil {
				return err
			}

			req := dto.CreateProductRequest{
				Name:          name,
				CategoryID:    categoryID,
				CostPrice:     cost,
				SellingPrice:  price,
				GSTPercentage: gst,
				InitialStock:  initialStock,
			}
			if description != "" {
				req.Description = &description
			}
			if supplierID != "" {
				req.SupplierID = &supplierID
			}
			if hsnCode != "" {
				req.HSNCode = &hsnCode
			}
			if err := validateRequest(req); err != nil {
				return err
			}

			resp, err := app.Products.Add(cmd.Context(), req)
			if err != nil {
				return err
			}
			app.Log.Info().Str("product_id", resp.ID).Str("name", resp.Name).Msg("product added")

			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added product %s (id %s, stock %d)\n", resp.Name, resp.ID, resp.Quantity)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id (required)")
	cmd.Flags().StringVar(&supplierID, "supplier", "", "supplier id")
	cmd.Flags().StringVar(&costPrice, "cost", "0", "cost price")
	cmd.Flags().StringVar(&sellingPrice, "price", "0", "selling price")
	cmd.Flags().StringVar(&gstPercentage, "gst", "18.0", "GST percentage")
	cmd.Flags().StringVar(&hsnCode, "hsn", "", "HSN code")
	cmd.Flags().IntVar(&initialStock, "initial-stock", 0, "opening stock quantity")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newProductListCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products with stock levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := app.Products.List(cmd.Context())
			if err != nil {
				return err
			}
			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), products)
			}
			rows := make([][]string, 0, len(products))
			for _, p := range products {
				rows = append(rows, []string{
					p.ID,
					p.Name,
					p.CategoryName,
					orDash(p.SupplierName),
					p.SellingPrice.StringFixed(2),
					p.GSTPercentage.String() + "%",
					strconv.Itoa(p.Quantity),
				})
			}
			return renderTable(cmd.OutOrStdout(),
				[]string{"ID", "NAME", "CATEGORY", "SUPPLIER", "PRICE", "GST", "STOCK"}, rows)
		},
	}
}

func newProductGetCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one product with category, supplier, and stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return apperror.Newf(apperror.ErrValidation, "invalid product id %q", args[0])
			}
			p, err := app.Products.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), p)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", p.Name)
			fmt.Fprintf(out, "  id:          %s\n", p.ID)
			fmt.Fprintf(out, "  category:    %s\n", p.CategoryName)
			fmt.Fprintf(out, "  supplier:    %s\n", orDash(p.SupplierName))
			fmt.Fprintf(out, "  cost price:  %s\n", p.CostPrice.StringFixed(2))
			fmt.Fprintf(out, "  sell price:  %s\n", p.SellingPrice.StringFixed(2))
			fmt.Fprintf(out, "  gst:         %s%%\n", p.GSTPercentage.String())
			fmt.Fprintf(out, "  hsn:         %s\n", orDash(p.HSNCode))
			fmt.Fprintf(out, "  stock:       %d\n", p.Quantity)
			return nil
		},
	}
}

func newProductUpdateCommand(app *App, opts *RootOptions) *cobra.Command {
	var (
		name, description, categoryID, supplierID string
		costPrice, sellingPrice, gstPercentage    string
		hsnCode                                   string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update product fields (only the flags you set are applied)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return apperror.Newf(apperror.ErrValidation, "invalid product id %q", args[0])
			}

			req := dto.UpdateProductRequest{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("description") {
				req.Description = &description
			}
			if flags.Changed("category") {
				req.CategoryID = &categoryID
			}
			if flags.Changed("supplier") {
				req.SupplierID = &supplierID
			}
			if flags.Changed("cost") {
				d, err := parseDecimalFlag("cost", costPrice)
				if err != nil {
					return err
				}
				req.CostPrice = &d
			}
			if flags.Changed("price") {
				d, err := parseDecimalFlag("price", sellingPrice)
				if err != nil {
					return err
				}
				req.SellingPrice = &d
			}
			if flags.Changed("gst") {
				d, err := parseDecimalFlag("gst", gstPercentage)
				if err != nil {
					return err
				}
				req.GSTPercentage = &d
			}
			if flags.Changed("hsn") {
				req.HSNCode = &hsnCode
			}
			if err := validateRequest(req); err != nil {
				return err
			}

			resp, err := app.Products.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			app.Log.Info().Str("product_id", resp.ID).Msg("product updated")

			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated product %s\n", resp.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name")
	cmd.Flags().StringVar(&description, "description", "", "product description")
	cmd.Flags().StringVar(&categoryID, "category", "", "category id")
	cmd.Flags().StringVar(&supplierID, "supplier", "", "supplier id")
	cmd.Flags().StringVar(&costPrice, "cost", "", "cost price")
	cmd.Flags().StringVar(&sellingPrice, "price", "", "selling price")
	cmd.Flags().StringVar(&gstPercentage, "gst", "", "GST percentage")
	cmd.Flags().StringVar(&hsnCode, "hsn", "", "HSN code")

	return cmd
}

func newProductDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a product and its inventory and transaction rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return apperror.Newf(apperror.ErrValidation, "invalid product id %q", args[0])
			}
			if err := app.Products.Delete(cmd.Context(), id); err != nil {
				return err
			}
			app.Log.Info().Str("product_id", id.String()).Msg("product deleted")
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted product %s\n", id)
			return nil
		},
	}
}
