package cli

import (
	"fmt"
	"strconv"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"
	"github.com/super-sam-code/VyaparTracker/internal/dto"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewStockCommand groups the stock mutation and audit subcommands.
func NewStockCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Adjust and audit stock levels",
	}
	cmd.AddCommand(
		newStockAdjustCommand(app, opts),
		newStockHistoryCommand(app, opts),
	)
	return cmd
}

func newStockAdjustCommand(app *App, opts *RootOptions) *cobra.Command {
	var (
		productID, adjustType, notes string
		delta                        int
	)

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Apply a signed stock change and record its transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.AdjustStockRequest{
				ProductID: productID,
				Delta:     delta,
				Type:      adjustType,
				Notes:     notes,
			}
			if err := validateRequest(req); err != nil {
				return err
			}

			resp, err := app.Stock.Adjust(cmd.Context(), req)
			if err != nil {
				return err
			}
			app.Log.Info().
				Str("product_id", resp.ProductID).
				Int("delta", delta).
				Int("quantity", resp.Quantity).
				Str("type", adjustType).
				Msg("stock adjusted")

			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: stock now %d\n", resp.ProductName, resp.Quantity)
			return nil
		},
	}

	cmd.Flags().StringVar(&productID, "product", "", "product id (required)")
	cmd.Flags().IntVar(&delta, "delta", 0, "signed quantity change (required)")
	cmd.Flags().StringVar(&adjustType, "type", "adjustment", "purchase | sale | adjustment")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes for the transaction log")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("delta")

	return cmd
}

func newStockHistoryCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history PRODUCT_ID",
		Short: "Show a product's transaction log, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return apperror.Newf(apperror.ErrValidation, "invalid product id %q", args[0])
			}
			history, err := app.Stock.History(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), history)
			}
			rows := make([][]string, 0, len(history))
			for _, t := range history {
				rows = append(rows, []string{
					t.TransactionDate,
					t.Type,
					strconv.Itoa(t.Quantity),
					t.Notes,
				})
			}
			return renderTable(cmd.OutOrStdout(),
				[]string{"DATE", "TYPE", "DELTA", "NOTES"}, rows)
		},
	}
}
