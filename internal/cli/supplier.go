package cli

import (
	"fmt"

	"github.com/super-sam-code/VyaparTracker/internal/apperror"
	"github.com/super-sam-code/VyaparTracker/internal/dto"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSupplierCommand groups the supplier CRUD subcommands.
func NewSupplierCommand(app *App, opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supplier",
		Short: "Manage suppliers",
	}
	cmd.AddCommand(
		newSupplierAddCommand(app, opts),
		newSupplierListCommand(app, opts),
		newSupplierGetCommand(app, opts),
		newSupplierUpdateCommand(app, opts),
		newSupplierDeleteCommand(app),
	)
	return cmd
}

func supplierFlags(cmd *cobra.Command, name, contact, phone, email, address, gstin *string) {
	cmd.Flags().StringVar(name, "name", "", "supplier name")
	cmd.Flags().StringVar(contact, "contact", "", "contact person")
	cmd.Flags().StringVar(phone, "phone", "", "phone number")
	cmd.Flags().StringVar(email, "email", "", "email address")
	cmd.Flags().StringVar(address, "address", "", "postal address")
	cmd.Flags().StringVar(gstin, "gstin", "", "GSTIN (15 characters, unique)")
}

func newSupplierAddCommand(app *App, opts *RootOptions) *cobra.Command {
	var name, contact, phone, email, address, gstin string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a supplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.CreateSupplierRequest{Name: name}
			if contact != "" {
				req.ContactPerson = &contact
			}
			if phone != "" {
				req.Phone = &phone
			}
			if email != "" {
				req.Email = &email
			}
			if address != "" {
				req.Address = &address
			}
			if gstin != "" {
				req.GSTIN = &gstin
			}
			if err := validateRequest(req); err != nil {
				return err
			}

			resp, err := app.Suppliers.Add(cmd.Context(), req)
			if err != nil {
				return err
			}
			app.Log.Info().Str("supplier_id", resp.ID).Str("name", resp.Name).Msg("supplier added")

			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added supplier %s (id %s)\n", resp.Name, resp.ID)
			return nil
		},
	}

	supplierFlags(cmd, &name, &contact, &phone, &email, &address, &gstin)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSupplierListCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			suppliers, err := app.Suppliers.List(cmd.Context())
			if err != nil {
				return err
			}
			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), suppliers)
			}
			rows := make([][]string, 0, len(suppliers))
			for _, s := range suppliers {
				rows = append(rows, []string{
					s.ID, s.Name, orDash(s.ContactPerson), orDash(s.Phone), orDash(s.GSTIN),
				})
			}
			return renderTable(cmd.OutOrStdout(),
				[]string{"ID", "NAME", "CONTACT", "PHONE", "GSTIN"}, rows)
		},
	}
}

func newSupplierGetCommand(app *App, opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return apperror.Newf(apperror.ErrValidation, "invalid supplier id %q", args[0])
			}
			s, err := app.Suppliers.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), s)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", s.Name)
			fmt.Fprintf(out, "  id:       %s\n", s.ID)
			fmt.Fprintf(out, "  contact:  %s\n", orDash(s.ContactPerson))
			fmt.Fprintf(out, "  phone:    %s\n", orDash(s.Phone))
			fmt.Fprintf(out, "  email:    %s\n", orDash(s.Email))
			fmt.Fprintf(out, "  address:  %s\n", orDash(s.Address))
			fmt.Fprintf(out, "  gstin:    %s\n", orDash(s.GSTIN))
			return nil
		},
	}
}

func newSupplierUpdateCommand(app *App, opts *RootOptions) *cobra.Command {
	var name, contact, phone, email, address, gstin string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update supplier fields (only the flags you set are applied)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return apperror.Newf(apperror.ErrValidation, "invalid supplier id %q", args[0])
			}

			req := dto.UpdateSupplierRequest{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = &name
			}
			if flags.Changed("contact") {
				req.ContactPerson = &contact
			}
			if flags.Changed("phone") {
				req.Phone = &phone
			}
			if flags.Changed("email") {
				req.Email = &email
			}
			if flags.Changed("address") {
				req.Address = &address
			}
			if flags.Changed("gstin") {
				req.GSTIN = &gstin
			}
			if err := validateRequest(req); err != nil {
				return err
			}

			resp, err := app.Suppliers.Update(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			app.Log.Info().Str("supplier_id", resp.ID).Msg("supplier updated")

			if opts.JSON {
				return renderJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated supplier %s\n", resp.Name)
			return nil
		},
	}

	supplierFlags(cmd, &name, &contact, &phone, &email, &address, &gstin)

	return cmd
}

func newSupplierDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a supplier, detaching its products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return apperror.Newf(apperror.ErrValidation, "invalid supplier id %q", args[0])
			}
			if err := app.Suppliers.Delete(cmd.Context(), id); err != nil {
				return err
			}
			app.Log.Info().Str("supplier_id", id.String()).Msg("supplier deleted")
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted supplier %s\n", id)
			return nil
		},
	}
}
