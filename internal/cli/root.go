// Package cli implements the command-line presentation layer. Commands hold no
// business state: each one binds flags into a request DTO, validates it,
// invokes a store service synchronously, and renders the result. Every listing
// is rebuilt from a fresh store query.
package cli

import (
	"github.com/super-sam-code/VyaparTracker/internal/config"
	"github.com/super-sam-code/VyaparTracker/internal/infra"
	"github.com/super-sam-code/VyaparTracker/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App carries the wired services the commands execute against.
type App struct {
	Config     *config.Config
	Log        zerolog.Logger
	Store      *infra.Store
	Products   service.ProductService
	Stock      service.StockService
	Categories service.CategoryService
	Suppliers  service.SupplierService
	Reports    service.ReportService
}

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	JSON bool // render results as JSON instead of tables
}

// NewRootCommand creates the root command for the vyapar CLI.
func NewRootCommand(app *App) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "vyapar",
		Short:         "VyaparTracker - small-business inventory tracker",
		Long:          "Inventory, supplier, and GST tracking over an embedded SQLite store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "output as JSON")

	cmd.AddCommand(NewProductCommand(app, opts))
	cmd.AddCommand(NewStockCommand(app, opts))
	cmd.AddCommand(NewCategoryCommand(app, opts))
	cmd.AddCommand(NewSupplierCommand(app, opts))
	cmd.AddCommand(NewReportCommand(app, opts))
	cmd.AddCommand(NewBackupCommand(app))
	cmd.AddCommand(NewRestoreCommand(app))

	return cmd
}
