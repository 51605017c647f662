package cli

import (
	"fmt"

	"github.com/super-sam-code/VyaparTracker/internal/infra"

	"github.com/spf13/cobra"
)

// NewBackupCommand copies the database file to a destination path. The store
// connection is closed first — backups are raw file copies and must not race
// a live writer.
func NewBackupCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backup DEST",
		Short: "Back up the database file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.Close(); err != nil {
				return err
			}
			if err := infra.BackupDatabase(app.Config.DBPath, args[0]); err != nil {
				return err
			}
			app.Log.Info().Str("dest", args[0]).Msg("database backed up")
			fmt.Fprintf(cmd.OutOrStdout(), "Backed up %s to %s\n", app.Config.DBPath, args[0])
			return nil
		},
	}
}

// NewRestoreCommand replaces the database file from a backup.
func NewRestoreCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore SRC",
		Short: "Restore the database file from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.Close(); err != nil {
				return err
			}
			if err := infra.RestoreDatabase(args[0], app.Config.DBPath); err != nil {
				return err
			}
			app.Log.Info().Str("src", args[0]).Msg("database restored")
			fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", app.Config.DBPath, args[0])
			return nil
		},
	}
}
