package main

import (
	"github.com/spf13/cobra"

	"github.com/devchristian1337/wsreset/internal/reset"
	"github.com/devchristian1337/wsreset/internal/ui"
)

// --- reset ---

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the device IDs in place",
	Long: `Reset the device IDs in place.

Generates a fresh machine id, mac machine id, and device id and writes them
into storage.json, preserving every other field. By default you are asked
whether to back up an existing file first.

Examples:
  wsreset reset
  wsreset reset --yes --backup
  wsreset reset --yes --no-backup`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		withBackup, _ := cmd.Flags().GetBool("backup")
		skipBackup, _ := cmd.Flags().GetBool("no-backup")

		a := newApp()

		if !yes {
			confirmed, err := a.ui.Confirm("Are you sure you want to reset your device IDs?")
			if err != nil {
				a.reportErr(err)
				return err
			}
			if !confirmed {
				a.ui.Panel(ui.Info, "Information", "Reset aborted, nothing changed")
				return nil
			}
		}

		choice := reset.BackupAsk
		switch {
		case skipBackup:
			choice = reset.BackupNever
		case withBackup:
			choice = reset.BackupAlways
		}

		if _, err := a.workflow.Run(choice); err != nil {
			a.reportErr(err)
			return err
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	resetCmd.Flags().Bool("backup", false, "back up an existing storage file without asking")
	resetCmd.Flags().Bool("no-backup", false, "skip the backup without asking")
	resetCmd.MarkFlagsMutuallyExclusive("backup", "no-backup")
}

// --- view ---

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the current device ID configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		return a.workflow.View()
	},
}
