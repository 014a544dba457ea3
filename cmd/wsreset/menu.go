package main

import (
	"errors"
	"fmt"

	"github.com/devchristian1337/wsreset/internal/reset"
	"github.com/devchristian1337/wsreset/internal/term"
	"github.com/devchristian1337/wsreset/internal/ui"
)

const (
	menuReset = '1'
	menuView  = '2'
	menuExit  = '3'
)

// runMenu drives the interactive loop: header, menu, single-key choice,
// action, "another operation?" prompt. Reset failures are shown and the
// loop continues; only an interrupt ends the process with an error.
func runMenu(a *app) error {
	for {
		a.ui.Panel(ui.Info, "Windsurf Reset Tool v"+version,
			"This tool will reset your Windsurf device IDs and create a\nbackup of your existing configuration.")

		choice, err := promptMenu(a)
		if err != nil {
			return interrupted(a, err)
		}

		switch choice {
		case menuReset:
			confirmed, err := a.ui.Confirm("Are you sure you want to reset your device IDs?")
			if err != nil {
				return interrupted(a, err)
			}
			if confirmed {
				if _, err := a.workflow.Run(reset.BackupAsk); err != nil {
					var resetErr *reset.Error
					if errors.As(err, &resetErr) && resetErr.Kind == reset.Cancelled {
						return interrupted(a, err)
					}
					a.reportErr(err)
				}
			}
		case menuView:
			// View errors are shown by the workflow; the menu keeps going.
			a.workflow.View()
		case menuExit:
			goodbye(a)
			return nil
		}

		again, err := a.ui.Confirm("Would you like to perform another operation?")
		if err != nil {
			return interrupted(a, err)
		}
		if !again {
			goodbye(a)
			return nil
		}
	}
}

func promptMenu(a *app) (byte, error) {
	a.ui.Table("Main Menu", [][2]string{
		{"[1]", "Reset Device IDs"},
		{"[2]", "View Current Configuration"},
		{"[3]", "Exit"},
	})
	fmt.Fprintln(a.ui.Out, "Press a key to select an option")

	for {
		key, err := a.ui.Keys.ReadKey()
		if err != nil {
			return 0, err
		}
		switch key {
		case menuReset, menuView, menuExit:
			return key, nil
		}
	}
}

func goodbye(a *app) {
	a.ui.Panel(ui.Info, "Goodbye", "Thank you for using Windsurf Reset Tool!")
}

// interrupted shows the cancellation notice and hands the error up so the
// process exits non-zero.
func interrupted(a *app, err error) error {
	if errors.Is(err, term.ErrInterrupted) || isCancelled(err) {
		a.ui.Panel(ui.Warning, "Warning", "Operation cancelled by user")
		return err
	}
	a.reportErr(err)
	return err
}

func isCancelled(err error) bool {
	var resetErr *reset.Error
	return errors.As(err, &resetErr) && resetErr.Kind == reset.Cancelled
}
