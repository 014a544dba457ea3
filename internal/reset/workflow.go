// Package reset orchestrates the device-id reset: resolve the storage
// path, offer a backup, load, regenerate, merge, save, report.
package reset

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/devchristian1337/wsreset/internal/device"
	"github.com/devchristian1337/wsreset/internal/storage"
	"github.com/devchristian1337/wsreset/internal/term"
	"github.com/devchristian1337/wsreset/internal/ui"
)

// BackupChoice is how a run decides whether to copy the existing file
// before overwriting it.
type BackupChoice int

const (
	// BackupAsk prompts through the UI when the storage file exists.
	BackupAsk BackupChoice = iota
	// BackupAlways backs up without prompting.
	BackupAlways
	// BackupNever skips the backup without prompting.
	BackupNever
)

// Workflow runs one reset or view pass. Single-threaded, one invocation,
// no retries.
type Workflow struct {
	UI     ui.UI
	Logger *slog.Logger

	// StoragePath overrides platform resolution when non-empty.
	StoragePath string

	// Now is the clock for backup timestamps. Defaults to time.Now.
	Now func() time.Time
}

func (w *Workflow) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func (w *Workflow) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}

// Run executes a full reset and returns the freshly generated identifiers.
// Any returned error is a *Error; the caller only reports it and exits
// non-zero.
func (w *Workflow) Run(choice BackupChoice) (device.IDSet, error) {
	log := w.logger()

	path, err := w.locate()
	if err != nil {
		return device.IDSet{}, err
	}
	log.Debug("storage file located", "path", path)

	if err := w.maybeBackup(path, choice); err != nil {
		return device.IDSet{}, err
	}

	doc, ok, err := storage.Load(path)
	if err != nil {
		return device.IDSet{}, wrapErr(LoadFailed, "failed to read storage file", err)
	}
	if !ok {
		log.Warn("storage file holds invalid JSON, starting fresh", "path", path)
		w.UI.Panel(ui.Warning, "Warning", "Invalid JSON in storage file, creating new configuration")
	}

	ids, err := device.NewIDSet()
	if err != nil {
		return device.IDSet{}, wrapErr(SaveFailed, "failed to generate device ids", err)
	}
	ids.Apply(doc)

	if err := storage.Save(path, doc); err != nil {
		return device.IDSet{}, wrapErr(SaveFailed, "failed to save storage file", err)
	}
	log.Info("device ids reset", "path", path)

	w.UI.Panel(ui.Success, "Success", "Device IDs have been successfully reset!")
	w.UI.Table("New Device IDs", ids.Rows())
	return ids, nil
}

func (w *Workflow) locate() (string, error) {
	path, err := storage.Locate(w.StoragePath)
	if err != nil {
		kind := PathUnavailable
		if errors.Is(err, storage.ErrUnsupportedPlatform) {
			kind = UnsupportedPlatform
		}
		return "", wrapErr(kind, "failed to determine storage file location", err)
	}
	return path, nil
}

// maybeBackup copies the existing file per choice. A declined backup only
// warns; a failed backup attempt is terminal.
func (w *Workflow) maybeBackup(path string, choice BackupChoice) error {
	if choice == BackupNever {
		return nil
	}

	if choice == BackupAsk {
		exists, err := storage.Exists(path)
		if err != nil {
			return wrapErr(LoadFailed, "failed to check storage file", err)
		}
		if !exists {
			return nil
		}
		yes, err := w.UI.Confirm("Would you like to create a backup before proceeding?")
		if err != nil {
			if errors.Is(err, term.ErrInterrupted) {
				return wrapErr(Cancelled, "operation cancelled by user", err)
			}
			return wrapErr(Cancelled, "failed to read answer", err)
		}
		if !yes {
			w.UI.Panel(ui.Warning, "Warning", "Proceeding without backup")
			return nil
		}
	}

	backupPath, err := storage.Backup(path, w.now())
	if err != nil {
		return wrapErr(BackupFailed, "failed to create backup", err)
	}
	if backupPath != "" {
		w.logger().Info("backup created", "path", backupPath)
		w.UI.Panel(ui.Success, "Backup Complete", "Backup created at:\n"+backupPath)
	}
	return nil
}

// View displays the current telemetry identifier fields without mutating
// anything. Errors are reported through the UI and returned so a direct
// run can exit non-zero; the interactive menu ignores the return value and
// keeps looping.
func (w *Workflow) View() error {
	path, err := w.locate()
	if err != nil {
		w.UI.Panel(ui.Error, "Error", fmt.Sprintf("Failed to read configuration: %v", err))
		return err
	}

	exists, err := storage.Exists(path)
	if err != nil {
		w.UI.Panel(ui.Error, "Error", fmt.Sprintf("Failed to read configuration: %v", err))
		return err
	}
	if !exists {
		w.UI.Panel(ui.Info, "Information", "No configuration file found")
		return nil
	}

	doc, ok, err := storage.Load(path)
	if err != nil {
		w.UI.Panel(ui.Error, "Error", fmt.Sprintf("Failed to read configuration: %v", err))
		return err
	}
	if !ok {
		w.UI.Panel(ui.Warning, "Warning", "Storage file holds invalid JSON")
		return nil
	}

	w.UI.Table("Current Device IDs", telemetryRows(doc))
	return nil
}

// telemetryRows picks the telemetry identifier fields out of a document in
// a stable order, hiding telemetry.sqmId like the display always has.
func telemetryRows(doc storage.Document) [][2]string {
	var rows [][2]string
	for _, key := range device.Keys {
		if v, found := doc[key]; found {
			rows = append(rows, [2]string{key, fmt.Sprintf("%v", v)})
		}
	}
	var extras []string
	for key := range doc {
		if !strings.HasPrefix(key, "telemetry.") || key == device.KeySqmID {
			continue
		}
		if !slices.Contains(device.Keys, key) {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		rows = append(rows, [2]string{key, fmt.Sprintf("%v", doc[key])})
	}
	return rows
}
