package reset

import "fmt"

// Kind classifies the terminal failures of a reset run. Recoverable
// conditions (a corrupt storage file, a declined backup) are warnings
// presented through the UI, never errors.
type Kind int

const (
	// UnsupportedPlatform means the host OS has no storage path mapping.
	UnsupportedPlatform Kind = iota
	// PathUnavailable means the platform config root is missing or not
	// writable.
	PathUnavailable
	// BackupFailed means a requested backup could not be completed. The
	// reset never proceeds past a failed backup.
	BackupFailed
	// SaveFailed means the merged document could not be written.
	SaveFailed
	// LoadFailed means the storage file exists but could not be read.
	LoadFailed
	// Cancelled means the user interrupted an interactive prompt.
	Cancelled
)

// Error is the single failure type the presentation layer handles, so one
// error panel serves every failure source.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func wrapErr(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
