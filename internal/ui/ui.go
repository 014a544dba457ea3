// Package ui is the presentation collaborator for the reset workflow: it
// shows panels and asks yes/no questions, nothing more. The workflow never
// talks to the terminal directly.
package ui

// Style selects the accent used when rendering a panel.
type Style int

const (
	Info Style = iota
	Success
	Warning
	Error
)

// UI is the minimal surface the workflow needs from a front-end.
type UI interface {
	// Panel displays a titled message.
	Panel(style Style, title, text string)

	// Table displays labeled key/value rows under a title.
	Table(title string, rows [][2]string)

	// Confirm asks a yes/no question and blocks for the answer.
	Confirm(prompt string) (bool, error)
}
