package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/devchristian1337/wsreset/internal/term"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

var styleColors = map[Style]string{
	Info:    colorCyan,
	Success: colorGreen,
	Warning: colorYellow,
	Error:   colorRed,
}

var styleMarkers = map[Style]string{
	Info:    "[i]",
	Success: "[+]",
	Warning: "[!]",
	Error:   "[x]",
}

// Terminal renders panels and prompts on an ANSI terminal.
type Terminal struct {
	Out     io.Writer
	Keys    term.Reader
	NoColor bool
}

// NewTerminal builds a Terminal writing to out and reading keys from keys.
func NewTerminal(out io.Writer, keys term.Reader, noColor bool) *Terminal {
	return &Terminal{Out: out, Keys: keys, NoColor: noColor}
}

func (t *Terminal) colorize(color, text string) string {
	if t.NoColor {
		return text
	}
	return color + text + colorReset
}

// Panel draws a box around text with the style's marker in the title.
func (t *Terminal) Panel(style Style, title, text string) {
	color := styleColors[style]
	header := styleMarkers[style] + " " + title

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	width := len(header)
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}

	fmt.Fprintf(t.Out, "%s\n", t.colorize(color, "┌─ "+header+" "+strings.Repeat("─", width-len(header)+1)+"┐"))
	for _, l := range lines {
		pad := strings.Repeat(" ", width-len(l)+2)
		fmt.Fprintf(t.Out, "%s %s%s %s\n", t.colorize(color, "│"), l, pad, t.colorize(color, "│"))
	}
	fmt.Fprintf(t.Out, "%s\n", t.colorize(color, "└"+strings.Repeat("─", width+4)+"┘"))
}

// Table prints aligned key/value rows under a bold title.
func (t *Terminal) Table(title string, rows [][2]string) {
	fmt.Fprintf(t.Out, "%s\n", t.colorize(colorBold, title))
	labelWidth := 0
	for _, r := range rows {
		if len(r[0]) > labelWidth {
			labelWidth = len(r[0])
		}
	}
	for _, r := range rows {
		label := r[0] + ":" + strings.Repeat(" ", labelWidth-len(r[0]))
		fmt.Fprintf(t.Out, "  %s %s\n", t.colorize(colorCyan, label), r[1])
	}
}

// Confirm prompts and loops on keypresses until y or n.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(t.Out, "\n%s\n", t.colorize(colorBold, prompt+" (y/n)"))
	for {
		key, err := t.Keys.ReadKey()
		if err != nil {
			return false, err
		}
		switch key {
		case 'y':
			return true, nil
		case 'n':
			return false, nil
		}
	}
}
