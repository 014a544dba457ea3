// Package term reads single keypresses without waiting for Enter.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the user hits Ctrl-C (or closes stdin)
// while a keypress is being read.
var ErrInterrupted = errors.New("interrupted")

// Reader yields one lowercased key at a time.
type Reader interface {
	ReadKey() (byte, error)
}

// NewReader picks the keypress backend for stdin: raw terminal mode on a
// TTY, a line-buffered fallback otherwise (pipes, tests, CI).
func NewReader() Reader {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return &rawReader{fd: int(fd)}
	}
	return &lineReader{r: bufio.NewReader(os.Stdin)}
}

// rawReader switches the terminal into raw mode for the duration of one
// read. Raw mode disables the driver's SIGINT generation, so Ctrl-C
// arrives as byte 0x03 and is mapped to ErrInterrupted here.
type rawReader struct {
	fd int
}

func (r *rawReader) ReadKey() (byte, error) {
	state, err := term.MakeRaw(r.fd)
	if err != nil {
		return 0, fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(r.fd, state)

	var buf [1]byte
	if _, err := os.Stdin.Read(buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrInterrupted
		}
		return 0, fmt.Errorf("reading key: %w", err)
	}

	switch buf[0] {
	case 0x03, 0x04: // Ctrl-C, Ctrl-D
		return 0, ErrInterrupted
	}
	return lower(buf[0]), nil
}

// lineReader takes the first byte of each input line. Used when stdin is
// not a terminal.
type lineReader struct {
	r *bufio.Reader
}

func (l *lineReader) ReadKey() (byte, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) == 0 {
			return 0, ErrInterrupted
		}
		if len(line) == 0 {
			return 0, fmt.Errorf("reading key: %w", err)
		}
	}
	return lower(line[0]), nil
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
