//go:build unix

package termhost

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Session owns a terminal in raw mode with mouse reporting enabled.
type Session struct {
	in    *os.File
	out   io.Writer
	state *term.State
}

// OpenSession puts in into raw mode and enables mouse reporting on out.
// Close must be called to restore the terminal.
func OpenSession(in *os.File, out io.Writer) (*Session, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("termhost: input is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	if _, err := io.WriteString(out, enableMouse); err != nil {
		_ = term.Restore(fd, state)
		return nil, fmt.Errorf("enable mouse reporting: %w", err)
	}

	return &Session{in: in, out: out, state: state}, nil
}

// Reader returns a Reader over the session's input.
func (s *Session) Reader() Reader {
	return NewFileReader(s.in)
}

// Close disables mouse reporting and restores the previous terminal mode.
func (s *Session) Close() error {
	_, werr := io.WriteString(s.out, disableMouse)
	if err := term.Restore(int(s.in.Fd()), s.state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return werr
}
