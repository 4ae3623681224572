//go:build unix

package termhost

import (
	"os"
	"testing"
)

func TestWindow_FallsBackWhenNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe() error = %v", err)
	}
	defer r.Close()
	defer w.Close()

	win := NewWindow(r)
	if err := win.Refresh(); err == nil {
		t.Error("Refresh() on a pipe succeeded, want error")
	}
	width, height := win.ClientSize()
	if width != defaultWidth || height != defaultHeight {
		t.Errorf("ClientSize() = %vx%v, want %dx%d", width, height, defaultWidth, defaultHeight)
	}
}

func TestOpenSession_RejectsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe() error = %v", err)
	}
	defer r.Close()
	defer w.Close()

	if _, err := OpenSession(r, w); err == nil {
		t.Error("OpenSession() on a pipe succeeded, want error")
	}
}

func TestFileReader_ReadsPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe() error = %v", err)
	}
	defer r.Close()
	defer w.Close()

	reader := NewFileReader(r)
	if data, err := reader.ReadInput(0); err != nil || len(data) != 0 {
		t.Fatalf("ReadInput() on empty pipe = %q, %v; want timeout", data, err)
	}

	if _, err := w.WriteString("\x1b[<35;3;4M"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	data, err := reader.ReadInput(-1)
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	if string(data) != "\x1b[<35;3;4M" {
		t.Errorf("ReadInput() = %q", data)
	}

	_ = reader.Close()
	if _, err := reader.ReadInput(0); err == nil {
		t.Error("ReadInput() after Close succeeded, want error")
	}
}
