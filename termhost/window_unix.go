//go:build unix

package termhost

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/inkwell-notes/anchor"
	"golang.org/x/sys/unix"
)

// Default size used when the terminal size cannot be read.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Window is the terminal window as an anchor.Container.
type Window struct {
	fd int

	mu            sync.RWMutex
	width, height int
}

var _ anchor.Container = (*Window)(nil)

// NewWindow creates a Window for the terminal behind f and reads its size.
// An unreadable size falls back to 80x24.
func NewWindow(f *os.File) *Window {
	w := &Window{fd: int(f.Fd()), width: defaultWidth, height: defaultHeight}
	_ = w.Refresh()
	return w
}

// Refresh re-reads the terminal size. On error the previous size is kept.
func (w *Window) Refresh() error {
	ws, err := unix.IoctlGetWinsize(w.fd, unix.TIOCGWINSZ)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.width, w.height = int(ws.Col), int(ws.Row)
	w.mu.Unlock()
	return nil
}

// ClientSize implements anchor.Container.
func (w *Window) ClientSize() (float64, float64) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return float64(w.width), float64(w.height)
}

// Watch refreshes the size on every SIGWINCH until ctx is done.
func (w *Window) Watch(ctx context.Context) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			_ = w.Refresh()
		}
	}
}
