//go:build unix

package termhost

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// fdReader implements Reader for a terminal file descriptor.
type fdReader struct {
	fd  int
	buf []byte
}

// NewFileReader creates a Reader for the given terminal input.
// The terminal should already be in raw mode.
func NewFileReader(in *os.File) Reader {
	return &fdReader{
		fd:  int(in.Fd()),
		buf: make([]byte, 256),
	}
}

func (r *fdReader) ReadInput(timeout time.Duration) ([]byte, error) {
	if r.fd < 0 {
		return nil, ErrClosed
	}

	ready, err := selectWithTimeout(r.fd, timeout)
	if err != nil || !ready {
		return nil, err
	}

	n, err := unix.Read(r.fd, r.buf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return nil, nil
		}
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[:n])
	return out, nil
}

// Close releases the reader. The file itself is owned by the caller.
func (r *fdReader) Close() error {
	r.fd = -1
	return nil
}

// selectWithTimeout performs a select() call on the given fd with timeout.
// Returns (true, nil) if the fd is ready for reading.
// Returns (false, nil) on timeout.
// Returns (false, err) on error.
func selectWithTimeout(fd int, timeout time.Duration) (ready bool, err error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	// If timeout < 0, tv is nil which means block indefinitely
	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		// EINTR is expected when signals arrive
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}

	return n > 0, nil
}
