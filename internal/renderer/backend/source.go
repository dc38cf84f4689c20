package backend

import (
	"errors"
	"io"
	"time"

	"golang.org/x/sys/unix"

	"github.com/dshills/tiny/internal/input/key"
)

// FileSource reads terminal input bytes from a file descriptor, waiting at
// most the requested timeout for each byte.
type FileSource struct {
	fd  int
	buf [64]byte
	pos int
	end int
}

// NewFileSource creates a FileSource reading fd.
func NewFileSource(fd int) *FileSource {
	return &FileSource{fd: fd}
}

// ReadByteTimeout returns the next input byte. It returns key.ErrTimeout
// when no byte arrives within timeout. A negative timeout waits
// indefinitely.
func (s *FileSource) ReadByteTimeout(timeout time.Duration) (byte, error) {
	if s.pos < s.end {
		b := s.buf[s.pos]
		s.pos++
		return b, nil
	}

	ready, err := s.wait(timeout)
	if err != nil {
		return 0, err
	}
	if !ready {
		return 0, key.ErrTimeout
	}

	n, err := unix.Read(s.fd, s.buf[:])
	switch {
	case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
		return 0, key.ErrTimeout
	case err != nil:
		return 0, err
	case n == 0:
		return 0, io.EOF
	}
	s.pos, s.end = 1, n
	return s.buf[0], nil
}

func (s *FileSource) wait(timeout time.Duration) (bool, error) {
	ms := -1
	if timeout >= 0 {
		ms = int((timeout + time.Millisecond - 1) / time.Millisecond)
	}
	fds := []unix.PollFd{{Fd: int32(s.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, ms)
	if errors.Is(err, unix.EINTR) {
		// SIGWINCH and friends interrupt the wait; the caller polls again.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	if fds[0].Revents&(unix.POLLERR|unix.POLLNVAL) != 0 {
		return false, io.ErrUnexpectedEOF
	}
	return true, nil
}
