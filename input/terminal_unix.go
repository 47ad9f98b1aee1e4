//go:build linux || darwin

package input

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const pollTimeoutMs = 100

// Terminal is a tty switched to cbreak mode: keys arrive unbuffered and unechoed,
// output processing is left alone.
type Terminal struct {
	fd    int
	saved *unix.Termios
}

// Open puts the terminal on fd into cbreak mode. It fails with ErrNotTerminal when fd
// is not a tty.
func Open(fd int) (*Terminal, error) {
	saved, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, errors.Wrapf(ErrNotTerminal, "[Open] fd %d: %v", fd, err)
	}

	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err = unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, errors.Wrap(err, "[Open] failed to enter cbreak mode")
	}

	return &Terminal{fd: fd, saved: saved}, nil
}

// Restore puts the terminal back into the mode it had before Open
func (t *Terminal) Restore() error {
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, t.saved); err != nil {
		return errors.Wrap(err, "[Restore] failed to restore terminal mode")
	}
	return nil
}

// ReadKeys forwards decoded keys to out until ctx is done. Reads are polled so
// cancellation is noticed without waiting for the next key press. An escape sequence
// left unfinished for a whole poll interval is resolved as a bare ESC.
func (t *Terminal) ReadKeys(ctx context.Context, out chan<- Key) error {
	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
	buf := make([]byte, 64)
	var dec Decoder
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		n, err := unix.Poll(fds, pollTimeoutMs)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return errors.Wrap(err, "[ReadKeys] poll failed")
		}
		if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			if err := send(ctx, out, dec.Flush()); err != nil {
				return nil
			}
			continue
		}

		read, err := unix.Read(t.fd, buf)
		if err != nil {
			if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
				continue
			}
			return errors.Wrap(err, "[ReadKeys] read failed")
		}
		if read == 0 {
			return nil
		}

		if err := send(ctx, out, dec.Feed(buf[:read])); err != nil {
			return nil
		}
	}
}

// send delivers keys in order, giving up when ctx is done
func send(ctx context.Context, out chan<- Key, keys []Key) error {
	for _, k := range keys {
		select {
		case out <- k:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
