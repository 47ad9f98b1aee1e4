//go:build !linux && !darwin

package input

import (
	"context"

	"github.com/pkg/errors"
)

// Terminal is unavailable on this platform
type Terminal struct{}

// Open always fails on platforms without termios support
func Open(fd int) (*Terminal, error) {
	return nil, errors.Wrapf(ErrNotTerminal, "[Open] fd %d: unsupported platform", fd)
}

// Restore is a no-op
func (t *Terminal) Restore() error { return nil }

// ReadKeys returns immediately
func (t *Terminal) ReadKeys(context.Context, chan<- Key) error { return nil }
