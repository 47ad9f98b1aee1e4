package input

import "github.com/pkg/errors"

// ErrNotTerminal is returned when the input is not an interactive terminal
var ErrNotTerminal = errors.New("not a terminal")
