// Package input reads driver commands from a terminal in cbreak mode.
package input

// Key is a driver command decoded from terminal input
type Key int

const (
	KeyNone Key = iota
	KeyPause
	KeyClear
	KeyStep
	KeyRestart
	KeyFaster
	KeySlower
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyPause:
		return "pause"
	case KeyClear:
		return "clear"
	case KeyStep:
		return "step"
	case KeyRestart:
		return "restart"
	case KeyFaster:
		return "faster"
	case KeySlower:
		return "slower"
	case KeyQuit:
		return "quit"
	}
	return "none"
}

const esc = 0x1b

// ParseKeys decodes the commands in buf as one complete chunk of input. An ESC that
// does not start an arrow sequence means quit.
func ParseKeys(buf []byte) []Key {
	var d Decoder
	return append(d.Feed(buf), d.Flush()...)
}

// Decoder turns a stream of terminal reads into keys. Arrow keys arrive as ESC [ A and
// ESC [ B and may be split across reads, so an unfinished sequence is held back until
// the next Feed or a Flush.
type Decoder struct {
	pending []byte
}

// Feed decodes buf, prefixed by any sequence held back from the previous call
func (d *Decoder) Feed(buf []byte) []Key {
	data := append(d.pending, buf...)
	d.pending = nil

	var keys []Key
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != esc {
			if k := keyFor(b); k != KeyNone {
				keys = append(keys, k)
			}
			continue
		}

		switch {
		case i+1 == len(data), i+2 == len(data) && data[i+1] == '[':
			d.pending = append([]byte(nil), data[i:]...)
			return keys
		case data[i+1] == '[':
			switch data[i+2] {
			case 'A':
				keys = append(keys, KeyFaster)
			case 'B':
				keys = append(keys, KeySlower)
			}
			i += 2
		default:
			keys = append(keys, KeyQuit)
		}
	}
	return keys
}

// Pending reports whether an unfinished escape sequence is being held back
func (d *Decoder) Pending() bool {
	return len(d.pending) > 0
}

// Flush resolves a held-back sequence once no more input follows it. A bare ESC
// (with or without its '[') is taken as quit.
func (d *Decoder) Flush() []Key {
	if !d.Pending() {
		return nil
	}
	d.pending = nil
	return []Key{KeyQuit}
}

func keyFor(b byte) Key {
	switch b {
	case ' ':
		return KeyPause
	case 'c', 'C':
		return KeyClear
	case 'n', 'N':
		return KeyStep
	case 'r', 'R':
		return KeyRestart
	case '+', '=':
		return KeyFaster
	case '-', '_':
		return KeySlower
	case 'q', 'Q':
		return KeyQuit
	}
	return KeyNone
}
