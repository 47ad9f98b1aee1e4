//go:build linux || darwin

package input

import (
	"os"
	"testing"

	"github.com/pkg/errors"
)

func TestOpenRejectsNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := Open(int(f.Fd())); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
}
