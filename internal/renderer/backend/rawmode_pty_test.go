package backend

import (
	"reflect"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/term"
)

func TestRawModeRestoresPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	fd := int(tty.Fd())
	before, err := term.GetState(fd)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}

	r := NewRawMode(fd)
	if err := r.Enable(); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	during, err := term.GetState(fd)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if reflect.DeepEqual(before, during) {
		t.Error("Enable did not change the terminal state")
	}

	if err := r.Disable(); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	if err := r.Disable(); err != nil {
		t.Fatalf("second Disable: %v", err)
	}
	after, err := term.GetState(fd)
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Error("Disable did not restore the original terminal state")
	}
}

func TestRawModeRejectsClosedDescriptor(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	tty.Close()
	defer ptmx.Close()

	// A closed descriptor is not a terminal.
	r := NewRawMode(int(tty.Fd()))
	if err := r.Enable(); !IsTerminalError(err) {
		t.Fatalf("expected TerminalError, got %v", err)
	}
}
