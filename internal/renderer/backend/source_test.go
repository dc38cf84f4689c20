package backend

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/dshills/tiny/internal/input/key"
)

func TestFileSourceReadsAndTimesOut(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	src := NewFileSource(int(r.Fd()))

	if _, err := src.ReadByteTimeout(10 * time.Millisecond); !errors.Is(err, key.ErrTimeout) {
		t.Fatalf("expected timeout on empty pipe, got %v", err)
	}

	if _, err := w.Write([]byte("ab")); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, want := range []byte("ab") {
		b, err := src.ReadByteTimeout(time.Second)
		if err != nil {
			t.Fatalf("ReadByteTimeout: %v", err)
		}
		if b != want {
			t.Errorf("expected %q, got %q", want, b)
		}
	}
}

func TestFileSourceEOF(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	w.Close()

	src := NewFileSource(int(r.Fd()))
	if _, err := src.ReadByteTimeout(time.Second); !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}
