package buffer

import "fmt"

// BoundsError reports an index outside the buffer. Editing operations clamp
// instead of failing; only explicit accessors return it.
type BoundsError struct {
	Op    string
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("buffer: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}
