package buffer

import "github.com/dshills/tiny/internal/renderer/highlight"

// Find searches for query row by row, starting with the row after last in
// the given direction and wrapping around the document. A negative last
// starts at the first row. It returns the matching row and the raw index of
// the match within it.
func (b *Buffer) Find(query string, last int, forward bool) (row, col int, ok bool) {
	q := []rune(query)
	n := len(b.rows)
	if len(q) == 0 || n == 0 {
		return -1, -1, false
	}
	if last < 0 || last >= n {
		last = -1
		forward = true
	}

	cur := last
	for range n {
		if forward {
			cur++
		} else {
			cur--
		}
		if cur < 0 {
			cur = n - 1
		} else if cur >= n {
			cur = 0
		}
		if at := indexRunes(b.rows[cur].chars, q); at >= 0 {
			return cur, at, true
		}
	}
	return -1, -1, false
}

// HighlightMatch tags the cells covering n characters from raw index col of
// row with highlight.TagMatch. The row's previous tags are restored by the
// next HighlightMatch or ClearMatch.
func (b *Buffer) HighlightMatch(row, col, n int) {
	b.ClearMatch()
	if row < 0 || row >= len(b.rows) {
		return
	}
	r := b.rows[row]
	b.matchRow = row
	b.matchTags = append([]highlight.Tag(nil), r.tags...)

	start := r.CxToRx(col, b.tabStop)
	end := min(r.CxToRx(col+n, b.tabStop), len(r.tags))
	for i := start; i < end; i++ {
		r.tags[i] = highlight.TagMatch
	}
}

// ClearMatch restores the tags saved by HighlightMatch.
func (b *Buffer) ClearMatch() {
	if b.matchRow >= 0 && b.matchRow < len(b.rows) && len(b.matchTags) == len(b.rows[b.matchRow].tags) {
		copy(b.rows[b.matchRow].tags, b.matchTags)
	}
	b.matchRow, b.matchTags = -1, nil
}

func indexRunes(s, sub []rune) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		match := true
		for j := range sub {
			if s[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
