package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// ChromaClassifier tags cells using a chroma lexer.
//
// Chroma lexes one row at a time here, so it cannot see a comment opened on
// an earlier row. When a built-in Syntax exists for the same file, its
// comment delimiters are used to carry multi-line comment state across rows.
type ChromaClassifier struct {
	lexer  chroma.Lexer
	name   string
	syntax *Syntax
}

// NewChromaClassifier returns a classifier for filename, or nil when chroma
// has no lexer for it.
func NewChromaClassifier(filename string) *ChromaClassifier {
	if filename == "" {
		return nil
	}
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil
	}
	return &ChromaClassifier{
		lexer:  chroma.Coalesce(lexer),
		name:   strings.ToLower(lexer.Config().Name),
		syntax: SelectSyntax(filename),
	}
}

// FileType implements Classifier.
func (c *ChromaClassifier) FileType() string {
	return c.name
}

// Highlight implements Classifier.
func (c *ChromaClassifier) Highlight(render []rune, inComment bool) ([]Tag, bool) {
	tags := make([]Tag, len(render))

	start := 0
	if inComment {
		end := c.commentEnd(render)
		if end < 0 {
			fill(tags, TagMLComment)
			return tags, true
		}
		fill(tags[:end], TagMLComment)
		start = end
	}

	// Chroma sees the text without continuation placeholders; idx maps each
	// rune it sees back to its render cell.
	idx := make([]int, 0, len(render)-start)
	var sb strings.Builder
	for i := start; i < len(render); i++ {
		if render[i] == Continuation {
			continue
		}
		sb.WriteRune(render[i])
		idx = append(idx, i)
	}

	if it, err := c.lexer.Tokenise(nil, sb.String()); err == nil {
		pos := 0
		for tok := it(); tok != chroma.EOF; tok = it() {
			tag := tagForToken(tok.Type)
			for range tok.Value {
				if pos >= len(idx) {
					break
				}
				cell := idx[pos]
				tags[cell] = tag
				if cell+1 < len(render) && render[cell+1] == Continuation {
					tags[cell+1] = tag
				}
				pos++
			}
		}
	}

	open := false
	if c.syntax != nil {
		_, open = c.syntax.Highlight(render, inComment)
		if open && start < len(render) {
			if at := lastIndex(render[start:], []rune(c.syntax.MultiLineCommentStart)); at >= 0 {
				fill(tags[start+at:], TagMLComment)
			}
		}
	}
	return tags, open
}

// commentEnd returns the index just past the closing delimiter of a comment
// continued from the previous row, or -1 if the row does not close it.
func (c *ChromaClassifier) commentEnd(render []rune) int {
	if c.syntax == nil || c.syntax.MultiLineCommentEnd == "" {
		return 0
	}
	end := []rune(c.syntax.MultiLineCommentEnd)
	for i := range render {
		if hasPrefixAt(render, i, end) {
			return i + len(end)
		}
	}
	return -1
}

func lastIndex(render, sub []rune) int {
	if len(sub) == 0 {
		return -1
	}
	for i := len(render) - len(sub); i >= 0; i-- {
		if hasPrefixAt(render, i, sub) {
			return i
		}
	}
	return -1
}

func tagForToken(t chroma.TokenType) Tag {
	switch {
	case t == chroma.CommentMultiline:
		return TagMLComment
	case t.InCategory(chroma.Comment):
		return TagComment
	case t.InSubCategory(chroma.LiteralString):
		return TagString
	case t.InSubCategory(chroma.LiteralNumber):
		return TagNumber
	case t == chroma.KeywordType, t == chroma.KeywordConstant, t == chroma.NameBuiltin:
		return TagKeyword2
	case t.InCategory(chroma.Keyword):
		return TagKeyword1
	default:
		return TagNormal
	}
}
