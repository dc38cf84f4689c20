package highlight

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Syntax flags.
const (
	HighlightNumbers = 1 << iota
	HighlightStrings
)

// Syntax is a table-driven classifier: a keyword list plus comment
// delimiters. A keyword ending in "|" is a secondary keyword (types).
type Syntax struct {
	Name                  string
	FileMatch             []string
	Keywords              []string
	SingleLineComment     string
	MultiLineCommentStart string
	MultiLineCommentEnd   string
	Flags                 int
}

// Database is the set of built-in syntaxes.
var Database = []*Syntax{
	{
		Name:      "c",
		FileMatch: []string{".c", ".h", ".cpp", ".hpp", ".cc"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|",
		},
		SingleLineComment:     "//",
		MultiLineCommentStart: "/*",
		MultiLineCommentEnd:   "*/",
		Flags:                 HighlightNumbers | HighlightStrings,
	},
	{
		Name:      "go",
		FileMatch: []string{".go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer",
			"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
			"interface", "map", "package", "range", "return", "select", "struct",
			"switch", "type", "var",
			"bool|", "byte|", "error|", "float32|", "float64|", "int|", "int8|",
			"int16|", "int32|", "int64|", "rune|", "string|", "uint|", "uint8|",
			"uint16|", "uint32|", "uint64|", "uintptr|", "any|",
			"true|", "false|", "nil|", "iota|",
		},
		SingleLineComment:     "//",
		MultiLineCommentStart: "/*",
		MultiLineCommentEnd:   "*/",
		Flags:                 HighlightNumbers | HighlightStrings,
	},
	{
		Name:      "python",
		FileMatch: []string{".py"},
		Keywords: []string{
			"and", "as", "assert", "break", "class", "continue", "def", "del",
			"elif", "else", "except", "finally", "for", "from", "global", "if",
			"import", "in", "is", "lambda", "nonlocal", "not", "or", "pass",
			"raise", "return", "try", "while", "with", "yield",
			"True|", "False|", "None|", "int|", "str|", "float|", "list|",
			"dict|", "set|", "tuple|", "bool|",
		},
		SingleLineComment: "#",
		Flags:             HighlightNumbers | HighlightStrings,
	},
}

// SelectSyntax finds the syntax whose FileMatch entries match filename.
// Entries starting with "." match the extension; others match anywhere in
// the base name.
func SelectSyntax(filename string) *Syntax {
	if filename == "" {
		return nil
	}
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	for _, s := range Database {
		for _, m := range s.FileMatch {
			isExt := strings.HasPrefix(m, ".")
			if (isExt && ext == m) || (!isExt && strings.Contains(base, m)) {
				return s
			}
		}
	}
	return nil
}

// FileType implements Classifier.
func (s *Syntax) FileType() string {
	return s.Name
}

// Highlight implements Classifier.
func (s *Syntax) Highlight(render []rune, inComment bool) ([]Tag, bool) {
	tags := make([]Tag, len(render))
	scs := []rune(s.SingleLineComment)
	mcs := []rune(s.MultiLineCommentStart)
	mce := []rune(s.MultiLineCommentEnd)

	prevSep := true
	var inString rune

	i := 0
	for i < len(render) {
		c := render[i]
		prevTag := TagNormal
		if i > 0 {
			prevTag = tags[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && hasPrefixAt(render, i, scs) {
			fill(tags[i:], TagComment)
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				tags[i] = TagMLComment
				if hasPrefixAt(render, i, mce) {
					fill(tags[i:i+len(mce)], TagMLComment)
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if hasPrefixAt(render, i, mcs) {
				fill(tags[i:i+len(mcs)], TagMLComment)
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if s.Flags&HighlightStrings != 0 {
			if inString != 0 {
				tags[i] = TagString
				if c == '\\' && i+1 < len(render) {
					tags[i+1] = TagString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				tags[i] = TagString
				i++
				continue
			}
		}

		if s.Flags&HighlightNumbers != 0 {
			if (unicode.IsDigit(c) && (prevSep || prevTag == TagNumber)) ||
				(c == '.' && prevTag == TagNumber) {
				tags[i] = TagNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, tag := s.matchKeyword(render, i); n > 0 {
				fill(tags[i:i+n], tag)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return tags, inComment
}

// matchKeyword returns the length and tag of the keyword starting at i, if
// it is followed by a separator or the end of the row.
func (s *Syntax) matchKeyword(render []rune, i int) (int, Tag) {
	for _, kw := range s.Keywords {
		tag := TagKeyword1
		if strings.HasSuffix(kw, "|") {
			kw = kw[:len(kw)-1]
			tag = TagKeyword2
		}
		word := []rune(kw)
		if !hasPrefixAt(render, i, word) {
			continue
		}
		end := i + len(word)
		if end == len(render) || isSeparator(render[end]) {
			return len(word), tag
		}
	}
	return 0, TagNormal
}

func hasPrefixAt(render []rune, i int, prefix []rune) bool {
	if i+len(prefix) > len(render) {
		return false
	}
	for j, r := range prefix {
		if render[i+j] != r {
			return false
		}
	}
	return true
}

func fill(tags []Tag, tag Tag) {
	for i := range tags {
		tags[i] = tag
	}
}

func isSeparator(c rune) bool {
	return unicode.IsSpace(c) || c == 0 || strings.ContainsRune(",.()+-/*=~%<>[];", c)
}
