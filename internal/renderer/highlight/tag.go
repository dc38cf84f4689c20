// Package highlight classifies rendered row text into style tags and maps
// those tags to terminal styles.
package highlight

import "strings"

// Tag is the highlight class of one rendered cell.
type Tag uint8

// Highlight tags.
const (
	TagNormal Tag = iota
	TagComment
	TagMLComment
	TagKeyword1
	TagKeyword2
	TagString
	TagNumber
	TagMatch

	tagCount
)

var tagNames = [...]string{
	TagNormal:    "normal",
	TagComment:   "comment",
	TagMLComment: "mlcomment",
	TagKeyword1:  "keyword1",
	TagKeyword2:  "keyword2",
	TagString:    "string",
	TagNumber:    "number",
	TagMatch:     "match",
}

// String returns the configuration name of the tag.
func (t Tag) String() string {
	if t < tagCount {
		return tagNames[t]
	}
	return "unknown"
}

// TagFromName returns the tag with the given name (case-insensitive).
func TagFromName(name string) (Tag, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range tagNames {
		if n == name {
			return Tag(i), true
		}
	}
	return TagNormal, false
}
