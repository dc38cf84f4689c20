package highlight

import (
	"testing"

	"github.com/alecthomas/chroma/v2"
)

func TestChromaClassifierGo(t *testing.T) {
	c := NewChromaClassifier("main.go")
	if c == nil {
		t.Fatal("expected a classifier for main.go")
	}
	if c.FileType() != "go" {
		t.Errorf("FileType() = %q, want go", c.FileType())
	}

	line := `func f() { x := 42 // hi`
	tags, open := tagsOf(t, c, line, false)
	if open {
		t.Error("row should not leave a comment open")
	}
	if tags[0] != TagKeyword1 {
		t.Errorf("func tagged %v, want keyword1", tags[0])
	}
	if tags[16] != TagNumber {
		t.Errorf("42 tagged %v, want number", tags[16])
	}
	if tags[len(line)-1] != TagComment {
		t.Errorf("comment tagged %v, want comment", tags[len(line)-1])
	}
}

func TestChromaClassifierMultiLineComment(t *testing.T) {
	c := NewChromaClassifier("main.go")

	_, open := tagsOf(t, c, "x := 1 /* open", false)
	if !open {
		t.Fatal("row should end inside a comment")
	}

	tags, open := tagsOf(t, c, "inside */ y", true)
	if open {
		t.Error("comment should be closed")
	}
	for i := 0; i < 9; i++ {
		if tags[i] != TagMLComment {
			t.Errorf("tags[%d] = %v, want mlcomment", i, tags[i])
		}
	}
}

func TestChromaClassifierUnknownFile(t *testing.T) {
	if NewChromaClassifier("") != nil {
		t.Error("empty filename should not match")
	}
	if NewChromaClassifier("no-such-extension.zzqq") != nil {
		t.Error("unknown extension should not match")
	}
}

func TestTagForToken(t *testing.T) {
	tests := []struct {
		tok  chroma.TokenType
		want Tag
	}{
		{chroma.CommentSingle, TagComment},
		{chroma.CommentPreproc, TagComment},
		{chroma.CommentMultiline, TagMLComment},
		{chroma.LiteralStringDouble, TagString},
		{chroma.LiteralNumberFloat, TagNumber},
		{chroma.KeywordType, TagKeyword2},
		{chroma.NameBuiltin, TagKeyword2},
		{chroma.KeywordDeclaration, TagKeyword1},
		{chroma.Name, TagNormal},
		{chroma.Punctuation, TagNormal},
	}

	for _, tt := range tests {
		if got := tagForToken(tt.tok); got != tt.want {
			t.Errorf("tagForToken(%v) = %v, want %v", tt.tok, got, tt.want)
		}
	}
}
