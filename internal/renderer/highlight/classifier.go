package highlight

// Continuation marks the render cell that follows a double-width rune.
// Classifiers must treat it as an ordinary non-separator character.
const Continuation rune = -1

// Classifier assigns a tag to every rendered cell of a row.
type Classifier interface {
	// FileType is a short human name for the detected language.
	FileType() string

	// Highlight returns one tag per element of render. inComment reports
	// whether the previous row ended inside an open multi-line comment; the
	// returned bool is the same state at the end of this row.
	Highlight(render []rune, inComment bool) ([]Tag, bool)
}

// Engine names accepted by Select.
const (
	EngineBuiltin = "builtin"
	EngineChroma  = "chroma"
	EngineNone    = "none"
)

// Select returns the classifier for filename using the named engine, or nil
// when highlighting is disabled or no language matches.
func Select(engine, filename string) Classifier {
	switch engine {
	case EngineNone:
		return nil
	case EngineChroma:
		if c := NewChromaClassifier(filename); c != nil {
			return c
		}
		return nil
	default:
		if s := SelectSyntax(filename); s != nil {
			return s
		}
		return nil
	}
}
