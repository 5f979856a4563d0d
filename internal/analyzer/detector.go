package analyzer

// Kind is the screenplay element a line of text belongs to
type Kind string

const (
	KindBlank         Kind = "blank"
	KindHeading       Kind = "heading"
	KindAction        Kind = "action"
	KindCharacter     Kind = "character"
	KindParenthetical Kind = "parenthetical"
	KindDialogue      Kind = "dialogue"
	KindTransition    Kind = "transition"
	KindPageNumber    Kind = "page_number"
)

// Line is one classified line. Text has forcing markers and surrounding
// whitespace removed.
type Line struct {
	Kind   Kind
	Text   string
	Number int // 1-based line number in the input
}

// Classifier is the interface for screenplay layout strategies
type Classifier interface {
	Classify(lines []string) []Line
}
