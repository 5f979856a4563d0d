package analyzer

import (
	"strings"
	"unicode"

	"github.com/ivlev/directorkit/internal/rules"
)

// FormatClassifier recognizes the industry screenplay layout from capitals,
// prefixes and the blank lines between elements. It does not depend on
// indentation, which text extraction from PDFs does not preserve reliably.
type FormatClassifier struct {
	// Forcing honors Fountain markers: ".HEADING", "@Character", "> TRANSITION", "!Action"
	Forcing bool
}

func NewFormatClassifier() *FormatClassifier {
	return &FormatClassifier{}
}

func hasPrefix(prefixes ...string) rules.Predicate {
	return func(s string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(s, p) {
				return true
			}
		}
		return false
	}
}

func hasSuffix(suffixes ...string) rules.Predicate {
	return func(s string) bool {
		for _, p := range suffixes {
			if strings.HasSuffix(s, p) {
				return true
			}
		}
		return false
	}
}

// standalone catches the fixed-form lines that need no context
var standalone = rules.Table[Kind]{
	Rules: []rules.Rule[Kind]{
		{Name: "heading", Match: hasPrefix("int.", "ext.", "int/ext", "int./ext.", "i/e", "est."), Then: KindHeading},
		{Name: "fade", Match: hasPrefix("fade in", "fade out", "fade to"), Then: KindTransition},
		{Name: "cut", Match: hasSuffix(" to:", "cut to:", "match cut:"), Then: KindTransition},
	},
}

func (c *FormatClassifier) Classify(lines []string) []Line {
	out := make([]Line, 0, len(lines))
	inDialogue := false

	for i, raw := range lines {
		text := strings.TrimSpace(raw)
		line := Line{Text: text, Number: i + 1}

		if text == "" {
			line.Kind = KindBlank
			inDialogue = false
			out = append(out, line)
			continue
		}

		if c.Forcing {
			if kind, stripped, ok := forced(text); ok {
				line.Kind, line.Text = kind, stripped
				inDialogue = kind == KindCharacter
				out = append(out, line)
				continue
			}
		}

		switch kind, matched := standalone.Lookup(text); {
		case matched && (isUpper(text) || kind == KindHeading && !inDialogue):
			line.Kind = kind
			inDialogue = false
		case isPageNumber(text):
			line.Kind = KindPageNumber
		case inDialogue && strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")"):
			line.Kind = KindParenthetical
		case inDialogue:
			line.Kind = KindDialogue
		case isCue(text) && nextNonBlank(lines, i):
			line.Kind = KindCharacter
			inDialogue = true
		default:
			line.Kind = KindAction
		}

		out = append(out, line)
	}

	return out
}

func forced(text string) (Kind, string, bool) {
	switch {
	case strings.HasPrefix(text, ".") && !strings.HasPrefix(text, ".."):
		return KindHeading, strings.TrimSpace(text[1:]), true
	case strings.HasPrefix(text, "@"):
		return KindCharacter, strings.TrimSpace(text[1:]), true
	case strings.HasPrefix(text, ">") && !strings.HasSuffix(text, "<"):
		return KindTransition, strings.TrimSpace(text[1:]), true
	case strings.HasPrefix(text, "!"):
		return KindAction, strings.TrimSpace(text[1:]), true
	}
	return "", "", false
}

// isCue matches a character cue: capitals, optionally followed by an
// extension such as (V.O.) or (CONT'D), and no sentence punctuation.
func isCue(text string) bool {
	name := text
	if i := strings.Index(name, "("); i > 0 {
		name = strings.TrimSpace(name[:i])
	}
	if name == "" || !isUpper(name) {
		return false
	}
	return !strings.ContainsAny(name[len(name)-1:], ".!?:,")
}

// isUpper reports whether text has letters and none of them is lowercase
func isUpper(text string) bool {
	letters := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters = true
		}
	}
	return letters
}

func isPageNumber(text string) bool {
	text = strings.TrimSuffix(text, ".")
	if text == "" {
		return false
	}
	for _, r := range text {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func nextNonBlank(lines []string, i int) bool {
	return i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != ""
}
