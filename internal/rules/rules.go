// Package rules holds ordered keyword classifiers. A Table is evaluated top
// to bottom and the first matching rule wins, so precedence is the order of
// the rows.
package rules

import "strings"

// Predicate reports whether a rule applies to the (already lowercased) input
type Predicate func(s string) bool

type Rule[T any] struct {
	Name  string
	Match Predicate
	Then  T
}

type Table[T any] struct {
	Rules    []Rule[T]
	Fallback T
}

// Classify returns the result of the first matching rule, or the fallback.
// Input is lowercased before matching.
func (t Table[T]) Classify(s string) T {
	v, _ := t.Lookup(s)
	return v
}

// Lookup is Classify that also reports whether any rule matched.
func (t Table[T]) Lookup(s string) (T, bool) {
	s = strings.ToLower(s)
	for _, r := range t.Rules {
		if r.Match(s) {
			return r.Then, true
		}
	}
	return t.Fallback, false
}

// ClassifyAny matches the rules against each input in order; a rule that
// matches any input wins before the next rule is tried.
func (t Table[T]) ClassifyAny(inputs []string) T {
	lowered := make([]string, len(inputs))
	for i, s := range inputs {
		lowered[i] = strings.ToLower(s)
	}
	for _, r := range t.Rules {
		for _, s := range lowered {
			if r.Match(s) {
				return r.Then
			}
		}
	}
	return t.Fallback
}

// Contains matches when the input contains any of the keywords.
func Contains(keywords ...string) Predicate {
	return func(s string) bool {
		for _, k := range keywords {
			if strings.Contains(s, k) {
				return true
			}
		}
		return false
	}
}

// All matches when every predicate matches.
func All(preds ...Predicate) Predicate {
	return func(s string) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}
