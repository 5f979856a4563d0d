package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableFirstMatchWins(t *testing.T) {
	table := Table[string]{
		Rules: []Rule[string]{
			{Name: "confident", Match: Contains("confident"), Then: "high"},
			{Name: "shy", Match: Contains("shy"), Then: "low"},
		},
		Fallback: "mid",
	}

	assert.Equal(t, "high", table.Classify("Confident but SHY"))
	assert.Equal(t, "low", table.Classify("Shy"))
	assert.Equal(t, "mid", table.Classify("calm"))

	_, matched := table.Lookup("calm")
	assert.False(t, matched)
}

func TestClassifyAnyPrefersRuleOrderOverInputOrder(t *testing.T) {
	table := Table[int]{
		Rules: []Rule[int]{
			{Match: Contains("confident"), Then: 1},
			{Match: Contains("shy"), Then: 2},
		},
	}

	assert.Equal(t, 1, table.ClassifyAny([]string{"shy", "confident"}))
	assert.Equal(t, 2, table.ClassifyAny([]string{"quiet", "Shy"}))
	assert.Equal(t, 0, table.ClassifyAny(nil))
}

func TestAll(t *testing.T) {
	p := All(Contains("fine"), Contains("not", "don't"))

	assert.True(t, p("i'm fine, i don't mind"))
	assert.False(t, p("i'm fine"))
	assert.False(t, p("not here"))
}
