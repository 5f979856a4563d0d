// Package screenplay reads and writes screenplays: page text from PDFs and
// plain-text scripts, Open Screenplay Format XML, and YAML.
package screenplay

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/ivlev/directorkit/internal/analyzer"
	"github.com/ivlev/directorkit/internal/model"
	"github.com/ivlev/directorkit/internal/rules"
)

var ErrNoContent = errors.New("no screenplay content found")

var transitionTable = rules.Table[model.TransitionType]{
	Rules: []rules.Rule[model.TransitionType]{
		{Name: "match", Match: rules.Contains("match cut"), Then: model.TransitionMatchCut},
		{Name: "fade in", Match: rules.Contains("fade in"), Then: model.TransitionFadeIn},
		{Name: "fade out", Match: rules.Contains("fade out", "fade to"), Then: model.TransitionFadeOut},
		{Name: "dissolve", Match: rules.Contains("dissolve"), Then: model.TransitionDissolve},
	},
	Fallback: model.TransitionCut,
}

// pageContinuations are the parentheticals a page break inserts into a speech
var pageContinuations = map[string]bool{"(MORE)": true, "(CONT'D)": true, "(CONT’D)": true}

// ParsePages builds a screenplay from page text. Anything before the first
// scene heading (a title page) is dropped; a script without headings becomes
// one scene.
func ParsePages(title string, pages []string, c analyzer.Classifier) (*model.Screenplay, error) {
	var lines []string
	for _, p := range pages {
		lines = append(lines, strings.Split(p, "\n")...)
		lines = append(lines, "")
	}

	classified := c.Classify(lines)

	b := &builder{sp: &model.Screenplay{Title: title}, cast: map[string]bool{}}
	b.implicit = true
	for _, l := range classified {
		if l.Kind == analyzer.KindHeading {
			b.implicit = false
			break
		}
	}

	for _, l := range classified {
		b.add(l)
	}
	b.flush()

	if len(b.sp.Scenes) == 0 {
		return nil, ErrNoContent
	}

	slog.Debug("Parsed screenplay", "title", title, "scenes", len(b.sp.Scenes), "characters", len(b.sp.Characters))
	return b.sp, nil
}

type builder struct {
	sp       *model.Screenplay
	scene    *model.ScreenplayScene
	line     *model.DialogueBlock
	prev     analyzer.Kind
	pending  []model.Transition
	cast     map[string]bool
	implicit bool
}

func (b *builder) add(l analyzer.Line) {
	defer func() {
		if l.Kind != analyzer.KindPageNumber {
			b.prev = l.Kind
		}
	}()

	if l.Kind == analyzer.KindHeading {
		b.startScene(ParseHeading(l.Text))
		return
	}
	if l.Kind == analyzer.KindTransition {
		b.flushLine()
		t := model.Transition{Type: transitionTable.Classify(l.Text)}
		if b.scene == nil {
			b.pending = append(b.pending, t)
		} else {
			b.scene.Transitions = append(b.scene.Transitions, t)
		}
		return
	}

	if b.scene == nil {
		if !b.implicit || l.Kind == analyzer.KindBlank || l.Kind == analyzer.KindPageNumber {
			return
		}
		b.startScene(model.SceneHeading{})
	}

	switch l.Kind {
	case analyzer.KindBlank:
		b.flushLine()

	case analyzer.KindAction:
		b.flushLine()
		n := len(b.scene.Action)
		if b.prev == analyzer.KindAction && n > 0 {
			b.scene.Action[n-1].Text += " " + l.Text
		} else {
			b.scene.Action = append(b.scene.Action, model.ActionLine{Text: l.Text})
		}

	case analyzer.KindCharacter:
		b.flushLine()
		name := CueName(l.Text)
		b.line = &model.DialogueBlock{Character: name}
		if !b.cast[strings.ToUpper(name)] {
			b.cast[strings.ToUpper(name)] = true
			b.sp.Characters = append(b.sp.Characters, model.Character{Name: name})
		}

	case analyzer.KindParenthetical:
		if b.line == nil || pageContinuations[strings.ToUpper(l.Text)] {
			return
		}
		if b.line.Dialogue != "" {
			speaker := b.line.Character
			b.flushLine()
			b.line = &model.DialogueBlock{Character: speaker}
		}
		b.line.Parenthetical = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(l.Text, "("), ")"))

	case analyzer.KindDialogue:
		if b.line == nil {
			return
		}
		if b.line.Dialogue != "" {
			b.line.Dialogue += " "
		}
		b.line.Dialogue += l.Text
	}
}

func (b *builder) startScene(h model.SceneHeading) {
	b.flush()

	number := len(b.sp.Scenes) + 1
	if n := len(b.sp.Scenes); n > 0 {
		prev := &b.sp.Scenes[n-1]
		for i := range prev.Transitions {
			if prev.Transitions[i].TargetSceneNumber == 0 {
				prev.Transitions[i].TargetSceneNumber = number
			}
		}
	}

	b.scene = &model.ScreenplayScene{SceneNumber: number, Heading: h}
	for _, t := range b.pending {
		t.TargetSceneNumber = number
		b.scene.Transitions = append(b.scene.Transitions, t)
	}
	b.pending = nil
}

func (b *builder) flushLine() {
	if b.line != nil && b.scene != nil && b.line.Dialogue != "" {
		b.scene.Dialogue = append(b.scene.Dialogue, *b.line)
	}
	b.line = nil
}

func (b *builder) flush() {
	b.flushLine()
	if b.scene != nil {
		b.sp.Scenes = append(b.sp.Scenes, *b.scene)
	}
	b.scene = nil
}

// CueName strips the extension from a character cue: "ANA (V.O.)" is "ANA".
func CueName(cue string) string {
	if i := strings.Index(cue, "("); i > 0 {
		cue = cue[:i]
	}
	return strings.TrimSpace(cue)
}

// ParseHeading splits a slug line such as "INT. KITCHEN - NIGHT".
func ParseHeading(text string) model.SceneHeading {
	h := model.SceneHeading{InteriorExterior: model.Interior}
	rest := strings.TrimSpace(text)
	upper := strings.ToUpper(rest)

	for _, p := range []struct {
		prefix string
		side   model.InteriorExterior
	}{
		{"INT./EXT.", model.Interior},
		{"INT/EXT.", model.Interior},
		{"INT/EXT", model.Interior},
		{"I/E.", model.Interior},
		{"I/E", model.Interior},
		{"INT.", model.Interior},
		{"EXT.", model.Exterior},
		{"EST.", model.Exterior},
	} {
		if strings.HasPrefix(upper, p.prefix) {
			h.InteriorExterior = p.side
			rest = strings.TrimSpace(rest[len(p.prefix):])
			break
		}
	}

	if i := strings.LastIndex(rest, " - "); i >= 0 {
		h.Location = strings.TrimSpace(rest[:i])
		h.TimeOfDay = strings.TrimSpace(rest[i+3:])
	} else {
		h.Location = rest
	}
	return h
}
