package screenplay

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ivlev/directorkit/internal/model"
)

// Open Screenplay Format document
type osfDocument struct {
	XMLName    xml.Name       `xml:"osf"`
	Version    string         `xml:"version,attr"`
	Title      string         `xml:"title"`
	Metadata   *osfMetadata   `xml:"metadata,omitempty"`
	Characters []osfCharacter `xml:"characters>character,omitempty"`
	Scenes     []osfScene     `xml:"scenes>scene"`
}

type osfMetadata struct {
	Author  string `xml:"author,omitempty"`
	Version string `xml:"version,omitempty"`
	Notes   string `xml:"notes,omitempty"`
}

type osfCharacter struct {
	Name        string `xml:"name,attr"`
	Role        string `xml:"role,attr,omitempty"`
	Description string `xml:",chardata"`
}

type osfScene struct {
	Number      int             `xml:"number,attr"`
	Heading     *osfHeading     `xml:"heading"`
	Action      []osfAction     `xml:"action"`
	Dialogue    []osfDialogue   `xml:"dialogue"`
	Transitions []osfTransition `xml:"transition"`
}

type osfHeading struct {
	Location         string `xml:"location"`
	Time             string `xml:"time"`
	InteriorExterior string `xml:"interior-exterior"`
}

type osfAction struct {
	Duration *float64 `xml:"duration,attr,omitempty"`
	Text     string   `xml:",chardata"`
}

type osfDialogue struct {
	Duration      *float64 `xml:"duration,attr,omitempty"`
	Character     string   `xml:"character"`
	Parenthetical string   `xml:"parenthetical,omitempty"`
	Text          string   `xml:"text"`
}

type osfTransition struct {
	Target int    `xml:"target,attr,omitempty"`
	Type   string `xml:",chardata"`
}

// ParseOSF reads an Open Screenplay Format document. Scenes without a
// heading element are skipped; a heading without a time reads as DAY.
func ParseOSF(r io.Reader) (*model.Screenplay, error) {
	var doc osfDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse osf: %w", err)
	}

	sp := &model.Screenplay{Title: strings.TrimSpace(doc.Title)}
	if sp.Title == "" {
		sp.Title = "Untitled"
	}

	if m := doc.Metadata; m != nil {
		sp.Metadata = &model.ScreenplayMetadata{
			Author:  strings.TrimSpace(m.Author),
			Version: strings.TrimSpace(m.Version),
			Notes:   strings.TrimSpace(m.Notes),
		}
	}

	for _, c := range doc.Characters {
		sp.Characters = append(sp.Characters, model.Character{
			Name:        strings.TrimSpace(c.Name),
			Role:        model.CharacterRole(c.Role),
			Description: strings.TrimSpace(c.Description),
		})
	}

	for _, s := range doc.Scenes {
		if s.Heading == nil {
			continue
		}

		scene := model.ScreenplayScene{
			SceneNumber: s.Number,
			Heading: model.SceneHeading{
				Location:         strings.TrimSpace(s.Heading.Location),
				TimeOfDay:        strings.TrimSpace(s.Heading.Time),
				InteriorExterior: model.Interior,
			},
		}
		if scene.Heading.TimeOfDay == "" {
			scene.Heading.TimeOfDay = "DAY"
		}
		if strings.EqualFold(strings.TrimSpace(s.Heading.InteriorExterior), string(model.Exterior)) {
			scene.Heading.InteriorExterior = model.Exterior
		}

		for _, a := range s.Action {
			scene.Action = append(scene.Action, model.ActionLine{
				Text:   strings.TrimSpace(a.Text),
				Timing: a.Duration,
			})
		}
		for _, d := range s.Dialogue {
			scene.Dialogue = append(scene.Dialogue, model.DialogueBlock{
				Character:     strings.TrimSpace(d.Character),
				Dialogue:      strings.TrimSpace(d.Text),
				Parenthetical: strings.TrimSpace(d.Parenthetical),
				Timing:        d.Duration,
			})
		}
		for _, t := range s.Transitions {
			scene.Transitions = append(scene.Transitions, model.Transition{
				Type:              model.TransitionType(strings.TrimSpace(t.Type)),
				TargetSceneNumber: t.Target,
			})
		}

		sp.Scenes = append(sp.Scenes, scene)
	}

	return sp, nil
}

// WriteOSF writes sp as an indented Open Screenplay Format document.
func WriteOSF(w io.Writer, sp *model.Screenplay) error {
	doc := osfDocument{Version: "1.0", Title: sp.Title}

	if m := sp.Metadata; m != nil {
		doc.Metadata = &osfMetadata{Author: m.Author, Version: m.Version, Notes: m.Notes}
	}
	for _, c := range sp.Characters {
		doc.Characters = append(doc.Characters, osfCharacter{Name: c.Name, Role: string(c.Role), Description: c.Description})
	}

	for _, s := range sp.Scenes {
		scene := osfScene{
			Number: s.SceneNumber,
			Heading: &osfHeading{
				Location:         s.Heading.Location,
				Time:             s.Heading.TimeOfDay,
				InteriorExterior: string(s.Heading.InteriorExterior),
			},
		}
		for _, a := range s.Action {
			scene.Action = append(scene.Action, osfAction{Duration: a.Timing, Text: a.Text})
		}
		for _, d := range s.Dialogue {
			scene.Dialogue = append(scene.Dialogue, osfDialogue{
				Duration:      d.Timing,
				Character:     d.Character,
				Parenthetical: d.Parenthetical,
				Text:          d.Dialogue,
			})
		}
		for _, t := range s.Transitions {
			scene.Transitions = append(scene.Transitions, osfTransition{Target: t.TargetSceneNumber, Type: string(t.Type)})
		}
		doc.Scenes = append(doc.Scenes, scene)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write osf: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
