package screenplay

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/directorkit/internal/model"
)

func ReadYAML(r io.Reader) (*model.Screenplay, error) {
	var sp model.Screenplay
	if err := yaml.NewDecoder(r).Decode(&sp); err != nil {
		return nil, fmt.Errorf("parse screenplay yaml: %w", err)
	}
	return &sp, nil
}

func WriteYAML(w io.Writer, sp *model.Screenplay) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sp); err != nil {
		return err
	}
	return enc.Close()
}
