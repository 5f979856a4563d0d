package analyzer

import "fmt"

// NewClassifier creates a classifier based on the specified variant
func NewClassifier(variant string) (Classifier, error) {
	switch variant {
	case "format", "":
		return NewFormatClassifier(), nil
	case "fountain":
		c := NewFormatClassifier()
		c.Forcing = true
		return c, nil
	default:
		return nil, fmt.Errorf("unknown classifier variant: %s", variant)
	}
}
