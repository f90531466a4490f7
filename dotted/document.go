package dotted

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// FlattenYAML parses a YAML document and flattens the resulting mapping.
// The document's top level must be a mapping with string keys; anything
// else returns an error wrapping [ErrInvalidDocument].
//
//	flat, err := dotted.FlattenYAML([]byte("db:\n  host: localhost\n"))
//	flat["db.host"] // "localhost"
func FlattenYAML(data []byte, opts ...Option) (map[string]any, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return Flatten(m, opts...), nil
}

// FlattenJSON parses a JSON document and flattens the resulting object.
// The input must be valid JSON; YAML that is not JSON is rejected. JSON
// is a subset of YAML 1.2, so a valid document then goes through the
// same parser as [FlattenYAML]. Invalid input or a non-object top level
// returns an error wrapping [ErrInvalidDocument].
func FlattenJSON(data []byte, opts ...Option) (map[string]any, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidDocument)
	}
	return FlattenYAML(data, opts...)
}
