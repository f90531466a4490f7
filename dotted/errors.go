package dotted

import "errors"

// Sentinel errors returned by the document helpers.
//
// Use [errors.Is] for comparisons:
//
//	_, err := dotted.FlattenYAML(data)
//	if errors.Is(err, dotted.ErrInvalidDocument) {
//	    // data is not a mapping document
//	}
var (
	// ErrInvalidDocument is returned by FlattenYAML and FlattenJSON when
	// the input cannot be parsed or its top level is not a mapping.
	ErrInvalidDocument = errors.New("dotted: invalid document")
)
