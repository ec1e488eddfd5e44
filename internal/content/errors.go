package content

import "errors"

// Construction errors. Transformers never fail once built.
var (
	ErrInvalidWordLength = errors.New("word length must be positive")
	ErrEmptyHostPrefix   = errors.New("host prefix must not be empty")
	ErrNilTransformer    = errors.New("transformer must not be nil")
)
