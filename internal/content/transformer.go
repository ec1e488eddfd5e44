package content

// Transformer modifies a whole document, returning the modified document or
// an error.
type Transformer interface {
	// Transform modifies document, returning modified content or an error.
	Transform(document string) (string, error)
}

// TransformerFunc is a [Transformer] that can be represented just by the
// [Transform] method.
type TransformerFunc func(document string) (string, error)

// Transform satisfies [Transformer].
func (fn TransformerFunc) Transform(document string) (string, error) { return fn(document) }

// TextTransformer converts a run of visible text. Implementations must be pure
// and must map the empty string to the empty string.
type TextTransformer interface {
	// TransformText converts text, which never contains tag syntax.
	TransformText(text string) string
}

// TextTransformerFunc is a [TextTransformer] that can be represented just by
// the [TransformText] method.
type TextTransformerFunc func(text string) string

// TransformText satisfies [TextTransformer].
func (fn TextTransformerFunc) TransformText(text string) string { return fn(text) }
