package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replacer(old, replacement string) TransformerFunc {
	return func(document string) (string, error) {
		return strings.ReplaceAll(document, old, replacement), nil
	}
}

func TestPipeline(t *testing.T) {
	t.Parallel()

	pipeline, err := NewPipeline(replacer("foo", "bar"), replacer("egg", "spam"))
	require.NoError(t, err)
	assert.Equal(t, 2, pipeline.Len())

	got, err := pipeline.Transform("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = pipeline.Transform("foo egg")
	require.NoError(t, err)
	assert.Equal(t, "bar spam", got)
}

func TestPipeline_Order(t *testing.T) {
	t.Parallel()
	first, second := replacer("a", "b"), replacer("b", "c")

	pipeline, err := NewPipeline(first, second)
	require.NoError(t, err)

	got, err := pipeline.Transform("ab")
	require.NoError(t, err)

	want, err := first.Transform("ab")
	require.NoError(t, err)
	want, err = second.Transform(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "cc", got)
}

func TestPipeline_Empty(t *testing.T) {
	t.Parallel()

	pipeline, err := NewPipeline()
	require.NoError(t, err)
	got, err := pipeline.Transform("<p>sixchr</p>")
	require.NoError(t, err)
	assert.Equal(t, "<p>sixchr</p>", got)

	got, err = Pipeline{}.Transform("unchanged")
	require.NoError(t, err)
	assert.Equal(t, "unchanged", got)
}

func TestPipeline_FailsFast(t *testing.T) {
	t.Parallel()
	errStage := errors.New("stage failed")
	called := false

	pipeline, err := NewPipeline(
		TransformerFunc(func(string) (string, error) { return "", errStage }),
		TransformerFunc(func(document string) (string, error) {
			called = true
			return document, nil
		}),
	)
	require.NoError(t, err)

	_, err = pipeline.Transform("doc")
	require.ErrorIs(t, err, errStage)
	assert.False(t, called)
}

func TestNewPipeline_NilStage(t *testing.T) {
	t.Parallel()
	_, err := NewPipeline(replacer("a", "b"), nil)
	require.ErrorIs(t, err, ErrNilTransformer)
}

func TestNewPipeline_CopiesStages(t *testing.T) {
	t.Parallel()
	stages := []Transformer{replacer("a", "b")}
	pipeline, err := NewPipeline(stages...)
	require.NoError(t, err)

	stages[0] = replacer("a", "z")
	got, err := pipeline.Transform("a")
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}
