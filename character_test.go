package textsplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacter(t *testing.T) {
	t.Run("Should split by character count", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(" "),
			WithChunkSize(7),
			WithChunkOverlap(3),
		)
		require.NoError(t, err)
		chunks, err := splitter.SplitText("foo bar baz 123")
		require.NoError(t, err)
		assert.Equal(t, []string{"foo bar", "bar baz", "baz 123"}, chunks)
	})

	t.Run("Should not create empty chunks from repeated separators", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(" "),
			WithChunkSize(2),
			WithChunkOverlap(0),
		)
		require.NoError(t, err)
		chunks, err := splitter.SplitText("foo  bar")
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "bar"}, chunks)
	})

	t.Run("Should handle text consisting mostly of separators", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(" "),
			WithChunkSize(2),
			WithChunkOverlap(0),
		)
		require.NoError(t, err)
		chunks, err := splitter.SplitText("f b")
		require.NoError(t, err)
		assert.Equal(t, []string{"f", "b"}, chunks)
	})

	t.Run("Should emit oversized atomic pieces as their own chunks", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(" "),
			WithChunkSize(3),
			WithChunkOverlap(1),
		)
		require.NoError(t, err)
		chunks, err := splitter.SplitText("foo bar baz a a")
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "bar", "baz", "a a"}, chunks)
	})

	t.Run("Should pack short leading words before long ones", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(" "),
			WithChunkSize(3),
			WithChunkOverlap(1),
		)
		require.NoError(t, err)
		chunks, err := splitter.SplitText("a a foo bar baz")
		require.NoError(t, err)
		assert.Equal(t, []string{"a a", "foo", "bar", "baz"}, chunks)
	})

	t.Run("Should never drop words longer than the chunk size", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(" "),
			WithChunkSize(1),
			WithChunkOverlap(0),
		)
		require.NoError(t, err)
		chunks, err := splitter.SplitText("foo bar baz 123")
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "bar", "baz", "123"}, chunks)
	})

	t.Run("Should split into characters when the separator is empty", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(""),
			WithChunkSize(1),
			WithChunkOverlap(0),
		)
		require.NoError(t, err)
		chunks, err := splitter.SplitText("foo")
		require.NoError(t, err)
		assert.Equal(t, []string{"f", "o", "o"}, chunks)
	})

	t.Run("Should support regex separators", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(`\s+`),
			WithSeparatorIsRegex(true),
			WithChunkSize(7),
			WithChunkOverlap(0),
		)
		require.NoError(t, err)
		chunks, err := splitter.SplitText("foo \t bar\n\nbaz")
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "bar", "baz"}, chunks)
	})

	t.Run("Should return no chunks for empty or whitespace input", func(t *testing.T) {
		splitter, err := NewCharacter(WithSeparator(" "), WithChunkSize(10), WithChunkOverlap(0))
		require.NoError(t, err)

		chunks, err := splitter.SplitText("")
		require.NoError(t, err)
		assert.Empty(t, chunks)

		chunks, err = splitter.SplitText("   \n\t ")
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})
}

func TestCharacterConfigErrors(t *testing.T) {
	t.Run("Should reject overlap larger than chunk size", func(t *testing.T) {
		_, err := NewCharacter(WithChunkSize(2), WithChunkOverlap(4))
		require.Error(t, err)
	})

	t.Run("Should reject overlap equal to chunk size", func(t *testing.T) {
		_, err := NewCharacter(WithChunkSize(4), WithChunkOverlap(4))
		require.Error(t, err)
	})

	t.Run("Should reject non-positive chunk size", func(t *testing.T) {
		_, err := NewCharacter(WithChunkSize(0))
		require.Error(t, err)
	})

	t.Run("Should reject negative overlap", func(t *testing.T) {
		_, err := NewCharacter(WithChunkSize(10), WithChunkOverlap(-1))
		require.Error(t, err)
	})
}

func TestMergeSplits(t *testing.T) {
	t.Run("Should merge pieces with a given separator", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(" "),
			WithChunkSize(9),
			WithChunkOverlap(2),
		)
		require.NoError(t, err)
		merged := splitter.mergeSplits([]string{"foo", "bar", "baz"}, " ")
		assert.Equal(t, []string{"foo bar", "baz"}, merged)
	})

	t.Run("Should count interior separators against the chunk size", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(" "),
			WithChunkSize(7),
			WithChunkOverlap(0),
		)
		require.NoError(t, err)
		// "foo bar" is exactly 7; adding " baz" would push it to 11.
		merged := splitter.mergeSplits([]string{"foo", "bar", "baz"}, " ")
		assert.Equal(t, []string{"foo bar", "baz"}, merged)
	})

	t.Run("Should keep whitespace when stripping is disabled", func(t *testing.T) {
		splitter, err := NewCharacter(
			WithSeparator(" "),
			WithChunkSize(9),
			WithChunkOverlap(0),
			WithStripWhitespace(false),
		)
		require.NoError(t, err)
		merged := splitter.mergeSplits([]string{" foo", "bar "}, " ")
		assert.Equal(t, []string{" foo bar "}, merged)
	})
}
