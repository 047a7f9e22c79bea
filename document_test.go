package textsplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDocuments(t *testing.T) {
	t.Run("Should produce one document per chunk", func(t *testing.T) {
		splitter, err := NewCharacter(WithSeparator(" "), WithChunkSize(3), WithChunkOverlap(0))
		require.NoError(t, err)
		docs, err := CreateDocuments(splitter, []string{"foo bar", "baz"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []Document{
			{PageContent: "foo", Metadata: map[string]any{}},
			{PageContent: "bar", Metadata: map[string]any{}},
			{PageContent: "baz", Metadata: map[string]any{}},
		}, docs)
	})

	t.Run("Should attach the source metadata to every derived chunk", func(t *testing.T) {
		splitter, err := NewCharacter(WithSeparator(" "), WithChunkSize(3), WithChunkOverlap(0))
		require.NoError(t, err)
		docs, err := CreateDocuments(splitter, []string{"foo bar", "baz"}, []map[string]any{
			{"source": "1"},
			{"source": "2"},
		})
		require.NoError(t, err)
		assert.Equal(t, []Document{
			{PageContent: "foo", Metadata: map[string]any{"source": "1"}},
			{PageContent: "bar", Metadata: map[string]any{"source": "1"}},
			{PageContent: "baz", Metadata: map[string]any{"source": "2"}},
		}, docs)
	})

	t.Run("Should deep copy metadata so sibling documents stay isolated", func(t *testing.T) {
		splitter, err := NewCharacter(WithSeparator(" "), WithChunkSize(3), WithChunkOverlap(0))
		require.NoError(t, err)
		source := map[string]any{"source": "1", "tags": []any{"a"}}
		docs, err := CreateDocuments(splitter, []string{"foo bar"}, []map[string]any{source})
		require.NoError(t, err)
		require.Len(t, docs, 2)

		docs[0].Metadata["extra"] = 1
		assert.Equal(t, map[string]any{"source": "1", "tags": []any{"a"}, "extra": 1}, docs[0].Metadata)
		assert.Equal(t, map[string]any{"source": "1", "tags": []any{"a"}}, docs[1].Metadata)

		tags, ok := docs[1].Metadata["tags"].([]any)
		require.True(t, ok)
		tags[0] = "mutated"
		otherTags, ok := docs[0].Metadata["tags"].([]any)
		require.True(t, ok)
		assert.Equal(t, "a", otherTags[0])
	})

	t.Run("Should reject mismatched metadata length", func(t *testing.T) {
		splitter, err := NewCharacter(WithSeparator(" "), WithChunkSize(3), WithChunkOverlap(0))
		require.NoError(t, err)
		_, err = CreateDocuments(splitter, []string{"foo", "bar"}, []map[string]any{{"source": "1"}})
		require.Error(t, err)
	})
}

func TestSplitDocuments(t *testing.T) {
	t.Run("Should re-split documents and carry their metadata", func(t *testing.T) {
		splitter, err := NewCharacter(WithSeparator(""), WithChunkSize(1), WithChunkOverlap(0))
		require.NoError(t, err)
		docs, err := SplitDocuments(splitter, []Document{
			{PageContent: "foo", Metadata: map[string]any{"source": "1"}},
			{PageContent: "bar", Metadata: map[string]any{"source": "2"}},
			{PageContent: "baz", Metadata: map[string]any{"source": "1"}},
		})
		require.NoError(t, err)
		assert.Equal(t, []Document{
			{PageContent: "f", Metadata: map[string]any{"source": "1"}},
			{PageContent: "o", Metadata: map[string]any{"source": "1"}},
			{PageContent: "o", Metadata: map[string]any{"source": "1"}},
			{PageContent: "b", Metadata: map[string]any{"source": "2"}},
			{PageContent: "a", Metadata: map[string]any{"source": "2"}},
			{PageContent: "r", Metadata: map[string]any{"source": "2"}},
			{PageContent: "b", Metadata: map[string]any{"source": "1"}},
			{PageContent: "a", Metadata: map[string]any{"source": "1"}},
			{PageContent: "z", Metadata: map[string]any{"source": "1"}},
		}, docs)
	})
}
