package textsplit

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// Document pairs a chunk of content with its source metadata.
type Document struct {
	PageContent string
	Metadata    map[string]any
}

// CreateDocuments splits each text and pairs every produced chunk with a deep
// copy of the corresponding metadata record, so mutating one document's
// metadata never affects its siblings. metadatas may be nil; otherwise its
// length must match texts.
func CreateDocuments(s Splitter, texts []string, metadatas []map[string]any) ([]Document, error) {
	if len(metadatas) != 0 && len(metadatas) != len(texts) {
		return nil, fmt.Errorf(
			"textsplit: got %d metadata records for %d texts",
			len(metadatas), len(texts),
		)
	}
	if len(metadatas) == 0 {
		metadatas = make([]map[string]any, len(texts))
	}
	docs := make([]Document, 0, len(texts))
	for i, text := range texts {
		chunks, err := s.SplitText(text)
		if err != nil {
			return nil, fmt.Errorf("textsplit: split text %d: %w", i, err)
		}
		for _, chunk := range chunks {
			docs = append(docs, Document{
				PageContent: chunk,
				Metadata:    cloneMetadata(metadatas[i]),
			})
		}
	}
	return docs, nil
}

// SplitDocuments re-splits existing documents, carrying each source document's
// metadata onto the chunks derived from it.
func SplitDocuments(s Splitter, docs []Document) ([]Document, error) {
	texts := make([]string, len(docs))
	metadatas := make([]map[string]any, len(docs))
	for i, doc := range docs {
		texts[i] = doc.PageContent
		metadatas[i] = doc.Metadata
	}
	return CreateDocuments(s, texts, metadatas)
}

func cloneMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	copied, ok := deepcopy.Copy(meta).(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return copied
}
