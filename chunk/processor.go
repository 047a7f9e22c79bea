package chunk

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mohae/deepcopy"
	"github.com/splitkit/textsplit"
	"github.com/splitkit/textsplit/pkg/logger"
)

var newlinePattern = regexp.MustCompile(`\r\n|\r`)

// Processor handles chunking according to supplied configuration.
type Processor struct {
	settings Settings
	splitter textsplit.Splitter
}

// NewProcessor builds a processor with validated settings. The splitter is
// constructed once and reused across Process calls; it is safe for concurrent
// use.
func NewProcessor(settings Settings) (*Processor, error) {
	if settings.Strategy == "" {
		settings.Strategy = StrategyRecursive
	}
	if settings.Size <= 0 {
		return nil, errors.New("chunk: size must be greater than zero")
	}
	if settings.Overlap < 0 {
		return nil, errors.New("chunk: overlap cannot be negative")
	}
	if settings.Overlap >= settings.Size {
		return nil, fmt.Errorf("chunk: overlap %d must be smaller than size %d", settings.Overlap, settings.Size)
	}
	splitter, err := newSplitter(settings)
	if err != nil {
		return nil, err
	}
	return &Processor{settings: settings, splitter: splitter}, nil
}

func newSplitter(settings Settings) (textsplit.Splitter, error) {
	opts := []textsplit.Option{
		textsplit.WithChunkSize(settings.Size),
		textsplit.WithChunkOverlap(settings.Overlap),
	}
	switch settings.Strategy {
	case StrategyRecursive:
		if settings.Language != "" {
			return textsplit.NewRecursiveFromLanguage(settings.Language, opts...)
		}
		return textsplit.NewRecursive(opts...)
	case StrategyToken:
		if settings.Encoding != "" {
			opts = append(opts, textsplit.WithEncoding(settings.Encoding))
		}
		return textsplit.NewTokenSplitter(opts...)
	default:
		return nil, fmt.Errorf("chunk: unknown strategy %q", settings.Strategy)
	}
}

// Process splits documents into deterministic chunks.
func (p *Processor) Process(ctx context.Context, corpusID string, docs []Document) ([]Chunk, error) {
	if strings.TrimSpace(corpusID) == "" {
		return nil, errors.New("chunk: corpus id is required")
	}
	if len(docs) == 0 {
		return nil, nil
	}
	log := logger.FromContext(ctx)
	seen := make(map[string]struct{})
	chunks := make([]Chunk, 0, len(docs))
	for di := range docs {
		doc := docs[di]
		text := p.preprocess(doc.Text)
		if text == "" {
			continue
		}
		segments, err := p.splitter.SplitText(text)
		if err != nil {
			return nil, fmt.Errorf("chunk: split document %s: %w", doc.ID, err)
		}
		for idx, segment := range segments {
			chunkText := strings.TrimSpace(segment)
			if chunkText == "" {
				continue
			}
			hash := hashText(chunkText)
			if p.settings.Deduplicate {
				if _, exists := seen[hash]; exists {
					continue
				}
				seen[hash] = struct{}{}
			}
			chunkID := hashText(corpusID + "::" + doc.ID + "::" + fmt.Sprint(idx) + "::" + hash)
			metadata := cloneMetadata(doc.Metadata)
			metadata["chunk_index"] = idx
			metadata["source_id"] = doc.ID
			chunks = append(chunks, Chunk{
				ID:       chunkID,
				Text:     chunkText,
				Hash:     hash,
				Metadata: metadata,
			})
		}
	}
	log.Debug("chunked documents", "corpus_id", corpusID, "documents", len(docs), "chunks", len(chunks))
	recordChunks(ctx, corpusID, chunks)
	return chunks, nil
}

func (p *Processor) preprocess(text string) string {
	normalized := text
	if p.settings.NormalizeNewlines {
		normalized = newlinePattern.ReplaceAllString(normalized, "\n")
	}
	return strings.TrimSpace(normalized)
}

func hashText(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:16])
}

func cloneMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return make(map[string]any)
	}
	copied, ok := deepcopy.Copy(meta).(map[string]any)
	if !ok {
		return make(map[string]any)
	}
	return copied
}
