package textsplit

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultTokenEncoding is used when neither a model nor an encoding is set.
const DefaultTokenEncoding = "cl100k_base"

// TokenSplitter windows over token IDs instead of characters: the text is
// encoded once, cut into chunkSize-token windows advancing by
// chunkSize-chunkOverlap, and each window is decoded back to text.
type TokenSplitter struct {
	config
	tke *tiktoken.Tiktoken
}

// NewTokenSplitter builds a token splitter. Use WithModel or WithEncoding to
// select the tokenizer; chunk size and overlap are measured in tokens.
func NewTokenSplitter(opts ...Option) (*TokenSplitter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tke, err := encodingFor(cfg.modelName, cfg.encodingName)
	if err != nil {
		return nil, err
	}
	return &TokenSplitter{config: cfg, tke: tke}, nil
}

// SplitText implements Splitter.
func (s *TokenSplitter) SplitText(text string) ([]string, error) {
	ids := s.tke.Encode(text, nil, nil)
	chunks := make([]string, 0, len(ids)/s.chunkSize+1)
	for start := 0; start < len(ids); start += s.chunkSize - s.chunkOverlap {
		end := start + s.chunkSize
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, s.tke.Decode(ids[start:end]))
		if end == len(ids) {
			break
		}
	}
	return chunks, nil
}

// TokenLengthFunction returns a LengthFunction measuring strings in tokens,
// for bounding character or recursive splitters by token count instead of
// runes. modelOrEncoding may be a model name, an encoding name, or empty for
// the default encoding.
func TokenLengthFunction(modelOrEncoding string) (LengthFunction, error) {
	tke, err := encodingFor(modelOrEncoding, modelOrEncoding)
	if err != nil {
		return nil, err
	}
	return func(text string) int {
		return len(tke.Encode(text, nil, nil))
	}, nil
}

func encodingFor(model, encoding string) (*tiktoken.Tiktoken, error) {
	if model != "" {
		if tke, err := tiktoken.EncodingForModel(model); err == nil {
			return tke, nil
		}
	}
	if encoding == "" {
		encoding = DefaultTokenEncoding
	}
	tke, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("textsplit: get encoding %q: %w", encoding, err)
	}
	return tke, nil
}
