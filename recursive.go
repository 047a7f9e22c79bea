package textsplit

import (
	"github.com/splitkit/textsplit/pkg/logger"
)

// Recursive tries separators from an ordered list, most-preferred first. Pieces
// still over the chunk size after a split are re-split with the remaining
// separators, bottoming out at individual characters when the list ends with
// the empty string.
type Recursive struct {
	config
}

// NewRecursive builds a recursive splitter. Separators default to paragraph,
// line, word and character breaks, and separator text is kept by default so no
// user-visible bytes are lost across chunk boundaries.
func NewRecursive(opts ...Option) (*Recursive, error) {
	cfg := defaultConfig()
	cfg.keepSeparator = true
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Recursive{config: cfg}, nil
}

// SplitText implements Splitter.
func (s *Recursive) SplitText(text string) ([]string, error) {
	return s.splitText(text, s.separators)
}

func (s *Recursive) splitText(text string, separators []string) ([]string, error) {
	// Pick the first separator that occurs in the text; the last entry is the
	// guaranteed-progress fallback.
	separator := separators[len(separators)-1]
	var remaining []string
	for i, sep := range separators {
		if sep == "" {
			separator = sep
			break
		}
		re, err := separatorPattern(sep, s.separatorIsRegex)
		if err != nil {
			return nil, err
		}
		if re.MatchString(text) {
			separator = sep
			remaining = separators[i+1:]
			break
		}
	}

	splits, err := splitOnSeparator(text, separator, s.separatorIsRegex, s.keepSeparator)
	if err != nil {
		return nil, err
	}

	joiner := separator
	if s.keepSeparator {
		joiner = ""
	}

	var chunks []string
	var good []string
	for _, piece := range splits {
		if s.lengthFn(piece) < s.chunkSize {
			good = append(good, piece)
			continue
		}
		if len(good) > 0 {
			chunks = append(chunks, s.mergeSplits(good, joiner)...)
			good = nil
		}
		if len(remaining) == 0 {
			logger.Warn(
				"emitting an atomic piece longer than the chunk size",
				"size", s.lengthFn(piece),
				"chunk_size", s.chunkSize,
			)
			chunks = append(chunks, piece)
			continue
		}
		sub, err := s.splitText(piece, remaining)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, sub...)
	}
	if len(good) > 0 {
		chunks = append(chunks, s.mergeSplits(good, joiner)...)
	}
	return chunks, nil
}
