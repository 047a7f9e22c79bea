// Package textsplit splits long text into bounded-size chunks while preserving
// semantically meaningful boundaries (paragraphs, sentences, words) and keeping a
// configurable amount of trailing context shared between adjacent chunks.
package textsplit

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// DefaultChunkSize is the default maximum measured length of a produced chunk.
	DefaultChunkSize = 4000
	// DefaultChunkOverlap is the default amount of trailing context re-seeded
	// into the next chunk.
	DefaultChunkOverlap = 200
)

// LengthFunction maps a string to the size used for chunk bounding. The default
// counts runes; token-based measures can be plugged in via WithLengthFunction.
type LengthFunction func(text string) int

// Splitter produces an ordered sequence of chunks from raw text.
type Splitter interface {
	SplitText(text string) ([]string, error)
}

type config struct {
	chunkSize        int
	chunkOverlap     int
	lengthFn         LengthFunction
	keepSeparator    bool
	separatorIsRegex bool
	stripWhitespace  bool
	separator        string
	separators       []string
	modelName        string
	encodingName     string
}

func defaultConfig() config {
	return config{
		chunkSize:       DefaultChunkSize,
		chunkOverlap:    DefaultChunkOverlap,
		lengthFn:        utf8.RuneCountInString,
		stripWhitespace: true,
		separator:       "\n\n",
		separators:      DefaultSeparators(),
	}
}

// DefaultSeparators returns the universal fallback list: paragraph, line, word,
// character.
func DefaultSeparators() []string {
	return []string{"\n\n", "\n", " ", ""}
}

func (c *config) validate() error {
	if c.chunkSize <= 0 {
		return errors.New("textsplit: chunk size must be greater than zero")
	}
	if c.chunkOverlap < 0 {
		return errors.New("textsplit: chunk overlap cannot be negative")
	}
	if c.chunkOverlap >= c.chunkSize {
		return fmt.Errorf(
			"textsplit: chunk overlap %d must be smaller than chunk size %d",
			c.chunkOverlap, c.chunkSize,
		)
	}
	if c.lengthFn == nil {
		return errors.New("textsplit: length function cannot be nil")
	}
	if len(c.separators) == 0 {
		return errors.New("textsplit: at least one separator is required")
	}
	return nil
}
