package chunk

import "github.com/splitkit/textsplit"

// Strategy names for Settings.Strategy.
const (
	StrategyRecursive = "recursive"
	StrategyToken     = "token"
)

// Document represents raw content prior to chunking.
type Document struct {
	ID       string
	Text     string
	Metadata map[string]any
}

// Settings configures chunking and preprocessing behavior.
type Settings struct {
	Strategy          string
	Size              int
	Overlap           int
	Language          textsplit.Language
	Encoding          string
	Deduplicate       bool
	NormalizeNewlines bool
}

// Chunk represents a processed slice ready for embedding or indexing.
type Chunk struct {
	ID       string
	Text     string
	Hash     string
	Metadata map[string]any
}
