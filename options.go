package textsplit

// Option configures a splitter at construction time.
type Option func(*config)

// WithChunkSize sets the maximum measured length of a produced chunk.
func WithChunkSize(size int) Option {
	return func(c *config) {
		c.chunkSize = size
	}
}

// WithChunkOverlap sets how much trailing context from one chunk is re-seeded
// into the next. Must be smaller than the chunk size.
func WithChunkOverlap(overlap int) Option {
	return func(c *config) {
		c.chunkOverlap = overlap
	}
}

// WithLengthFunction replaces the default rune-count measure.
func WithLengthFunction(fn LengthFunction) Option {
	return func(c *config) {
		c.lengthFn = fn
	}
}

// WithKeepSeparator controls whether separator text is retained in the output.
// A kept separator is attached to the front of the piece that follows it.
func WithKeepSeparator(keep bool) Option {
	return func(c *config) {
		c.keepSeparator = keep
	}
}

// WithSeparator sets the single separator used by the character splitter.
func WithSeparator(separator string) Option {
	return func(c *config) {
		c.separator = separator
	}
}

// WithSeparators sets the ordered separator list used by the recursive splitter,
// most-preferred first. An empty string entry means "split into characters".
func WithSeparators(separators []string) Option {
	return func(c *config) {
		c.separators = separators
	}
}

// WithSeparatorIsRegex treats configured separators as regular expressions
// instead of literal substrings.
func WithSeparatorIsRegex(isRegex bool) Option {
	return func(c *config) {
		c.separatorIsRegex = isRegex
	}
}

// WithStripWhitespace controls trimming of each chunk before emission.
func WithStripWhitespace(strip bool) Option {
	return func(c *config) {
		c.stripWhitespace = strip
	}
}

// WithModel selects the model whose tokenizer the token splitter should use.
func WithModel(model string) Option {
	return func(c *config) {
		c.modelName = model
	}
}

// WithEncoding selects a tiktoken encoding by name for the token splitter.
func WithEncoding(encoding string) Option {
	return func(c *config) {
		c.encodingName = encoding
	}
}
