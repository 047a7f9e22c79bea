package textsplit

// Character splits text on a single fixed separator and merges the resulting
// pieces back into bounded chunks. Use it when one split granularity is known
// to be sufficient; Recursive handles mixed granularities.
type Character struct {
	config
}

// NewCharacter builds a character splitter. The default separator is "\n\n";
// the separator is discarded from the output unless WithKeepSeparator is set.
func NewCharacter(opts ...Option) (*Character, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Character{config: cfg}, nil
}

// SplitText implements Splitter.
func (s *Character) SplitText(text string) ([]string, error) {
	splits, err := splitOnSeparator(text, s.separator, s.separatorIsRegex, s.keepSeparator)
	if err != nil {
		return nil, err
	}
	joiner := s.separator
	if s.keepSeparator {
		joiner = ""
	}
	return s.mergeSplits(splits, joiner), nil
}
