package textsplit

import (
	"fmt"
	"regexp"
)

// separatorPattern compiles a separator into a matcher, escaping it first when
// it is a literal substring. The empty separator is handled by the callers and
// never reaches here.
func separatorPattern(separator string, isRegex bool) (*regexp.Regexp, error) {
	pattern := separator
	if !isRegex {
		pattern = regexp.QuoteMeta(separator)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("textsplit: invalid separator %q: %w", separator, err)
	}
	return re, nil
}

// splitOnSeparator cuts text on every occurrence of separator. With keepSeparator
// the separator text is attached to the front of the piece it precedes; the
// segment before the first occurrence is returned as-is. An empty separator
// splits into individual characters. Empty pieces are dropped.
func splitOnSeparator(text, separator string, isRegex, keepSeparator bool) ([]string, error) {
	if separator == "" {
		return splitIntoChars(text), nil
	}
	re, err := separatorPattern(separator, isRegex)
	if err != nil {
		return nil, err
	}
	var splits []string
	if keepSeparator {
		locs := re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			splits = []string{text}
		} else {
			splits = make([]string, 0, len(locs)+1)
			splits = append(splits, text[:locs[0][0]])
			for i, loc := range locs {
				end := len(text)
				if i+1 < len(locs) {
					end = locs[i+1][0]
				}
				splits = append(splits, text[loc[0]:end])
			}
		}
	} else {
		splits = re.Split(text, -1)
	}
	return dropEmpty(splits), nil
}

func splitIntoChars(text string) []string {
	chars := make([]string, 0, len(text))
	for _, r := range text {
		chars = append(chars, string(r))
	}
	return chars
}

func dropEmpty(splits []string) []string {
	kept := splits[:0]
	for _, s := range splits {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return kept
}
