package textsplit

import (
	"strings"

	"github.com/splitkit/textsplit/pkg/logger"
)

// mergeSplits greedily packs atomic pieces into chunks whose measured length,
// including interior join separators, stays within the chunk size. When a chunk
// closes, a suffix of its pieces measuring at most the chunk overlap is carried
// into the next window. A single piece larger than the chunk size is emitted as
// an oversized chunk rather than dropped or truncated.
func (c *config) mergeSplits(splits []string, separator string) []string {
	separatorLen := c.lengthFn(separator)
	docs := make([]string, 0, len(splits))
	var window []string
	total := 0
	for _, piece := range splits {
		pieceLen := c.lengthFn(piece)
		if total+pieceLen+joinedLen(separatorLen, len(window) > 0) > c.chunkSize {
			if total > c.chunkSize {
				logger.Warn(
					"created a chunk longer than requested",
					"size", total,
					"chunk_size", c.chunkSize,
				)
			}
			if len(window) > 0 {
				if doc, ok := c.joinPieces(window, separator); ok {
					docs = append(docs, doc)
				}
				// Re-seed the next window from the tail: drop leading pieces
				// until the carried total fits the overlap budget and leaves
				// room for the incoming piece.
				for total > c.chunkOverlap ||
					(total+pieceLen+joinedLen(separatorLen, len(window) > 0) > c.chunkSize && total > 0) {
					total -= c.lengthFn(window[0]) + joinedLen(separatorLen, len(window) > 1)
					window = window[1:]
				}
				if len(window) == 0 && c.chunkOverlap > 0 {
					logger.Debug(
						"overlap seed skipped: no trailing piece fits within the overlap budget",
						"chunk_overlap", c.chunkOverlap,
					)
				}
			}
		}
		window = append(window, piece)
		total += pieceLen + joinedLen(separatorLen, len(window) > 1)
	}
	if doc, ok := c.joinPieces(window, separator); ok {
		docs = append(docs, doc)
	}
	return docs
}

func (c *config) joinPieces(pieces []string, separator string) (string, bool) {
	text := strings.Join(pieces, separator)
	if c.stripWhitespace {
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return "", false
	}
	return text, true
}

func joinedLen(separatorLen int, joined bool) int {
	if joined {
		return separatorLen
	}
	return 0
}
