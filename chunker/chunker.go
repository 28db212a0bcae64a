// Package chunker splits long text into overlapping windows that fit a
// single model call.
package chunker

import "unicode"

const (
	DefaultMaxChars     = 12000
	DefaultOverlapChars = 400
)

// Chunk splits text into pieces of at most maxChars characters. A cut is moved
// back to the last whitespace after the window start when one exists, and each
// following chunk starts overlapChars before the previous cut. Chunks are exact
// source spans, so dropping the first overlapChars of every chunk after the
// first and joining them gives back text. Text no longer than maxChars is
// returned as a single chunk.
func Chunk(text string, maxChars, overlapChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if overlapChars < 0 || overlapChars >= maxChars {
		overlapChars = 0
	}

	if text == "" {
		return nil
	}
	runes := []rune(text)
	if len(runes) <= maxChars {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		if end < len(runes) {
			if cut := lastWhitespace(runes, start, end); cut > start {
				end = cut
			}
		}

		chunks = append(chunks, string(runes[start:end]))
		if end >= len(runes) {
			break
		}

		next := end - overlapChars
		if next <= start {
			next = end
		}
		start = next
	}
	return chunks
}

// lastWhitespace returns the index of the last whitespace rune in
// runes[start:end], or -1.
func lastWhitespace(runes []rune, start, end int) int {
	for i := end; i > start; i-- {
		if i < len(runes) && unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}
