package markdown

import "strings"

// wordsPerMinute is the reading speed assumed for reading time estimates.
const wordsPerMinute = 200

// WordCount counts whitespace-delimited tokens in the raw Markdown body.
func WordCount(body []byte) int {
	return len(strings.Fields(string(body)))
}

// ReadingTime estimates reading minutes for a word count, rounding up with a
// one minute floor for non-empty bodies.
func ReadingTime(words int) int {
	if words <= 0 {
		return 0
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
