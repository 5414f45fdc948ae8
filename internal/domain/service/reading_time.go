package service

import (
	"strconv"
	"strings"
)

// wordsPerMinute is the assumed reading speed for the estimate.
const wordsPerMinute = 200

// ReadingTime estimates how long a body of text takes to read and
// formats it as "<N> min read". N is the word count divided by 200,
// rounded up, never below 1: an empty body still reads "1 min read".
// Words are whitespace-delimited tokens; no markup stripping is done.
func ReadingTime(body string) string {
	words := len(strings.Fields(body))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return strconv.Itoa(minutes) + " min read"
}
