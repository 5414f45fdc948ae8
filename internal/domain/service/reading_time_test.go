package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadingTime(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty body", body: "", want: "1 min read"},
		{name: "whitespace only", body: "  \n\t  ", want: "1 min read"},
		{name: "single word", body: "hello", want: "1 min read"},
		{name: "exactly 200 words", body: words(200), want: "1 min read"},
		{name: "201 words rounds up", body: words(201), want: "2 min read"},
		{name: "400 words", body: words(400), want: "2 min read"},
		{name: "1000 words", body: words(1000), want: "5 min read"},
		{name: "irregular whitespace", body: "one\n\ntwo\t three   four", want: "1 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadingTime(tt.body))
		})
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}
