package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims whitespace", input: "  hello there \n\t", want: "hello there"},
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: "   \n", want: ""},
		{name: "exact limit", input: strings.Repeat("a", MaxInputLength), want: strings.Repeat("a", MaxInputLength)},
		{name: "over limit", input: strings.Repeat("b", MaxInputLength+50), want: strings.Repeat("b", MaxInputLength)},
		{name: "trims before capping", input: "   " + strings.Repeat("c", MaxInputLength) + "dd", want: strings.Repeat("c", MaxInputLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitizeCountsCharactersNotBytes(t *testing.T) {
	input := strings.Repeat("é", MaxInputLength+10)
	got := Sanitize(input)

	assert.Equal(t, MaxInputLength, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"  What's the weather in Paris?  ",
		strings.Repeat("x", MaxInputLength-1) + " " + strings.Repeat("y", 20),
		strings.Repeat("日本", MaxInputLength),
		"\n\n",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		assert.LessOrEqual(t, utf8.RuneCountInString(once), MaxInputLength)
		assert.Equal(t, once, Sanitize(once))
	}
}
