package plagiarism

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"The quick brown fox.",
		`She said: "wait, what?!" (twice); then left...`,
		"  leading and trailing  ",
		"no-separators-here",
		"",
		"line one\nline two\ttabbed",
		"punctuation!!! runs??? everywhere,,,",
	}

	for _, input := range inputs {
		tokens := Tokenize(input)

		var rejoined strings.Builder
		for _, tok := range tokens {
			rejoined.WriteString(tok.Text)
		}
		assert.Equal(t, input, rejoined.String(), "round trip failed for %q", input)
	}
}

func TestTokenizeIndices(t *testing.T) {
	tokens := Tokenize("one two, three")

	for i, tok := range tokens {
		assert.Equal(t, i, tok.Index)
	}
}

func TestTokenizeWordProjection(t *testing.T) {
	tokens := Tokenize("Hello, world!")

	words := make([]string, 0)
	for _, tok := range tokens {
		if tok.Word != "" {
			words = append(words, tok.Word)
		}
	}
	assert.Equal(t, []string{"hello", "world"}, words)

	// Separators project to the empty string
	assert.Equal(t, ",", tokens[1].Text)
	assert.Equal(t, "", tokens[1].Word)
}
