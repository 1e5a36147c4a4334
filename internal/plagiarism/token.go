package plagiarism

import (
	"regexp"
)

// Token is one piece of a text split into alternating content and
// separator runs. Concatenating Text over all tokens in order
// reproduces the original string exactly, which is what lets the
// highlighter re-emit the input byte for byte around inserted markers.
type Token struct {
	// Text is the raw slice of the original string
	Text string
	// Index is the token's position within its parent text
	Index int
	// Word is the normalized projection, empty for separators and
	// pure-punctuation tokens
	Word string
}

// Separator runs: whitespace or the sentence punctuation set
var separatorPattern = regexp.MustCompile(`\s+|[.!?,"';:()]+`)

// Tokenize splits text into content and separator tokens. Separators
// are kept as their own tokens so the split is lossless.
func Tokenize(text string) []Token {
	tokens := make([]Token, 0)
	last := 0

	appendToken := func(raw string) {
		tokens = append(tokens, Token{
			Text:  raw,
			Index: len(tokens),
			Word:  Normalize(raw),
		})
	}

	for _, loc := range separatorPattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			appendToken(text[last:loc[0]])
		}
		appendToken(text[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		appendToken(text[last:])
	}

	return tokens
}
