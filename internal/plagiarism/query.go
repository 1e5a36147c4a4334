package plagiarism

import (
	"strings"
	"unicode/utf8"
)

const (
	// queryWordCount is how many words each search query carries
	queryWordCount = 8
	// minQueryWordLength filters out short filler words
	minQueryWordLength = 3
	// midQueryMinWords is the qualifying-word count above which a
	// second query is sampled from the middle of the document
	midQueryMinWords = 30
)

// ExtractQueries derives at most two short search queries from a long
// input text, bounding external search traffic per scan. The first
// query samples the leading words; for long documents a second query
// samples the midpoint to catch mid-document copying.
func ExtractQueries(text string) []string {
	words := make([]string, 0)
	for _, w := range strings.Fields(text) {
		if utf8.RuneCountInString(w) > minQueryWordLength {
			words = append(words, w)
		}
	}

	if len(words) == 0 {
		return nil
	}

	queries := make([]string, 0, 2)
	if len(words) >= queryWordCount {
		queries = append(queries, strings.Join(words[:queryWordCount], " "))
	} else {
		queries = append(queries, strings.Join(words, " "))
	}

	if len(words) >= midQueryMinWords {
		mid := len(words) / 2
		queries = append(queries, strings.Join(words[mid:mid+queryWordCount], " "))
	}

	return queries
}
