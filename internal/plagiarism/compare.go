package plagiarism

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/textproof/textproof/internal/models"
)

const (
	compareMarkOpen  = `<mark class="overlap-match">`
	compareMarkClose = `</mark>`

	// compareHighBand separates the two comparison summary wordings
	compareHighBand = 50
)

var wordCharStripPattern = regexp.MustCompile(`\W`)

// Compare runs the two-document variant of the pipeline: one
// similarity score plus each text highlighted against the other's
// vocabulary. Highlighting here is per-word set membership rather
// than the scan's phrase-window probing.
func Compare(textA, textB string) *models.ComparisonResult {
	score := Similarity(textA, textB)

	setA := vocabulary(textA)
	setB := vocabulary(textB)

	summary := "Low direct overlap, but some matching keywords identified."
	if score > compareHighBand {
		summary = "High structural overlap detected between both documents."
	}

	return &models.ComparisonResult{
		Score:            score,
		Summary:          summary,
		HighlightedTextA: highlightVocabulary(textA, setB),
		HighlightedTextB: highlightVocabulary(textB, setA),
	}
}

// vocabulary builds the set of normalized words longer than one rune
func vocabulary(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Split(Normalize(text), " ") {
		if utf8.RuneCountInString(w) > 1 {
			set[w] = struct{}{}
		}
	}
	return set
}

// highlightVocabulary wraps every word of content whose cleaned form
// is a member of vocab, leaving whitespace untouched
func highlightVocabulary(content string, vocab map[string]struct{}) string {
	var out strings.Builder
	out.Grow(len(content))

	emit := func(part string) {
		clean := wordCharStripPattern.ReplaceAllString(strings.ToLower(part), "")
		if clean != "" {
			if _, ok := vocab[clean]; ok {
				out.WriteString(compareMarkOpen)
				out.WriteString(part)
				out.WriteString(compareMarkClose)
				return
			}
		}
		out.WriteString(part)
	}

	last := 0
	for _, loc := range whitespacePattern.FindAllStringIndex(content, -1) {
		if loc[0] > last {
			emit(content[last:loc[0]])
		}
		out.WriteString(content[loc[0]:loc[1]])
		last = loc[1]
	}
	if last < len(content) {
		emit(content[last:])
	}

	return out.String()
}
