package plagiarism

import (
	"strings"

	"github.com/textproof/textproof/internal/models"
)

const (
	// highlightWindowSize is the word count of the sliding probe window
	highlightWindowSize = 3

	scanMarkOpen  = `<mark class="plagiarism-match">`
	scanMarkClose = `</mark>`
)

// Highlight reconstructs text with suspect spans wrapped in mark
// elements. Every 3-word window of the input is probed as a literal
// substring against each candidate's normalized source pool; a hit
// marks the full token range the window spans, separators included.
// Overlapping hits merge into one maximal span, and everything outside
// the inserted markers is byte-identical to the input.
func Highlight(text string, candidates []models.Candidate) string {
	if len(candidates) == 0 {
		return text
	}

	tokens := Tokenize(text)

	pools := make([]string, 0, len(candidates))
	for _, c := range candidates {
		pools = append(pools, Normalize(c.Body+" "+c.Title))
	}

	// Content tokens only; separators keep their index but carry no
	// comparable word.
	words := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Word != "" {
			words = append(words, tok)
		}
	}

	matched := make([]bool, len(tokens))
	for i := 0; i+highlightWindowSize <= len(words); i++ {
		window := words[i : i+highlightWindowSize]

		parts := make([]string, highlightWindowSize)
		for j, w := range window {
			parts[j] = w.Word
		}
		phrase := strings.Join(parts, " ")

		if !anyPoolContains(pools, phrase) {
			continue
		}
		for j := window[0].Index; j <= window[highlightWindowSize-1].Index; j++ {
			matched[j] = true
		}
	}

	var out strings.Builder
	out.Grow(len(text))
	highlighted := false
	for i, tok := range tokens {
		if matched[i] && !highlighted {
			out.WriteString(scanMarkOpen)
			highlighted = true
		} else if !matched[i] && highlighted {
			out.WriteString(scanMarkClose)
			highlighted = false
		}
		out.WriteString(tok.Text)
	}
	if highlighted {
		out.WriteString(scanMarkClose)
	}

	return out.String()
}

func anyPoolContains(pools []string, phrase string) bool {
	for _, pool := range pools {
		if strings.Contains(pool, phrase) {
			return true
		}
	}
	return false
}
