package plagiarism

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// phraseLength is the word count of each sampled phrase window
	phraseLength = 4
	// maxPhraseSamples bounds the number of phrase windows probed per
	// comparison
	maxPhraseSamples = 15
	// jaccardWeight and sequenceWeight combine the vocabulary and
	// phrase-sequence signals; scoreScale stretches the weighted sum
	// onto the 0-100 band before clamping. Calibrated constants.
	jaccardWeight  = 0.3
	sequenceWeight = 0.7
	scoreScale     = 2.5
)

// Similarity computes a bounded 0-100 similarity score between two
// text blobs: a Jaccard index over the significant-word sets
// (order-insensitive vocabulary overlap) combined with a
// phrase-sequence signal (fraction of sampled 4-word windows of a
// found verbatim in normalized b). Identical texts score 100,
// disjoint vocabularies score 0.
func Similarity(a, b string) int {
	cleanA := Normalize(a)
	cleanB := Normalize(b)

	wordsA := significantWords(cleanA, 2)
	wordsB := significantWords(cleanB, 2)

	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	jaccard := jaccardIndex(wordsA, wordsB)

	sequence := 0.0
	if len(wordsA) >= phraseLength {
		windows := len(wordsA) - phraseLength + 1
		samples := windows
		if samples > maxPhraseSamples {
			samples = maxPhraseSamples
		}

		matches := 0
		for i := 0; i < samples; i++ {
			// Spread sample positions across the text when there are
			// more windows than samples, so mid-document copying is
			// not missed.
			start := i * windows / samples
			phrase := strings.Join(wordsA[start:start+phraseLength], " ")
			if strings.Contains(cleanB, phrase) {
				matches++
			}
		}
		sequence = float64(matches) / float64(samples)
	}

	score := jaccard*jaccardWeight + sequence*sequenceWeight
	scaled := math.Round(score * 100 * scoreScale)
	if scaled > 100 {
		scaled = 100
	}
	return int(scaled)
}

// significantWords splits a normalized string on single spaces and
// keeps words longer than minLength runes
func significantWords(normalized string, minLength int) []string {
	if normalized == "" {
		return nil
	}
	words := make([]string, 0)
	for _, w := range strings.Split(normalized, " ") {
		if utf8.RuneCountInString(w) > minLength {
			words = append(words, w)
		}
	}
	return words
}

func jaccardIndex(wordsA, wordsB []string) float64 {
	setA := make(map[string]struct{}, len(wordsA))
	for _, w := range wordsA {
		setA[w] = struct{}{}
	}
	setB := make(map[string]struct{}, len(wordsB))
	for _, w := range wordsB {
		setB[w] = struct{}{}
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
