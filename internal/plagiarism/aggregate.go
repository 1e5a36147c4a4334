package plagiarism

import (
	"sort"

	"github.com/textproof/textproof/internal/models"
)

// RankCandidates sorts candidates by descending score and drops
// duplicate locators. The sort runs first, so when the same URL was
// produced by more than one query variant the highest-scoring
// occurrence is the one that survives.
func RankCandidates(candidates []models.Candidate) []models.Candidate {
	ranked := make([]models.Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	seen := make(map[string]struct{}, len(ranked))
	unique := make([]models.Candidate, 0, len(ranked))
	for _, c := range ranked {
		if _, ok := seen[c.URL]; ok {
			continue
		}
		seen[c.URL] = struct{}{}
		unique = append(unique, c)
	}

	return unique
}

// TopScore returns the highest candidate score, or 0 for an empty list
func TopScore(candidates []models.Candidate) int {
	top := 0
	for _, c := range candidates {
		if c.Score > top {
			top = c.Score
		}
	}
	return top
}

// StripSources projects candidates into their public form, dropping
// the matched body text
func StripSources(candidates []models.Candidate) []models.Source {
	sources := make([]models.Source, 0, len(candidates))
	for _, c := range candidates {
		sources = append(sources, models.Source{
			Title:     c.Title,
			URL:       c.URL,
			Score:     c.Score,
			IsPrivate: c.IsPrivate,
		})
	}
	return sources
}
