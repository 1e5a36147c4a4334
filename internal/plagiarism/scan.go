package plagiarism

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/textproof/textproof/internal/config"
	"github.com/textproof/textproof/internal/models"
)

// DocumentSource lists the vault documents a scan should compare
// against. Admin scope covers every owner's collection.
type DocumentSource interface {
	ListDocuments(ctx context.Context, userID string, isAdmin bool) ([]models.Document, error)
}

// WebSearcher runs one short query against the public web and returns
// a bounded list of results
type WebSearcher interface {
	Search(ctx context.Context, query string) ([]models.WebResult, error)
}

// ScanOptions selects the comparison corpora for one scan invocation
type ScanOptions struct {
	UserID       string
	IsAdmin      bool
	IncludeVault bool
	IncludeWeb   bool
}

// Scanner composes the similarity pipeline: vault candidates scored
// through the worker pool, web candidates from the search collaborator,
// aggregation, highlighting and the summary classification.
type Scanner struct {
	thresholds config.Thresholds
	vault      DocumentSource
	web        WebSearcher
	pool       *WorkerPool
}

func NewScanner(thresholds config.Thresholds, vault DocumentSource, web WebSearcher, pool *WorkerPool) *Scanner {
	return &Scanner{
		thresholds: thresholds,
		vault:      vault,
		web:        web,
		pool:       pool,
	}
}

// Scan produces the plagiarism result for one input text. Per-source
// fetch failures degrade to empty contributions; only cancellation and
// defects in the deterministic pipeline surface as errors.
func (s *Scanner) Scan(ctx context.Context, text string, opts ScanOptions) (*models.PlagiarismResult, error) {
	if len(strings.TrimSpace(text)) < s.thresholds.MinScanLength {
		return &models.PlagiarismResult{
			Score:           0,
			Summary:         "Input content is too short for a reliable scan.",
			HighlightedHTML: text,
			Sources:         []models.Source{},
		}, nil
	}

	candidates := make([]models.Candidate, 0)

	if opts.IncludeVault && s.vault != nil {
		vaultCandidates, err := s.vaultCandidates(ctx, text, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to score vault candidates: %w", err)
		}
		candidates = append(candidates, vaultCandidates...)
	}

	if opts.IncludeWeb && s.web != nil {
		candidates = append(candidates, s.webCandidates(ctx, text)...)
	}

	ranked := RankCandidates(candidates)
	topScore := TopScore(ranked)

	return &models.PlagiarismResult{
		Score:           topScore,
		Summary:         s.buildSummary(topScore, len(ranked), opts.IncludeWeb),
		HighlightedHTML: Highlight(text, ranked),
		Sources:         StripSources(ranked),
	}, nil
}

// docScore carries one scored vault document out of the worker pool
type docScore struct {
	doc   models.Document
	score int
}

type scoreJob struct {
	text    string
	doc     models.Document
	results chan<- docScore
}

func (j *scoreJob) Execute(ctx context.Context) error {
	result := docScore{
		doc:   j.doc,
		score: Similarity(j.text, j.doc.Content),
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case j.results <- result:
		return nil
	}
}

// vaultCandidates scores the scanned text against every vault document
// through the worker pool and keeps only meaningful matches. A failed
// vault listing degrades the scan to web-only rather than aborting it.
func (s *Scanner) vaultCandidates(ctx context.Context, text string, opts ScanOptions) ([]models.Candidate, error) {
	docs, err := s.vault.ListDocuments(ctx, opts.UserID, opts.IsAdmin)
	if err != nil {
		log.Warn().Err(err).Str("userId", opts.UserID).Msg("Vault listing failed, scanning without vault")
		return nil, nil
	}
	if len(docs) == 0 {
		return nil, nil
	}

	results := make(chan docScore, len(docs))
	for _, doc := range docs {
		job := &scoreJob{text: text, doc: doc, results: results}
		if err := s.pool.Submit(job); err != nil {
			return nil, fmt.Errorf("failed to submit scoring job: %w", err)
		}
	}

	candidates := make([]models.Candidate, 0, len(docs))
	for i := 0; i < len(docs); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case r := <-results:
			if r.score <= s.thresholds.VaultMinScore {
				continue
			}
			candidates = append(candidates, models.Candidate{
				Title:     r.doc.Title,
				URL:       models.VaultLocator(r.doc.OwnerID, r.doc.ID),
				Body:      r.doc.Content,
				IsPrivate: true,
				Score:     r.score,
			})
		}
	}

	return candidates, nil
}

// webCandidates issues one search per extracted query and maps results
// above the web threshold into candidates. A failed query contributes
// nothing; it never aborts the scan.
func (s *Scanner) webCandidates(ctx context.Context, text string) []models.Candidate {
	candidates := make([]models.Candidate, 0)

	for _, query := range ExtractQueries(text) {
		results, err := s.web.Search(ctx, query)
		if err != nil {
			log.Warn().Err(err).Str("query", query).Msg("Search query failed, continuing")
			continue
		}

		for _, item := range results {
			body := item.Snippet + " " + item.Title
			score := Similarity(text, body)
			if score < s.thresholds.WebMinScore {
				continue
			}
			candidates = append(candidates, models.Candidate{
				Title:     item.Title,
				URL:       item.URL,
				Body:      body,
				IsPrivate: false,
				Score:     score,
			})
		}
	}

	return candidates
}

func (s *Scanner) buildSummary(topScore, sourceCount int, includeWeb bool) string {
	scanContext := "private vault"
	if includeWeb {
		scanContext = "web and vault"
	}

	switch {
	case sourceCount == 0:
		return fmt.Sprintf("No significant matches found in your %s.", scanContext)
	case topScore > s.thresholds.HighScore:
		return fmt.Sprintf("High similarity detected (%d%%). Content appears in %d external sources.", topScore, sourceCount)
	default:
		return fmt.Sprintf("Audit complete: %d%% overlap detected across %d sources.", topScore, sourceCount)
	}
}
