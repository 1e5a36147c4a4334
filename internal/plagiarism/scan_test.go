package plagiarism

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textproof/textproof/internal/config"
	"github.com/textproof/textproof/internal/models"
)

const scanText = "climate change threatens coastal cities with rising sea levels and stronger storms"

func testThresholds() config.Thresholds {
	return config.Thresholds{
		VaultMinScore: 5,
		WebMinScore:   15,
		HighScore:     60,
		MinScanLength: 20,
	}
}

type fakeVault struct {
	docs  []models.Document
	err   error
	calls int
}

func (f *fakeVault) ListDocuments(ctx context.Context, userID string, isAdmin bool) ([]models.Document, error) {
	f.calls++
	return f.docs, f.err
}

type fakeSearcher struct {
	results []models.WebResult
	err     error
	queries []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]models.WebResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func newTestScanner(t *testing.T, vault DocumentSource, web WebSearcher) *Scanner {
	t.Helper()
	pool := NewWorkerPool(context.Background())
	t.Cleanup(pool.Close)
	return NewScanner(testThresholds(), vault, web, pool)
}

func TestScanInputTooShort(t *testing.T) {
	vault := &fakeVault{}
	web := &fakeSearcher{}
	scanner := newTestScanner(t, vault, web)

	result, err := scanner.Scan(context.Background(), "short", ScanOptions{
		IncludeVault: true,
		IncludeWeb:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Sources)
	assert.Contains(t, result.Summary, "too short")
	// No external calls for rejected input
	assert.Zero(t, vault.calls)
	assert.Empty(t, web.queries)
}

func TestScanIdenticalVaultDocument(t *testing.T) {
	vault := &fakeVault{
		docs: []models.Document{
			{ID: "doc-1", OwnerID: "owner-1", Title: "My essay", Content: scanText},
		},
	}
	scanner := newTestScanner(t, vault, nil)

	result, err := scanner.Scan(context.Background(), scanText, ScanOptions{
		UserID:       "owner-1",
		IncludeVault: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, 100, result.Sources[0].Score)
	assert.True(t, result.Sources[0].IsPrivate)
	assert.Equal(t, "internal://vault/owner-1/doc-1", result.Sources[0].URL)
}

func TestScanVaultNoiseFiltered(t *testing.T) {
	vault := &fakeVault{
		docs: []models.Document{
			{ID: "doc-1", OwnerID: "owner-1", Title: "Unrelated", Content: "gardening tips tulips compost watering schedule"},
		},
	}
	scanner := newTestScanner(t, vault, nil)

	result, err := scanner.Scan(context.Background(), scanText, ScanOptions{
		UserID:       "owner-1",
		IncludeVault: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Sources)
	assert.Contains(t, result.Summary, "private vault")
}

func TestScanWebCandidatesFilteredAndDeduplicated(t *testing.T) {
	web := &fakeSearcher{
		results: []models.WebResult{
			{Title: "Full copy", URL: "https://example.com/article", Snippet: scanText},
			{Title: "Partial copy", URL: "https://example.com/article", Snippet: "climate change threatens coastal cities today perhaps"},
			{Title: "Low", URL: "https://example.com/low", Snippet: "with stronger words maybe"},
		},
	}
	scanner := newTestScanner(t, &fakeVault{}, web)

	result, err := scanner.Scan(context.Background(), scanText, ScanOptions{
		IncludeWeb: true,
	})

	require.NoError(t, err)
	require.Len(t, web.queries, 1)
	// Duplicate locator collapses to the highest score; the sub-threshold
	// result is discarded entirely.
	require.Len(t, result.Sources, 1)
	assert.Equal(t, "https://example.com/article", result.Sources[0].URL)
	assert.Equal(t, 100, result.Sources[0].Score)
	assert.False(t, result.Sources[0].IsPrivate)
	assert.Equal(t, result.Sources[0].Score, result.Score)
	assert.Contains(t, result.Summary, "High similarity detected")
}

func TestScanSearchFailureDegradesToVaultOnly(t *testing.T) {
	vault := &fakeVault{
		docs: []models.Document{
			{ID: "doc-1", OwnerID: "owner-1", Title: "My essay", Content: scanText},
		},
	}
	web := &fakeSearcher{err: errors.New("search quota exceeded")}
	scanner := newTestScanner(t, vault, web)

	result, err := scanner.Scan(context.Background(), scanText, ScanOptions{
		UserID:       "owner-1",
		IncludeVault: true,
		IncludeWeb:   true,
	})

	require.NoError(t, err)
	require.Len(t, result.Sources, 1)
	assert.True(t, result.Sources[0].IsPrivate)
	assert.Equal(t, 100, result.Score)
}

func TestScanVaultListingFailureDegrades(t *testing.T) {
	vault := &fakeVault{err: errors.New("database offline")}
	scanner := newTestScanner(t, vault, nil)

	result, err := scanner.Scan(context.Background(), scanText, ScanOptions{
		UserID:       "owner-1",
		IncludeVault: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Empty(t, result.Sources)
}

func TestScanScoreIsMaxOfSources(t *testing.T) {
	vault := &fakeVault{
		docs: []models.Document{
			{ID: "doc-1", OwnerID: "owner-1", Title: "Partial match", Content: "climate change threatens coastal cities in many ways"},
		},
	}
	web := &fakeSearcher{
		results: []models.WebResult{
			{Title: "Full copy", URL: "https://example.com/article", Snippet: scanText},
		},
	}
	scanner := newTestScanner(t, vault, web)

	result, err := scanner.Scan(context.Background(), scanText, ScanOptions{
		UserID:       "owner-1",
		IncludeVault: true,
		IncludeWeb:   true,
	})

	require.NoError(t, err)
	require.NotEmpty(t, result.Sources)

	top := 0
	for _, s := range result.Sources {
		if s.Score > top {
			top = s.Score
		}
	}
	assert.Equal(t, top, result.Score)

	// Sources are ranked score-descending
	for i := 1; i < len(result.Sources); i++ {
		assert.GreaterOrEqual(t, result.Sources[i-1].Score, result.Sources[i].Score)
	}
}

func TestScanHighlightsMatchedContent(t *testing.T) {
	vault := &fakeVault{
		docs: []models.Document{
			{ID: "doc-1", OwnerID: "owner-1", Title: "My essay", Content: scanText},
		},
	}
	scanner := newTestScanner(t, vault, nil)

	result, err := scanner.Scan(context.Background(), scanText, ScanOptions{
		UserID:       "owner-1",
		IncludeVault: true,
	})

	require.NoError(t, err)
	assert.Contains(t, result.HighlightedHTML, scanMarkOpen)
	assert.Contains(t, result.HighlightedHTML, scanMarkClose)
}
