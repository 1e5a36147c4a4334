package search

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/textproof/textproof/internal/infra/redis"
	"github.com/textproof/textproof/internal/metrics"
	"github.com/textproof/textproof/internal/models"
)

// GoogleClient queries the Google Custom Search API. Responses are
// decoded at this boundary into models.WebResult so the rest of the
// pipeline never sees the provider's field names.
type GoogleClient struct {
	endpoint   string
	apiKey     string
	engineID   string
	httpClient *http.Client
	cache      *redis.Client
	cacheTTL   time.Duration
}

// NewGoogleClient creates a search client. cache may be nil to disable
// response caching.
func NewGoogleClient(endpoint, apiKey, engineID string, cache *redis.Client, cacheTTL time.Duration) *GoogleClient {
	return &GoogleClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		engineID: engineID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// searchResponse mirrors the subset of the Custom Search payload the
// scanner needs
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// searchError mirrors the API's error envelope
type searchError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search runs one query and returns its results. Identical queries
// within the cache TTL are served from Redis without hitting the API.
func (c *GoogleClient) Search(ctx context.Context, query string) ([]models.WebResult, error) {
	if cached, ok := c.cachedResults(ctx, query); ok {
		metrics.WebSearchCount.WithLabelValues("cached").Inc()
		return cached, nil
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)

	reqURL := fmt.Sprintf("%s?%s", c.endpoint, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.WebSearchCount.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp searchError
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("search API error (status %d): %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	results := make([]models.WebResult, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.Link == "" {
			continue
		}
		results = append(results, models.WebResult{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}

	metrics.WebSearchCount.WithLabelValues("ok").Inc()
	c.storeResults(ctx, query, results)

	return results, nil
}

func cacheKey(query string) string {
	sum := sha1.Sum([]byte(query))
	return "search_cache:" + hex.EncodeToString(sum[:])
}

func (c *GoogleClient) cachedResults(ctx context.Context, query string) ([]models.WebResult, bool) {
	if c.cache == nil {
		return nil, false
	}

	payload, err := c.cache.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}

	var results []models.WebResult
	if err := json.Unmarshal(payload, &results); err != nil {
		log.Debug().Err(err).Msg("Discarding malformed cached search results")
		return nil, false
	}

	return results, true
}

// storeResults caches best-effort; a cache failure never fails the search
func (c *GoogleClient) storeResults(ctx context.Context, query string, results []models.WebResult) {
	if c.cache == nil {
		return
	}

	payload, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, cacheKey(query), payload, c.cacheTTL).Err(); err != nil {
		log.Debug().Err(err).Msg("Failed to cache search results")
	}
}
