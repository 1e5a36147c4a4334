package models

// WebResult is one item returned by the web-search collaborator,
// already flattened out of the provider's response shape
type WebResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}
