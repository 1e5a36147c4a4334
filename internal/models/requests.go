package models

// ScanRequest represents a request to scan a text for plagiarism
type ScanRequest struct {
	Text         string `json:"text" binding:"required"`
	IncludeVault bool   `json:"includeVault"`
	IncludeWeb   bool   `json:"includeWeb"`
}

// CompareRequest represents a request to compare two texts
type CompareRequest struct {
	TextA string `json:"textA" binding:"required"`
	TextB string `json:"textB" binding:"required"`
}

// DocumentRequest represents a request to store a vault document
type DocumentRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
