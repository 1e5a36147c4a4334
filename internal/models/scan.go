package models

import (
	"time"
)

type Step string

const (
	StepIdle      Step = "idle"
	StepInitiated Step = "initiated"
	StepScanning  Step = "scanning"
	StepCompleted Step = "completed"
	StepFailed    Step = "failed"
)

// Candidate is a scored potential source of text overlap. Body is the
// text the scanned input was matched against (snippet/content/title)
// and is never exposed in API responses.
type Candidate struct {
	Title     string
	URL       string
	Body      string
	IsPrivate bool
	Score     int
}

// Source is the public projection of a Candidate, stripped of Body.
type Source struct {
	Title     string `bson:"title" json:"title"`
	URL       string `bson:"url" json:"url"`
	Score     int    `bson:"score" json:"score"`
	IsPrivate bool   `bson:"isPrivate" json:"isPrivate"`
}

// PlagiarismResult is the aggregate output of a scan
type PlagiarismResult struct {
	Score           int      `bson:"score" json:"score"`
	Summary         string   `bson:"summary" json:"summary"`
	HighlightedHTML string   `bson:"highlightedHtml" json:"highlightedHtml"`
	Sources         []Source `bson:"sources" json:"sources"`
}

// ComparisonResult is the symmetric two-document variant
type ComparisonResult struct {
	Score            int    `json:"score"`
	Summary          string `json:"summary"`
	HighlightedTextA string `json:"highlightedTextA"`
	HighlightedTextB string `json:"highlightedTextB"`
}

// ScanRecord represents a completed scan persisted for history views
type ScanRecord struct {
	ID        string           `bson:"_id" json:"id"`
	UserID    string           `bson:"userId" json:"userId"`
	UserEmail string           `bson:"userEmail" json:"userEmail,omitempty"`
	Text      string           `bson:"text" json:"text"`
	Result    PlagiarismResult `bson:"result" json:"result"`
	VaultOnly bool             `bson:"vaultOnly" json:"vaultOnly"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
}
