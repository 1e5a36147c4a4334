package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ScanCount counts plagiarism scans by outcome
	ScanCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textproof_scans_total",
			Help: "Total number of plagiarism scans",
		},
		[]string{"status"},
	)

	// ScanDuration measures scan duration
	ScanDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "textproof_scan_duration_seconds",
			Help: "Plagiarism scan duration in seconds",
		},
	)

	// ComparisonCount counts two-document comparisons
	ComparisonCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "textproof_comparisons_total",
			Help: "Total number of document comparisons",
		},
	)

	// WebSearchCount counts external search requests by outcome
	WebSearchCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "textproof_web_searches_total",
			Help: "Total number of external search requests",
		},
		[]string{"outcome"},
	)
)

// InitPrometheus registers all application metrics
func InitPrometheus() {
	prometheus.MustRegister(ScanCount)
	prometheus.MustRegister(ScanDuration)
	prometheus.MustRegister(ComparisonCount)
	prometheus.MustRegister(WebSearchCount)
}
