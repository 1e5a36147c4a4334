package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/textproof/textproof/internal/config"
	"github.com/textproof/textproof/internal/infra/redis"
	"github.com/textproof/textproof/internal/metrics"
	"github.com/textproof/textproof/internal/models"
	"github.com/textproof/textproof/internal/plagiarism"
	"github.com/textproof/textproof/internal/repository"
)

// Handler holds dependencies for handlers
type Handler struct {
	cfg         *config.Config
	scanner     *plagiarism.Scanner
	scansRepo   *repository.ScansRepository
	docsRepo    *repository.DocumentsRepository
	redisClient *redis.Client
	scanSem     chan struct{} // Semaphore for bounded concurrency
	scanTimeout time.Duration
}

// NewHandler creates a new handler
func NewHandler(
	cfg *config.Config,
	scanner *plagiarism.Scanner,
	scansRepo *repository.ScansRepository,
	docsRepo *repository.DocumentsRepository,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		cfg:         cfg,
		scanner:     scanner,
		scansRepo:   scansRepo,
		docsRepo:    docsRepo,
		redisClient: redisClient,
		scanSem:     make(chan struct{}, cfg.MaxConcurrentScans),
		scanTimeout: cfg.ScanTimeout,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// ScanResponse pairs the persisted scan id with its result
type ScanResponse struct {
	ScanID string                  `json:"scanId"`
	Result models.PlagiarismResult `json:"result"`
}

func (h *Handler) Scan(c *gin.Context) {
	var req models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if !req.IncludeVault && !req.IncludeWeb {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "At least one of includeVault or includeWeb must be set",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	ctx := c.Request.Context()

	// Acquire semaphore (bounded concurrency)
	select {
	case h.scanSem <- struct{}{}:
	case <-ctx.Done():
		c.JSON(http.StatusRequestTimeout, models.ErrorResponse{
			Error: "Request cancelled",
			Code:  "REQUEST_TIMEOUT",
		})
		return
	}
	defer func() { <-h.scanSem }()

	scanID := uuid.New().String()
	userID := c.GetString("user_id")

	if err := plagiarism.UpdateStatus(ctx, h.redisClient, scanID, models.StepInitiated, h.cfg.StatusTTL); err != nil {
		log.Warn().Err(err).Str("scanId", scanID).Msg("Failed to update initiated status")
	}

	scanCtx, cancel := context.WithTimeout(ctx, h.scanTimeout)
	defer cancel()

	if err := plagiarism.UpdateStatus(scanCtx, h.redisClient, scanID, models.StepScanning, h.cfg.StatusTTL); err != nil {
		log.Warn().Err(err).Str("scanId", scanID).Msg("Failed to update scanning status")
	}

	start := time.Now()
	result, err := h.scanner.Scan(scanCtx, req.Text, plagiarism.ScanOptions{
		UserID:       userID,
		IsAdmin:      c.GetBool("is_admin"),
		IncludeVault: req.IncludeVault,
		IncludeWeb:   req.IncludeWeb,
	})
	metrics.ScanDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ScanCount.WithLabelValues("failed").Inc()
		log.Error().Err(err).Str("scanId", scanID).Msg("Scan failed")
		if err := plagiarism.UpdateStatus(ctx, h.redisClient, scanID, models.StepFailed, h.cfg.StatusTTL); err != nil {
			log.Warn().Err(err).Str("scanId", scanID).Msg("Failed to update failed status")
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Scan failed",
			Code:  "SCAN_FAILED",
		})
		return
	}

	metrics.ScanCount.WithLabelValues("completed").Inc()

	// History persistence is best effort; the caller still gets the result
	record := &models.ScanRecord{
		ID:        scanID,
		UserID:    userID,
		UserEmail: c.GetString("user_email"),
		Text:      req.Text,
		Result:    *result,
		VaultOnly: req.IncludeVault && !req.IncludeWeb,
	}
	if err := h.scansRepo.InsertScan(scanCtx, record); err != nil {
		log.Warn().Err(err).Str("scanId", scanID).Msg("Failed to persist scan record")
	}

	if err := plagiarism.UpdateStatus(scanCtx, h.redisClient, scanID, models.StepCompleted, h.cfg.StatusTTL); err != nil {
		log.Warn().Err(err).Str("scanId", scanID).Msg("Failed to update completed status")
	}

	c.JSON(http.StatusOK, ScanResponse{
		ScanID: scanID,
		Result: *result,
	})
}

func (h *Handler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	result := plagiarism.Compare(req.TextA, req.TextB)
	metrics.ComparisonCount.Inc()

	c.JSON(http.StatusOK, result)
}

// scanListingTextLimit truncates stored text for history listings
const scanListingTextLimit = 200

func (h *Handler) ListScans(c *gin.Context) {
	userID := c.GetString("user_id")

	records, err := h.scansRepo.GetScansByUser(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("Failed to list scans")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list scans",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	for i := range records {
		if len(records[i].Text) > scanListingTextLimit {
			records[i].Text = records[i].Text[:scanListingTextLimit]
		}
	}

	c.JSON(http.StatusOK, gin.H{"scans": records})
}

func (h *Handler) GetScan(c *gin.Context) {
	userID := c.GetString("user_id")
	scanID := c.Param("id")

	record, err := h.scansRepo.GetScanByID(c.Request.Context(), scanID, userID)
	if err != nil {
		log.Error().Err(err).Str("scanId", scanID).Msg("Failed to get scan")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get scan",
			Code:  "INTERNAL_ERROR",
		})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Scan not found",
			Code:  "SCAN_NOT_FOUND",
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) CreateDocument(c *gin.Context) {
	var req models.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	document := &models.Document{
		ID:         uuid.New().String(),
		OwnerID:    c.GetString("user_id"),
		OwnerEmail: c.GetString("user_email"),
		Title:      req.Title,
		Content:    req.Content,
	}

	if err := h.docsRepo.InsertDocument(c.Request.Context(), document); err != nil {
		log.Error().Err(err).Str("ownerId", document.OwnerID).Msg("Failed to insert document")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to store document",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusCreated, document)
}

func (h *Handler) ListDocuments(c *gin.Context) {
	ownerID := c.GetString("user_id")

	documents, err := h.docsRepo.GetDocumentsByOwner(c.Request.Context(), ownerID)
	if err != nil {
		log.Error().Err(err).Str("ownerId", ownerID).Msg("Failed to list documents")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to list documents",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

func (h *Handler) DeleteDocument(c *gin.Context) {
	ownerID := c.GetString("user_id")
	documentID := c.Param("id")

	deleted, err := h.docsRepo.DeleteDocument(c.Request.Context(), documentID, ownerID)
	if err != nil {
		log.Error().Err(err).Str("documentId", documentID).Msg("Failed to delete document")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to delete document",
			Code:  "INTERNAL_ERROR",
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Document not found",
			Code:  "DOCUMENT_NOT_FOUND",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
