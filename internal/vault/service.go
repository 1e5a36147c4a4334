package vault

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/textproof/textproof/internal/models"
)

// DocumentLister is the slice of the documents repository the vault
// service needs
type DocumentLister interface {
	GetDocumentsByOwner(ctx context.Context, ownerID string) ([]models.Document, error)
	ListOwnerIDs(ctx context.Context) ([]string, error)
}

// Service resolves the comparison corpus for a scan: the caller's own
// vault, or every owner's vault when the caller is an admin.
type Service struct {
	docs DocumentLister
}

func NewService(docs DocumentLister) *Service {
	return &Service{docs: docs}
}

// ListDocuments fetches the vault documents in scope for one scan.
// Admin scope fans out one fetch per owner concurrently; an owner
// whose fetch fails simply contributes no documents.
func (s *Service) ListDocuments(ctx context.Context, userID string, isAdmin bool) ([]models.Document, error) {
	if !isAdmin {
		return s.docs.GetDocumentsByOwner(ctx, userID)
	}

	owners, err := s.docs.ListOwnerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve vault owners: %w", err)
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		all []models.Document
	)

	for _, owner := range owners {
		wg.Add(1)
		go func(owner string) {
			defer wg.Done()

			docs, err := s.docs.GetDocumentsByOwner(ctx, owner)
			if err != nil {
				log.Warn().Err(err).Str("ownerId", owner).Msg("Skipping owner, vault fetch failed")
				return
			}

			mu.Lock()
			all = append(all, docs...)
			mu.Unlock()
		}(owner)
	}

	wg.Wait()

	return all, nil
}
