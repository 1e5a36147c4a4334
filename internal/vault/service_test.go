package vault

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textproof/textproof/internal/models"
)

type fakeLister struct {
	byOwner    map[string][]models.Document
	failOwners map[string]bool
	ownersErr  error
}

func (f *fakeLister) GetDocumentsByOwner(ctx context.Context, ownerID string) ([]models.Document, error) {
	if f.failOwners[ownerID] {
		return nil, errors.New("fetch failed")
	}
	return f.byOwner[ownerID], nil
}

func (f *fakeLister) ListOwnerIDs(ctx context.Context) ([]string, error) {
	if f.ownersErr != nil {
		return nil, f.ownersErr
	}
	owners := make([]string, 0, len(f.byOwner))
	for owner := range f.byOwner {
		owners = append(owners, owner)
	}
	return owners, nil
}

func TestListDocumentsOwnScope(t *testing.T) {
	lister := &fakeLister{
		byOwner: map[string][]models.Document{
			"u1": {{ID: "d1", OwnerID: "u1"}},
			"u2": {{ID: "d2", OwnerID: "u2"}},
		},
	}
	svc := NewService(lister)

	docs, err := svc.ListDocuments(context.Background(), "u1", false)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)
}

func TestListDocumentsAdminScopeMergesAllOwners(t *testing.T) {
	lister := &fakeLister{
		byOwner: map[string][]models.Document{
			"u1": {{ID: "d1", OwnerID: "u1"}},
			"u2": {{ID: "d2", OwnerID: "u2"}, {ID: "d3", OwnerID: "u2"}},
			"u3": {},
		},
	}
	svc := NewService(lister)

	docs, err := svc.ListDocuments(context.Background(), "admin", true)
	require.NoError(t, err)

	ids := make(map[string]bool, len(docs))
	for _, d := range docs {
		ids[d.ID] = true
	}
	assert.Equal(t, map[string]bool{"d1": true, "d2": true, "d3": true}, ids)
}

func TestListDocumentsAdminScopeSkipsFailedOwner(t *testing.T) {
	lister := &fakeLister{
		byOwner: map[string][]models.Document{
			"u1": {{ID: "d1", OwnerID: "u1"}},
			"u2": {{ID: "d2", OwnerID: "u2"}},
		},
		failOwners: map[string]bool{"u2": true},
	}
	svc := NewService(lister)

	docs, err := svc.ListDocuments(context.Background(), "admin", true)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "d1", docs[0].ID)
}

func TestListDocumentsAdminScopeOwnersFailure(t *testing.T) {
	lister := &fakeLister{ownersErr: errors.New("distinct failed")}
	svc := NewService(lister)

	_, err := svc.ListDocuments(context.Background(), "admin", true)
	assert.Error(t, err)
}
