package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/textproof/textproof/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

const documentsCollection = "vault_documents"

type DocumentsRepository struct {
	mongoRepo *MongoRepository
}

func NewDocumentsRepository(mongoRepo *MongoRepository) *DocumentsRepository {
	return &DocumentsRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *DocumentsRepository) InsertDocument(ctx context.Context, document *models.Document) error {
	document.CreatedAt = time.Now()
	if err := r.mongoRepo.InsertOne(ctx, documentsCollection, document); err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	return nil
}

func (r *DocumentsRepository) GetDocumentsByOwner(ctx context.Context, ownerID string) ([]models.Document, error) {
	filter := bson.M{"ownerId": ownerID}

	cursor, err := r.mongoRepo.FindMany(ctx, documentsCollection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	var documents []models.Document
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	return documents, nil
}

// ListOwnerIDs returns every owner with at least one vault document
func (r *DocumentsRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	values, err := r.mongoRepo.Distinct(ctx, documentsCollection, "ownerId", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}

	owners := make([]string, 0, len(values))
	for _, v := range values {
		if owner, ok := v.(string); ok && owner != "" {
			owners = append(owners, owner)
		}
	}

	return owners, nil
}

// DeleteDocument removes a document, scoped to its owner so one user
// cannot delete another's vault entries. Returns false when nothing
// matched.
func (r *DocumentsRepository) DeleteDocument(ctx context.Context, id, ownerID string) (bool, error) {
	filter := bson.M{"_id": id, "ownerId": ownerID}

	deleted, err := r.mongoRepo.DeleteOne(ctx, documentsCollection, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete document: %w", err)
	}

	return deleted > 0, nil
}

func (r *DocumentsRepository) CountDocumentsByOwner(ctx context.Context, ownerID string) (int64, error) {
	filter := bson.M{"ownerId": ownerID}

	count, err := r.mongoRepo.CountDocuments(ctx, documentsCollection, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}

	return count, nil
}
