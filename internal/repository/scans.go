package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/textproof/textproof/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const scansCollection = "scan_history"

// scanHistoryLimit bounds history listings per user
const scanHistoryLimit = 50

type ScansRepository struct {
	mongoRepo *MongoRepository
}

func NewScansRepository(mongoRepo *MongoRepository) *ScansRepository {
	return &ScansRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *ScansRepository) InsertScan(ctx context.Context, record *models.ScanRecord) error {
	record.CreatedAt = time.Now()
	if err := r.mongoRepo.InsertOne(ctx, scansCollection, record); err != nil {
		return fmt.Errorf("failed to insert scan record: %w", err)
	}

	return nil
}

func (r *ScansRepository) GetScansByUser(ctx context.Context, userID string) ([]models.ScanRecord, error) {
	filter := bson.M{"userId": userID}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(scanHistoryLimit)

	cursor, err := r.mongoRepo.FindMany(ctx, scansCollection, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find scan records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.ScanRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode scan records: %w", err)
	}

	return records, nil
}

func (r *ScansRepository) GetScanByID(ctx context.Context, id, userID string) (*models.ScanRecord, error) {
	filter := bson.M{"_id": id, "userId": userID}

	var record models.ScanRecord
	err := r.mongoRepo.FindOne(ctx, scansCollection, filter).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find scan record: %w", err)
	}

	return &record, nil
}
