package models

import (
	"time"
)

// Document represents a vault document stored in MongoDB
type Document struct {
	ID         string    `bson:"_id" json:"id"`
	OwnerID    string    `bson:"ownerId" json:"ownerId"`
	OwnerEmail string    `bson:"ownerEmail" json:"ownerEmail,omitempty"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// VaultLocator encodes a vault document's origin so audit views can
// resolve a match back to the stored document. The internal:// scheme
// is what distinguishes private sources from external URLs downstream.
func VaultLocator(ownerID, documentID string) string {
	return "internal://vault/" + ownerID + "/" + documentID
}
