package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ContextTimeout = time.Duration(20) * time.Second
)

// ObjectIDFromString converts a path identifier to an object id. Unlike a
// lookup by a malformed id, which would silently match nothing, an invalid
// identifier is reported as an error.
func ObjectIDFromString(id string) (primitive.ObjectID, error) {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid identifier %q: %w", id, err)
	}
	return objectId, nil
}

func NewDbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ContextTimeout)
}
