package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"scheduly/models"
)

// MongoStore persists sessions in a MongoDB collection. Unlike Redis there is
// no native per-key TTL here; the cleanup worker sweeps expired records.
type MongoStore struct {
	coll *mongo.Collection
	ttl  time.Duration
}

// NewMongoStore wraps a sessions collection.
func NewMongoStore(coll *mongo.Collection, ttl time.Duration) *MongoStore {
	return &MongoStore{coll: coll, ttl: ttl}
}

func (m *MongoStore) Create(ctx context.Context, sessionID string, state models.SessionState) error {
	now := time.Now()
	rec := models.SessionRecord{
		SessionID:    sessionID,
		State:        state,
		CreatedAt:    now,
		LastAccessed: now,
	}
	if _, err := m.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to insert session %s: %w", sessionID, err)
	}
	return nil
}

func (m *MongoStore) Get(ctx context.Context, sessionID string) (*models.SessionRecord, error) {
	var rec models.SessionRecord
	err := m.coll.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session %s: %w", sessionID, err)
	}
	if rec.Expired(m.ttl) {
		_, _ = m.coll.DeleteOne(ctx, bson.M{"sessionId": sessionID})
		return nil, ErrNotFound
	}
	rec.LastAccessed = time.Now()
	_, _ = m.coll.UpdateOne(ctx,
		bson.M{"sessionId": sessionID},
		bson.M{"$set": bson.M{"lastAccessed": rec.LastAccessed}},
	)
	return &rec, nil
}

func (m *MongoStore) Update(ctx context.Context, sessionID string, state models.SessionState) error {
	res, err := m.coll.UpdateOne(ctx,
		bson.M{"sessionId": sessionID},
		bson.M{"$set": bson.M{"state": state, "lastAccessed": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update session %s: %w", sessionID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStore) Delete(ctx context.Context, sessionID string) error {
	res, err := m.coll.DeleteOne(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoStore) CleanupExpired(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-m.ttl)
	res, err := m.coll.DeleteMany(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}
	return int(res.DeletedCount), nil
}

// Close is a no-op; the Mongo client is owned by the database package.
func (m *MongoStore) Close(context.Context) error {
	return nil
}
