package otpRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/SachinKokare07/partner-app/database"
	"github.com/SachinKokare07/partner-app/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Consumed and expired records stay queryable for a day before the TTL
// monitor collects them.
const auditRetention = 24 * time.Hour

// MongoOTPRepo implements OTPRepository using MongoDB.
type MongoOTPRepo struct {
	coll *mongo.Collection
}

// NewMongoOTPRepo creates a new instance of OTPRepository using MongoDB.
func NewMongoOTPRepo() OTPRepository {
	coll := database.Collection("otpCodes")
	repo := &MongoOTPRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOTPRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(auditRetention / time.Second)),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Put upserts the record for userID, resetting the expiry window and the
// verified flag. An overwrite invalidates the previous code.
func (r *MongoOTPRepo) Put(userID, code, email string, ttl time.Duration) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	record := models.OTPRecord{
		UserID:    userID,
		Code:      code,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		Verified:  false,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"user_id": userID}, record, opts); err != nil {
		return fmt.Errorf("failed to store OTP for %s: %w", userID, err)
	}
	return nil
}

// Get retrieves the record for userID.
func (r *MongoOTPRepo) Get(userID string) (*models.OTPRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.OTPRecord
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch OTP for %s: %w", userID, err)
	}
	return &record, nil
}

// MarkVerified flags the record as consumed. Re-marking is a no-op.
func (r *MongoOTPRepo) MarkVerified(userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"verified": true}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("failed to mark OTP verified for %s: %w", userID, err)
	}
	return nil
}
