package messageRepo

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

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo creates a new instance of MessageRepository using MongoDB.
func NewMongoMessageRepo() MessageRepository {
	coll := database.Collection("messages")
	repo := &MongoMessageRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMessageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "sender_id", Value: 1},
			{Key: "receiver_id", Value: 1},
			{Key: "created_at", Value: 1},
		}},
		{Keys: bson.D{
			{Key: "receiver_id", Value: 1},
			{Key: "created_at", Value: 1},
		}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores a new message document.
func (r *MongoMessageRepo) Insert(msg *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// GetByID retrieves a message by its id.
func (r *MongoMessageRepo) GetByID(id string) (*models.Message, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var msg models.Message
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&msg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch message %s: %w", id, err)
	}
	return &msg, nil
}

// Conversation returns messages between the two accounts, oldest first,
// filtered on the server side.
func (r *MongoMessageRepo) Conversation(userA, userB string, limit int64) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"sender_id": userA, "receiver_id": userB},
			{"sender_id": userB, "receiver_id": userA},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversation: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	for cursor.Next(ctx) {
		var m models.Message
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// CounterpartIDs returns the distinct account ids that appear on the other
// side of any message with this user.
func (r *MongoMessageRepo) CounterpartIDs(userID string) ([]string, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	sent, err := r.coll.Distinct(ctx, "receiver_id", bson.M{"sender_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list sent counterparts: %w", err)
	}
	received, err := r.coll.Distinct(ctx, "sender_id", bson.M{"receiver_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list received counterparts: %w", err)
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, raw := range append(sent, received...) {
		id, ok := raw.(string)
		if !ok || id == userID {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// Delete removes a message document by its id.
func (r *MongoMessageRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete message %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("message %s not found", id)
	}
	return nil
}
