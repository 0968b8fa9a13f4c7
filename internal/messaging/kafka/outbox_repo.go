package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	OutboxCollection = "outbox_events"

	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"

	// maxRetryBackoffSteps caps the linear backoff growth.
	maxRetryBackoffSteps = 10
	retryBackoffStep     = 15 * time.Second
)

// OutboxEvent is a domain event staged for Kafka delivery. Events are
// appended by services on their primary write path and relayed by the
// worker, so a broker outage never fails an HTTP request.
type OutboxEvent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	RequestID     string             `bson:"request_id,omitempty"`
	AggregateType string             `bson:"aggregate_type"`
	AggregateID   string             `bson:"aggregate_id"`
	EventType     string             `bson:"event_type"`
	Topic         string             `bson:"topic"`
	Payload       []byte             `bson:"payload"`
	Status        string             `bson:"status"`
	RetryCount    int                `bson:"retry_count"`
	NextRetryAt   *time.Time         `bson:"next_retry_at"`
	ErrorMessage  string             `bson:"error_message,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	ProcessedAt   *time.Time         `bson:"processed_at"`
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	Append(ctx context.Context, event *OutboxEvent) error
	ListPending(ctx context.Context, limit int64) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id primitive.ObjectID) error
	MarkFailed(ctx context.Context, id primitive.ObjectID, reason string) error
}

type outboxRepository struct {
	col *mongo.Collection
}

func NewOutboxRepository(db *mongo.Database) OutboxRepository {
	return &outboxRepository{col: db.Collection(OutboxCollection)}
}

func (r *outboxRepository) Append(ctx context.Context, event *OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	event.CreatedAt = time.Now().UTC()

	res, err := r.col.InsertOne(ctx, event)
	if err != nil {
		return err
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int64) ([]OutboxEvent, error) {
	now := time.Now().UTC()
	filter := bson.M{
		"status": bson.M{"$in": bson.A{OutboxStatusPending, OutboxStatusFailed}},
		"$or": bson.A{
			bson.M{"next_retry_at": nil},
			bson.M{"next_retry_at": bson.M{"$lte": now}},
		},
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []OutboxEvent
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":        OutboxStatusSent,
			"processed_at":  now,
			"error_message": "",
		},
	})
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id primitive.ObjectID, reason string) error {
	var current OutboxEvent
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&current); err != nil {
		return err
	}

	steps := current.RetryCount + 1
	if steps > maxRetryBackoffSteps {
		steps = maxRetryBackoffSteps
	}
	nextRetry := time.Now().UTC().Add(time.Duration(steps) * retryBackoffStep)

	if len(reason) > 500 {
		reason = reason[:500]
	}

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":        OutboxStatusFailed,
			"error_message": reason,
			"next_retry_at": nextRetry,
		},
		"$inc": bson.M{"retry_count": 1},
	})
	return err
}

func ValidateOutboxEvent(event *OutboxEvent) error {
	if event == nil {
		return errors.New("outbox event is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
