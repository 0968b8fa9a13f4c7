package notification

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Append(ctx context.Context, n *Notification) error
	FindForRecipient(ctx context.Context, userID, role string, limit int64) ([]Notification, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection(Collection)}
}

func (r *repository) Append(ctx context.Context, n *Notification) error {
	res, err := r.col.InsertOne(ctx, n)
	if err != nil {
		return err
	}
	n.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindForRecipient returns the union of direct messages and role broadcasts,
// newest first, capped at limit.
func (r *repository) FindForRecipient(ctx context.Context, userID, role string, limit int64) ([]Notification, error) {
	or := bson.A{bson.M{"user_id": userID}}
	if role != "" {
		or = append(or, bson.M{"audience": role})
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{"$or": or}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []Notification
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
