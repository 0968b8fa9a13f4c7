package employee

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, e *Employee) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]Employee, error)
	FindByUserID(ctx context.Context, userID string) (*Employee, error)
	UpdateByUserID(ctx context.Context, userID string, fields map[string]any) (bool, error)
	DeleteByUserID(ctx context.Context, userID string) (bool, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection(Collection)}
}

func (r *repository) Create(ctx context.Context, e *Employee) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, e)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := res.InsertedID.(primitive.ObjectID)
	e.ID = id
	return id, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []Employee
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*Employee, error) {
	var e Employee
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) UpdateByUserID(ctx context.Context, userID string, fields map[string]any) (bool, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *repository) DeleteByUserID(ctx context.Context, userID string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
