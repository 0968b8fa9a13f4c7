package department

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, d *Department) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]Department, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Department, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection(Collection)}
}

func (r *repository) Create(ctx context.Context, d *Department) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, d)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := res.InsertedID.(primitive.ObjectID)
	d.ID = id
	return id, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Department, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []Department
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Department, error) {
	var d Department
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}
