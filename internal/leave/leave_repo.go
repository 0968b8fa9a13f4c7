package leave

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Filter narrows a listing; zero-value fields are not applied.
type Filter struct {
	EmployeeUserID string
	ManagerUserID  string
	Status         string
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, lr *LeaveRequest) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*LeaveRequest, error)
	Find(ctx context.Context, f Filter) ([]LeaveRequest, error)
	UpdateDecision(ctx context.Context, id primitive.ObjectID, status string, comment *string, updatedAt time.Time) (bool, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) Repository {
	return &repository{col: db.Collection(Collection)}
}

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, lr)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := res.InsertedID.(primitive.ObjectID)
	lr.ID = id
	return id, nil
}

func (r *repository) FindByID(ctx context.Context, id primitive.ObjectID) (*LeaveRequest, error) {
	var lr LeaveRequest
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&lr); err != nil {
		return nil, err
	}
	return &lr, nil
}

func (r *repository) Find(ctx context.Context, f Filter) ([]LeaveRequest, error) {
	filter := bson.M{}
	if f.EmployeeUserID != "" {
		filter["employee_user_id"] = f.EmployeeUserID
	}
	if f.ManagerUserID != "" {
		filter["manager_user_id"] = f.ManagerUserID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []LeaveRequest
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateDecision applies the status, comment and timestamp in one write.
func (r *repository) UpdateDecision(ctx context.Context, id primitive.ObjectID, status string, comment *string, updatedAt time.Time) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":          status,
			"manager_comment": comment,
			"updated_at":      updatedAt,
		},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
