package department

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const listCacheKey = "departments:list"

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (CreateDepartmentResponse, error)
	List(ctx context.Context) ([]DepartmentResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (CreateDepartmentResponse, error) {
	s.logger.Debug("create department requested", zap.String("name", req.Name))

	d := &Department{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	}

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return CreateDepartmentResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, listCacheKey).Err(); err != nil {
			s.logger.Error("invalidate department list cache failed",
				zap.String("key", listCacheKey),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("create department success", zap.String("department_id", id.Hex()))
	return CreateDepartmentResponse{ID: id.Hex()}, nil
}

func (s *service) List(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, listCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// Singleflight collapses concurrent cold-cache reads into one query.
	// The shared load runs on a detached context: the result is delivered
	// to every collapsed caller, so the leader's cancellation must not
	// fail the followers.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(listCacheKey, func() (interface{}, error) {
		items, err := s.repo.FindAll(loadCtx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(items)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(loadCtx, listCacheKey, jsonData, 1*time.Hour)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func mapToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		ManagerID:   d.ManagerID,
	}
}

func mapToListResponse(items []Department) []DepartmentResponse {
	resp := make([]DepartmentResponse, len(items))
	for i, d := range items {
		resp[i] = mapToResponse(d)
	}
	return resp
}
