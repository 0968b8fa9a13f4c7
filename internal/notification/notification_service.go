package notification

import (
	"context"
	"time"

	"hrms-backend/internal/rbac"

	"go.uber.org/zap"
)

// listCap bounds GET /notifications; there is no pagination beyond it.
const listCap = 50

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	// NotifyUser appends a notification directed at one account.
	NotifyUser(ctx context.Context, userID, title, message, entityType, entityID string) error

	// NotifyRole appends a broadcast to every holder of a role.
	NotifyRole(ctx context.Context, role rbac.Role, title, message, entityType, entityID string) error

	ListForCaller(ctx context.Context, caller rbac.Caller) ([]NotificationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) NotifyUser(ctx context.Context, userID, title, message, entityType, entityID string) error {
	n := &Notification{
		UserID:     &userID,
		Title:      title,
		Message:    message,
		EntityType: optional(entityType),
		EntityID:   optional(entityID),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, n); err != nil {
		s.logger.Error("append direct notification failed",
			zap.String("recipient", userID),
			zap.String("title", title),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) NotifyRole(ctx context.Context, role rbac.Role, title, message, entityType, entityID string) error {
	audience := string(role)
	n := &Notification{
		Audience:   &audience,
		Title:      title,
		Message:    message,
		EntityType: optional(entityType),
		EntityID:   optional(entityID),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, n); err != nil {
		s.logger.Error("append broadcast notification failed",
			zap.String("audience", audience),
			zap.String("title", title),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) ListForCaller(ctx context.Context, caller rbac.Caller) ([]NotificationResponse, error) {
	items, err := s.repo.FindForRecipient(ctx, caller.ID, string(caller.Role), listCap)
	if err != nil {
		s.logger.Error("list notifications failed",
			zap.String("user_id", caller.ID),
			zap.Error(err),
		)
		return nil, err
	}

	resp := make([]NotificationResponse, len(items))
	for i, n := range items {
		resp[i] = NotificationResponse{
			ID:         n.ID.Hex(),
			UserID:     n.UserID,
			Audience:   n.Audience,
			Title:      n.Title,
			Message:    n.Message,
			EntityType: n.EntityType,
			EntityID:   n.EntityID,
			IsRead:     n.IsRead,
			CreatedAt:  n.CreatedAt,
		}
	}
	return resp, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
