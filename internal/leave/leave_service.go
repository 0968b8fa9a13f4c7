package leave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hrms-backend/internal/department"
	"hrms-backend/internal/employee"
	"hrms-backend/internal/events"
	"hrms-backend/internal/messaging/kafka"
	"hrms-backend/internal/notification"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/contextutil"

	leaveerrors "hrms-backend/internal/leave/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, caller rbac.Caller, req CreateLeaveRequest) (CreateLeaveResponse, error)
	Act(ctx context.Context, caller rbac.Caller, leaveID string, req LeaveActionRequest) error
	List(ctx context.Context, caller rbac.Caller, status string) ([]LeaveResponse, error)
}

type service struct {
	repo           Repository
	employeeRepo   employee.Repository
	departmentRepo department.Repository
	notifier       notification.Service
	outbox         kafka.OutboxRepository
	logger         *zap.Logger
}

func NewService(
	repo Repository,
	employeeRepo employee.Repository,
	departmentRepo department.Repository,
	notifier notification.Service,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		repo:           repo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		notifier:       notifier,
		outbox:         outbox,
		logger:         l,
	}
}

func (s *service) Submit(ctx context.Context, caller rbac.Caller, req CreateLeaveRequest) (CreateLeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("employee_user_id", caller.ID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	leaveType := req.Type
	if leaveType == "" {
		leaveType = TypeAnnual
	}

	managerUserID, err := s.resolveManager(ctx, caller.ID)
	if err != nil {
		s.logger.Error("resolve approving manager failed",
			zap.String("employee_user_id", caller.ID),
			zap.Error(err),
		)
		return CreateLeaveResponse{}, err
	}

	lr := &LeaveRequest{
		EmployeeUserID: caller.ID,
		ManagerUserID:  managerUserID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Type:           leaveType,
		Reason:         req.Reason,
		Status:         StatusPending,
	}

	id, err := s.repo.Create(ctx, lr)
	if err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return CreateLeaveResponse{}, err
	}

	// Fan-out is best effort: a failed append is logged and does not fail
	// the submission.
	s.notifySubmission(ctx, caller, id.Hex(), managerUserID)
	s.queueSubmittedEvent(ctx, rid, id.Hex(), caller.ID, managerUserID)

	s.logger.Info("submit leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", id.Hex()),
		zap.Bool("manager_resolved", managerUserID != nil),
	)

	return CreateLeaveResponse{ID: id.Hex()}, nil
}

// resolveManager computes the approving manager: the submitter's direct
// manager when set, else the manager of the submitter's department, else
// none.
func (s *service) resolveManager(ctx context.Context, employeeUserID string) (*string, error) {
	emp, err := s.employeeRepo.FindByUserID(ctx, employeeUserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// No profile (e.g. seeded HR account): no manager to resolve.
			return nil, nil
		}
		return nil, err
	}

	if emp.ManagerUserID != nil && *emp.ManagerUserID != "" {
		return emp.ManagerUserID, nil
	}

	if emp.DepartmentID == nil || *emp.DepartmentID == "" {
		return nil, nil
	}

	depID, err := primitive.ObjectIDFromHex(*emp.DepartmentID)
	if err != nil {
		// A malformed department reference degrades to "no manager".
		return nil, nil
	}

	dep, err := s.departmentRepo.FindByID(ctx, depID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	if dep.ManagerID == nil || *dep.ManagerID == "" {
		return nil, nil
	}
	return dep.ManagerID, nil
}

func (s *service) notifySubmission(ctx context.Context, caller rbac.Caller, leaveID string, managerUserID *string) {
	_ = s.notifier.NotifyRole(ctx, rbac.RoleHR,
		"New Leave Request",
		fmt.Sprintf("%s submitted a leave.", caller.FullName),
		"LeaveRequest", leaveID,
	)

	if managerUserID != nil {
		_ = s.notifier.NotifyUser(ctx, *managerUserID,
			"Approval Needed",
			"Leave request pending approval.",
			"LeaveRequest", leaveID,
		)
	}
}

// Act applies an Approve/Reject decision. There is deliberately no guard on
// the current status: acting on an already-decided request overwrites it and
// the last write wins. Any Manager or HR caller may act, not only the
// resolved approver.
func (s *service) Act(ctx context.Context, caller rbac.Caller, leaveID string, req LeaveActionRequest) error {
	rid := contextutil.GetRequestID(ctx)

	oid, err := primitive.ObjectIDFromHex(leaveID)
	if err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}

	lr, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}

	var status string
	switch req.Action {
	case "Approve":
		status = StatusApproved
	case "Reject":
		status = StatusRejected
	default:
		return leaveerrors.ErrInvalidAction
	}

	matched, err := s.repo.UpdateDecision(ctx, oid, status, req.Comment, time.Now().UTC())
	if err != nil {
		s.logger.Error("leave decision persist failed",
			zap.String("leave_id", leaveID),
			zap.String("status", status),
			zap.Error(err),
		)
		return err
	}
	if !matched {
		return leaveerrors.ErrLeaveNotFound
	}

	s.notifyDecision(ctx, lr, leaveID, status, req.Comment)
	s.queueDecidedEvent(ctx, rid, leaveID, status, caller.ID)

	s.logger.Info("leave decision applied",
		zap.String("request_id", rid),
		zap.String("leave_id", leaveID),
		zap.String("status", status),
		zap.String("acted_by", caller.ID),
	)
	return nil
}

func (s *service) notifyDecision(ctx context.Context, lr *LeaveRequest, leaveID, status string, comment *string) {
	message := ""
	if comment != nil {
		message = *comment
	}
	_ = s.notifier.NotifyUser(ctx, lr.EmployeeUserID,
		"Leave "+status,
		message,
		"LeaveRequest", leaveID,
	)

	broadcast := "A leave was approved."
	if status == StatusRejected {
		broadcast = "A leave was rejected."
	}
	_ = s.notifier.NotifyRole(ctx, rbac.RoleHR,
		"Leave "+status,
		broadcast,
		"LeaveRequest", leaveID,
	)
}

// List scopes results by role: employees see their own submissions, managers
// the requests they were resolved to approve, HR everything.
func (s *service) List(ctx context.Context, caller rbac.Caller, status string) ([]LeaveResponse, error) {
	f := Filter{Status: status}
	switch caller.Role {
	case rbac.RoleEmployee:
		f.EmployeeUserID = caller.ID
	case rbac.RoleManager:
		f.ManagerUserID = caller.ID
	}

	items, err := s.repo.Find(ctx, f)
	if err != nil {
		s.logger.Error("list leaves failed",
			zap.String("user_id", caller.ID),
			zap.Error(err),
		)
		return nil, err
	}

	return mapToListResponse(items), nil
}

func (s *service) queueSubmittedEvent(ctx context.Context, rid, leaveID, employeeUserID string, managerUserID *string) {
	if s.outbox == nil {
		return
	}

	event := events.LeaveSubmittedEvent{
		EventType:      "leave_submitted",
		RequestID:      rid,
		LeaveID:        leaveID,
		EmployeeUserID: employeeUserID,
		ManagerUserID:  managerUserID,
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal leave_submitted event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Append(ctx, &kafka.OutboxEvent{
		RequestID:     rid,
		AggregateType: "leave",
		AggregateID:   leaveID,
		EventType:     event.EventType,
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue leave_submitted event failed",
			zap.String("leave_id", leaveID),
			zap.Error(err),
		)
	}
}

func (s *service) queueDecidedEvent(ctx context.Context, rid, leaveID, status, actedBy string) {
	if s.outbox == nil {
		return
	}

	event := events.LeaveDecidedEvent{
		EventType:  "leave_decided",
		RequestID:  rid,
		LeaveID:    leaveID,
		Status:     status,
		ActedBy:    actedBy,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal leave_decided event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Append(ctx, &kafka.OutboxEvent{
		RequestID:     rid,
		AggregateType: "leave",
		AggregateID:   leaveID,
		EventType:     event.EventType,
		Topic:         events.LeaveLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue leave_decided event failed",
			zap.String("leave_id", leaveID),
			zap.Error(err),
		)
	}
}

func mapToResponse(lr LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:             lr.ID.Hex(),
		EmployeeUserID: lr.EmployeeUserID,
		ManagerUserID:  lr.ManagerUserID,
		StartDate:      lr.StartDate,
		EndDate:        lr.EndDate,
		Type:           lr.Type,
		Reason:         lr.Reason,
		Status:         lr.Status,
		ManagerComment: lr.ManagerComment,
		UpdatedAt:      lr.UpdatedAt,
	}
}

func mapToListResponse(items []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(items))
	for i, lr := range items {
		resp[i] = mapToResponse(lr)
	}
	return resp
}
