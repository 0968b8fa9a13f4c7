package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hrms-backend/internal/events"
	"hrms-backend/internal/messaging/kafka"
	"hrms-backend/internal/shared/contextutil"
	"hrms-backend/internal/user"

	employeeerrors "hrms-backend/internal/employee/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeListItem, error)
	Update(ctx context.Context, userID string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, userID string) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
	hasher   user.PasswordHasher
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	repo Repository,
	userRepo user.Repository,
	hasher user.PasswordHasher,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:     repo,
		userRepo: userRepo,
		hasher:   hasher,
		outbox:   outbox,
		logger:   l,
	}
}

// Create provisions the UserAccount and the Employee profile as a pair. The
// two inserts are independent document writes with no rollback: an account
// without a profile can remain if the second insert fails.
func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	// Email uniqueness is a pre-check, not a store constraint.
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		s.logger.Warn("create employee duplicate email", zap.String("email", req.Email))
		return CreateEmployeeResponse{}, employeeerrors.ErrEmailExists
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		s.logger.Error("create employee email lookup failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	account := &user.Account{
		Email:          req.Email,
		FullName:       req.FullName,
		Role:           "Employee",
		HashedPassword: hashed,
		IsActive:       true,
	}
	userID, err := s.userRepo.Create(ctx, account)
	if err != nil {
		s.logger.Error("create employee account persist failed", zap.Error(err))
		return CreateEmployeeResponse{}, err
	}

	emp := &Employee{
		UserID:        userID.Hex(),
		JoiningDate:   req.JoiningDate,
		DepartmentID:  req.DepartmentID,
		Designation:   req.Designation,
		ManagerUserID: req.ManagerUserID,
	}
	empID, err := s.repo.Create(ctx, emp)
	if err != nil {
		s.logger.Error("create employee profile persist failed",
			zap.String("user_id", userID.Hex()),
			zap.Error(err),
		)
		return CreateEmployeeResponse{}, err
	}

	s.queueCreatedEvent(ctx, rid, userID.Hex(), empID.Hex())

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("user_id", userID.Hex()),
		zap.String("employee_id", empID.Hex()),
	)

	return CreateEmployeeResponse{UserID: userID.Hex(), EmployeeID: empID.Hex()}, nil
}

// queueCreatedEvent appends the lifecycle event to the outbox. Best effort:
// a failure is logged and never fails the creation itself.
func (s *service) queueCreatedEvent(ctx context.Context, rid, userID, employeeID string) {
	if s.outbox == nil {
		return
	}

	event := events.EmployeeCreatedEvent{
		EventType:  "employee_created",
		RequestID:  rid,
		UserID:     userID,
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal employee_created event failed", zap.Error(err))
		return
	}

	if err := s.outbox.Append(ctx, &kafka.OutboxEvent{
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   employeeID,
		EventType:     event.EventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue employee_created event failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
	}
}

func (s *service) List(ctx context.Context) ([]EmployeeListItem, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}

	items := make([]EmployeeListItem, 0, len(emps))
	for _, emp := range emps {
		item := EmployeeListItem{
			UserID:        emp.UserID,
			DepartmentID:  emp.DepartmentID,
			Designation:   emp.Designation,
			ManagerUserID: emp.ManagerUserID,
		}

		// Join the backing account; a dangling reference leaves the joined
		// fields null rather than failing the listing.
		if oid, err := primitive.ObjectIDFromHex(emp.UserID); err == nil {
			if account, err := s.userRepo.FindByID(ctx, oid); err == nil {
				item.FullName = &account.FullName
				item.Email = &account.Email
			}
		}

		items = append(items, item)
	}

	return items, nil
}

// Update applies a partial update: full_name goes to the UserAccount, every
// other provided field to the Employee profile. Absent fields are untouched.
func (s *service) Update(ctx context.Context, userID string, req UpdateEmployeeRequest) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return employeeerrors.ErrInvalidUserID
	}

	attempted := false
	matched := false

	if req.FullName != nil {
		attempted = true
		ok, err := s.userRepo.SetFullName(ctx, oid, *req.FullName)
		if err != nil {
			s.logger.Error("update employee account failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			return err
		}
		matched = matched || ok
	}

	fields := map[string]any{}
	if req.DepartmentID != nil {
		fields["department_id"] = *req.DepartmentID
	}
	if req.Designation != nil {
		fields["designation"] = *req.Designation
	}
	if req.ManagerUserID != nil {
		fields["manager_user_id"] = *req.ManagerUserID
	}

	if len(fields) > 0 {
		attempted = true
		ok, err := s.repo.UpdateByUserID(ctx, userID, fields)
		if err != nil {
			s.logger.Error("update employee profile failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			return err
		}
		matched = matched || ok
	}

	if attempted && !matched {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("update employee success", zap.String("user_id", userID))
	return nil
}

// Delete removes the Employee profile and its UserAccount as a unit. The two
// deletes are sequential and non-transactional: if the account delete fails
// after the profile delete succeeded, an orphaned account remains.
func (s *service) Delete(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return employeeerrors.ErrInvalidUserID
	}

	empDeleted, err := s.repo.DeleteByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("delete employee profile failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return err
	}

	userDeleted, err := s.userRepo.Delete(ctx, oid)
	if err != nil {
		s.logger.Error("delete employee account failed, profile already removed",
			zap.String("user_id", userID),
			zap.Bool("profile_deleted", empDeleted),
			zap.Error(err),
		)
		return err
	}

	if !empDeleted && !userDeleted {
		return employeeerrors.ErrEmployeeNotFound
	}

	s.logger.Info("delete employee success", zap.String("user_id", userID))
	return nil
}
