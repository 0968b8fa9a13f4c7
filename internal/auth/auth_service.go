package auth

import (
	"context"
	"errors"

	"hrms-backend/internal/employee"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/apperror"
	"hrms-backend/internal/user"

	autherrors "hrms-backend/internal/auth/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// ResolveToken maps a bearer credential to its caller. The credential is
	// the account's storage identifier; this is a documented compatibility
	// limitation, not a session scheme.
	ResolveToken(ctx context.Context, token string) (rbac.Caller, error)

	Me(ctx context.Context, callerID string) (MeResponse, error)

	SeedUser(ctx context.Context, req SeedUserRequest) (SeedUserResponse, error)
}

type service struct {
	userRepo     user.Repository
	employeeRepo employee.Repository
	hasher       user.PasswordHasher
	logger       *zap.Logger
}

func NewService(
	userRepo user.Repository,
	employeeRepo employee.Repository,
	hasher user.PasswordHasher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		hasher:       hasher,
		logger:       l,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	account, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Warn("login failed, unknown email", zap.String("email", req.Email))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if account.HashedPassword == "" || !s.hasher.Verify(account.HashedPassword, req.Password) {
		s.logger.Warn("login failed, password mismatch", zap.String("email", req.Email))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	s.logger.Info("login success",
		zap.String("user_id", account.ID.Hex()),
		zap.String("role", account.Role),
	)

	return LoginResponse{
		Token:    account.ID.Hex(),
		Role:     account.Role,
		FullName: account.FullName,
		UserID:   account.ID.Hex(),
	}, nil
}

func (s *service) ResolveToken(ctx context.Context, token string) (rbac.Caller, error) {
	oid, err := primitive.ObjectIDFromHex(token)
	if err != nil {
		return rbac.Caller{}, apperror.ErrInvalidID
	}

	account, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return rbac.Caller{}, autherrors.ErrInvalidToken
		}
		return rbac.Caller{}, err
	}

	return rbac.Caller{
		ID:       account.ID.Hex(),
		Email:    account.Email,
		FullName: account.FullName,
		Role:     rbac.Role(account.Role),
	}, nil
}

func (s *service) Me(ctx context.Context, callerID string) (MeResponse, error) {
	oid, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return MeResponse{}, apperror.ErrInvalidID
	}

	account, err := s.userRepo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return MeResponse{}, autherrors.ErrUserNotFound
		}
		return MeResponse{}, err
	}

	resp := MeResponse{
		User: UserProfile{
			ID:       account.ID.Hex(),
			Email:    account.Email,
			FullName: account.FullName,
			Role:     account.Role,
			IsActive: account.IsActive,
		},
	}

	emp, err := s.employeeRepo.FindByUserID(ctx, callerID)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return MeResponse{}, err
		}
		// No employee profile: accounts seeded directly have none.
		return resp, nil
	}

	resp.Employee = &EmployeeProfile{
		ID:            emp.ID.Hex(),
		UserID:        emp.UserID,
		JoiningDate:   emp.JoiningDate,
		DepartmentID:  emp.DepartmentID,
		Designation:   emp.Designation,
		ManagerUserID: emp.ManagerUserID,
	}
	return resp, nil
}

// SeedUser creates an account with an explicit role. Idempotent on email so
// seed scripts can be re-run.
func (s *service) SeedUser(ctx context.Context, req SeedUserRequest) (SeedUserResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return SeedUserResponse{Message: "exists", ID: existing.ID.Hex()}, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return SeedUserResponse{}, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return SeedUserResponse{}, err
	}

	id, err := s.userRepo.Create(ctx, &user.Account{
		Email:          req.Email,
		FullName:       req.FullName,
		Role:           req.Role,
		HashedPassword: hashed,
		IsActive:       true,
	})
	if err != nil {
		s.logger.Error("seed user persist failed", zap.Error(err))
		return SeedUserResponse{}, err
	}

	s.logger.Info("seed user created",
		zap.String("user_id", id.Hex()),
		zap.String("role", req.Role),
	)
	return SeedUserResponse{Message: "created", ID: id.Hex()}, nil
}
