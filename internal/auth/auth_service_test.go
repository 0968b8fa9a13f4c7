package auth

import (
	"context"
	"testing"

	"hrms-backend/internal/employee"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/shared/apperror"
	"hrms-backend/internal/user"

	autherrors "hrms-backend/internal/auth/errors"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	createFn      func(ctx context.Context, a *user.Account) (primitive.ObjectID, error)
	findByIDFn    func(ctx context.Context, id primitive.ObjectID) (*user.Account, error)
	findByEmailFn func(ctx context.Context, email string) (*user.Account, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, a *user.Account) (primitive.ObjectID, error) {
	return f.createFn(ctx, a)
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*user.Account, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.Account, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeUserRepo) SetFullName(ctx context.Context, id primitive.ObjectID, fullName string) (bool, error) {
	return false, nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return false, nil
}

type fakeEmployeeRepo struct {
	findByUserIDFn func(ctx context.Context, userID string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}
func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeRepo) FindByUserID(ctx context.Context, userID string) (*employee.Employee, error) {
	return f.findByUserIDFn(ctx, userID)
}
func (f *fakeEmployeeRepo) UpdateByUserID(ctx context.Context, userID string, fields map[string]any) (bool, error) {
	return false, nil
}
func (f *fakeEmployeeRepo) DeleteByUserID(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hasher := user.NewBcryptHasher()
	hashed, err := hasher.Hash("secret123")
	assert.NoError(t, err)

	accountID := primitive.NewObjectID()
	account := &user.Account{
		ID:             accountID,
		Email:          "jane@example.com",
		FullName:       "Jane Smith",
		Role:           "HR",
		HashedPassword: hashed,
		IsActive:       true,
	}

	t.Run("token is the account id", func(t *testing.T) {
		userRepo := &fakeUserRepo{findByEmailFn: func(ctx context.Context, email string) (*user.Account, error) {
			return account, nil
		}}
		svc := NewService(userRepo, &fakeEmployeeRepo{}, hasher)

		resp, err := svc.Login(ctx, LoginRequest{Email: "jane@example.com", Password: "secret123"})
		assert.NoError(t, err)
		assert.Equal(t, accountID.Hex(), resp.Token)
		assert.Equal(t, accountID.Hex(), resp.UserID)
		assert.Equal(t, "HR", resp.Role)
		assert.Equal(t, "Jane Smith", resp.FullName)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := &fakeUserRepo{findByEmailFn: func(ctx context.Context, email string) (*user.Account, error) {
			return account, nil
		}}
		svc := NewService(userRepo, &fakeEmployeeRepo{}, hasher)

		_, err := svc.Login(ctx, LoginRequest{Email: "jane@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := &fakeUserRepo{findByEmailFn: func(ctx context.Context, email string) (*user.Account, error) {
			return nil, mongo.ErrNoDocuments
		}}
		svc := NewService(userRepo, &fakeEmployeeRepo{}, hasher)

		_, err := svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("account without password material", func(t *testing.T) {
		userRepo := &fakeUserRepo{findByEmailFn: func(ctx context.Context, email string) (*user.Account, error) {
			return &user.Account{ID: accountID, Email: email}, nil
		}}
		svc := NewService(userRepo, &fakeEmployeeRepo{}, hasher)

		_, err := svc.Login(ctx, LoginRequest{Email: "jane@example.com", Password: ""})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestService_ResolveToken(t *testing.T) {
	ctx := context.Background()
	accountID := primitive.NewObjectID()

	t.Run("resolves to the caller identity", func(t *testing.T) {
		userRepo := &fakeUserRepo{findByIDFn: func(ctx context.Context, id primitive.ObjectID) (*user.Account, error) {
			assert.Equal(t, accountID, id)
			return &user.Account{ID: id, Email: "jane@example.com", FullName: "Jane Smith", Role: "Manager"}, nil
		}}
		svc := NewService(userRepo, &fakeEmployeeRepo{}, user.NewBcryptHasher())

		caller, err := svc.ResolveToken(ctx, accountID.Hex())
		assert.NoError(t, err)
		assert.Equal(t, accountID.Hex(), caller.ID)
		assert.Equal(t, rbac.RoleManager, caller.Role)
	})

	t.Run("malformed token", func(t *testing.T) {
		svc := NewService(&fakeUserRepo{}, &fakeEmployeeRepo{}, user.NewBcryptHasher())

		_, err := svc.ResolveToken(ctx, "garbage")
		assert.ErrorIs(t, err, apperror.ErrInvalidID)
	})

	t.Run("unknown account", func(t *testing.T) {
		userRepo := &fakeUserRepo{findByIDFn: func(ctx context.Context, id primitive.ObjectID) (*user.Account, error) {
			return nil, mongo.ErrNoDocuments
		}}
		svc := NewService(userRepo, &fakeEmployeeRepo{}, user.NewBcryptHasher())

		_, err := svc.ResolveToken(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}

func TestService_Me(t *testing.T) {
	ctx := context.Background()
	accountID := primitive.NewObjectID()
	account := &user.Account{
		ID:             accountID,
		Email:          "jane@example.com",
		FullName:       "Jane Smith",
		Role:           "Employee",
		HashedPassword: "$2a$10$something",
		IsActive:       true,
	}

	t.Run("with employee profile", func(t *testing.T) {
		empID := primitive.NewObjectID()
		userRepo := &fakeUserRepo{findByIDFn: func(ctx context.Context, id primitive.ObjectID) (*user.Account, error) {
			return account, nil
		}}
		employeeRepo := &fakeEmployeeRepo{findByUserIDFn: func(ctx context.Context, userID string) (*employee.Employee, error) {
			return &employee.Employee{ID: empID, UserID: userID}, nil
		}}
		svc := NewService(userRepo, employeeRepo, user.NewBcryptHasher())

		resp, err := svc.Me(ctx, accountID.Hex())
		assert.NoError(t, err)
		assert.Equal(t, accountID.Hex(), resp.User.ID)
		if assert.NotNil(t, resp.Employee) {
			assert.Equal(t, empID.Hex(), resp.Employee.ID)
		}
	})

	t.Run("without employee profile", func(t *testing.T) {
		userRepo := &fakeUserRepo{findByIDFn: func(ctx context.Context, id primitive.ObjectID) (*user.Account, error) {
			return account, nil
		}}
		employeeRepo := &fakeEmployeeRepo{findByUserIDFn: func(ctx context.Context, userID string) (*employee.Employee, error) {
			return nil, mongo.ErrNoDocuments
		}}
		svc := NewService(userRepo, employeeRepo, user.NewBcryptHasher())

		resp, err := svc.Me(ctx, accountID.Hex())
		assert.NoError(t, err)
		assert.Nil(t, resp.Employee)
	})

	t.Run("unknown caller", func(t *testing.T) {
		userRepo := &fakeUserRepo{findByIDFn: func(ctx context.Context, id primitive.ObjectID) (*user.Account, error) {
			return nil, mongo.ErrNoDocuments
		}}
		svc := NewService(userRepo, &fakeEmployeeRepo{}, user.NewBcryptHasher())

		_, err := svc.Me(ctx, accountID.Hex())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}

func TestService_SeedUser(t *testing.T) {
	ctx := context.Background()
	existingID := primitive.NewObjectID()

	t.Run("existing email is reported, not duplicated", func(t *testing.T) {
		userRepo := &fakeUserRepo{
			findByEmailFn: func(ctx context.Context, email string) (*user.Account, error) {
				return &user.Account{ID: existingID, Email: email}, nil
			},
			createFn: func(ctx context.Context, a *user.Account) (primitive.ObjectID, error) {
				t.Fatal("create must not be called for an existing email")
				return primitive.NilObjectID, nil
			},
		}
		svc := NewService(userRepo, &fakeEmployeeRepo{}, user.NewBcryptHasher())

		resp, err := svc.SeedUser(ctx, SeedUserRequest{Email: "hr@example.com", FullName: "Pat Kim", Password: "pw", Role: "HR"})
		assert.NoError(t, err)
		assert.Equal(t, "exists", resp.Message)
		assert.Equal(t, existingID.Hex(), resp.ID)
	})

	t.Run("new email is created with the given role", func(t *testing.T) {
		var saved user.Account
		newID := primitive.NewObjectID()
		userRepo := &fakeUserRepo{
			findByEmailFn: func(ctx context.Context, email string) (*user.Account, error) {
				return nil, mongo.ErrNoDocuments
			},
			createFn: func(ctx context.Context, a *user.Account) (primitive.ObjectID, error) {
				saved = *a
				return newID, nil
			},
		}
		svc := NewService(userRepo, &fakeEmployeeRepo{}, user.NewBcryptHasher())

		resp, err := svc.SeedUser(ctx, SeedUserRequest{Email: "mgr@example.com", FullName: "Max Lee", Password: "pw", Role: "Manager"})
		assert.NoError(t, err)
		assert.Equal(t, "created", resp.Message)
		assert.Equal(t, newID.Hex(), resp.ID)
		assert.Equal(t, "Manager", saved.Role)
		assert.True(t, saved.IsActive)
		assert.NotEmpty(t, saved.HashedPassword)
		assert.NotEqual(t, "pw", saved.HashedPassword)
	})
}
