package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms-backend/internal/employee"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"

	autherrors "hrms-backend/internal/auth/errors"
	employeeerrors "hrms-backend/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	callers map[string]rbac.Caller
}

func (f *fakeResolver) ResolveToken(ctx context.Context, token string) (rbac.Caller, error) {
	caller, ok := f.callers[token]
	if !ok {
		return rbac.Caller{}, autherrors.ErrInvalidToken
	}
	return caller, nil
}

type fakeService struct {
	createFn func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error)
	listFn   func(ctx context.Context) ([]employee.EmployeeListItem, error)
	updateFn func(ctx context.Context, userID string, req employee.UpdateEmployeeRequest) error
	deleteFn func(ctx context.Context, userID string) error
}

func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) List(ctx context.Context) ([]employee.EmployeeListItem, error) {
	return f.listFn(ctx)
}
func (f *fakeService) Update(ctx context.Context, userID string, req employee.UpdateEmployeeRequest) error {
	return f.updateFn(ctx, userID, req)
}
func (f *fakeService) Delete(ctx context.Context, userID string) error {
	return f.deleteFn(ctx, userID)
}

func setupEmployeeRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	resolver := &fakeResolver{callers: map[string]rbac.Caller{
		"employee-token": {ID: "u1", Role: rbac.RoleEmployee},
		"manager-token":  {ID: "mgr1", Role: rbac.RoleManager},
		"hr-token":       {ID: "hr1", Role: rbac.RoleHR},
	}}

	employee.RegisterRoutes(router.Group(""), employee.NewHandler(svc), middleware.Authenticate(resolver))
	return router
}

func TestHandler_Create(t *testing.T) {
	t.Run("HR can create", func(t *testing.T) {
		svc := &fakeService{createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
			return employee.CreateEmployeeResponse{UserID: "uid1", EmployeeID: "eid1"}, nil
		}}
		router := setupEmployeeRouter(svc)

		body, _ := json.Marshal(employee.CreateEmployeeRequest{
			Email:    "jane@example.com",
			FullName: "Jane Smith",
			Password: "secret123",
		})
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer hr-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "uid1", res["user_id"])
		assert.Equal(t, "eid1", res["employee_id"])
	})

	t.Run("manager is forbidden", func(t *testing.T) {
		router := setupEmployeeRouter(&fakeService{})

		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer manager-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		svc := &fakeService{createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
			return employee.CreateEmployeeResponse{}, employeeerrors.ErrEmailExists
		}}
		router := setupEmployeeRouter(svc)

		body, _ := json.Marshal(employee.CreateEmployeeRequest{
			Email:    "jane@example.com",
			FullName: "Jane Smith",
			Password: "secret123",
		})
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer hr-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "CONFLICT", res["error"].(map[string]any)["code"])
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		router := setupEmployeeRouter(&fakeService{})

		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{"email":"nope","full_name":"X","password":"p"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer hr-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("manager can update", func(t *testing.T) {
		designation := "Lead"
		svc := &fakeService{updateFn: func(ctx context.Context, userID string, req employee.UpdateEmployeeRequest) error {
			assert.Equal(t, "uid1", userID)
			if assert.NotNil(t, req.Designation) {
				assert.Equal(t, designation, *req.Designation)
			}
			return nil
		}}
		router := setupEmployeeRouter(svc)

		body, _ := json.Marshal(employee.UpdateEmployeeRequest{Designation: &designation})
		req := httptest.NewRequest(http.MethodPut, "/employees/uid1", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer manager-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["updated"])
	})

	t.Run("unknown employee is 404", func(t *testing.T) {
		svc := &fakeService{updateFn: func(ctx context.Context, userID string, req employee.UpdateEmployeeRequest) error {
			return employeeerrors.ErrEmployeeNotFound
		}}
		router := setupEmployeeRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/employees/uid1", bytes.NewBufferString(`{"designation":"Lead"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer hr-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("HR can delete", func(t *testing.T) {
		svc := &fakeService{deleteFn: func(ctx context.Context, userID string) error {
			assert.Equal(t, "uid1", userID)
			return nil
		}}
		router := setupEmployeeRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/employees/uid1", nil)
		req.Header.Set("Authorization", "Bearer hr-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, true, res["deleted"])
	})

	t.Run("manager is forbidden", func(t *testing.T) {
		router := setupEmployeeRouter(&fakeService{})

		req := httptest.NewRequest(http.MethodDelete, "/employees/uid1", nil)
		req.Header.Set("Authorization", "Bearer manager-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_List(t *testing.T) {
	fullName := "Jane Smith"
	svc := &fakeService{listFn: func(ctx context.Context) ([]employee.EmployeeListItem, error) {
		return []employee.EmployeeListItem{{UserID: "uid1", FullName: &fullName}}, nil
	}}
	router := setupEmployeeRouter(svc)

	t.Run("manager can list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Authorization", "Bearer manager-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var res []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		if assert.Len(t, res, 1) {
			assert.Equal(t, "uid1", res[0]["user_id"])
			assert.Equal(t, "Jane Smith", res[0]["full_name"])
		}
	})

	t.Run("employee is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/employees", nil)
		req.Header.Set("Authorization", "Bearer employee-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
