package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hris-dashboard/internal/employee"
	employeeerrors "hris-dashboard/internal/employee/errors"
	"hris-dashboard/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeService struct {
	CreateFn  func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	GetAllFn  func(ctx context.Context) ([]employee.Employee, error)
	GetByIDFn func(ctx context.Context, id string) (employee.Employee, error)
	UpdateFn  func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error map[string]any  `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
				assert.Equal(t, "John Doe", req.Name)
				assert.Equal(t, []string{"Go", "SQL"}, req.Skills)
				return employee.Employee{ID: "emp-1", Name: req.Name, Email: req.Email}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"John Doe","email":"john@example.com","skills":["Go","SQL"]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "John Doe")
		assert.Contains(t, w.Body.String(), "emp-1")
	})

	t.Run("malformed body", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
				return employee.Employee{}, errors.New("store exploded")
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/employees", strings.NewReader(`{"name":"HR"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), apperror.ErrInternal.Message)
		assert.NotContains(t, w.Body.String(), "store exploded")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	empls := []employee.Employee{
		{ID: "1", Name: "Sarah Johnson", Role: "Engineering Manager", Department: "Engineering"},
		{ID: "2", Name: "Mike Chen", Role: "Designer", Department: "Design"},
		{ID: "3", Name: "Ana Ruiz", Role: "Backend Engineer", Department: "Engineering"},
	}
	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context) ([]employee.Employee, error) {
			return empls, nil
		},
	}

	t.Run("filters by search and department", func(t *testing.T) {
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees?q=engineer&department=Engineering", nil)

		h.GetAll(c)

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		var got []employee.Employee
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
		assert.EqualValues(t, 2, env.Meta["total"])
	})

	t.Run("paginates", func(t *testing.T) {
		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees?page=2&page_size=2", nil)

		h.GetAll(c)

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		var got []employee.Employee
		require.NoError(t, json.Unmarshal(env.Data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "3", got[0].ID)
		assert.EqualValues(t, 2, env.Meta["totalPages"])
	})

	t.Run("service error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.Employee, error) {
				return nil, context.DeadlineExceeded
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
				assert.Equal(t, "7", id)
				return employee.Employee{ID: id, Name: "Lisa Park"}, nil
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/7", nil)
		c.Params = gin.Params{{Key: "id", Value: "7"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Lisa Park")
	})

	t.Run("not found", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
				return employee.Employee{}, employeeerrors.ErrEmployeeNotFound
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/x", nil)
		c.Params = gin.Params{{Key: "id", Value: "x"}}

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeNotFound)
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	t.Run("only sent fields reach the service", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			UpdateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
				require.NotNil(t, req.Role)
				assert.Equal(t, "Staff Engineer", *req.Role)
				assert.Nil(t, req.Name)
				return employee.Employee{ID: id, Role: *req.Role}, nil
			},
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/employees/1", strings.NewReader(`{"role":"Staff Engineer"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "1"}}

		h.Update(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Staff Engineer")
	})
}

func TestEmployeeHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) error { return nil },
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/employees/1", nil)
		c.Params = gin.Params{{Key: "id", Value: "1"}}

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":true`)
	})

	t.Run("not found", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{
			DeleteFn: func(ctx context.Context, id string) error { return employeeerrors.ErrEmployeeNotFound },
		})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/v1/employees/1", nil)
		c.Params = gin.Params{{Key: "id", Value: "1"}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
