package dashboard_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hris-dashboard/internal/dashboard"
	"hris-dashboard/internal/document"
	"hris-dashboard/internal/leave"
	"hris-dashboard/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(deps *aggregatorDeps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	dashboard.RegisterRoutes(r.Group("/api/v1"), dashboard.NewHandler(deps.aggregator))
	return r
}

func TestDashboardHandler_Summary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupAggregator(t)
		deps.employees.EXPECT().GetAll(gomock.Any()).Return(fiveEmployees(), nil)
		deps.leaves.EXPECT().GetAll(gomock.Any()).Return([]leave.LeaveRequest{{Status: "pending"}}, nil)
		deps.documents.EXPECT().GetAll(gomock.Any()).Return([]document.Document{{ID: "D1"}}, nil)

		w := httptest.NewRecorder()
		newRouter(deps).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Ok   bool              `json:"ok"`
			Data dashboard.Summary `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
		assert.Equal(t, 5, env.Data.Stats.TotalEmployees)
		assert.Equal(t, 1, env.Data.Stats.PendingLeaves)
	})

	t.Run("source failure is a generic 500", func(t *testing.T) {
		deps := setupAggregator(t)
		deps.employees.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("secret detail")).AnyTimes()
		deps.leaves.EXPECT().GetAll(gomock.Any()).Return(nil, nil).AnyTimes()
		deps.documents.EXPECT().GetAll(gomock.Any()).Return(nil, nil).AnyTimes()

		w := httptest.NewRecorder()
		newRouter(deps).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInternalError)
		assert.NotContains(t, w.Body.String(), "secret detail")
	})
}
