package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hris-dashboard/internal/leave"
	leaveerrors "hris-dashboard/internal/leave/errors"
	leaveMock "hris-dashboard/internal/leave/mock"
	"hris-dashboard/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(svc leave.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	leave.RegisterRoutes(r.Group("/api/v1"), leave.NewHandler(svc))
	return r
}

func TestLeaveHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("filters by status", func(t *testing.T) {
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().GetAll(gomock.Any()).Return(seedLeaves(), nil)

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leave-requests?status=pending", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Data []leave.LeaveRequest `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Len(t, env.Data, 2)
		assert.Equal(t, "L1", env.Data[0].ID)
		assert.Equal(t, "L3", env.Data[1].ID)
	})

	t.Run("status is case-insensitive", func(t *testing.T) {
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().GetAll(gomock.Any()).Return(seedLeaves(), nil)

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leave-requests?status=Pending", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Data []leave.LeaveRequest `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		require.Len(t, env.Data, 2)
		assert.Equal(t, "L1", env.Data[0].ID)
	})

	t.Run("unknown status rejected before service call", func(t *testing.T) {
		svc := leaveMock.NewMockService(ctrl)

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leave-requests?status=archived", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeInvalidInput)
	})
}

func TestLeaveHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	svc.EXPECT().GetAll(gomock.Any()).Return(seedLeaves(), nil)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leave-requests/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data leave.Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, leave.Stats{Total: 3, Pending: 2, Approved: 1}, env.Data)
}

func TestLeaveHandler_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("success", func(t *testing.T) {
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), "L1").
			Return(leave.LeaveRequest{ID: "L1", Status: leave.StatusApproved}, nil)

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leave-requests/L1/approve", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"approved"`)
	})

	t.Run("not found", func(t *testing.T) {
		svc := leaveMock.NewMockService(ctrl)
		svc.EXPECT().Approve(gomock.Any(), "nope").Return(leave.LeaveRequest{}, leaveerrors.ErrLeaveNotFound)

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leave-requests/nope/approve", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLeaveHandler_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	svc.EXPECT().Reject(gomock.Any(), "L3").
		Return(leave.LeaveRequest{ID: "L3", Status: leave.StatusRejected}, nil)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leave-requests/L3/reject", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"rejected"`)
}

func TestLeaveHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := leaveMock.NewMockService(ctrl)
	svc.EXPECT().Delete(gomock.Any(), "L2").Return(context.Canceled)

	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/leave-requests/L2", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
