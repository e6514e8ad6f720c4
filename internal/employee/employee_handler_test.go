package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-sweldo/internal/employee"
	empmock "go-sweldo/internal/employee/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := empmock.NewMockRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), "EMP-1").
			Return(&employee.Employee{ID: "EMP-1", Name: "Juan Dela Cruz"}, nil)

		h := employee.NewHandler(repo)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "EMP-1"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/EMP-1", nil)

		h.GetByID(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got employee.Employee
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Juan Dela Cruz", got.Name)
	})

	t.Run("negative not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := empmock.NewMockRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), "EMP-9").Return(nil, nil)

		h := employee.NewHandler(repo)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "EMP-9"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/employees/EMP-9", nil)

		h.GetByID(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})
}

func TestEmployeeHandler_Save(t *testing.T) {
	t.Run("success takes id from the path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := empmock.NewMockRepository(ctrl)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, emp employee.Employee) error {
				assert.Equal(t, "EMP-1", emp.ID)
				assert.Equal(t, "Juan Dela Cruz", emp.Name)
				return nil
			})

		h := employee.NewHandler(repo)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "EMP-1"}}
		body := `{"name":"Juan Dela Cruz","dailyRate":500}`
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/EMP-1", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Save(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("empty list never null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := empmock.NewMockRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		h := employee.NewHandler(repo)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "[]", strings.TrimSpace(string(env.Data)))
	})
}
