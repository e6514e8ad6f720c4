package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-sweldo/internal/middleware"
	"go-sweldo/internal/payroll"
	payrollerrors "go-sweldo/internal/payroll/errors"
	paymock "go-sweldo/internal/payroll/mock"

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

func newPayrollHandler(t *testing.T) (*payroll.Handler, *paymock.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := paymock.NewMockService(ctrl)
	return payroll.NewHandler(svc, middleware.NewPartitionLock()), svc
}

func TestPayrollHandler_Generate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, svc := newPayrollHandler(t)

		start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local)
		end := time.Date(2025, 8, 15, 0, 0, 0, 0, time.Local)
		svc.EXPECT().Generate(gomock.Any(), start, end, gomock.Any()).
			DoAndReturn(func(ctx context.Context, s, e time.Time, req payroll.GenerateRequest) (*payroll.PayrollSummary, error) {
				assert.Equal(t, "EMP-1", req.EmployeeID)
				return &payroll.PayrollSummary{
					ID:         payroll.SummaryID(req.EmployeeID, s, e),
					EmployeeID: req.EmployeeID,
					NetPay:     1275,
				}, nil
			})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"EMP-1","start_date":"2025-08-01","end_date":"2025-08-15"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Generate(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got payroll.PayrollSummary
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "EMP-1", got.EmployeeID)
		assert.Equal(t, 1275.0, got.NetPay)
	})

	t.Run("negative missing fields", func(t *testing.T) {
		h, _ := newPayrollHandler(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Generate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.NotNil(t, env.Error)
	})

	t.Run("negative malformed date", func(t *testing.T) {
		h, _ := newPayrollHandler(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"EMP-1","start_date":"08/01/2025","end_date":"2025-08-15"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Generate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("negative service error mapped to status", func(t *testing.T) {
		h, svc := newPayrollHandler(t)

		svc.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, payrollerrors.ErrDeductionMismatch)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"EMP-1","start_date":"2025-08-01","end_date":"2025-08-15"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Generate(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
	})
}

func TestPayrollHandler_GetByMonth(t *testing.T) {
	t.Run("success empty month returns empty list", func(t *testing.T) {
		h, svc := newPayrollHandler(t)

		svc.EXPECT().GetSummaries(gomock.Any(), "EMP-1", 2025, 8).Return(nil, nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "EMP-1"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/EMP-1?year=2025&month=8", nil)

		h.GetByMonth(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Equal(t, "[]", strings.TrimSpace(string(env.Data)))
	})

	t.Run("negative invalid month", func(t *testing.T) {
		h, _ := newPayrollHandler(t)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "EMP-1"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/payrolls/EMP-1?year=2025&month=13", nil)

		h.GetByMonth(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, svc := newPayrollHandler(t)

		start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.Local)
		end := time.Date(2025, 8, 15, 0, 0, 0, 0, time.Local)
		svc.EXPECT().Delete(gomock.Any(), "EMP-1", start, end).Return(nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"EMP-1","start_date":"2025-08-01","end_date":"2025-08-15"}`
		c.Request = httptest.NewRequest(http.MethodDelete, "/payrolls", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Delete(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
	})

	t.Run("negative summary not found", func(t *testing.T) {
		h, svc := newPayrollHandler(t)

		svc.EXPECT().Delete(gomock.Any(), "EMP-1", gomock.Any(), gomock.Any()).
			Return(payrollerrors.ErrPayrollNotFound)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		body := `{"employee_id":"EMP-1","start_date":"2025-08-01","end_date":"2025-08-15"}`
		c.Request = httptest.NewRequest(http.MethodDelete, "/payrolls", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
