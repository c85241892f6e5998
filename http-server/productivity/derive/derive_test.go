package derive

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fieldops/internal/storage"
)

type MockDeriver struct {
	mock.Mock
}

func (m *MockDeriver) DeriveProductivityEntries(ctx context.Context, dailyLog storage.DailyLog, projectID string) ([]storage.ProductivityEntry, error) {
	args := m.Called(ctx, dailyLog, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ProductivityEntry), args.Error(1)
}

func TestDeriveEntries_Success(t *testing.T) {
	mockService := new(MockDeriver)

	derived := []storage.ProductivityEntry{
		{ID: "pe-1", ProjectID: "prj-1", ComputedUnitRate: 2.0},
	}
	mockService.On("DeriveProductivityEntries", mock.Anything, mock.Anything, "prj-1").
		Return(derived, nil)

	handler := DeriveEntries(slog.Default(), mockService)

	body := `{
		"project_id": "prj-1",
		"daily_log": {
			"id": "dl-1",
			"date": "2025-03-10",
			"work_performed": [
				{"activity": "Place concrete", "quantity": 100, "crew_hours_worked": 50},
				{"activity": "Bad line", "quantity": 0, "crew_hours_worked": 8}
			]
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/productivity/derive", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp.Entries, 1)
	assert.Equal(t, 1, resp.Skipped)

	mockService.AssertExpectations(t)
}

func TestDeriveEntries_ProjectIDFromLog(t *testing.T) {
	mockService := new(MockDeriver)
	mockService.On("DeriveProductivityEntries", mock.Anything, mock.Anything, "prj-7").
		Return([]storage.ProductivityEntry{}, nil)

	handler := DeriveEntries(slog.Default(), mockService)

	// No top-level project id, the daily log carries it.
	body := `{"daily_log": {"id": "dl-9", "project_id": "prj-7"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/productivity/derive", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockService.AssertExpectations(t)
}

func TestDeriveEntries_BadJSON(t *testing.T) {
	mockService := new(MockDeriver)
	handler := DeriveEntries(slog.Default(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/productivity/derive", strings.NewReader("not json"))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockService.AssertNotCalled(t, "DeriveProductivityEntries")
}
