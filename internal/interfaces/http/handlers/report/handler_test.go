package report

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/application/reporting/usecases"
	"lineup/internal/interfaces/http/handlers/testutil"
	"lineup/internal/shared/errors"
)

type mockDailyReportUC struct {
	result *usecases.DailyReportResult
	err    error
	gotCmd usecases.GetDailyReportCommand
}

func (m *mockDailyReportUC) Execute(_ context.Context, cmd usecases.GetDailyReportCommand) (*usecases.DailyReportResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockQueueReportUC struct {
	result *usecases.QueueReport
	err    error
	gotCmd usecases.GetQueueReportCommand
}

func (m *mockQueueReportUC) Execute(_ context.Context, cmd usecases.GetQueueReportCommand) (*usecases.QueueReport, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

func TestReportHandler_GetDailyReport_Success(t *testing.T) {
	mockUC := &mockDailyReportUC{
		result: &usecases.DailyReportResult{
			Day: "2025-03-10",
			Queues: []usecases.QueueReport{
				{QueueSID: "que-1", Day: "2025-03-10", Issued: 40, Completed: 32, Cancelled: 5, NoShows: 3, AvgDwellSeconds: 840, AvgServiceSeconds: 310},
			},
			Totals: usecases.QueueReport{Day: "2025-03-10", Issued: 40, Completed: 32, Cancelled: 5, NoShows: 3, AvgDwellSeconds: 840, AvgServiceSeconds: 310},
		},
	}
	handler := NewReportHandler(mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/reports/daily", nil)
	testutil.SetQueryParams(c, map[string]string{"date": "2025-03-10"})

	handler.GetDailyReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-03-10", mockUC.gotCmd.Day)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	var body DailyReportResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "2025-03-10", body.Day)
	assert.Len(t, body.Queues, 1)
	assert.Equal(t, int64(40), body.Totals.Issued)
}

func TestReportHandler_GetDailyReport_DefaultsToToday(t *testing.T) {
	mockUC := &mockDailyReportUC{
		result: &usecases.DailyReportResult{Day: "2025-03-11"},
	}
	handler := NewReportHandler(mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/reports/daily", nil)

	handler.GetDailyReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockUC.gotCmd.Day)
}

func TestReportHandler_GetDailyReport_BadDate(t *testing.T) {
	mockUC := &mockDailyReportUC{
		err: errors.NewValidationError("date must be YYYY-MM-DD"),
	}
	handler := NewReportHandler(mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/reports/daily", nil)
	testutil.SetQueryParams(c, map[string]string{"date": "bogus"})

	handler.GetDailyReport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_GetQueueReport_Success(t *testing.T) {
	mockUC := &mockQueueReportUC{
		result: &usecases.QueueReport{
			QueueSID:          "que-1",
			Day:               "2025-03-10",
			Issued:            25,
			Completed:         20,
			AvgServiceSeconds: 290,
		},
	}
	handler := NewReportHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/queues/que-1/report", nil)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.GetQueueReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "que-1", mockUC.gotCmd.QueueSID)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)

	var body QueueReportResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, int64(25), body.Issued)
}

func TestReportHandler_GetQueueReport_QueueNotFound(t *testing.T) {
	mockUC := &mockQueueReportUC{
		err: errors.NewNotFoundError("queue not found"),
	}
	handler := NewReportHandler(nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/queues/que-missing/report", nil)
	testutil.SetURLParam(c, "qid", "que-missing")

	handler.GetQueueReport(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
}
