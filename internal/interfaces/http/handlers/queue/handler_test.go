package queue

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/application/queue/usecases"
	"lineup/internal/interfaces/http/handlers/testutil"
	"lineup/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateQueueUC struct {
	result *usecases.CreateQueueResult
	err    error
}

func (m *mockCreateQueueUC) Execute(_ context.Context, _ usecases.CreateQueueCommand) (*usecases.CreateQueueResult, error) {
	return m.result, m.err
}

type mockListQueuesUC struct {
	result *usecases.ListQueuesResult
	err    error
}

func (m *mockListQueuesUC) Execute(_ context.Context, _ usecases.ListQueuesCommand) (*usecases.ListQueuesResult, error) {
	return m.result, m.err
}

type mockQueueSnapshotUC struct {
	result *usecases.QueueSnapshotResult
	err    error
}

func (m *mockQueueSnapshotUC) Execute(_ context.Context, _ usecases.QueueSnapshotCommand) (*usecases.QueueSnapshotResult, error) {
	return m.result, m.err
}

type mockPauseQueueUC struct {
	result *usecases.QueueStateResult
	err    error
}

func (m *mockPauseQueueUC) Execute(_ context.Context, _ usecases.PauseQueueCommand) (*usecases.QueueStateResult, error) {
	return m.result, m.err
}

type mockResumeQueueUC struct {
	result *usecases.QueueStateResult
	err    error
}

func (m *mockResumeQueueUC) Execute(_ context.Context, _ usecases.ResumeQueueCommand) (*usecases.QueueStateResult, error) {
	return m.result, m.err
}

type mockCloseQueueUC struct {
	result *usecases.QueueStateResult
	err    error
}

func (m *mockCloseQueueUC) Execute(_ context.Context, _ usecases.CloseQueueCommand) (*usecases.QueueStateResult, error) {
	return m.result, m.err
}

type mockCallNextUC struct {
	result *usecases.CallNextResult
	err    error
	gotCmd usecases.CallNextCommand
}

func (m *mockCallNextUC) Execute(_ context.Context, cmd usecases.CallNextCommand) (*usecases.CallNextResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetAnnouncementUC struct {
	result *usecases.GetAnnouncementResult
	err    error
}

func (m *mockGetAnnouncementUC) Execute(_ context.Context, _ usecases.GetAnnouncementCommand) (*usecases.GetAnnouncementResult, error) {
	return m.result, m.err
}

type mockUpdateAnnouncementUC struct {
	result *usecases.UpdateAnnouncementResult
	err    error
}

func (m *mockUpdateAnnouncementUC) Execute(_ context.Context, _ usecases.UpdateAnnouncementCommand) (*usecases.UpdateAnnouncementResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createQueueUC        usecases.CreateQueueExecutor
	listQueuesUC         usecases.ListQueuesExecutor
	queueSnapshotUC      usecases.QueueSnapshotExecutor
	pauseQueueUC         usecases.PauseQueueExecutor
	resumeQueueUC        usecases.ResumeQueueExecutor
	closeQueueUC         usecases.CloseQueueExecutor
	callNextUC           usecases.CallNextExecutor
	getAnnouncementUC    usecases.GetAnnouncementExecutor
	updateAnnouncementUC usecases.UpdateAnnouncementExecutor
}

func newTestQueueHandler(deps testDeps) *QueueHandler {
	return NewQueueHandler(
		deps.createQueueUC,
		deps.listQueuesUC,
		deps.queueSnapshotUC,
		deps.pauseQueueUC,
		deps.resumeQueueUC,
		deps.closeQueueUC,
		deps.callNextUC,
		deps.getAnnouncementUC,
		deps.updateAnnouncementUC,
	)
}

// =====================================================================
// TestQueueHandler_CreateQueue
// =====================================================================

func TestQueueHandler_CreateQueue_Success(t *testing.T) {
	mockUC := &mockCreateQueueUC{
		result: &usecases.CreateQueueResult{
			QueueSID:     "que-1",
			ServiceSID:   "svc-a",
			ServiceName:  "Account Opening",
			OperatingDay: "2025-03-10",
			Status:       "active",
			CreatedAt:    time.Now().UTC(),
		},
	}
	handler := newTestQueueHandler(testDeps{createQueueUC: mockUC})

	reqBody := CreateQueueRequest{ServiceSID: "svc-a", OperatingDay: "2025-03-10"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues", reqBody)

	handler.CreateQueue(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestQueueHandler_CreateQueue_BindError(t *testing.T) {
	handler := newTestQueueHandler(testDeps{})

	// Missing required service_sid
	reqBody := map[string]string{"operating_day": "2025-03-10"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues", reqBody)

	handler.CreateQueue(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueueHandler_CreateQueue_BadDay(t *testing.T) {
	handler := newTestQueueHandler(testDeps{})

	reqBody := CreateQueueRequest{ServiceSID: "svc-a", OperatingDay: "10/03/2025"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues", reqBody)

	handler.CreateQueue(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQueueHandler_CreateQueue_DuplicateDay(t *testing.T) {
	mockUC := &mockCreateQueueUC{
		err: errors.NewConflictError("queue already exists for this service and day"),
	}
	handler := newTestQueueHandler(testDeps{createQueueUC: mockUC})

	reqBody := CreateQueueRequest{ServiceSID: "svc-a"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues", reqBody)

	handler.CreateQueue(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// =====================================================================
// TestQueueHandler_ListQueues
// =====================================================================

func TestQueueHandler_ListQueues_Success(t *testing.T) {
	mockUC := &mockListQueuesUC{
		result: &usecases.ListQueuesResult{
			Queues: []usecases.QueueListItem{
				{
					QueueSID:     "que-1",
					ServiceSID:   "svc-a",
					ServiceName:  "Account Opening",
					OperatingDay: "2025-03-10",
					Status:       "active",
					CreatedAt:    time.Now().UTC(),
				},
			},
			Total:    1,
			Page:     1,
			PageSize: 20,
		},
	}
	handler := newTestQueueHandler(testDeps{listQueuesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/queues", nil)

	handler.ListQueues(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestQueueHandler_ListQueues_BadDate(t *testing.T) {
	handler := newTestQueueHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/queues", nil)
	testutil.SetQueryParams(c, map[string]string{"date": "not-a-date"})

	handler.ListQueues(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestQueueHandler_GetQueue
// =====================================================================

func TestQueueHandler_GetQueue_Success(t *testing.T) {
	mockUC := &mockQueueSnapshotUC{
		result: &usecases.QueueSnapshotResult{
			QueueSID:     "que-1",
			ServiceSID:   "svc-a",
			ServiceName:  "Account Opening",
			OperatingDay: "2025-03-10",
			Status:       "active",
			WaitingCount: 4,
			NextNumber:   12,
		},
	}
	handler := newTestQueueHandler(testDeps{queueSnapshotUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/queues/que-1", nil)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.GetQueue(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestQueueHandler_GetQueue_NotFound(t *testing.T) {
	mockUC := &mockQueueSnapshotUC{
		err: errors.NewNotFoundError("queue not found"),
	}
	handler := newTestQueueHandler(testDeps{queueSnapshotUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/queues/que-missing", nil)
	testutil.SetURLParam(c, "qid", "que-missing")

	handler.GetQueue(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestQueueHandler lifecycle operations
// =====================================================================

func TestQueueHandler_PauseQueue_Success(t *testing.T) {
	mockUC := &mockPauseQueueUC{
		result: &usecases.QueueStateResult{QueueSID: "que-1", Status: "paused"},
	}
	handler := newTestQueueHandler(testDeps{pauseQueueUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues/que-1/pause", nil)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.PauseQueue(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQueueHandler_PauseQueue_Closed(t *testing.T) {
	mockUC := &mockPauseQueueUC{
		err: errors.NewInvalidStateError("closed queues cannot be paused"),
	}
	handler := newTestQueueHandler(testDeps{pauseQueueUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues/que-1/pause", nil)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.PauseQueue(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestQueueHandler_ResumeQueue_Success(t *testing.T) {
	mockUC := &mockResumeQueueUC{
		result: &usecases.QueueStateResult{QueueSID: "que-1", Status: "active"},
	}
	handler := newTestQueueHandler(testDeps{resumeQueueUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues/que-1/resume", nil)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.ResumeQueue(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQueueHandler_CloseQueue_Success(t *testing.T) {
	closedAt := time.Now().UTC()
	mockUC := &mockCloseQueueUC{
		result: &usecases.QueueStateResult{QueueSID: "que-1", Status: "closed", ClosedAt: &closedAt},
	}
	handler := newTestQueueHandler(testDeps{closeQueueUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues/que-1/close", nil)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.CloseQueue(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// =====================================================================
// TestQueueHandler_CallNext
// =====================================================================

func TestQueueHandler_CallNext_Success(t *testing.T) {
	calledAt := time.Now().UTC()
	mockUC := &mockCallNextUC{
		result: &usecases.CallNextResult{
			Found:       true,
			TicketSID:   "tkt-abc",
			Number:      7,
			Label:       "A-007",
			CounterSID:  "ctr-3",
			CounterName: "Window 3",
			CalledAt:    &calledAt,
		},
	}
	handler := newTestQueueHandler(testDeps{callNextUC: mockUC})

	reqBody := CallNextRequest{CounterSID: "ctr-3"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues/que-1/call-next", reqBody)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.CallNext(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ctr-3", mockUC.gotCmd.CounterSID)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestQueueHandler_CallNext_EmptyBody(t *testing.T) {
	mockUC := &mockCallNextUC{
		result: &usecases.CallNextResult{Found: false},
	}
	handler := newTestQueueHandler(testDeps{callNextUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues/que-1/call-next", nil)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.CallNext(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockUC.gotCmd.CounterSID)
}

func TestQueueHandler_CallNext_AlreadyServing(t *testing.T) {
	mockUC := &mockCallNextUC{
		err: errors.NewAlreadyServingError("finish the current ticket before calling the next one"),
	}
	handler := newTestQueueHandler(testDeps{callNextUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/queues/que-1/call-next", nil)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.CallNext(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "already_serving", resp.Error.Type)
}

// =====================================================================
// TestQueueHandler announcements
// =====================================================================

func TestQueueHandler_GetAnnouncement_Success(t *testing.T) {
	mockUC := &mockGetAnnouncementUC{
		result: &usecases.GetAnnouncementResult{
			QueueSID: "que-1",
			Markdown: "**Closed** for lunch at noon",
			HTML:     "<p><strong>Closed</strong> for lunch at noon</p>",
		},
	}
	handler := newTestQueueHandler(testDeps{getAnnouncementUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/queues/que-1/announcement", nil)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.GetAnnouncement(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQueueHandler_UpdateAnnouncement_Success(t *testing.T) {
	mockUC := &mockUpdateAnnouncementUC{
		result: &usecases.UpdateAnnouncementResult{
			QueueSID:     "que-1",
			Announcement: "Back at 1pm",
		},
	}
	handler := newTestQueueHandler(testDeps{updateAnnouncementUC: mockUC})

	reqBody := UpdateAnnouncementRequest{Markdown: "Back at 1pm"}
	c, w := testutil.NewTestContext(http.MethodPut, "/admin/queues/que-1/announcement", reqBody)
	testutil.SetURLParam(c, "qid", "que-1")

	handler.UpdateAnnouncement(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
