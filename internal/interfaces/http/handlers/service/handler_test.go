package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/application/service/usecases"
	"lineup/internal/interfaces/http/handlers/testutil"
	"lineup/internal/shared/errors"
)

type mockCreateServiceUC struct {
	result *usecases.CreateServiceResult
	err    error
	gotCmd usecases.CreateServiceCommand
}

func (m *mockCreateServiceUC) Execute(_ context.Context, cmd usecases.CreateServiceCommand) (*usecases.CreateServiceResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockListServicesUC struct {
	result *usecases.ListServicesResult
	err    error
	gotCmd usecases.ListServicesCommand
}

func (m *mockListServicesUC) Execute(_ context.Context, cmd usecases.ListServicesCommand) (*usecases.ListServicesResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetServiceUC struct {
	result *usecases.GetServiceResult
	err    error
}

func (m *mockGetServiceUC) Execute(_ context.Context, _ usecases.GetServiceCommand) (*usecases.GetServiceResult, error) {
	return m.result, m.err
}

type mockUpdateServiceUC struct {
	result *usecases.UpdateServiceResult
	err    error
	gotCmd usecases.UpdateServiceCommand
}

func (m *mockUpdateServiceUC) Execute(_ context.Context, cmd usecases.UpdateServiceCommand) (*usecases.UpdateServiceResult, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type testDeps struct {
	createServiceUC usecases.CreateServiceExecutor
	listServicesUC  usecases.ListServicesExecutor
	getServiceUC    usecases.GetServiceExecutor
	updateServiceUC usecases.UpdateServiceExecutor
}

func newTestServiceHandler(deps testDeps) *ServiceHandler {
	return NewServiceHandler(
		deps.createServiceUC,
		deps.listServicesUC,
		deps.getServiceUC,
		deps.updateServiceUC,
	)
}

func TestServiceHandler_CreateService_Success(t *testing.T) {
	mockUC := &mockCreateServiceUC{
		result: &usecases.CreateServiceResult{
			ServiceSID:       "svc-1",
			Name:             "Account Opening",
			Code:             "A",
			AvgHandleSeconds: 300,
			Active:           true,
			CreatedAt:        time.Now().UTC(),
		},
	}
	handler := newTestServiceHandler(testDeps{createServiceUC: mockUC})

	reqBody := CreateServiceRequest{Name: "Account Opening", Code: "A", AvgHandleSeconds: 300}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/services", reqBody)

	handler.CreateService(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "A", mockUC.gotCmd.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	var body ServiceResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "svc-1", body.ServiceSID)
	assert.Nil(t, body.UpdatedAt)
}

func TestServiceHandler_CreateService_MissingName(t *testing.T) {
	handler := newTestServiceHandler(testDeps{})

	reqBody := map[string]any{"code": "A"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/services", reqBody)

	handler.CreateService(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestServiceHandler_CreateService_CodeTaken(t *testing.T) {
	mockUC := &mockCreateServiceUC{
		err: errors.NewConflictError("service code already in use"),
	}
	handler := newTestServiceHandler(testDeps{createServiceUC: mockUC})

	reqBody := CreateServiceRequest{Name: "Loans", Code: "A"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/services", reqBody)

	handler.CreateService(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestServiceHandler_ListServices_Success(t *testing.T) {
	mockUC := &mockListServicesUC{
		result: &usecases.ListServicesResult{
			Services: []usecases.ServiceSummary{
				{ServiceSID: "svc-1", Name: "Account Opening", Code: "A", Active: true},
				{ServiceSID: "svc-2", Name: "Loans", Code: "L", Active: false},
			},
			Total: 2,
		},
	}
	handler := newTestServiceHandler(testDeps{listServicesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/services", nil)
	testutil.SetQueryParams(c, map[string]string{"active": "true", "page_size": "50"})

	handler.ListServices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotCmd.Active)
	assert.True(t, *mockUC.gotCmd.Active)
	assert.Equal(t, 50, mockUC.gotCmd.PageSize)
}

func TestServiceHandler_ListServices_ClampsPageSize(t *testing.T) {
	mockUC := &mockListServicesUC{result: &usecases.ListServicesResult{}}
	handler := newTestServiceHandler(testDeps{listServicesUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/services", nil)
	testutil.SetQueryParams(c, map[string]string{"page_size": "5000"})

	handler.ListServices(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, mockUC.gotCmd.PageSize)
	assert.Nil(t, mockUC.gotCmd.Active)
}

func TestServiceHandler_GetService_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockGetServiceUC{
		result: &usecases.GetServiceResult{
			ServiceSID:       "svc-1",
			Name:             "Account Opening",
			Code:             "A",
			AvgHandleSeconds: 300,
			Active:           true,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	}
	handler := newTestServiceHandler(testDeps{getServiceUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/services/svc-1", nil)
	testutil.SetURLParam(c, "sid", "svc-1")

	handler.GetService(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)

	var body ServiceResponse
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Equal(t, "A", body.Code)
	assert.NotNil(t, body.UpdatedAt)
}

func TestServiceHandler_GetService_NotFound(t *testing.T) {
	mockUC := &mockGetServiceUC{
		err: errors.NewNotFoundError("service not found"),
	}
	handler := newTestServiceHandler(testDeps{getServiceUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/services/svc-missing", nil)
	testutil.SetURLParam(c, "sid", "svc-missing")

	handler.GetService(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)
}

func TestServiceHandler_UpdateService_Success(t *testing.T) {
	mockUC := &mockUpdateServiceUC{
		result: &usecases.UpdateServiceResult{
			ServiceSID: "svc-1",
			Name:       "Account Services",
			Code:       "A",
			Active:     true,
			UpdatedAt:  time.Now().UTC(),
		},
	}
	handler := newTestServiceHandler(testDeps{updateServiceUC: mockUC})

	name := "Account Services"
	reqBody := UpdateServiceRequest{Name: &name}
	c, w := testutil.NewTestContext(http.MethodPut, "/admin/services/svc-1", reqBody)
	testutil.SetURLParam(c, "sid", "svc-1")

	handler.UpdateService(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "svc-1", mockUC.gotCmd.ServiceSID)
	require.NotNil(t, mockUC.gotCmd.Name)
	assert.Equal(t, "Account Services", *mockUC.gotCmd.Name)
	assert.Nil(t, mockUC.gotCmd.Active)
}

func TestServiceHandler_UpdateService_Deactivate(t *testing.T) {
	mockUC := &mockUpdateServiceUC{
		result: &usecases.UpdateServiceResult{
			ServiceSID: "svc-1",
			Name:       "Account Opening",
			Code:       "A",
			Active:     false,
			UpdatedAt:  time.Now().UTC(),
		},
	}
	handler := newTestServiceHandler(testDeps{updateServiceUC: mockUC})

	active := false
	reqBody := UpdateServiceRequest{Active: &active}
	c, w := testutil.NewTestContext(http.MethodPut, "/admin/services/svc-1", reqBody)
	testutil.SetURLParam(c, "sid", "svc-1")

	handler.UpdateService(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.gotCmd.Active)
	assert.False(t, *mockUC.gotCmd.Active)
}
