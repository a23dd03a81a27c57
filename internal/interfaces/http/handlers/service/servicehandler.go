package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lineup/internal/application/service/usecases"
	"lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/utils"
)

// ServiceHandler exposes the service catalog to staff. Services define
// the label prefix and average handle time that queues inherit.
type ServiceHandler struct {
	createServiceUC usecases.CreateServiceExecutor
	listServicesUC  usecases.ListServicesExecutor
	getServiceUC    usecases.GetServiceExecutor
	updateServiceUC usecases.UpdateServiceExecutor
	logger          logger.Interface
}

func NewServiceHandler(
	createServiceUC usecases.CreateServiceExecutor,
	listServicesUC usecases.ListServicesExecutor,
	getServiceUC usecases.GetServiceExecutor,
	updateServiceUC usecases.UpdateServiceExecutor,
) *ServiceHandler {
	return &ServiceHandler{
		createServiceUC: createServiceUC,
		listServicesUC:  listServicesUC,
		getServiceUC:    getServiceUC,
		updateServiceUC: updateServiceUC,
		logger:          logger.NewLogger(),
	}
}

// CreateService handles POST /admin/services
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create service", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createServiceUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCreateServiceResponse(result), "Service created successfully")
}

// ListServices handles GET /admin/services
func (h *ServiceHandler) ListServices(c *gin.Context) {
	req := parseListServicesRequest(c)

	result, err := h.listServicesUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toServiceListResponse(result.Services), result.Total, req.Page, req.PageSize)
}

// GetService handles GET /admin/services/:sid
func (h *ServiceHandler) GetService(c *gin.Context) {
	serviceSID, err := parseServiceSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getServiceUC.Execute(c.Request.Context(), usecases.GetServiceCommand{ServiceSID: serviceSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toServiceDetailResponse(result))
}

// UpdateService handles PUT /admin/services/:sid
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	serviceSID, err := parseServiceSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update service", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateServiceUC.Execute(c.Request.Context(), req.ToCommand(serviceSID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service updated successfully", toUpdateServiceResponse(result))
}

func parseServiceSID(c *gin.Context) (string, error) {
	serviceSID := c.Param("sid")
	if serviceSID == "" {
		return "", errors.NewValidationError("service SID is required")
	}
	return serviceSID, nil
}
