package service

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"lineup/internal/application/service/usecases"
	"lineup/internal/shared/utils"
)

type CreateServiceRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	// Code becomes the ticket label prefix, e.g. "A" in "A-042".
	Code             string `json:"code" binding:"required,min=1,max=4"`
	Description      string `json:"description" binding:"omitempty,max=500"`
	AvgHandleSeconds uint   `json:"avg_handle_seconds"`
}

func (r *CreateServiceRequest) ToCommand() usecases.CreateServiceCommand {
	return usecases.CreateServiceCommand{
		Name:             r.Name,
		Code:             r.Code,
		Description:      r.Description,
		AvgHandleSeconds: r.AvgHandleSeconds,
	}
}

type UpdateServiceRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=100"`
	Description      *string `json:"description" binding:"omitempty,max=500"`
	AvgHandleSeconds *uint   `json:"avg_handle_seconds"`
	Active           *bool   `json:"active"`
}

func (r *UpdateServiceRequest) ToCommand(serviceSID string) usecases.UpdateServiceCommand {
	return usecases.UpdateServiceCommand{
		ServiceSID:       serviceSID,
		Name:             r.Name,
		Description:      r.Description,
		AvgHandleSeconds: r.AvgHandleSeconds,
		Active:           r.Active,
	}
}

type ServiceResponse struct {
	ServiceSID       string     `json:"service_sid"`
	Name             string     `json:"name"`
	Code             string     `json:"code"`
	Description      string     `json:"description,omitempty"`
	AvgHandleSeconds uint       `json:"avg_handle_seconds"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func toCreateServiceResponse(result *usecases.CreateServiceResult) ServiceResponse {
	return ServiceResponse{
		ServiceSID:       result.ServiceSID,
		Name:             result.Name,
		Code:             result.Code,
		Description:      result.Description,
		AvgHandleSeconds: result.AvgHandleSeconds,
		Active:           result.Active,
		CreatedAt:        result.CreatedAt,
	}
}

func toServiceDetailResponse(result *usecases.GetServiceResult) ServiceResponse {
	return ServiceResponse{
		ServiceSID:       result.ServiceSID,
		Name:             result.Name,
		Code:             result.Code,
		Description:      result.Description,
		AvgHandleSeconds: result.AvgHandleSeconds,
		Active:           result.Active,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        &result.UpdatedAt,
	}
}

func toUpdateServiceResponse(result *usecases.UpdateServiceResult) ServiceResponse {
	return ServiceResponse{
		ServiceSID:       result.ServiceSID,
		Name:             result.Name,
		Code:             result.Code,
		Description:      result.Description,
		AvgHandleSeconds: result.AvgHandleSeconds,
		Active:           result.Active,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        &result.UpdatedAt,
	}
}

func toServiceListResponse(items []usecases.ServiceSummary) []ServiceResponse {
	responses := make([]ServiceResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ServiceResponse{
			ServiceSID:       item.ServiceSID,
			Name:             item.Name,
			Code:             item.Code,
			Description:      item.Description,
			AvgHandleSeconds: item.AvgHandleSeconds,
			Active:           item.Active,
			CreatedAt:        item.CreatedAt,
		})
	}
	return responses
}

type ListServicesRequest struct {
	Active    *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

func (r *ListServicesRequest) ToCommand() usecases.ListServicesCommand {
	return usecases.ListServicesCommand{
		Active:    r.Active,
		Page:      r.Page,
		PageSize:  r.PageSize,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

func parseListServicesRequest(c *gin.Context) *ListServicesRequest {
	pagination := utils.ParsePagination(c)

	req := &ListServicesRequest{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if raw := c.Query("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			req.Active = &active
		}
	}

	return req
}
