package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/service"
	"lineup/internal/shared/logger"
)

type ListServicesCommand struct {
	Active    *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type ServiceSummary struct {
	ServiceSID       string
	Name             string
	Code             string
	Description      string
	AvgHandleSeconds uint
	Active           bool
	CreatedAt        time.Time
}

type ListServicesResult struct {
	Services []ServiceSummary
	Total    int64
}

type ListServicesUseCase struct {
	serviceRepo service.ServiceRepository
	logger      logger.Interface
}

func NewListServicesUseCase(
	serviceRepo service.ServiceRepository,
	logger logger.Interface,
) *ListServicesUseCase {
	return &ListServicesUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context, cmd ListServicesCommand) (*ListServicesResult, error) {
	filter := service.ServiceFilter{
		Active:    cmd.Active,
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
		SortBy:    cmd.SortBy,
		SortOrder: cmd.SortOrder,
	}

	services, total, err := uc.serviceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	summaries := make([]ServiceSummary, 0, len(services))
	for _, svc := range services {
		summaries = append(summaries, ServiceSummary{
			ServiceSID:       svc.SID(),
			Name:             svc.Name(),
			Code:             svc.Code(),
			Description:      svc.Description(),
			AvgHandleSeconds: svc.AvgHandleSeconds(),
			Active:           svc.IsActive(),
			CreatedAt:        svc.CreatedAt(),
		})
	}

	return &ListServicesResult{
		Services: summaries,
		Total:    total,
	}, nil
}
