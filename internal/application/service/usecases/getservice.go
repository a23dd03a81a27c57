package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/service"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type GetServiceCommand struct {
	ServiceSID string
}

type GetServiceResult struct {
	ServiceSID       string
	Name             string
	Code             string
	Description      string
	AvgHandleSeconds uint
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type GetServiceUseCase struct {
	serviceRepo service.ServiceRepository
	logger      logger.Interface
}

func NewGetServiceUseCase(
	serviceRepo service.ServiceRepository,
	logger logger.Interface,
) *GetServiceUseCase {
	return &GetServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *GetServiceUseCase) Execute(ctx context.Context, cmd GetServiceCommand) (*GetServiceResult, error) {
	svc, err := uc.serviceRepo.GetBySID(ctx, cmd.ServiceSID)
	if err != nil {
		uc.logger.Errorw("failed to load service", "error", err, "service_sid", cmd.ServiceSID)
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, apperrors.NewNotFoundError("service not found")
	}

	return &GetServiceResult{
		ServiceSID:       svc.SID(),
		Name:             svc.Name(),
		Code:             svc.Code(),
		Description:      svc.Description(),
		AvgHandleSeconds: svc.AvgHandleSeconds(),
		Active:           svc.IsActive(),
		CreatedAt:        svc.CreatedAt(),
		UpdatedAt:        svc.UpdatedAt(),
	}, nil
}
