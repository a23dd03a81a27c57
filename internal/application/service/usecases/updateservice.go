package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/service"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type UpdateServiceCommand struct {
	ServiceSID       string
	Name             *string
	Description      *string
	AvgHandleSeconds *uint
	Active           *bool
}

type UpdateServiceResult struct {
	ServiceSID       string
	Name             string
	Code             string
	Description      string
	AvgHandleSeconds uint
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UpdateServiceUseCase edits catalog fields. The code is immutable once
// issued because printed tickets carry it.
type UpdateServiceUseCase struct {
	serviceRepo service.ServiceRepository
	logger      logger.Interface
}

func NewUpdateServiceUseCase(
	serviceRepo service.ServiceRepository,
	logger logger.Interface,
) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *UpdateServiceUseCase) Execute(ctx context.Context, cmd UpdateServiceCommand) (*UpdateServiceResult, error) {
	svc, err := uc.serviceRepo.GetBySID(ctx, cmd.ServiceSID)
	if err != nil {
		uc.logger.Errorw("failed to load service", "error", err, "service_sid", cmd.ServiceSID)
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, apperrors.NewNotFoundError("service not found")
	}

	if cmd.Name != nil || cmd.Description != nil {
		name := svc.Name()
		if cmd.Name != nil {
			name = *cmd.Name
		}
		description := svc.Description()
		if cmd.Description != nil {
			description = *cmd.Description
		}
		if err := svc.Update(name, description); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if cmd.AvgHandleSeconds != nil {
		svc.SetAvgHandleTime(*cmd.AvgHandleSeconds)
	}

	if cmd.Active != nil {
		if *cmd.Active {
			svc.Activate()
		} else {
			svc.Deactivate()
		}
	}

	if err := uc.serviceRepo.Update(ctx, svc); err != nil {
		uc.logger.Errorw("failed to update service", "error", err, "service_sid", svc.SID())
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	uc.logger.Infow("service updated",
		"service_sid", svc.SID(),
		"active", svc.IsActive(),
	)

	return &UpdateServiceResult{
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
