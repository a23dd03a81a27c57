package usecases

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/domain/service"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/id"
	"lineup/internal/shared/logger"
)

type CreateServiceCommand struct {
	Name             string
	Code             string
	Description      string
	AvgHandleSeconds uint
}

type CreateServiceResult struct {
	ServiceSID       string
	Name             string
	Code             string
	Description      string
	AvgHandleSeconds uint
	Active           bool
	CreatedAt        time.Time
}

// CreateServiceUseCase adds a service to the catalog. The code becomes
// the ticket label prefix and must be unique across services.
type CreateServiceUseCase struct {
	serviceRepo service.ServiceRepository
	logger      logger.Interface
}

func NewCreateServiceUseCase(
	serviceRepo service.ServiceRepository,
	logger logger.Interface,
) *CreateServiceUseCase {
	return &CreateServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *CreateServiceUseCase) Execute(ctx context.Context, cmd CreateServiceCommand) (*CreateServiceResult, error) {
	sid, err := id.NewServiceSID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate service SID: %w", err)
	}

	svc, err := service.NewService(sid, cmd.Name, cmd.Code, cmd.Description, cmd.AvgHandleSeconds)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	existing, err := uc.serviceRepo.GetByCode(ctx, svc.Code())
	if err != nil {
		uc.logger.Errorw("failed to check service code", "error", err, "code", svc.Code())
		return nil, fmt.Errorf("failed to check service code: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("service code already in use", existing.SID())
	}

	if err := uc.serviceRepo.Save(ctx, svc); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("service code already in use")
		}
		uc.logger.Errorw("failed to persist service", "error", err, "service_sid", sid)
		return nil, fmt.Errorf("failed to save service: %w", err)
	}

	uc.logger.Infow("service created",
		"service_sid", svc.SID(),
		"code", svc.Code(),
		"name", svc.Name(),
	)

	return &CreateServiceResult{
		ServiceSID:       svc.SID(),
		Name:             svc.Name(),
		Code:             svc.Code(),
		Description:      svc.Description(),
		AvgHandleSeconds: svc.AvgHandleSeconds(),
		Active:           svc.IsActive(),
		CreatedAt:        svc.CreatedAt(),
	}, nil
}
