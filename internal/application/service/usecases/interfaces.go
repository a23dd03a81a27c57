package usecases

import "context"

type CreateServiceExecutor interface {
	Execute(ctx context.Context, cmd CreateServiceCommand) (*CreateServiceResult, error)
}

type ListServicesExecutor interface {
	Execute(ctx context.Context, cmd ListServicesCommand) (*ListServicesResult, error)
}

type GetServiceExecutor interface {
	Execute(ctx context.Context, cmd GetServiceCommand) (*GetServiceResult, error)
}

type UpdateServiceExecutor interface {
	Execute(ctx context.Context, cmd UpdateServiceCommand) (*UpdateServiceResult, error)
}
