package usecases

import "context"

type CreateCounterExecutor interface {
	Execute(ctx context.Context, cmd CreateCounterCommand) (*CreateCounterResult, error)
}

type ListCountersExecutor interface {
	Execute(ctx context.Context, cmd ListCountersCommand) (*ListCountersResult, error)
}

type DeactivateCounterExecutor interface {
	Execute(ctx context.Context, cmd DeactivateCounterCommand) (*DeactivateCounterResult, error)
}
