package counter

import "context"

type CounterRepository interface {
	Save(ctx context.Context, counter *Counter) error
	Update(ctx context.Context, counter *Counter) error
	Delete(ctx context.Context, counterID uint) error
	GetByID(ctx context.Context, counterID uint) (*Counter, error)
	GetBySID(ctx context.Context, sid string) (*Counter, error)
	List(ctx context.Context, activeOnly bool) ([]*Counter, error)
}
