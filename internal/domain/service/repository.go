package service

import "context"

type ServiceRepository interface {
	Save(ctx context.Context, service *Service) error
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, serviceID uint) error
	GetByID(ctx context.Context, serviceID uint) (*Service, error)
	GetBySID(ctx context.Context, sid string) (*Service, error)
	GetByCode(ctx context.Context, code string) (*Service, error)
	List(ctx context.Context, filters ServiceFilter) ([]*Service, int64, error)
}

type ServiceFilter struct {
	Active    *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
