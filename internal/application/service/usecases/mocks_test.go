package usecases

import (
	"context"

	"lineup/internal/domain/service"
	"lineup/internal/shared/logger"
)

type mockServiceRepository struct {
	SaveFunc      func(ctx context.Context, svc *service.Service) error
	UpdateFunc    func(ctx context.Context, svc *service.Service) error
	DeleteFunc    func(ctx context.Context, serviceID uint) error
	GetByIDFunc   func(ctx context.Context, serviceID uint) (*service.Service, error)
	GetBySIDFunc  func(ctx context.Context, sid string) (*service.Service, error)
	GetByCodeFunc func(ctx context.Context, code string) (*service.Service, error)
	ListFunc      func(ctx context.Context, filters service.ServiceFilter) ([]*service.Service, int64, error)
}

func (m *mockServiceRepository) Save(ctx context.Context, svc *service.Service) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, svc)
	}
	return nil
}

func (m *mockServiceRepository) Update(ctx context.Context, svc *service.Service) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, svc)
	}
	return nil
}

func (m *mockServiceRepository) Delete(ctx context.Context, serviceID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, serviceID)
	}
	return nil
}

func (m *mockServiceRepository) GetByID(ctx context.Context, serviceID uint) (*service.Service, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, serviceID)
	}
	return nil, nil
}

func (m *mockServiceRepository) GetBySID(ctx context.Context, sid string) (*service.Service, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockServiceRepository) GetByCode(ctx context.Context, code string) (*service.Service, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockServiceRepository) List(ctx context.Context, filters service.ServiceFilter) ([]*service.Service, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
