package usecases

import (
	"context"

	"lineup/internal/domain/counter"
	"lineup/internal/shared/logger"
)

type mockCounterRepository struct {
	SaveFunc     func(ctx context.Context, c *counter.Counter) error
	UpdateFunc   func(ctx context.Context, c *counter.Counter) error
	DeleteFunc   func(ctx context.Context, counterID uint) error
	GetByIDFunc  func(ctx context.Context, counterID uint) (*counter.Counter, error)
	GetBySIDFunc func(ctx context.Context, sid string) (*counter.Counter, error)
	ListFunc     func(ctx context.Context, activeOnly bool) ([]*counter.Counter, error)
}

func (m *mockCounterRepository) Save(ctx context.Context, c *counter.Counter) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCounterRepository) Update(ctx context.Context, c *counter.Counter) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCounterRepository) Delete(ctx context.Context, counterID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, counterID)
	}
	return nil
}

func (m *mockCounterRepository) GetByID(ctx context.Context, counterID uint) (*counter.Counter, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, counterID)
	}
	return nil, nil
}

func (m *mockCounterRepository) GetBySID(ctx context.Context, sid string) (*counter.Counter, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockCounterRepository) List(ctx context.Context, activeOnly bool) ([]*counter.Counter, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, activeOnly)
	}
	return nil, nil
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
