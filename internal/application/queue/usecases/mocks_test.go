package usecases

import (
	"context"
	"time"

	"lineup/internal/domain/counter"
	"lineup/internal/domain/queue"
	"lineup/internal/domain/service"
	"lineup/internal/domain/shared/events"
	"lineup/internal/domain/ticket"
	vo "lineup/internal/domain/ticket/valueobjects"
	"lineup/internal/shared/logger"
)

type mockQueueRepository struct {
	SaveFunc              func(ctx context.Context, q *queue.Queue) error
	UpdateFunc            func(ctx context.Context, q *queue.Queue) error
	GetByIDFunc           func(ctx context.Context, queueID uint) (*queue.Queue, error)
	GetBySIDFunc          func(ctx context.Context, sid string) (*queue.Queue, error)
	GetByServiceAndDayFunc func(ctx context.Context, serviceID uint, operatingDay time.Time) (*queue.Queue, error)
	ListFunc              func(ctx context.Context, filters queue.QueueFilter) ([]*queue.Queue, int64, error)
	ListOpenBeforeFunc    func(ctx context.Context, operatingDay time.Time) ([]*queue.Queue, error)
}

func (m *mockQueueRepository) Save(ctx context.Context, q *queue.Queue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, q)
	}
	return nil
}

func (m *mockQueueRepository) Update(ctx context.Context, q *queue.Queue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, q)
	}
	return nil
}

func (m *mockQueueRepository) GetByID(ctx context.Context, queueID uint) (*queue.Queue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, queueID)
	}
	return nil, nil
}

func (m *mockQueueRepository) GetBySID(ctx context.Context, sid string) (*queue.Queue, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockQueueRepository) GetByServiceAndDay(ctx context.Context, serviceID uint, operatingDay time.Time) (*queue.Queue, error) {
	if m.GetByServiceAndDayFunc != nil {
		return m.GetByServiceAndDayFunc(ctx, serviceID, operatingDay)
	}
	return nil, nil
}

func (m *mockQueueRepository) List(ctx context.Context, filters queue.QueueFilter) ([]*queue.Queue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

func (m *mockQueueRepository) ListOpenBefore(ctx context.Context, operatingDay time.Time) ([]*queue.Queue, error) {
	if m.ListOpenBeforeFunc != nil {
		return m.ListOpenBeforeFunc(ctx, operatingDay)
	}
	return nil, nil
}

type mockTicketRepository struct {
	SaveFunc                   func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                 func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc                func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetBySIDFunc               func(ctx context.Context, sid string) (*ticket.Ticket, error)
	GetByQueueAndNumberFunc    func(ctx context.Context, queueID uint, number int) (*ticket.Ticket, error)
	FindActiveByCustomerRefFunc func(ctx context.Context, queueID uint, customerRef string) (*ticket.Ticket, error)
	CountWaitingBeforeFunc     func(ctx context.Context, queueID uint, number int) (int64, error)
	CountByStatusFunc          func(ctx context.Context, queueID uint, status vo.TicketStatus) (int64, error)
	NextWaitingFunc            func(ctx context.Context, queueID uint) (*ticket.Ticket, error)
	ListWaitingFunc            func(ctx context.Context, queueID uint, limit int) ([]*ticket.Ticket, error)
	ListFunc                   func(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetBySID(ctx context.Context, sid string) (*ticket.Ticket, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByQueueAndNumber(ctx context.Context, queueID uint, number int) (*ticket.Ticket, error) {
	if m.GetByQueueAndNumberFunc != nil {
		return m.GetByQueueAndNumberFunc(ctx, queueID, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindActiveByCustomerRef(ctx context.Context, queueID uint, customerRef string) (*ticket.Ticket, error) {
	if m.FindActiveByCustomerRefFunc != nil {
		return m.FindActiveByCustomerRefFunc(ctx, queueID, customerRef)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountWaitingBefore(ctx context.Context, queueID uint, number int) (int64, error) {
	if m.CountWaitingBeforeFunc != nil {
		return m.CountWaitingBeforeFunc(ctx, queueID, number)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context, queueID uint, status vo.TicketStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, queueID, status)
	}
	return 0, nil
}

func (m *mockTicketRepository) NextWaiting(ctx context.Context, queueID uint) (*ticket.Ticket, error) {
	if m.NextWaitingFunc != nil {
		return m.NextWaitingFunc(ctx, queueID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListWaiting(ctx context.Context, queueID uint, limit int) ([]*ticket.Ticket, error) {
	if m.ListWaitingFunc != nil {
		return m.ListWaitingFunc(ctx, queueID, limit)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filters ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

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

type mockEventPublisher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evts []events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventPublisher) PublishAll(evts []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evts)
	}
	return nil
}

// mockTxManager runs the function inline unless a test overrides it.
type mockTxManager struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockTokenIssuer struct {
	IssueFunc func(ticketSID, queueSID string) (string, error)
}

func (m *mockTokenIssuer) Issue(ticketSID, queueSID string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ticketSID, queueSID)
	}
	return "", nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	FatalFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
	WithFunc   func(args ...any) interface{}
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) Fatal(msg string, args ...any) {
	if m.FatalFunc != nil {
		m.FatalFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	if m.WithFunc != nil {
		if result, ok := m.WithFunc(args...).(logger.Interface); ok {
			return result
		}
	}
	return m
}

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

func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
