package usecases

import (
	"fmt"
	"testing"
	"time"

	"lineup/internal/domain/counter"
	"lineup/internal/domain/queue"
	qvo "lineup/internal/domain/queue/valueobjects"
	"lineup/internal/domain/service"
	"lineup/internal/domain/ticket"
	vo "lineup/internal/domain/ticket/valueobjects"
)

// --- fixtures ---

func testService(t *testing.T) *service.Service {
	t.Helper()
	svc, err := service.ReconstructService(
		1, "svc-a1b2c3", "Account Opening", "A", "", 120, true, 1,
		time.Now().Add(-24*time.Hour), time.Now().Add(-24*time.Hour),
	)
	if err != nil {
		t.Fatalf("failed to build service fixture: %v", err)
	}
	return svc
}

func testQueue(t *testing.T, status qvo.QueueStatus) *queue.Queue {
	t.Helper()
	return testQueueNext(t, status, 1)
}

func testQueueNext(t *testing.T, status qvo.QueueStatus, nextNumber int) *queue.Queue {
	t.Helper()
	var closedAt *time.Time
	if status == qvo.StatusClosed {
		now := time.Now()
		closedAt = &now
	}
	q, err := queue.ReconstructQueue(
		1, "que-d4e5f6", 1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		status, nextNumber, nil, "", closedAt, 1,
		time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour),
	)
	if err != nil {
		t.Fatalf("failed to build queue fixture: %v", err)
	}
	return q
}

func testQueueServing(t *testing.T, currentTicketID uint) *queue.Queue {
	t.Helper()
	q, err := queue.ReconstructQueue(
		1, "que-d4e5f6", 1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		qvo.StatusActive, 5, &currentTicketID, "", nil, 2,
		time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour),
	)
	if err != nil {
		t.Fatalf("failed to build queue fixture: %v", err)
	}
	return q
}

func testWaitingTicket(t *testing.T, id uint, number int) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		id, ticketSIDFor(number), 1, number, "customer-"+ticketSIDFor(number), "Jane Doe",
		vo.StatusWaiting, nil, nil, nil, nil, nil, nil, 1,
		time.Now().Add(-30*time.Minute), time.Now().Add(-30*time.Minute),
	)
	if err != nil {
		t.Fatalf("failed to build ticket fixture: %v", err)
	}
	return tk
}

func testCalledTicket(t *testing.T, id uint, number int) *ticket.Ticket {
	t.Helper()
	calledAt := time.Now().Add(-5 * time.Minute)
	counterID := uint(7)
	tk, err := ticket.ReconstructTicket(
		id, ticketSIDFor(number), 1, number, "customer-"+ticketSIDFor(number), "Jane Doe",
		vo.StatusCalled, &counterID, &calledAt, nil, nil, nil, nil, 2,
		time.Now().Add(-30*time.Minute), calledAt,
	)
	if err != nil {
		t.Fatalf("failed to build ticket fixture: %v", err)
	}
	return tk
}

func testServingTicket(t *testing.T, id uint, number int) *ticket.Ticket {
	t.Helper()
	calledAt := time.Now().Add(-10 * time.Minute)
	servingAt := time.Now().Add(-5 * time.Minute)
	counterID := uint(7)
	tk, err := ticket.ReconstructTicket(
		id, ticketSIDFor(number), 1, number, "customer-"+ticketSIDFor(number), "Jane Doe",
		vo.StatusServing, &counterID, &calledAt, &servingAt, nil, nil, nil, 3,
		time.Now().Add(-45*time.Minute), servingAt,
	)
	if err != nil {
		t.Fatalf("failed to build ticket fixture: %v", err)
	}
	return tk
}

func testCounter(t *testing.T) *counter.Counter {
	t.Helper()
	ctr, err := counter.ReconstructCounter(
		7, "ctr-g7h8i9", "Counter 3", true, 1,
		time.Now().Add(-24*time.Hour), time.Now().Add(-24*time.Hour),
	)
	if err != nil {
		t.Fatalf("failed to build counter fixture: %v", err)
	}
	return ctr
}

func ticketSIDFor(number int) string {
	return fmt.Sprintf("tkt-%06d", number)
}
