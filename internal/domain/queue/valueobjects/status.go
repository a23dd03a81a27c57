package valueobjects

import "fmt"

type QueueStatus string

const (
	StatusActive QueueStatus = "active"
	StatusPaused QueueStatus = "paused"
	StatusClosed QueueStatus = "closed"
)

var validQueueStatuses = map[QueueStatus]bool{
	StatusActive: true,
	StatusPaused: true,
	StatusClosed: true,
}

var queueStatusTransitions = map[QueueStatus][]QueueStatus{
	StatusActive: {
		StatusPaused,
		StatusClosed,
	},
	StatusPaused: {
		StatusActive,
		StatusClosed,
	},
	StatusClosed: {},
}

func (qs QueueStatus) String() string {
	return string(qs)
}

func (qs QueueStatus) IsValid() bool {
	return validQueueStatuses[qs]
}

func (qs QueueStatus) CanTransitionTo(newStatus QueueStatus) bool {
	allowedTransitions, ok := queueStatusTransitions[qs]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (qs QueueStatus) IsActive() bool {
	return qs == StatusActive
}

func (qs QueueStatus) IsPaused() bool {
	return qs == StatusPaused
}

func (qs QueueStatus) IsClosed() bool {
	return qs == StatusClosed
}

func NewQueueStatus(s string) (QueueStatus, error) {
	qs := QueueStatus(s)
	if !qs.IsValid() {
		return "", fmt.Errorf("invalid queue status: %s", s)
	}
	return qs, nil
}
