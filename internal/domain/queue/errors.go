package queue

import (
	"errors"
	"fmt"
)

var (
	ErrQueueNotFound           = errors.New("queue not found")
	ErrQueueClosed             = errors.New("queue is closed")
	ErrQueueNotActive          = errors.New("queue is not active")
	ErrServingSlotOccupied     = errors.New("serving slot is occupied")
	ErrInvalidStatusTransition = errors.New("invalid queue status transition")
	ErrQueueAlreadyExists      = errors.New("queue already exists for service and day")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
