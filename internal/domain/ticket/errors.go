package ticket

import (
	"errors"
	"fmt"
)

var (
	ErrTicketNotFound          = errors.New("ticket not found")
	ErrInvalidStatusTransition = errors.New("invalid ticket status transition")
	ErrTicketTerminal          = errors.New("ticket is in a terminal state")
	ErrCustomerRefRequired     = errors.New("customer reference is required")
)

func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}
