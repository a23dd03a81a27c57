package ticket

import (
	"time"

	"lineup/internal/application/queue/usecases"
)

type BookTicketRequest struct {
	CustomerRef  string `json:"customer_ref" binding:"required,max=190"`
	CustomerName string `json:"customer_name" binding:"omitempty,max=100"`
}

func (r *BookTicketRequest) ToCommand(queueSID string) usecases.BookTicketCommand {
	return usecases.BookTicketCommand{
		QueueSID:     queueSID,
		CustomerRef:  r.CustomerRef,
		CustomerName: r.CustomerName,
	}
}

type BookTicketResponse struct {
	TicketSID    string    `json:"ticket_sid"`
	QueueSID     string    `json:"queue_sid"`
	Number       int       `json:"number"`
	Label        string    `json:"label"`
	Status       string    `json:"status"`
	Position     int       `json:"position"`
	WaitingCount int       `json:"waiting_count"`
	Token        string    `json:"token,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toBookTicketResponse(result *usecases.BookTicketResult) BookTicketResponse {
	return BookTicketResponse{
		TicketSID:    result.TicketSID,
		QueueSID:     result.QueueSID,
		Number:       result.Number,
		Label:        result.Label,
		Status:       result.Status,
		Position:     result.Position,
		WaitingCount: result.WaitingCount,
		Token:        result.Token,
		CreatedAt:    result.CreatedAt,
	}
}

type TicketResponse struct {
	TicketSID    string     `json:"ticket_sid"`
	QueueSID     string     `json:"queue_sid"`
	Number       int        `json:"number"`
	Label        string     `json:"label"`
	Status       string     `json:"status"`
	CustomerName string     `json:"customer_name,omitempty"`
	Position     *int       `json:"position,omitempty"`
	CalledAt     *time.Time `json:"called_at,omitempty"`
	ServingAt    *time.Time `json:"serving_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toTicketResponse(detail *usecases.TicketDetail) TicketResponse {
	return TicketResponse{
		TicketSID:    detail.TicketSID,
		QueueSID:     detail.QueueSID,
		Number:       detail.Number,
		Label:        detail.Label,
		Status:       detail.Status,
		CustomerName: detail.CustomerName,
		Position:     detail.Position,
		CalledAt:     detail.CalledAt,
		ServingAt:    detail.ServingAt,
		CompletedAt:  detail.CompletedAt,
		CreatedAt:    detail.CreatedAt,
	}
}

type PositionResponse struct {
	TicketSID string `json:"ticket_sid"`
	Number    int    `json:"number"`
	Status    string `json:"status"`
	Position  int    `json:"position"`
}

func toPositionResponse(result *usecases.GetPositionResult) PositionResponse {
	return PositionResponse{
		TicketSID: result.TicketSID,
		Number:    result.Number,
		Status:    result.Status,
		Position:  result.Position,
	}
}

type TicketStateResponse struct {
	TicketSID string `json:"ticket_sid"`
	QueueSID  string `json:"queue_sid"`
	Number    int    `json:"number"`
	Status    string `json:"status"`
}

func toTicketStateResponse(result *usecases.TicketStateResult) TicketStateResponse {
	return TicketStateResponse{
		TicketSID: result.TicketSID,
		QueueSID:  result.QueueSID,
		Number:    result.Number,
		Status:    result.Status,
	}
}
