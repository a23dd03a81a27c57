package queue

import (
	"time"

	"github.com/gin-gonic/gin"

	"lineup/internal/application/queue/usecases"
	"lineup/internal/shared/biztime"
	"lineup/internal/shared/errors"
	"lineup/internal/shared/utils"
)

type CreateQueueRequest struct {
	ServiceSID string `json:"service_sid" binding:"required"`
	// OperatingDay is YYYY-MM-DD in the business timezone; empty means today.
	OperatingDay string `json:"operating_day" binding:"omitempty,len=10"`
}

func (r *CreateQueueRequest) ToCommand() (usecases.CreateQueueCommand, error) {
	cmd := usecases.CreateQueueCommand{ServiceSID: r.ServiceSID}

	if r.OperatingDay != "" {
		day, err := biztime.ParseDateInBizTimezone(r.OperatingDay)
		if err != nil {
			return cmd, errors.NewValidationError("operating_day must be YYYY-MM-DD")
		}
		cmd.OperatingDay = day
	}

	return cmd, nil
}

type QueueResponse struct {
	QueueSID     string     `json:"queue_sid"`
	ServiceSID   string     `json:"service_sid"`
	ServiceName  string     `json:"service_name"`
	OperatingDay string     `json:"operating_day"`
	Status       string     `json:"status"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toQueueListResponse(items []usecases.QueueListItem) []QueueResponse {
	responses := make([]QueueResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, QueueResponse{
			QueueSID:     item.QueueSID,
			ServiceSID:   item.ServiceSID,
			ServiceName:  item.ServiceName,
			OperatingDay: item.OperatingDay,
			Status:       item.Status,
			ClosedAt:     item.ClosedAt,
			CreatedAt:    item.CreatedAt,
		})
	}
	return responses
}

type CurrentTicketResponse struct {
	TicketSID string     `json:"ticket_sid"`
	Number    int        `json:"number"`
	Label     string     `json:"label"`
	Status    string     `json:"status"`
	CalledAt  *time.Time `json:"called_at,omitempty"`
}

type QueueSnapshotResponse struct {
	QueueSID             string                 `json:"queue_sid"`
	ServiceSID           string                 `json:"service_sid"`
	ServiceName          string                 `json:"service_name"`
	OperatingDay         string                 `json:"operating_day"`
	Status               string                 `json:"status"`
	Announcement         string                 `json:"announcement,omitempty"`
	WaitingCount         int64                  `json:"waiting_count"`
	CalledCount          int64                  `json:"called_count"`
	ServingCount         int64                  `json:"serving_count"`
	CompletedCount       int64                  `json:"completed_count"`
	NoShowCount          int64                  `json:"no_show_count"`
	CancelledCount       int64                  `json:"cancelled_count"`
	CurrentTicket        *CurrentTicketResponse `json:"current_ticket,omitempty"`
	EstimatedWaitSeconds int64                  `json:"estimated_wait_seconds"`
	NextNumber           int                    `json:"next_number"`
	ClosedAt             *time.Time             `json:"closed_at,omitempty"`
}

func toQueueSnapshotResponse(result *usecases.QueueSnapshotResult) QueueSnapshotResponse {
	resp := QueueSnapshotResponse{
		QueueSID:             result.QueueSID,
		ServiceSID:           result.ServiceSID,
		ServiceName:          result.ServiceName,
		OperatingDay:         result.OperatingDay,
		Status:               result.Status,
		Announcement:         result.Announcement,
		WaitingCount:         result.WaitingCount,
		CalledCount:          result.CalledCount,
		ServingCount:         result.ServingCount,
		CompletedCount:       result.CompletedCount,
		NoShowCount:          result.NoShowCount,
		CancelledCount:       result.CancelledCount,
		EstimatedWaitSeconds: result.EstimatedWaitSeconds,
		NextNumber:           result.NextNumber,
		ClosedAt:             result.ClosedAt,
	}

	if result.CurrentTicket != nil {
		resp.CurrentTicket = &CurrentTicketResponse{
			TicketSID: result.CurrentTicket.TicketSID,
			Number:    result.CurrentTicket.Number,
			Label:     result.CurrentTicket.Label,
			Status:    result.CurrentTicket.Status,
			CalledAt:  result.CurrentTicket.CalledAt,
		}
	}

	return resp
}

type QueueStateResponse struct {
	QueueSID string     `json:"queue_sid"`
	Status   string     `json:"status"`
	ClosedAt *time.Time `json:"closed_at,omitempty"`
}

func toQueueStateResponse(result *usecases.QueueStateResult) QueueStateResponse {
	return QueueStateResponse{
		QueueSID: result.QueueSID,
		Status:   result.Status,
		ClosedAt: result.ClosedAt,
	}
}

type CallNextRequest struct {
	CounterSID string `json:"counter_sid" binding:"omitempty"`
}

type UpNextResponse struct {
	TicketSID string `json:"ticket_sid"`
	Number    int    `json:"number"`
	Label     string `json:"label"`
}

type CallNextResponse struct {
	Found        bool             `json:"found"`
	TicketSID    string           `json:"ticket_sid,omitempty"`
	Number       int              `json:"number,omitempty"`
	Label        string           `json:"label,omitempty"`
	CustomerName string           `json:"customer_name,omitempty"`
	CounterSID   string           `json:"counter_sid,omitempty"`
	CounterName  string           `json:"counter_name,omitempty"`
	CalledAt     *time.Time       `json:"called_at,omitempty"`
	UpNext       []UpNextResponse `json:"up_next,omitempty"`
}

func toCallNextResponse(result *usecases.CallNextResult) CallNextResponse {
	resp := CallNextResponse{
		Found:        result.Found,
		TicketSID:    result.TicketSID,
		Number:       result.Number,
		Label:        result.Label,
		CustomerName: result.CustomerName,
		CounterSID:   result.CounterSID,
		CounterName:  result.CounterName,
		CalledAt:     result.CalledAt,
	}

	for _, entry := range result.UpNext {
		resp.UpNext = append(resp.UpNext, UpNextResponse{
			TicketSID: entry.TicketSID,
			Number:    entry.Number,
			Label:     entry.Label,
		})
	}

	return resp
}

type UpdateAnnouncementRequest struct {
	Markdown string `json:"markdown" binding:"max=4000"`
}

type AnnouncementResponse struct {
	QueueSID string `json:"queue_sid"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html,omitempty"`
}

type ListQueuesRequest struct {
	ServiceSID   string
	Status       string
	OperatingDay *time.Time
	Page         int
	PageSize     int
}

func (r *ListQueuesRequest) ToCommand() usecases.ListQueuesCommand {
	return usecases.ListQueuesCommand{
		ServiceSID:   r.ServiceSID,
		Status:       r.Status,
		OperatingDay: r.OperatingDay,
		Page:         r.Page,
		PageSize:     r.PageSize,
	}
}

func parseListQueuesRequest(c *gin.Context) (*ListQueuesRequest, error) {
	pagination := utils.ParsePagination(c)

	req := &ListQueuesRequest{
		ServiceSID: c.Query("service_sid"),
		Status:     c.Query("status"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := biztime.ParseDateInBizTimezone(dateStr)
		if err != nil {
			return nil, errors.NewValidationError("date must be YYYY-MM-DD")
		}
		req.OperatingDay = &day
	}

	return req, nil
}
