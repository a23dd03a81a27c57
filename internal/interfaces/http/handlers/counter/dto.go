package counter

import (
	"time"

	"lineup/internal/application/counter/usecases"
)

type CreateCounterRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

func (r *CreateCounterRequest) ToCommand() usecases.CreateCounterCommand {
	return usecases.CreateCounterCommand{Name: r.Name}
}

type CounterResponse struct {
	CounterSID string    `json:"counter_sid"`
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

func toCreateCounterResponse(result *usecases.CreateCounterResult) CounterResponse {
	return CounterResponse{
		CounterSID: result.CounterSID,
		Name:       result.Name,
		Active:     result.Active,
		CreatedAt:  result.CreatedAt,
	}
}

func toCounterListResponse(items []usecases.CounterSummary) []CounterResponse {
	responses := make([]CounterResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, CounterResponse{
			CounterSID: item.CounterSID,
			Name:       item.Name,
			Active:     item.Active,
			CreatedAt:  item.CreatedAt,
		})
	}
	return responses
}

type CounterStateResponse struct {
	CounterSID string `json:"counter_sid"`
	Active     bool   `json:"active"`
}
