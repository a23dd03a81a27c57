package valueobjects

import "testing"

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    TicketStatus
		wantErr bool
	}{
		{name: "waiting", value: "waiting", want: StatusWaiting},
		{name: "called", value: "called", want: StatusCalled},
		{name: "serving", value: "serving", want: StatusServing},
		{name: "completed", value: "completed", want: StatusCompleted},
		{name: "cancelled", value: "cancelled", want: StatusCancelled},
		{name: "no_show", value: "no_show", want: StatusNoShow},
		{name: "unknown value", value: "parked", wantErr: true},
		{name: "empty value", value: "", wantErr: true},
		{name: "wrong case", value: "Waiting", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicketStatus(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTicketStatus() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("NewTicketStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTicketStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from TicketStatus
		to   TicketStatus
		want bool
	}{
		{name: "waiting to called", from: StatusWaiting, to: StatusCalled, want: true},
		{name: "waiting to cancelled", from: StatusWaiting, to: StatusCancelled, want: true},
		{name: "waiting to serving skips call", from: StatusWaiting, to: StatusServing, want: false},
		{name: "waiting to no_show", from: StatusWaiting, to: StatusNoShow, want: false},
		{name: "waiting to completed", from: StatusWaiting, to: StatusCompleted, want: false},
		{name: "called to serving", from: StatusCalled, to: StatusServing, want: true},
		{name: "called to cancelled", from: StatusCalled, to: StatusCancelled, want: true},
		{name: "called to no_show", from: StatusCalled, to: StatusNoShow, want: true},
		{name: "called to completed skips serving", from: StatusCalled, to: StatusCompleted, want: false},
		{name: "called back to waiting", from: StatusCalled, to: StatusWaiting, want: false},
		{name: "serving to completed", from: StatusServing, to: StatusCompleted, want: true},
		{name: "serving to cancelled", from: StatusServing, to: StatusCancelled, want: false},
		{name: "serving to no_show", from: StatusServing, to: StatusNoShow, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusWaiting, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusCalled, want: false},
		{name: "no_show is terminal", from: StatusNoShow, to: StatusCalled, want: false},
		{name: "unknown status", from: TicketStatus("parked"), to: StatusCalled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTicketStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status TicketStatus
		want   bool
	}{
		{StatusWaiting, false},
		{StatusCalled, false},
		{StatusServing, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
		{StatusNoShow, true},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.IsTerminal(); got != tt.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.want)
			}
			if got := tt.status.IsActive(); got == tt.want {
				t.Errorf("IsActive() = %v, expected the opposite of IsTerminal()", got)
			}
		})
	}
}

func TestTicketStatus_HoldsServingSlot(t *testing.T) {
	tests := []struct {
		status TicketStatus
		want   bool
	}{
		{StatusWaiting, false},
		{StatusCalled, true},
		{StatusServing, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			if got := tt.status.HoldsServingSlot(); got != tt.want {
				t.Errorf("HoldsServingSlot() = %v, want %v", got, tt.want)
			}
		})
	}
}
