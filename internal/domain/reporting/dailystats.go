package reporting

import "context"

// DailyStats accumulates per-queue service metrics for one operating
// day. Rows are fed exclusively by the ticket event stream; the
// reporting side never reads live engine state.
type DailyStats struct {
	QueueSID            string
	Day                 string
	Issued              int64
	Completed           int64
	Cancelled           int64
	NoShows             int64
	DwellSecondsTotal   float64
	ServiceSecondsTotal float64
	MaxDwellSeconds     float64
	MaxServiceSeconds   float64
}

// AvgDwellSeconds is the mean time from booking to completion.
func (s *DailyStats) AvgDwellSeconds() float64 {
	if s.Completed == 0 {
		return 0
	}
	return s.DwellSecondsTotal / float64(s.Completed)
}

// AvgServiceSeconds is the mean time from call to completion.
func (s *DailyStats) AvgServiceSeconds() float64 {
	if s.Completed == 0 {
		return 0
	}
	return s.ServiceSecondsTotal / float64(s.Completed)
}

// StatsRepository persists the daily aggregates. The increment methods
// must be atomic upserts keyed on (queue_sid, day) so collectors on
// different instances can fold concurrently.
type StatsRepository interface {
	IncrementIssued(ctx context.Context, queueSID, day string) error
	RecordCompletion(ctx context.Context, queueSID, day string, dwellSeconds, serviceSeconds float64) error
	IncrementCancelled(ctx context.Context, queueSID, day string) error
	IncrementNoShow(ctx context.Context, queueSID, day string) error
	GetByQueueAndDay(ctx context.Context, queueSID, day string) (*DailyStats, error)
	ListByDay(ctx context.Context, day string) ([]*DailyStats, error)
}
