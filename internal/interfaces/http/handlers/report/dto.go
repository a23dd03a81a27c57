package report

import (
	"lineup/internal/application/reporting/usecases"
)

type QueueReportResponse struct {
	QueueSID          string  `json:"queue_sid,omitempty"`
	Day               string  `json:"day"`
	Issued            int64   `json:"issued"`
	Completed         int64   `json:"completed"`
	Cancelled         int64   `json:"cancelled"`
	NoShows           int64   `json:"no_shows"`
	AvgDwellSeconds   float64 `json:"avg_dwell_seconds"`
	AvgServiceSeconds float64 `json:"avg_service_seconds"`
	MaxDwellSeconds   float64 `json:"max_dwell_seconds"`
	MaxServiceSeconds float64 `json:"max_service_seconds"`
}

func toQueueReportResponse(report usecases.QueueReport) QueueReportResponse {
	return QueueReportResponse{
		QueueSID:          report.QueueSID,
		Day:               report.Day,
		Issued:            report.Issued,
		Completed:         report.Completed,
		Cancelled:         report.Cancelled,
		NoShows:           report.NoShows,
		AvgDwellSeconds:   report.AvgDwellSeconds,
		AvgServiceSeconds: report.AvgServiceSeconds,
		MaxDwellSeconds:   report.MaxDwellSeconds,
		MaxServiceSeconds: report.MaxServiceSeconds,
	}
}

type DailyReportResponse struct {
	Day    string                `json:"day"`
	Queues []QueueReportResponse `json:"queues"`
	Totals QueueReportResponse   `json:"totals"`
}

func toDailyReportResponse(result *usecases.DailyReportResult) DailyReportResponse {
	queues := make([]QueueReportResponse, 0, len(result.Queues))
	for _, q := range result.Queues {
		queues = append(queues, toQueueReportResponse(q))
	}

	return DailyReportResponse{
		Day:    result.Day,
		Queues: queues,
		Totals: toQueueReportResponse(result.Totals),
	}
}
