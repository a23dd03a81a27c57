package usecases

import "context"

type GetDailyReportExecutor interface {
	Execute(ctx context.Context, cmd GetDailyReportCommand) (*DailyReportResult, error)
}

type GetQueueReportExecutor interface {
	Execute(ctx context.Context, cmd GetQueueReportCommand) (*QueueReport, error)
}
