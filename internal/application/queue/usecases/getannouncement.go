package usecases

import (
	"context"
	"fmt"

	"lineup/internal/domain/queue"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
)

type GetAnnouncementCommand struct {
	QueueSID string
}

type GetAnnouncementResult struct {
	QueueSID string
	Markdown string
	// HTML is the rendered, sanitized announcement. Empty when no
	// renderer is configured or the announcement is empty.
	HTML string
}

type GetAnnouncementUseCase struct {
	queueRepo queue.QueueRepository
	renderer  MarkdownRenderer
	logger    logger.Interface
}

func NewGetAnnouncementUseCase(
	queueRepo queue.QueueRepository,
	renderer MarkdownRenderer,
	logger logger.Interface,
) *GetAnnouncementUseCase {
	return &GetAnnouncementUseCase{
		queueRepo: queueRepo,
		renderer:  renderer,
		logger:    logger,
	}
}

func (uc *GetAnnouncementUseCase) Execute(ctx context.Context, cmd GetAnnouncementCommand) (*GetAnnouncementResult, error) {
	q, err := uc.queueRepo.GetBySID(ctx, cmd.QueueSID)
	if err != nil {
		uc.logger.Errorw("failed to get queue", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}

	html := ""
	if uc.renderer != nil && q.Announcement() != "" {
		html, err = uc.renderer.Render(q.Announcement())
		if err != nil {
			uc.logger.Warnw("failed to render announcement", "error", err, "queue_sid", cmd.QueueSID)
			html = ""
		}
	}

	return &GetAnnouncementResult{
		QueueSID: q.SID(),
		Markdown: q.Announcement(),
		HTML:     html,
	}, nil
}
