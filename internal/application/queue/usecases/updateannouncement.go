package usecases

import (
	"context"
	"fmt"

	"lineup/internal/domain/queue"
	apperrors "lineup/internal/shared/errors"
	"lineup/internal/shared/lock"
	"lineup/internal/shared/logger"
)

// maxAnnouncementLength bounds the stored markdown source.
const maxAnnouncementLength = 4096

type UpdateAnnouncementCommand struct {
	QueueSID string
	Markdown string
}

type UpdateAnnouncementResult struct {
	QueueSID     string
	Announcement string
}

type UpdateAnnouncementUseCase struct {
	queueRepo queue.QueueRepository
	locks     *lock.KeyedMutex
	logger    logger.Interface
}

func NewUpdateAnnouncementUseCase(
	queueRepo queue.QueueRepository,
	locks *lock.KeyedMutex,
	logger logger.Interface,
) *UpdateAnnouncementUseCase {
	return &UpdateAnnouncementUseCase{
		queueRepo: queueRepo,
		locks:     locks,
		logger:    logger,
	}
}

// Execute replaces the queue's announcement markdown. An empty string
// clears the announcement.
func (uc *UpdateAnnouncementUseCase) Execute(ctx context.Context, cmd UpdateAnnouncementCommand) (*UpdateAnnouncementResult, error) {
	if len(cmd.Markdown) > maxAnnouncementLength {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("announcement exceeds %d characters", maxAnnouncementLength),
		)
	}

	release := uc.locks.Lock(cmd.QueueSID)
	defer release()

	q, err := uc.queueRepo.GetBySID(ctx, cmd.QueueSID)
	if err != nil {
		uc.logger.Errorw("failed to get queue", "error", err, "queue_sid", cmd.QueueSID)
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}
	if q == nil {
		return nil, apperrors.NewNotFoundError("queue not found")
	}
	if q.IsClosed() {
		return nil, apperrors.NewInvalidStateError("cannot update a closed queue")
	}

	if q.Announcement() != cmd.Markdown {
		q.UpdateAnnouncement(cmd.Markdown)
		if err := uc.queueRepo.Update(ctx, q); err != nil {
			uc.logger.Errorw("failed to update queue", "error", err, "queue_sid", cmd.QueueSID)
			return nil, fmt.Errorf("failed to update queue: %w", err)
		}
		uc.logger.Infow("announcement updated", "queue_sid", q.SID())
	}

	return &UpdateAnnouncementResult{
		QueueSID:     q.SID(),
		Announcement: q.Announcement(),
	}, nil
}
