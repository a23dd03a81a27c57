package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"lineup/internal/application/queue/usecases"
	"lineup/internal/infrastructure/pubsub"
	"lineup/internal/shared/goroutine"
	"lineup/internal/shared/id"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/utils"
)

const (
	// defaultPingInterval keeps proxies from reaping idle streams.
	defaultPingInterval = 30 * time.Second

	// streamBufferSize bounds the per-connection event backlog. A client
	// that cannot drain this many events loses the oldest ones; the next
	// snapshot poll resynchronizes it.
	streamBufferSize = 32
)

// StreamHandler serves GET /queues/:qid/stream as Server-Sent Events.
// Each connection gets its own Redis subscription to the queue's update
// channel; the first frame is a full snapshot so display boards render
// without a second request.
type StreamHandler struct {
	updates      pubsub.QueueUpdateSubscriber
	snapshotUC   usecases.QueueSnapshotExecutor
	pingInterval time.Duration
	logger       logger.Interface
}

func NewStreamHandler(
	updates pubsub.QueueUpdateSubscriber,
	snapshotUC usecases.QueueSnapshotExecutor,
	pingSeconds int,
	log logger.Interface,
) *StreamHandler {
	interval := defaultPingInterval
	if pingSeconds > 0 {
		interval = time.Duration(pingSeconds) * time.Second
	}
	return &StreamHandler{
		updates:      updates,
		snapshotUC:   snapshotUC,
		pingInterval: interval,
		logger:       log,
	}
}

// Stream handles GET /queues/:qid/stream
func (h *StreamHandler) Stream(c *gin.Context) {
	queueSID, err := parseQueueSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Resolve the snapshot before switching protocols so unknown queues
	// still get a JSON 404.
	snapshot, err := h.snapshotUC.Execute(c.Request.Context(), usecases.QueueSnapshotCommand{QueueSID: queueSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	connID := id.MustGenerate(8)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable Nginx buffering

	if _, err := c.Writer.WriteString(": connected\n\n"); err != nil {
		h.logger.Warnw("stream initial write error", "conn_id", connID, "error", err)
		return
	}
	c.Writer.Flush()

	if !h.writeEvent(c, connID, "snapshot", toQueueSnapshotResponse(snapshot)) {
		return
	}

	ctx := c.Request.Context()
	events := make(chan pubsub.QueueUpdateEvent, streamBufferSize)

	goroutine.SafeGo(h.logger, "queue-stream-subscribe", func() {
		err := h.updates.SubscribeQueue(ctx, queueSID, func(_ context.Context, event pubsub.QueueUpdateEvent) {
			select {
			case events <- event:
			default:
				h.logger.Warnw("stream buffer full, dropping update",
					"conn_id", connID,
					"queue_sid", queueSID,
					"event_type", event.EventType,
				)
			}
		})
		if err != nil && ctx.Err() == nil {
			h.logger.Warnw("queue update subscription ended",
				"conn_id", connID,
				"queue_sid", queueSID,
				"error", err,
			)
		}
	})

	h.logger.Infow("queue stream opened", "conn_id", connID, "queue_sid", queueSID)

	keepAliveTicker := time.NewTicker(h.pingInterval)
	defer keepAliveTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Infow("queue stream closed by client", "conn_id", connID, "queue_sid", queueSID)
			return

		case event := <-events:
			if !h.writeEvent(c, connID, event.EventType, event) {
				return
			}

		case <-keepAliveTicker.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				h.logger.Warnw("stream keepalive error", "conn_id", connID, "error", err)
				return
			}
			c.Writer.Flush()
		}
	}
}

func (h *StreamHandler) writeEvent(c *gin.Context, connID, eventType string, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Warnw("stream marshal error", "conn_id", connID, "error", err)
		return true
	}

	if _, err := fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", eventType, data); err != nil {
		h.logger.Warnw("stream write error", "conn_id", connID, "error", err)
		return false
	}
	c.Writer.Flush()
	return true
}
