package queue

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lineup/internal/application/queue/usecases"
	"lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/utils"
)

type QueueHandler struct {
	createQueueUC        usecases.CreateQueueExecutor
	listQueuesUC         usecases.ListQueuesExecutor
	queueSnapshotUC      usecases.QueueSnapshotExecutor
	pauseQueueUC         usecases.PauseQueueExecutor
	resumeQueueUC        usecases.ResumeQueueExecutor
	closeQueueUC         usecases.CloseQueueExecutor
	callNextUC           usecases.CallNextExecutor
	getAnnouncementUC    usecases.GetAnnouncementExecutor
	updateAnnouncementUC usecases.UpdateAnnouncementExecutor
	logger               logger.Interface
}

func NewQueueHandler(
	createQueueUC usecases.CreateQueueExecutor,
	listQueuesUC usecases.ListQueuesExecutor,
	queueSnapshotUC usecases.QueueSnapshotExecutor,
	pauseQueueUC usecases.PauseQueueExecutor,
	resumeQueueUC usecases.ResumeQueueExecutor,
	closeQueueUC usecases.CloseQueueExecutor,
	callNextUC usecases.CallNextExecutor,
	getAnnouncementUC usecases.GetAnnouncementExecutor,
	updateAnnouncementUC usecases.UpdateAnnouncementExecutor,
) *QueueHandler {
	return &QueueHandler{
		createQueueUC:        createQueueUC,
		listQueuesUC:         listQueuesUC,
		queueSnapshotUC:      queueSnapshotUC,
		pauseQueueUC:         pauseQueueUC,
		resumeQueueUC:        resumeQueueUC,
		closeQueueUC:         closeQueueUC,
		callNextUC:           callNextUC,
		getAnnouncementUC:    getAnnouncementUC,
		updateAnnouncementUC: updateAnnouncementUC,
		logger:               logger.NewLogger(),
	}
}

// CreateQueue handles POST /admin/queues
func (h *QueueHandler) CreateQueue(c *gin.Context) {
	var req CreateQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create queue", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createQueueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, QueueResponse{
		QueueSID:     result.QueueSID,
		ServiceSID:   result.ServiceSID,
		ServiceName:  result.ServiceName,
		OperatingDay: result.OperatingDay,
		Status:       result.Status,
		CreatedAt:    result.CreatedAt,
	}, "Queue created successfully")
}

// ListQueues handles GET /queues
func (h *QueueHandler) ListQueues(c *gin.Context) {
	req, err := parseListQueuesRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listQueuesUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, toQueueListResponse(result.Queues), result.Total, result.Page, result.PageSize)
}

// GetQueue returns the live snapshot of one queue
// @Summary Get queue snapshot
// @Description Queue state with waiting count, now-serving and up-next tickets
// @Tags Queues
// @Produce json
// @Param qid path string true "Queue SID"
// @Success 200 {object} utils.APIResponse{data=QueueSnapshotResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /queues/{qid} [get]
func (h *QueueHandler) GetQueue(c *gin.Context) {
	queueSID, err := parseQueueSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.queueSnapshotUC.Execute(c.Request.Context(), usecases.QueueSnapshotCommand{QueueSID: queueSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toQueueSnapshotResponse(result))
}

// PauseQueue handles POST /admin/queues/:qid/pause
func (h *QueueHandler) PauseQueue(c *gin.Context) {
	queueSID, err := parseQueueSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.pauseQueueUC.Execute(c.Request.Context(), usecases.PauseQueueCommand{QueueSID: queueSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Queue paused successfully", toQueueStateResponse(result))
}

// ResumeQueue handles POST /admin/queues/:qid/resume
func (h *QueueHandler) ResumeQueue(c *gin.Context) {
	queueSID, err := parseQueueSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.resumeQueueUC.Execute(c.Request.Context(), usecases.ResumeQueueCommand{QueueSID: queueSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Queue resumed successfully", toQueueStateResponse(result))
}

// CloseQueue handles POST /admin/queues/:qid/close
func (h *QueueHandler) CloseQueue(c *gin.Context) {
	queueSID, err := parseQueueSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.closeQueueUC.Execute(c.Request.Context(), usecases.CloseQueueCommand{QueueSID: queueSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Queue closed successfully", toQueueStateResponse(result))
}

// CallNext calls the longest-waiting ticket to a counter
// @Summary Call next ticket
// @Description Move the oldest waiting ticket to called for the given counter
// @Tags Queues
// @Accept json
// @Produce json
// @Param qid path string true "Queue SID"
// @Param request body CallNextRequest false "Counter assignment"
// @Success 200 {object} utils.APIResponse{data=CallNextResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /admin/queues/{qid}/call-next [post]
func (h *QueueHandler) CallNext(c *gin.Context) {
	queueSID, err := parseQueueSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional; calling without a counter is allowed.
	var req CallNextRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for call next", "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.callNextUC.Execute(c.Request.Context(), usecases.CallNextCommand{
		QueueSID:   queueSID,
		CounterSID: req.CounterSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Ticket called successfully"
	if !result.Found {
		message = "No tickets waiting"
	}

	utils.SuccessResponse(c, http.StatusOK, message, toCallNextResponse(result))
}

// GetAnnouncement handles GET /queues/:qid/announcement
func (h *QueueHandler) GetAnnouncement(c *gin.Context) {
	queueSID, err := parseQueueSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAnnouncementUC.Execute(c.Request.Context(), usecases.GetAnnouncementCommand{QueueSID: queueSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", AnnouncementResponse{
		QueueSID: result.QueueSID,
		Markdown: result.Markdown,
		HTML:     result.HTML,
	})
}

// UpdateAnnouncement handles PUT /admin/queues/:qid/announcement
func (h *QueueHandler) UpdateAnnouncement(c *gin.Context) {
	queueSID, err := parseQueueSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update announcement", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateAnnouncementUC.Execute(c.Request.Context(), usecases.UpdateAnnouncementCommand{
		QueueSID: queueSID,
		Markdown: req.Markdown,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Announcement updated successfully", AnnouncementResponse{
		QueueSID: result.QueueSID,
		Markdown: result.Announcement,
	})
}

func parseQueueSID(c *gin.Context) (string, error) {
	sid := c.Param("qid")
	if sid == "" {
		return "", errors.NewValidationError("Invalid queue SID")
	}
	return sid, nil
}
