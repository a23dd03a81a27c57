package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lineup/internal/application/queue/usecases"
	"lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/utils"
)

type TicketHandler struct {
	bookTicketUC   usecases.BookTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	findTicketUC   usecases.FindTicketExecutor
	getPositionUC  usecases.GetPositionExecutor
	cancelTicketUC usecases.CancelTicketExecutor
	startServingUC usecases.StartServingExecutor
	completeUC     usecases.CompleteTicketExecutor
	markNoShowUC   usecases.MarkNoShowExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	bookTicketUC usecases.BookTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	findTicketUC usecases.FindTicketExecutor,
	getPositionUC usecases.GetPositionExecutor,
	cancelTicketUC usecases.CancelTicketExecutor,
	startServingUC usecases.StartServingExecutor,
	completeUC usecases.CompleteTicketExecutor,
	markNoShowUC usecases.MarkNoShowExecutor,
) *TicketHandler {
	return &TicketHandler{
		bookTicketUC:   bookTicketUC,
		getTicketUC:    getTicketUC,
		findTicketUC:   findTicketUC,
		getPositionUC:  getPositionUC,
		cancelTicketUC: cancelTicketUC,
		startServingUC: startServingUC,
		completeUC:     completeUC,
		markNoShowUC:   markNoShowUC,
		logger:         logger.NewLogger(),
	}
}

// BookTicket issues the next ticket number in a queue
// @Summary Book a ticket
// @Description Issue the next sequential ticket in an accepting queue
// @Tags Tickets
// @Accept json
// @Produce json
// @Param qid path string true "Queue SID"
// @Param request body BookTicketRequest true "Booking details"
// @Success 201 {object} utils.APIResponse{data=BookTicketResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /queues/{qid}/tickets [post]
func (h *TicketHandler) BookTicket(c *gin.Context) {
	queueSID, err := parseQueueSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for book ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.bookTicketUC.Execute(c.Request.Context(), req.ToCommand(queueSID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toBookTicketResponse(result), "Ticket booked successfully")
}

// GetTicket returns one ticket by SID
// @Summary Get ticket
// @Description Get a ticket with its queue and service context
// @Tags Tickets
// @Produce json
// @Param tid path string true "Ticket SID"
// @Success 200 {object} utils.APIResponse{data=TicketResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{tid} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketSID, err := parseTicketSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketCommand{TicketSID: ticketSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTicketResponse(result))
}

// FindTicket handles GET /queues/:qid/tickets/:number, the kiosk lookup
// by printed ticket number.
func (h *TicketHandler) FindTicket(c *gin.Context) {
	queueSID, err := parseQueueSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid ticket number"))
		return
	}

	result, err := h.findTicketUC.Execute(c.Request.Context(), usecases.FindTicketCommand{
		QueueSID: queueSID,
		Number:   number,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toTicketResponse(result))
}

// GetPosition returns the live queue position of a waiting ticket
// @Summary Get ticket position
// @Description Number of waiting tickets ahead plus one; zero once called
// @Tags Tickets
// @Produce json
// @Param tid path string true "Ticket SID"
// @Success 200 {object} utils.APIResponse{data=PositionResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{tid}/position [get]
func (h *TicketHandler) GetPosition(c *gin.Context) {
	ticketSID, err := parseTicketSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPositionUC.Execute(c.Request.Context(), usecases.GetPositionCommand{TicketSID: ticketSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toPositionResponse(result))
}

// CancelTicket cancels a waiting or called ticket. The same handler backs
// the token-gated public delete and the admin delete.
// @Summary Cancel ticket
// @Description Cancel a ticket that has not entered service yet
// @Tags Tickets
// @Produce json
// @Param tid path string true "Ticket SID"
// @Success 200 {object} utils.APIResponse{data=TicketStateResponse}
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /tickets/{tid} [delete]
func (h *TicketHandler) CancelTicket(c *gin.Context) {
	ticketSID, err := parseTicketSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.cancelTicketUC.Execute(c.Request.Context(), usecases.CancelTicketCommand{TicketSID: ticketSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket cancelled successfully", toTicketStateResponse(result))
}

// StartServing handles POST /admin/tickets/:tid/serve
func (h *TicketHandler) StartServing(c *gin.Context) {
	ticketSID, err := parseTicketSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.startServingUC.Execute(c.Request.Context(), usecases.StartServingCommand{TicketSID: ticketSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket serving started", toTicketStateResponse(result))
}

// CompleteTicket handles POST /admin/tickets/:tid/complete
func (h *TicketHandler) CompleteTicket(c *gin.Context) {
	ticketSID, err := parseTicketSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.completeUC.Execute(c.Request.Context(), usecases.CompleteTicketCommand{TicketSID: ticketSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket completed successfully", toTicketStateResponse(result))
}

// MarkNoShow handles POST /admin/tickets/:tid/no-show
func (h *TicketHandler) MarkNoShow(c *gin.Context) {
	ticketSID, err := parseTicketSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markNoShowUC.Execute(c.Request.Context(), usecases.MarkNoShowCommand{TicketSID: ticketSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket marked as no-show", toTicketStateResponse(result))
}

func parseTicketSID(c *gin.Context) (string, error) {
	sid := c.Param("tid")
	if sid == "" {
		return "", errors.NewValidationError("Invalid ticket SID")
	}
	return sid, nil
}

func parseQueueSID(c *gin.Context) (string, error) {
	sid := c.Param("qid")
	if sid == "" {
		return "", errors.NewValidationError("Invalid queue SID")
	}
	return sid, nil
}
