package counter

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lineup/internal/application/counter/usecases"
	"lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/utils"
)

type CounterHandler struct {
	createCounterUC     usecases.CreateCounterExecutor
	listCountersUC      usecases.ListCountersExecutor
	deactivateCounterUC usecases.DeactivateCounterExecutor
	logger              logger.Interface
}

func NewCounterHandler(
	createCounterUC usecases.CreateCounterExecutor,
	listCountersUC usecases.ListCountersExecutor,
	deactivateCounterUC usecases.DeactivateCounterExecutor,
) *CounterHandler {
	return &CounterHandler{
		createCounterUC:     createCounterUC,
		listCountersUC:      listCountersUC,
		deactivateCounterUC: deactivateCounterUC,
		logger:              logger.NewLogger(),
	}
}

// CreateCounter handles POST /admin/counters
func (h *CounterHandler) CreateCounter(c *gin.Context) {
	var req CreateCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create counter", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCounterUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, toCreateCounterResponse(result), "Counter created successfully")
}

// ListCounters handles GET /admin/counters
func (h *CounterHandler) ListCounters(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	result, err := h.listCountersUC.Execute(c.Request.Context(), usecases.ListCountersCommand{ActiveOnly: activeOnly})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"counters": toCounterListResponse(result.Counters),
	})
}

// DeactivateCounter handles POST /admin/counters/:sid/deactivate
func (h *CounterHandler) DeactivateCounter(c *gin.Context) {
	counterSID, err := parseCounterSID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deactivateCounterUC.Execute(c.Request.Context(), usecases.DeactivateCounterCommand{CounterSID: counterSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Counter deactivated successfully", CounterStateResponse{
		CounterSID: result.CounterSID,
		Active:     result.Active,
	})
}

func parseCounterSID(c *gin.Context) (string, error) {
	counterSID := c.Param("sid")
	if counterSID == "" {
		return "", errors.NewValidationError("counter SID is required")
	}
	return counterSID, nil
}
