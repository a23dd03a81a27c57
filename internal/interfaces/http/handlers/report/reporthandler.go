package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lineup/internal/application/reporting/usecases"
	"lineup/internal/shared/errors"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/utils"
)

// ReportHandler serves end-of-day throughput numbers. Reports read the
// persisted aggregates, never the live ticket table.
type ReportHandler struct {
	dailyReportUC usecases.GetDailyReportExecutor
	queueReportUC usecases.GetQueueReportExecutor
	logger        logger.Interface
}

func NewReportHandler(
	dailyReportUC usecases.GetDailyReportExecutor,
	queueReportUC usecases.GetQueueReportExecutor,
) *ReportHandler {
	return &ReportHandler{
		dailyReportUC: dailyReportUC,
		queueReportUC: queueReportUC,
		logger:        logger.NewLogger(),
	}
}

// GetDailyReport returns aggregated stats for every queue on one day
// @Summary Daily report
// @Description Per-queue counts and timing aggregates for a calendar day
// @Tags Reports
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} utils.APIResponse{data=DailyReportResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /admin/reports/daily [get]
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	result, err := h.dailyReportUC.Execute(c.Request.Context(), usecases.GetDailyReportCommand{
		Day: c.Query("date"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toDailyReportResponse(result))
}

// GetQueueReport handles GET /admin/queues/:qid/report
func (h *ReportHandler) GetQueueReport(c *gin.Context) {
	queueSID := c.Param("qid")
	if queueSID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("queue SID is required"))
		return
	}

	result, err := h.queueReportUC.Execute(c.Request.Context(), usecases.GetQueueReportCommand{
		QueueSID: queueSID,
		Day:      c.Query("date"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toQueueReportResponse(*result))
}
