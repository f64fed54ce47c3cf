package v1

import (
	"fmt"
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalyticsHandler struct {
	analyticsUC domain.AnalyticsUsecase
}

// NewAnalyticsHandler expects staff to be already restricted to hr/admin.
func NewAnalyticsHandler(staff *gin.RouterGroup, analyticsUC domain.AnalyticsUsecase) {
	handler := &AnalyticsHandler{analyticsUC: analyticsUC}

	analytics := staff.Group("/analytics")
	{
		analytics.GET("/applications", handler.Applications)
		analytics.GET("/applications/export", handler.Export)
	}
}

// Applications godoc
// @Summary      Application counts per day
// @Description  Without scope returns day, week and month series. Series are ascending by date.
// @Tags         analytics
// @Produce      json
// @Param        scope     query     string  false  "day, week or month"
// @Param        category  query     int     false  "Category ID"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /analytics/applications [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) Applications(c *gin.Context) {
	category, err := queryInt64(c, "category")
	if err != nil {
		c.Error(err)
		return
	}

	scope := c.Query("scope")
	if scope == "" {
		all, err := h.analyticsUC.AggregateAll(c.Request.Context(), category)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Application analytics", all)
		return
	}

	series, err := h.analyticsUC.Aggregate(c.Request.Context(), scope, category)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application analytics", gin.H{scope: series})
}

// Export godoc
// @Summary      Export application analytics
// @Description  XLSX workbook with one sheet per scope
// @Tags         analytics
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        category  query     int  false  "Category ID"
// @Success      200       {file}    file
// @Failure      404       {object}  response.Response
// @Router       /analytics/applications/export [get]
// @Security     BearerAuth
func (h *AnalyticsHandler) Export(c *gin.Context) {
	category, err := queryInt64(c, "category")
	if err != nil {
		c.Error(err)
		return
	}

	data, filename, err := h.analyticsUC.Export(c.Request.Context(), category)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
