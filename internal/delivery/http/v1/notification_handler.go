package v1

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

func NewNotificationHandler(protected *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	protected.GET("/notifications", handler.ListUnread)
	protected.POST("/notifications/:id/seen", handler.MarkSeen)
}

// ListUnread godoc
// @Summary      Unread notifications
// @Description  Users see decisions on their applications, HR sees new submissions for their companies, admin sees everything unread
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Notification}
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) ListUnread(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}

	items, err := h.notificationUC.ListUnread(c.Request.Context(), p)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Unread notifications", items)
}

// MarkSeen godoc
// @Summary      Mark notification as seen
// @Description  Idempotent. Only the recipient may mark a notification.
// @Tags         notifications
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  response.Response{data=domain.Notification}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id}/seen [post]
// @Security     BearerAuth
func (h *NotificationHandler) MarkSeen(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	n, err := h.notificationUC.MarkSeen(c.Request.Context(), p, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notification marked as seen", n)
}
