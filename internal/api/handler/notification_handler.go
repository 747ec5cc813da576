package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

// NotificationSource exposes recently delivered transient messages.
type NotificationSource interface {
	Recent() []domain.Notification
}

// NotificationHandler serves the transient message feed the UI polls.
type NotificationHandler struct {
	source NotificationSource
}

func NewNotificationHandler(source NotificationSource) *NotificationHandler {
	return &NotificationHandler{source: source}
}

type notificationListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

// List handles GET /notifications. Newest messages come last.
func (h *NotificationHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, notificationListResponse{
		Notifications: h.source.Recent(),
	})
}
