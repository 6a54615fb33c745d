package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stackit/community-api/internal/api/envelope"
	"github.com/stackit/community-api/internal/core/ports"
)

// NotificationHandler lists the caller's notifications. Read-only; the
// creation path is the answer flow's dispatcher, not an endpoint.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /notifications, scoped to the authenticated subject.
//
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope.Response
// @Failure      400  {object}  envelope.Response
// @Router       /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	subject, err := subjectID(c)
	if err != nil {
		return err
	}

	notifications, err := h.service.ListForUser(c.Request().Context(), subject)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope.OK("Notifications fetched successfully.", notifications))
}
