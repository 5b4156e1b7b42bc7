package handlers

import (
	"net/http"

	"jobport/internal/app"
	"jobport/internal/domain/notification"
	"jobport/internal/http/response"
)

type NotificationHandler struct {
	notifications *app.NotificationService
}

func NewNotificationHandler(notifications *app.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.notifications.List(r.Context(), principal)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []notification.Notification{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	id, err := idFromPath(r.URL.Path, "/notifications/", "/read")
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.notifications.MarkRead(r.Context(), principal, id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"status": "read"})
}
