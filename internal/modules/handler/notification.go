package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: s}
}

type NotificationReq struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	TaskID  string `json:"tache_id" binding:"required,uuid"`
	Content string `json:"contenu" binding:"required"`
}

// ListMyNotifications godoc
//
//	@Summary	Notifications of the caller, newest first
//	@Tags		notification
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Notification}
//	@Router		/notifications [get]
func (h *NotificationHandler) ListMyNotifications(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.svc.ListByUser(c.Request.Context(), u.ID)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des notifications.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// ListTaskNotifications godoc
//
//	@Summary	Notifications about a task
//	@Tags		notification
//	@Produce	json
//	@Param		task_id	path	string	true	"Task ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Notification}
//	@Router		/tasks/{task_id}/notifications [get]
func (h *NotificationHandler) ListTaskNotifications(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	items, err := h.svc.ListByTask(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des notifications.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// CreateNotification godoc
//
//	@Summary	Send notification
//	@Tags		notification
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.NotificationReq	true	"CreateNotification payload"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.Response{data=model.Notification}
//	@Router		/notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	req := NotificationReq{}
	if !bind(c, &req) {
		return
	}
	n := model.Notification{
		UserID:  uuid.MustParse(req.UserID),
		TaskID:  uuid.MustParse(req.TaskID),
		Content: req.Content,
	}
	if err := h.svc.Create(c.Request.Context(), &n); err != nil {
		respondErr(c, "Erreur lors de l'envoi de la notification.", err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created("Notification envoyée avec succès.", n))
}

// MarkNotificationRead godoc
//
//	@Summary	Mark notification read
//	@Tags		notification
//	@Produce	json
//	@Param		notification_id	path	string	true	"Notification ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Notification}
//	@Router		/notifications/{notification_id}/read [post]
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "notification_id")
	if !ok {
		return
	}
	n, err := h.svc.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la mise à jour de la notification.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Notification marquée comme lue.", n))
}

type MarkAllReadResp struct {
	Updated int64 `json:"updated"`
}

// MarkAllNotificationsRead godoc
//
//	@Summary	Mark all the caller's notifications read
//	@Tags		notification
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=handler.MarkAllReadResp}
//	@Router		/notifications/read_all [post]
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	n, err := h.svc.MarkAllRead(c.Request.Context(), u.ID)
	if err != nil {
		respondErr(c, "Erreur lors de la mise à jour des notifications.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Notifications marquées comme lues.", MarkAllReadResp{Updated: n}))
}

// DeleteNotification godoc
//
//	@Summary	Delete notification
//	@Tags		notification
//	@Produce	json
//	@Param		notification_id	path	string	true	"Notification ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/notifications/{notification_id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, ok := pathID(c, "notification_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, "Erreur lors de la suppression de la notification.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Notification supprimée avec succès.", nil))
}
