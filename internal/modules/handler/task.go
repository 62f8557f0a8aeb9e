package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

type TaskReq struct {
	Title       string  `json:"titre" binding:"required,max=255" example:"Maquettes"`
	Description *string `json:"description"`
	Priority    string  `json:"priorite" binding:"required,max=32" example:"haute"`
	StartDate   string  `json:"date_debut" binding:"required,datetime=2006-01-02" example:"2025-01-06"`
	EndDate     string  `json:"date_fin" binding:"required,datetime=2006-01-02" example:"2025-01-10"`
	Status      string  `json:"statut" binding:"omitempty,max=64" example:"en_attente"`
	TagID       *string `json:"tag_id" binding:"omitempty,uuid"`
	ProjectID   string  `json:"projet_id" binding:"required,uuid"`
	AssigneeID  *string `json:"user_id" binding:"omitempty,uuid"`
	MilestoneID *string `json:"jalon_id" binding:"omitempty,uuid"`
}

func (r TaskReq) task() model.Task {
	// Both dates passed the datetime rule.
	start, _ := model.ParseDate(r.StartDate)
	end, _ := model.ParseDate(r.EndDate)
	return model.Task{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		StartDate:   start,
		EndDate:     end,
		Status:      r.Status,
		TagID:       optUUID(r.TagID),
		ProjectID:   uuid.MustParse(r.ProjectID),
		AssigneeID:  optUUID(r.AssigneeID),
		MilestoneID: optUUID(r.MilestoneID),
	}
}

// ListTasks godoc
//
//	@Summary	List tasks
//	@Tags		task
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Task}
//	@Router		/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des tâches.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", tasks))
}

// ListMyTasks godoc
//
//	@Summary	Tasks assigned to the caller
//	@Tags		task
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Task}
//	@Router		/tasks/mine [get]
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	tasks, err := h.svc.ListByAssignee(c.Request.Context(), u.ID)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des tâches.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", tasks))
}

// CreateTask godoc
//
//	@Summary		Create task
//	@Description	Create a task. When user_id is set the assignee receives a notification in the same transaction.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.TaskReq	true	"CreateTask payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Task}
//	@Failure		422	{object}	serializer.Response
//	@Router			/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	req := TaskReq{}
	if !bind(c, &req) {
		return
	}

	t := req.task()
	t.CreatorID = u.ID
	if err := h.svc.Create(c.Request.Context(), &t); err != nil {
		respondErr(c, "Erreur lors de la création de la tâche.", err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created("Tâche créée avec succès.", t))
}

// UpdateTask godoc
//
//	@Summary		Update task
//	@Description	Rewrite a task. A set user_id notifies the assignee again.
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			task_id	path	string			true	"Task ID"	Format(uuid)
//	@Param			payload	body	handler.TaskReq	true	"UpdateTask payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Task}
//	@Router			/tasks/{task_id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	req := TaskReq{}
	if !bind(c, &req) {
		return
	}

	t := req.task()
	if err := h.svc.Update(c.Request.Context(), id, &t); err != nil {
		respondErr(c, "Erreur lors de la mise à jour de la tâche.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Tâche mise à jour avec succès.", t))
}

type TaskStatusReq struct {
	Status string `json:"statut" binding:"required,max=64" example:"terminee"`
}

// UpdateTaskStatus godoc
//
//	@Summary	Change task status
//	@Tags		task
//	@Accept		json
//	@Produce	json
//	@Param		task_id	path	string					true	"Task ID"	Format(uuid)
//	@Param		payload	body	handler.TaskStatusReq	true	"UpdateTaskStatus payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Task}
//	@Router		/tasks/{task_id}/status [patch]
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	req := TaskStatusReq{}
	if !bind(c, &req) {
		return
	}

	t, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondErr(c, "Erreur lors de la mise à jour du statut.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Statut modifié avec succès.", t))
}

// DeleteTask godoc
//
//	@Summary	Delete task
//	@Tags		task
//	@Produce	json
//	@Param		task_id	path	string	true	"Task ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/tasks/{task_id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, "Erreur lors de la suppression de la tâche.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Tâche supprimée avec succès.", nil))
}
