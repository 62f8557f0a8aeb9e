package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

type ProjectHandler struct {
	svc        service.ProjectService
	milestones service.MilestoneService
	tasks      service.TaskService
}

func NewProjectHandler(s service.ProjectService, milestones service.MilestoneService, tasks service.TaskService) *ProjectHandler {
	return &ProjectHandler{svc: s, milestones: milestones, tasks: tasks}
}

type ProjectReq struct {
	Title       string  `json:"titre" binding:"required,max=255" example:"Refonte du site"`
	Description *string `json:"description"`
	StartDate   *string `json:"date_debut" binding:"omitempty,datetime=2006-01-02" example:"2025-01-06"`
	EndDate     *string `json:"date_fin" binding:"omitempty,datetime=2006-01-02" example:"2025-03-28"`
	TeamID      string  `json:"equipe_id" binding:"required,uuid"`
}

func (r ProjectReq) project() model.Project {
	return model.Project{
		Title:       r.Title,
		Description: r.Description,
		StartDate:   optDate(r.StartDate),
		EndDate:     optDate(r.EndDate),
		TeamID:      uuid.MustParse(r.TeamID),
	}
}

// ListProjects godoc
//
//	@Summary	List projects
//	@Tags		project
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des projets.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", projects))
}

// ListMyProjects godoc
//
//	@Summary	Projects owned by the caller
//	@Tags		project
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/projects/mine [get]
func (h *ProjectHandler) ListMyProjects(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	projects, err := h.svc.ListByOwner(c.Request.Context(), u.ID)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des projets.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", projects))
}

// ListJoinedProjects godoc
//
//	@Summary	Projects of the teams the caller belongs to
//	@Tags		project
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Project}
//	@Router		/projects/joined [get]
func (h *ProjectHandler) ListJoinedProjects(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	projects, err := h.svc.ListJoined(c.Request.Context(), u.ID)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des projets.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", projects))
}

// GetProject godoc
//
//	@Summary	Get project
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Project}
//	@Failure	404	{object}	serializer.Response
//	@Router		/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération du projet.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", p))
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	The caller becomes the owner
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.ProjectReq	true	"CreateProject payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Failure		422	{object}	serializer.Response
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	req := ProjectReq{}
	if !bind(c, &req) {
		return
	}

	p := req.project()
	p.OwnerID = u.ID
	if err := h.svc.Create(c.Request.Context(), &p); err != nil {
		respondErr(c, "Erreur lors de la création du projet.", err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created("Projet créé avec succès.", p))
}

// UpdateProject godoc
//
//	@Summary	Update project
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		project_id	path	string				true	"Project ID"	Format(uuid)
//	@Param		payload		body	handler.ProjectReq	true	"UpdateProject payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Project}
//	@Router		/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	req := ProjectReq{}
	if !bind(c, &req) {
		return
	}

	p := req.project()
	if err := h.svc.Update(c.Request.Context(), id, &p); err != nil {
		respondErr(c, "Erreur lors de la mise à jour du projet.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Projet mis à jour avec succès.", p))
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project with its milestones and tasks
//	@Tags			project
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, "Erreur lors de la suppression du projet.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Projet supprimé avec succès.", nil))
}

// ListProjectMilestones godoc
//
//	@Summary	Milestones of a project
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Milestone}
//	@Router		/projects/{project_id}/milestones [get]
func (h *ProjectHandler) ListProjectMilestones(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	items, err := h.milestones.ListByProject(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des jalons.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// ListProjectTasks godoc
//
//	@Summary	Tasks of a project
//	@Tags		project
//	@Produce	json
//	@Param		project_id	path	string	true	"Project ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Task}
//	@Router		/projects/{project_id}/tasks [get]
func (h *ProjectHandler) ListProjectTasks(c *gin.Context) {
	id, ok := pathID(c, "project_id")
	if !ok {
		return
	}
	items, err := h.tasks.ListByProject(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des tâches.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}
