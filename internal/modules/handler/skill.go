package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projetflow/api/internal/modules/repo"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

// SkillHandler serves the caller's skills under /skills and a task's required
// skills under /tasks/:task_id/skills.
type SkillHandler struct {
	svc service.SkillService
}

func NewSkillHandler(s service.SkillService) *SkillHandler {
	return &SkillHandler{svc: s}
}

type SkillsReq struct {
	Labels []string `json:"competences" binding:"required,min=1,dive,max=255" example:"Kotlin,React"`
}

// ListAllSkills godoc
//
//	@Summary	Skill vocabulary
//	@Tags		skill
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Skill}
//	@Router		/skills/all [get]
func (h *SkillHandler) ListAllSkills(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des compétences.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// ListMySkills godoc
//
//	@Summary	Skills of the caller
//	@Tags		skill
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Skill}
//	@Router		/skills [get]
func (h *SkillHandler) ListMySkills(c *gin.Context) {
	owner, ok := userOwner(c)
	if !ok {
		return
	}
	h.list(c, owner)
}

// AddMySkills godoc
//
//	@Summary		Add skills to the caller
//	@Description	Merge labels into the caller's skills; unknown labels are created
//	@Tags			skill
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.SkillsReq	true	"AddSkills payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Skill}
//	@Router			/skills [post]
func (h *SkillHandler) AddMySkills(c *gin.Context) {
	owner, ok := userOwner(c)
	if !ok {
		return
	}
	h.add(c, owner)
}

// ReplaceMySkills godoc
//
//	@Summary		Replace the caller's skills
//	@Description	The caller ends up with exactly the given labels
//	@Tags			skill
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.SkillsReq	true	"ReplaceSkills payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Skill}
//	@Router			/skills [put]
func (h *SkillHandler) ReplaceMySkills(c *gin.Context) {
	owner, ok := userOwner(c)
	if !ok {
		return
	}
	h.replace(c, owner)
}

// ClearMySkills godoc
//
//	@Summary	Remove all the caller's skills
//	@Tags		skill
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/skills [delete]
func (h *SkillHandler) ClearMySkills(c *gin.Context) {
	owner, ok := userOwner(c)
	if !ok {
		return
	}
	h.clear(c, owner)
}

// RemoveMySkill godoc
//
//	@Summary	Remove one skill from the caller
//	@Tags		skill
//	@Produce	json
//	@Param		skill_id	path	string	true	"Skill ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/skills/{skill_id} [delete]
func (h *SkillHandler) RemoveMySkill(c *gin.Context) {
	owner, ok := userOwner(c)
	if !ok {
		return
	}
	h.remove(c, owner)
}

// ListTaskSkills godoc
//
//	@Summary	Skills required by a task
//	@Tags		skill
//	@Produce	json
//	@Param		task_id	path	string	true	"Task ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Skill}
//	@Router		/tasks/{task_id}/skills [get]
func (h *SkillHandler) ListTaskSkills(c *gin.Context) {
	owner, ok := taskOwner(c)
	if !ok {
		return
	}
	h.list(c, owner)
}

// AddTaskSkills godoc
//
//	@Summary	Add required skills to a task
//	@Tags		skill
//	@Accept		json
//	@Produce	json
//	@Param		task_id	path	string				true	"Task ID"	Format(uuid)
//	@Param		payload	body	handler.SkillsReq	true	"AddSkills payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Skill}
//	@Router		/tasks/{task_id}/skills [post]
func (h *SkillHandler) AddTaskSkills(c *gin.Context) {
	owner, ok := taskOwner(c)
	if !ok {
		return
	}
	h.add(c, owner)
}

// ReplaceTaskSkills godoc
//
//	@Summary	Replace the required skills of a task
//	@Tags		skill
//	@Accept		json
//	@Produce	json
//	@Param		task_id	path	string				true	"Task ID"	Format(uuid)
//	@Param		payload	body	handler.SkillsReq	true	"ReplaceSkills payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Skill}
//	@Router		/tasks/{task_id}/skills [put]
func (h *SkillHandler) ReplaceTaskSkills(c *gin.Context) {
	owner, ok := taskOwner(c)
	if !ok {
		return
	}
	h.replace(c, owner)
}

// ClearTaskSkills godoc
//
//	@Summary	Remove all required skills of a task
//	@Tags		skill
//	@Produce	json
//	@Param		task_id	path	string	true	"Task ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/tasks/{task_id}/skills [delete]
func (h *SkillHandler) ClearTaskSkills(c *gin.Context) {
	owner, ok := taskOwner(c)
	if !ok {
		return
	}
	h.clear(c, owner)
}

// RemoveTaskSkill godoc
//
//	@Summary	Remove one required skill from a task
//	@Tags		skill
//	@Produce	json
//	@Param		task_id		path	string	true	"Task ID"	Format(uuid)
//	@Param		skill_id	path	string	true	"Skill ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/tasks/{task_id}/skills/{skill_id} [delete]
func (h *SkillHandler) RemoveTaskSkill(c *gin.Context) {
	owner, ok := taskOwner(c)
	if !ok {
		return
	}
	h.remove(c, owner)
}

func userOwner(c *gin.Context) (repo.SkillOwner, bool) {
	u, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	return repo.UserSkills(u.ID), true
}

func taskOwner(c *gin.Context) (repo.SkillOwner, bool) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return nil, false
	}
	return repo.TaskSkills(id), true
}

func (h *SkillHandler) list(c *gin.Context, owner repo.SkillOwner) {
	items, err := h.svc.ListFor(c.Request.Context(), owner)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des compétences.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

func (h *SkillHandler) add(c *gin.Context, owner repo.SkillOwner) {
	req := SkillsReq{}
	if !bind(c, &req) {
		return
	}
	items, err := h.svc.Add(c.Request.Context(), owner, req.Labels)
	if err != nil {
		respondErr(c, "Erreur lors de l'ajout des compétences.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Compétences ajoutées avec succès.", items))
}

func (h *SkillHandler) replace(c *gin.Context, owner repo.SkillOwner) {
	req := SkillsReq{}
	if !bind(c, &req) {
		return
	}
	items, err := h.svc.Replace(c.Request.Context(), owner, req.Labels)
	if err != nil {
		respondErr(c, "Erreur lors de la mise à jour des compétences.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Compétences mises à jour avec succès.", items))
}

func (h *SkillHandler) remove(c *gin.Context, owner repo.SkillOwner) {
	skillID, ok := pathID(c, "skill_id")
	if !ok {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), owner, skillID); err != nil {
		respondErr(c, "Erreur lors du retrait de la compétence.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Compétence retirée avec succès.", nil))
}

func (h *SkillHandler) clear(c *gin.Context, owner repo.SkillOwner) {
	if err := h.svc.Clear(c.Request.Context(), owner); err != nil {
		respondErr(c, "Erreur lors de la suppression des compétences.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Compétences supprimées avec succès.", nil))
}
