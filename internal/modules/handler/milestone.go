package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

type MilestoneHandler struct {
	svc service.MilestoneService
}

func NewMilestoneHandler(s service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{svc: s}
}

type MilestoneReq struct {
	Label       string  `json:"libelle" binding:"required,max=255" example:"Livraison v1"`
	Description *string `json:"description"`
	Status      string  `json:"statut" binding:"required,max=64" example:"en_cours"`
	ProjectID   string  `json:"projet_id" binding:"required,uuid"`
}

// ListMilestones godoc
//
//	@Summary	List milestones
//	@Tags		milestone
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Milestone}
//	@Router		/milestones [get]
func (h *MilestoneHandler) ListMilestones(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des jalons.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// ListMyMilestones godoc
//
//	@Summary	Milestones created by the caller
//	@Tags		milestone
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Milestone}
//	@Router		/milestones/mine [get]
func (h *MilestoneHandler) ListMyMilestones(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	items, err := h.svc.ListByCreator(c.Request.Context(), u.ID)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des jalons.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// CreateMilestone godoc
//
//	@Summary	Create milestone
//	@Tags		milestone
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.MilestoneReq	true	"CreateMilestone payload"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.Response{data=model.Milestone}
//	@Failure	422	{object}	serializer.Response
//	@Router		/milestones [post]
func (h *MilestoneHandler) CreateMilestone(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	req := MilestoneReq{}
	if !bind(c, &req) {
		return
	}

	m := model.Milestone{
		Label:       req.Label,
		Description: req.Description,
		Status:      req.Status,
		ProjectID:   uuid.MustParse(req.ProjectID),
		CreatorID:   u.ID,
	}
	if err := h.svc.Create(c.Request.Context(), &m); err != nil {
		respondErr(c, "Erreur lors de la création du jalon.", err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created("Jalon créé avec succès.", m))
}

// UpdateMilestone godoc
//
//	@Summary	Update milestone
//	@Tags		milestone
//	@Accept		json
//	@Produce	json
//	@Param		milestone_id	path	string					true	"Milestone ID"	Format(uuid)
//	@Param		payload			body	handler.MilestoneReq	true	"UpdateMilestone payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Milestone}
//	@Router		/milestones/{milestone_id} [put]
func (h *MilestoneHandler) UpdateMilestone(c *gin.Context) {
	id, ok := pathID(c, "milestone_id")
	if !ok {
		return
	}
	req := MilestoneReq{}
	if !bind(c, &req) {
		return
	}

	m := model.Milestone{
		Label:       req.Label,
		Description: req.Description,
		Status:      req.Status,
		ProjectID:   uuid.MustParse(req.ProjectID),
	}
	if err := h.svc.Update(c.Request.Context(), id, &m); err != nil {
		respondErr(c, "Erreur lors de la mise à jour du jalon.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Jalon mis à jour avec succès.", m))
}

// DeleteMilestone godoc
//
//	@Summary	Delete milestone
//	@Tags		milestone
//	@Produce	json
//	@Param		milestone_id	path	string	true	"Milestone ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/milestones/{milestone_id} [delete]
func (h *MilestoneHandler) DeleteMilestone(c *gin.Context) {
	id, ok := pathID(c, "milestone_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, "Erreur lors de la suppression du jalon.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Jalon supprimé avec succès.", nil))
}
