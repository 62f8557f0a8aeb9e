package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(s service.TeamService) *TeamHandler {
	return &TeamHandler{svc: s}
}

type TeamReq struct {
	Label       string  `json:"libelle" binding:"required,max=255" example:"Equipe Web"`
	Description *string `json:"description" example:"Front et back"`
}

// ListTeams godoc
//
//	@Summary	List teams
//	@Tags		team
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Team}
//	@Router		/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des équipes.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", teams))
}

// ListMyTeams godoc
//
//	@Summary	Teams created by the caller
//	@Tags		team
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Team}
//	@Router		/teams/mine [get]
func (h *TeamHandler) ListMyTeams(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	teams, err := h.svc.ListByCreator(c.Request.Context(), u.ID)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des équipes.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", teams))
}

// ListJoinedTeams godoc
//
//	@Summary	Teams the caller belongs to
//	@Tags		team
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Team}
//	@Router		/teams/joined [get]
func (h *TeamHandler) ListJoinedTeams(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	h.listJoined(c, u.ID)
}

// ListUserTeams godoc
//
//	@Summary	Teams a user belongs to
//	@Tags		team
//	@Produce	json
//	@Param		user_id	path	string	true	"User ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Team}
//	@Router		/users/{user_id}/teams [get]
func (h *TeamHandler) ListUserTeams(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	h.listJoined(c, id)
}

func (h *TeamHandler) listJoined(c *gin.Context, userID uuid.UUID) {
	teams, err := h.svc.ListJoined(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des équipes.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", teams))
}

// CreateTeam godoc
//
//	@Summary		Create team
//	@Description	Create a team; the caller joins it as leader
//	@Tags			team
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.TeamReq	true	"CreateTeam payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Team}
//	@Router			/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	req := TeamReq{}
	if !bind(c, &req) {
		return
	}

	team := model.Team{Label: req.Label, Description: req.Description, CreatorID: u.ID}
	if err := h.svc.Create(c.Request.Context(), &team); err != nil {
		respondErr(c, "Erreur lors de la création de l'équipe.", err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created("Équipe créée avec succès.", team))
}

// UpdateTeam godoc
//
//	@Summary	Update team
//	@Tags		team
//	@Accept		json
//	@Produce	json
//	@Param		team_id	path	string			true	"Team ID"	Format(uuid)
//	@Param		payload	body	handler.TeamReq	true	"UpdateTeam payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Team}
//	@Router		/teams/{team_id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	req := TeamReq{}
	if !bind(c, &req) {
		return
	}

	team := model.Team{Label: req.Label, Description: req.Description}
	if err := h.svc.Update(c.Request.Context(), id, &team); err != nil {
		respondErr(c, "Erreur lors de la mise à jour de l'équipe.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Équipe mise à jour avec succès.", team))
}

// DeleteTeam godoc
//
//	@Summary		Delete team
//	@Description	Delete a team, its memberships and its projects
//	@Tags			team
//	@Produce		json
//	@Param			team_id	path	string	true	"Team ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/teams/{team_id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, "Erreur lors de la suppression de l'équipe.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Équipe supprimée avec succès.", nil))
}

// GetTeamCreator godoc
//
//	@Summary	Team creator
//	@Tags		team
//	@Produce	json
//	@Param		team_id	path	string	true	"Team ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.User}
//	@Router		/teams/{team_id}/creator [get]
func (h *TeamHandler) GetTeamCreator(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	u, err := h.svc.GetCreator(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération du créateur.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", u))
}

// ListMembers godoc
//
//	@Summary	Team members with their role
//	@Tags		team
//	@Produce	json
//	@Param		team_id	path	string	true	"Team ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.TeamMember}
//	@Router		/teams/{team_id}/members [get]
func (h *TeamHandler) ListMembers(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	members, err := h.svc.ListMembers(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des membres.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", members))
}

type AddMembersReq struct {
	UserIDs []string `json:"user_ids" binding:"required,min=1,dive,uuid"`
	Role    string   `json:"role" binding:"omitempty,oneof=leader membre" example:"membre"`
}

// AddMembers godoc
//
//	@Summary		Add members
//	@Description	Attach users to the team without detaching others. Existing members get the given role.
//	@Tags			team
//	@Accept			json
//	@Produce		json
//	@Param			team_id	path	string					true	"Team ID"	Format(uuid)
//	@Param			payload	body	handler.AddMembersReq	true	"AddMembers payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.TeamMember}
//	@Router			/teams/{team_id}/members [post]
func (h *TeamHandler) AddMembers(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	req := AddMembersReq{}
	if !bind(c, &req) {
		return
	}

	userIDs := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, s := range req.UserIDs {
		userIDs = append(userIDs, uuid.MustParse(s))
	}
	members, err := h.svc.AddMembers(c.Request.Context(), id, userIDs, req.Role)
	if err != nil {
		respondErr(c, "Erreur lors de l'ajout des membres.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Membres ajoutés avec succès.", members))
}

// RemoveMember godoc
//
//	@Summary	Remove member
//	@Tags		team
//	@Produce	json
//	@Param		team_id	path	string	true	"Team ID"	Format(uuid)
//	@Param		user_id	path	string	true	"User ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/teams/{team_id}/members/{user_id} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	id, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.svc.RemoveMember(c.Request.Context(), id, userID); err != nil {
		respondErr(c, "Erreur lors du retrait du membre.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Membre retiré avec succès.", nil))
}
