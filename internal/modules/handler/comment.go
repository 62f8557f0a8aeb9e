package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

type CommentHandler struct {
	svc service.CommentService
}

func NewCommentHandler(s service.CommentService) *CommentHandler {
	return &CommentHandler{svc: s}
}

type CommentReq struct {
	Message string `json:"message" binding:"required" example:"Maquette validée"`
	TaskID  string `json:"tache_id" binding:"required,uuid"`
}

// ListComments godoc
//
//	@Summary	List comments
//	@Tags		comment
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Comment}
//	@Router		/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des commentaires.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// ListTaskComments godoc
//
//	@Summary	Comments of a task
//	@Tags		comment
//	@Produce	json
//	@Param		task_id	path	string	true	"Task ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Comment}
//	@Router		/tasks/{task_id}/comments [get]
func (h *CommentHandler) ListTaskComments(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	items, err := h.svc.ListByTask(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des commentaires.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// ListUserComments godoc
//
//	@Summary	Comments written by a user
//	@Tags		comment
//	@Produce	json
//	@Param		user_id	path	string	true	"User ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Comment}
//	@Router		/users/{user_id}/comments [get]
func (h *CommentHandler) ListUserComments(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	items, err := h.svc.ListByAuthor(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des commentaires.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// CreateComment godoc
//
//	@Summary		Create comment
//	@Description	The caller is recorded as author
//	@Tags			comment
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CommentReq	true	"CreateComment payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Comment}
//	@Router			/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	req := CommentReq{}
	if !bind(c, &req) {
		return
	}

	cm := model.Comment{Message: req.Message, TaskID: uuid.MustParse(req.TaskID), AuthorID: u.ID}
	if err := h.svc.Create(c.Request.Context(), &cm); err != nil {
		respondErr(c, "Erreur lors de l'ajout du commentaire.", err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created("Commentaire ajouté avec succès.", cm))
}

// UpdateComment godoc
//
//	@Summary	Update comment
//	@Tags		comment
//	@Accept		json
//	@Produce	json
//	@Param		comment_id	path	string				true	"Comment ID"	Format(uuid)
//	@Param		payload		body	handler.CommentReq	true	"UpdateComment payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Comment}
//	@Router		/comments/{comment_id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	req := CommentReq{}
	if !bind(c, &req) {
		return
	}

	cm := model.Comment{Message: req.Message, TaskID: uuid.MustParse(req.TaskID)}
	if err := h.svc.Update(c.Request.Context(), id, &cm); err != nil {
		respondErr(c, "Erreur lors de la mise à jour du commentaire.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Commentaire mis à jour avec succès.", cm))
}

// DeleteComment godoc
//
//	@Summary	Delete comment
//	@Tags		comment
//	@Produce	json
//	@Param		comment_id	path	string	true	"Comment ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/comments/{comment_id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, "Erreur lors de la suppression du commentaire.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Commentaire supprimé avec succès.", nil))
}
