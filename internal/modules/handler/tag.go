package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

type TagHandler struct {
	svc service.TagService
}

func NewTagHandler(s service.TagService) *TagHandler {
	return &TagHandler{svc: s}
}

type TagReq struct {
	Label string `json:"libelle" binding:"required,max=255" example:"urgent"`
}

// ListTags godoc
//
//	@Summary	List tags
//	@Tags		tag
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Tag}
//	@Router		/tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des tags.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// CreateTag godoc
//
//	@Summary	Create tag
//	@Tags		tag
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.TagReq	true	"CreateTag payload"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.Response{data=model.Tag}
//	@Router		/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	req := TagReq{}
	if !bind(c, &req) {
		return
	}
	t := model.Tag{Label: req.Label}
	if err := h.svc.Create(c.Request.Context(), &t); err != nil {
		respondErr(c, "Erreur lors de la création du tag.", err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created("Tag créé avec succès.", t))
}

// UpdateTag godoc
//
//	@Summary	Update tag
//	@Tags		tag
//	@Accept		json
//	@Produce	json
//	@Param		tag_id	path	string			true	"Tag ID"	Format(uuid)
//	@Param		payload	body	handler.TagReq	true	"UpdateTag payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Tag}
//	@Router		/tags/{tag_id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := pathID(c, "tag_id")
	if !ok {
		return
	}
	req := TagReq{}
	if !bind(c, &req) {
		return
	}
	t := model.Tag{Label: req.Label}
	if err := h.svc.Update(c.Request.Context(), id, &t); err != nil {
		respondErr(c, "Erreur lors de la mise à jour du tag.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Tag mis à jour avec succès.", t))
}

// DeleteTag godoc
//
//	@Summary		Delete tag
//	@Description	Deleting a tag deletes the tasks carrying it
//	@Tags			tag
//	@Produce		json
//	@Param			tag_id	path	string	true	"Tag ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/tags/{tag_id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := pathID(c, "tag_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, "Erreur lors de la suppression du tag.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Tag supprimé avec succès.", nil))
}
