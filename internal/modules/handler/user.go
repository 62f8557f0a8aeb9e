package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{svc: s}
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		user
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.User}
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des utilisateurs.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", users))
}

type UpdateUserReq struct {
	FullName string `form:"nom_complet" json:"nom_complet" binding:"required,max=255"`
	Email    string `form:"email" json:"email" binding:"required,email,max=255"`
}

// UpdateUser godoc
//
//	@Summary		Update user
//	@Description	Update a profile. A multipart request may carry a new photo_profil replacing the old one.
//	@Tags			user
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			user_id			path		string					true	"User ID"	Format(uuid)
//	@Param			payload			body		handler.UpdateUserReq	true	"UpdateUser payload"
//	@Param			photo_profil	formData	file					false	"Profile photo"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.User}
//	@Router			/users/{user_id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	req := UpdateUserReq{}
	if !bind(c, &req) {
		return
	}

	in := service.UpdateUserInput{FullName: req.FullName, Email: req.Email}
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if fh, err := c.FormFile("photo_profil"); err == nil {
			if msg := checkPhoto(fh); msg != "" {
				c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr(msg, map[string]string{"photo_profil": msg}))
				return
			}
			in.Photo = fh
		}
	}

	u, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondErr(c, "Erreur lors de la mise à jour de l'utilisateur.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Utilisateur mis à jour avec succès.", u))
}

// DeleteUser godoc
//
//	@Summary		Delete user
//	@Description	Delete a user together with everything that references it
//	@Tags			user
//	@Produce		json
//	@Param			user_id	path	string	true	"User ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/users/{user_id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, "Erreur lors de la suppression de l'utilisateur.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Utilisateur supprimé avec succès.", nil))
}
