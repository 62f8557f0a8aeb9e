package handler

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

const maxPhotoBytes = 2 << 20

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type RegisterReq struct {
	FullName             string `form:"nom_complet" json:"nom_complet" binding:"required,max=255" example:"Awa Diallo"`
	Email                string `form:"email" json:"email" binding:"required,email,max=255" example:"awa@example.com"`
	Password             string `form:"password" json:"password" binding:"required,strongpwd" example:"Aa1!aaaa"`
	PasswordConfirmation string `form:"password_confirmation" json:"password_confirmation" binding:"required,eqfield=Password" example:"Aa1!aaaa"`
}

// Register godoc
//
//	@Summary		Register
//	@Description	Create an account and receive a bearer token. Accepts JSON or multipart with an optional photo_profil file (jpeg/png, 2 MiB max).
//	@Tags			auth
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			payload			body		handler.RegisterReq	true	"Register payload"
//	@Param			photo_profil	formData	file				false	"Profile photo"
//	@Success		201				{object}	serializer.Response{data=service.AuthOutput}
//	@Failure		422				{object}	serializer.Response
//	@Router			/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req := RegisterReq{}
	if !bind(c, &req) {
		return
	}

	in := service.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if fh, err := c.FormFile("photo_profil"); err == nil {
			if msg := checkPhoto(fh); msg != "" {
				c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr(msg, map[string]string{"photo_profil": msg}))
				return
			}
			in.Photo = fh
		}
	}

	out, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		respondErr(c, "Erreur lors de l'inscription.", err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Created("Inscription réussie.", out))
}

// checkPhoto returns the validation message for an unacceptable profile photo,
// judged by extension, size and the sniffed content type.
func checkPhoto(fh *multipart.FileHeader) string {
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".jpg", ".jpeg", ".png":
	default:
		return "La photo doit être une image de type jpeg, png ou jpg."
	}
	if fh.Size > maxPhotoBytes {
		return "La photo ne doit pas dépasser 2048 kilo-octets."
	}

	f, err := fh.Open()
	if err != nil {
		return "La photo doit être une image."
	}
	defer f.Close()
	head := make([]byte, 512)
	n, _ := io.ReadFull(f, head)
	switch http.DetectContentType(head[:n]) {
	case "image/jpeg", "image/png":
		return ""
	default:
		return "La photo doit être une image."
	}
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email" example:"awa@example.com"`
	Password string `json:"password" binding:"required" example:"Aa1!aaaa"`
}

// Login godoc
//
//	@Summary		Login
//	@Description	Exchange credentials for a bearer token. Every previous token of the user is revoked.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.LoginReq	true	"Login payload"
//	@Success		200		{object}	serializer.Response{data=service.AuthOutput}
//	@Failure		401		{object}	serializer.Response
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if !bind(c, &req) {
		return
	}

	out, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondErr(c, "Erreur lors de la connexion.", err)
		return
	}

	c.JSON(http.StatusOK, serializer.OK("Connexion réussie.", out))
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	Revoke the token used for this request
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := c.MustGet("principal").(*service.Principal)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}
	if err := h.svc.Logout(c.Request.Context(), p); err != nil {
		respondErr(c, "Erreur lors de la déconnexion.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Déconnexion réussie.", nil))
}

// Me godoc
//
//	@Summary		Current user
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.User}
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", u))
}
