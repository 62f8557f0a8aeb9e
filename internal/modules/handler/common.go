package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projetflow/api/internal/infra/blob"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
	"github.com/projetflow/api/internal/pkg/validate"
	"gorm.io/gorm"
)

// respondErr maps a service error to its status. msg is used for unexpected failures.
func respondErr(c *gin.Context, msg string, err error) {
	var fe *service.FieldError
	switch {
	case errors.As(err, &fe):
		c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr(fe.Msg, map[string]string{fe.Field: fe.Msg}))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr("Identifiants invalides."))
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
	case errors.Is(err, blob.ErrObjectNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr("Fichier non trouvé."))
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, serializer.NotFoundErr(""))
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr("Une ressource référencée n'existe pas.", nil))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, serializer.ConflictErr("", err))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, serializer.DBErr(msg, err))
	}
}

// bind validates the request body and writes a 422 on failure.
func bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		msg, fields, ok := validate.Translate(err)
		if !ok {
			c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr("Corps de requête invalide.", nil))
			return false
		}
		c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr(msg, fields))
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("Identifiant invalide: "+name, err))
		return uuid.Nil, false
	}
	return id, true
}

func currentUser(c *gin.Context) (*model.User, bool) {
	u, ok := c.MustGet("user").(*model.User)
	if !ok || u == nil {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return nil, false
	}
	return u, true
}

// optUUID reads an already validated optional id.
func optUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func optDate(s *string) *model.Date {
	if s == nil || *s == "" {
		return nil
	}
	d, err := model.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &d
}
