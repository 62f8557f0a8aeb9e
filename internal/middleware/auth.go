package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

// UserAuth resolves the bearer token of the request to its user.
// It sets "user" (*model.User), "user_id" and "principal" (*service.Principal) in the
// context and tags the current span with user_id.
func UserAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr(""))
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		p, err := auth.Authenticate(c.Request.Context(), raw)
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr(""))
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			span.SetAttributes(attribute.String("user_id", p.User.ID.String()))
		}

		c.Set("user", p.User)
		c.Set("user_id", p.User.ID.String())
		c.Set("principal", p)
		c.Next()
	}
}
