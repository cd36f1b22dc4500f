package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/primex-howard/tclass-gateway/internal/auth"
	"github.com/primex-howard/tclass-gateway/internal/middleware"
	appErrors "github.com/primex-howard/tclass-gateway/pkg/errors"
	"github.com/primex-howard/tclass-gateway/pkg/response"
)

// sessionOrAbort returns the gate-stored session, writing the error
// response itself when the session is absent.
func sessionOrAbort(c *gin.Context) (auth.Session, bool) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
	}
	return session, ok
}
