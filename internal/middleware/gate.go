package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/primex-howard/tclass-gateway/internal/auth"
)

// ContextSessionKey is the gin context key storing the navigation session.
const ContextSessionKey = "currentSession"

// Gate evaluates the role/path policy once per navigation. The decision is
// stateless: cookies in, pass-through or redirect out. Ordering matters:
// the login path is special-cased before the generic protection check, and
// authentication is checked before authorization, so an unauthenticated hit
// on a wrong-role path lands on the login form with a redirect hint, not on
// another role's home.
func Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		session, authenticated := auth.FromRequest(c.Request)

		if path == auth.LoginPath {
			if authenticated {
				redirect(c, auth.RoleHome(session.Role))
				return
			}
			c.Next()
			return
		}

		if !auth.IsProtectedPath(path) {
			c.Next()
			return
		}

		if !authenticated {
			target := path
			if query := c.Request.URL.RawQuery; query != "" {
				target += "?" + query
			}
			redirect(c, auth.LoginPath+"?redirect="+url.QueryEscape(target))
			return
		}

		if !auth.CanAccessPath(session.Role, path) {
			// Cross-role access is blocked silently: no error page.
			redirect(c, auth.RoleHome(session.Role))
			return
		}

		c.Set(ContextSessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the session the gate stored for this request.
func SessionFrom(c *gin.Context) (auth.Session, bool) {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return auth.Session{}, false
	}
	session, ok := value.(auth.Session)
	return session, ok
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}
