// Package auth holds the role/path policy and the cookie session pair the
// gate evaluates on every navigation.
package auth

import (
	"net/http"
	"strings"
)

// Role identifies the three dashboard audiences.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// Cookie names carrying the session pair. Both must be present for a
// navigation to count as authenticated.
const (
	CookieToken = "tclass_token"
	CookieRole  = "tclass_role"
)

// LoginPath is the only path with special-cased gate handling.
const LoginPath = "/login"

var roleHomes = map[Role]string{
	RoleStudent: "/student",
	RoleFaculty: "/faculty",
	RoleAdmin:   "/admin",
}

// NormalizeRole canonicalizes a raw cookie value. Cookie values arrive with
// incidental padding and mixed case, so the match is trimmed and lowered.
func NormalizeRole(raw string) (Role, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch Role(value) {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return Role(value), true
	}
	return "", false
}

// RoleHome returns the dashboard root for a normalized role.
func RoleHome(role Role) string {
	return roleHomes[role]
}

// IsProtectedPath reports whether the path lives under a role-scoped prefix.
func IsProtectedPath(path string) bool {
	return strings.HasPrefix(path, "/student") ||
		strings.HasPrefix(path, "/faculty") ||
		strings.HasPrefix(path, "/admin")
}

// CanAccessPath reports whether the role may navigate to the path. The
// leading segment must match the role's home segment exactly; paths outside
// the three protected segments need no role at all.
func CanAccessPath(role Role, path string) bool {
	switch leadingSegment(path) {
	case "student":
		return role == RoleStudent
	case "faculty":
		return role == RoleFaculty
	case "admin":
		return role == RoleAdmin
	}
	return true
}

func leadingSegment(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

// Session is the authenticated browsing context derived from the cookie
// pair. The token stays opaque; only the upstream API can interpret it.
type Session struct {
	Token string
	Role  Role
}

// FromRequest reads the cookie pair. The second return is false when either
// cookie is absent or the role fails to normalize.
func FromRequest(r *http.Request) (Session, bool) {
	token, err := r.Cookie(CookieToken)
	if err != nil || token.Value == "" {
		return Session{}, false
	}
	rawRole, err := r.Cookie(CookieRole)
	if err != nil {
		return Session{}, false
	}
	role, ok := NormalizeRole(rawRole.Value)
	if !ok {
		return Session{}, false
	}
	return Session{Token: token.Value, Role: role}, true
}

// ClearCookies expires both session cookies on the response, the logout
// contract: empty value, immediate expiry.
func ClearCookies(w http.ResponseWriter) {
	for _, name := range []string{CookieToken, CookieRole} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
}
