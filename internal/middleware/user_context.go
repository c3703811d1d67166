package middleware

import (
	"ai-act-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys written at login.
const (
	SessionUserID = "user_id"
	SessionOrgID  = "org_id"
	SessionRole   = "role"
)

const identityKey = "CurrentIdentity"

// Identity is the authenticated caller.
type Identity struct {
	UserID         uint
	OrganizationID uint
	Role           models.UserRole
}

func identityFromSession(c *gin.Context) (Identity, bool) {
	sess := sessions.Default(c)
	uid, ok := sess.Get(SessionUserID).(uint)
	if !ok || uid == 0 {
		return Identity{}, false
	}
	orgID, ok := sess.Get(SessionOrgID).(uint)
	if !ok || orgID == 0 {
		return Identity{}, false
	}
	role, _ := sess.Get(SessionRole).(string)
	return Identity{UserID: uid, OrganizationID: orgID, Role: models.UserRole(role)}, true
}

// CurrentIdentity returns the identity stored by RequireAuth.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// SetIdentity stores an identity in the context; tests use it to skip sessions.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}
