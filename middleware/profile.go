package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileIDKey is the gin context key the profile middleware sets.
const ProfileIDKey = "profileID"

// ProfileHeader identifies the caller's browser profile. Clients store the
// minted id and send it back on every request.
const ProfileHeader = "X-Profile-ID"

// ProfileMiddleware resolves the profile id for the request, minting a new
// uuid when the header is absent. The id is echoed back so first-time
// clients can persist it.
func ProfileMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID := c.GetHeader(ProfileHeader)
		if profileID == "" {
			profileID = uuid.New().String()
		}
		c.Set(ProfileIDKey, profileID)
		c.Header(ProfileHeader, profileID)
		c.Next()
	}
}

// ProfileID returns the resolved profile id for the request.
func ProfileID(c *gin.Context) string {
	id, _ := c.Get(ProfileIDKey)
	s, _ := id.(string)
	return s
}
