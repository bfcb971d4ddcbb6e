package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is set by the identity provider's web login for browser clients.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
