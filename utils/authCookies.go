package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

func SetAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	writeAuthCookie(c, "accessToken", accessToken, int(AccessTokenExpiry/time.Second))
	writeAuthCookie(c, "refreshToken", refreshToken, int(RefreshTokenExpiry/time.Second))
}

func ClearAuthCookies(c *gin.Context) {
	writeAuthCookie(c, "accessToken", "", -1)
	writeAuthCookie(c, "refreshToken", "", -1)
}

// writeAuthCookie always sets HttpOnly; Secure is dropped only in debug
// mode so local frontends without TLS can log in.
func writeAuthCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", "", gin.Mode() != gin.DebugMode, true)
}
