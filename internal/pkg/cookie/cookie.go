// Package cookie manages the HttpOnly token pair the auth endpoints set.
package cookie

import (
	"net/http"
	"time"

	"cuponera/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	setTokenCookie(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	setTokenCookie(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

// ClearTokenCookies expires both token cookies on the client.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	setTokenCookie(c, cfg, AccessTokenCookieName, "", -1)
	setTokenCookie(c, cfg, RefreshTokenCookieName, "", -1)
}

func setTokenCookie(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func parseSameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
