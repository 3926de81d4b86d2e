package http

import (
	"net/http"
	"strings"

	"inventory-srv/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	defaultAccessCookieName  = "accessToken"
	defaultRefreshCookieName = "refreshToken"
)

func (h *handler) accessCookieName() string {
	if h.cookie.AccessName != "" {
		return h.cookie.AccessName
	}
	return defaultAccessCookieName
}

func (h *handler) refreshCookieName() string {
	if h.cookie.RefreshName != "" {
		return h.cookie.RefreshName
	}
	return defaultRefreshCookieName
}

func (h *handler) cookiePath() string {
	if h.cookie.Path != "" {
		return h.cookie.Path
	}
	return "/"
}

func (h *handler) sameSite() http.SameSite {
	switch strings.ToLower(h.cookie.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteDefaultMode
	}
}

// setTokenCookies writes the refresh token as HttpOnly and the access token readable by scripts.
func (h *handler) setTokenCookies(c *gin.Context, tokens jwt.TokenPair) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(h.refreshCookieName(), tokens.RefreshToken, int(h.refreshTTL.Seconds()), h.cookiePath(), h.cookie.Domain, h.cookie.Secure, true)
	c.SetCookie(h.accessCookieName(), tokens.AccessToken, int(jwt.AccessTTL.Seconds()), h.cookiePath(), h.cookie.Domain, h.cookie.Secure, false)
}

func (h *handler) clearTokenCookies(c *gin.Context) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(h.refreshCookieName(), "", -1, h.cookiePath(), h.cookie.Domain, h.cookie.Secure, true)
	c.SetCookie(h.accessCookieName(), "", -1, h.cookiePath(), h.cookie.Domain, h.cookie.Secure, false)
}
