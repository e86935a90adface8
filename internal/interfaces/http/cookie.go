package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RefreshCookie nombre de la cookie httpOnly que transporta el refresh token.
const RefreshCookie = "refreshToken"

// CookieConfig atributos de la cookie de refresh.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

func setRefreshCookie(c *fiber.Ctx, cfg CookieConfig, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func clearRefreshCookie(c *fiber.Ctx, cfg CookieConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     RefreshCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}
