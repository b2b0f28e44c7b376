package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// Cookie names per identity pool. Each pool's cookie is set and cleared
// independently; logging out of one pool leaves the others untouched.
const (
	AdminCookie  = "Admincookie"
	MemberCookie = "Membercookie"
	UserCookie   = "Usercookie"
)

// CookieName returns the session cookie name for a pool.
func CookieName(pool domain.Pool) string {
	switch pool {
	case domain.PoolAdmin:
		return AdminCookie
	case domain.PoolMember:
		return MemberCookie
	default:
		return UserCookie
	}
}

// SetSessionCookie attaches the signed token as an HTTP-only, same-site
// cookie. Secure is enabled in production only.
func SetSessionCookie(c *fiber.Ctx, pool domain.Pool, token string, expiresAt time.Time, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName(pool),
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   secure,
	})
}

// ClearSessionCookie expires the pool's cookie.
func ClearSessionCookie(c *fiber.Ctx, pool domain.Pool) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName(pool),
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
