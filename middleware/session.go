package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fragrance-store/config"
	"fragrance-store/utils"
)

const SessionCookie = "storefront_session"

// SessionMiddleware gives every visitor a stable session id, carried in a
// signed cookie. The id keys all session state (cart, auth, pending checkout);
// an unreadable or tampered cookie simply starts a fresh session.
func SessionMiddleware() gin.HandlerFunc {
	secret := config.AppConfig.SessionSecret
	expiry, err := time.ParseDuration(config.AppConfig.SessionExpiry)
	if err != nil {
		expiry = 720 * time.Hour
	}

	return func(c *gin.Context) {
		var sid string

		if cookie, err := c.Cookie(SessionCookie); err == nil {
			sid, _ = utils.ValidateSessionToken(secret, cookie)
		}

		if sid == "" {
			sid = uuid.NewString()
			token, err := utils.GenerateSessionToken(secret, sid, expiry)
			if err == nil {
				secure := config.AppConfig.AppEnv == "production"
				c.SetCookie(SessionCookie, token, int(expiry.Seconds()), "/", "", secure, true)
			}
		}

		c.Set("session_id", sid)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
