package middleware

import (
	"crypto/subtle"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/integra/explorer/api"
	"github.com/rs/zerolog/log"
)

var ErrUnauthorized = fmt.Errorf("invalid username or password")

// Authorization enforces HTTP basic auth against the given credentials.
// An empty username disables the check.
func Authorization(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if username == "" {
			c.Next()
			return
		}
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !validateCredentials(user, pass, username, password) {
			log.Debug().Str("path", c.Request.URL.Path).Msg(ErrUnauthorized.Error())
			api.UnauthorizedErrorHandler(c, ErrUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}

func validateCredentials(user, pass, username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
	return userMatch && passMatch
}
