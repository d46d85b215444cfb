package middleware

import (
	"net/http"
	"strings"

	"botshield/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const blockedPage = `<!DOCTYPE html>
<html>
<head><title>403 Forbidden</title></head>
<body>
<h1>403 Forbidden</h1>
<p>Access to this resource is not permitted for automated clients.</p>
</body>
</html>`

// shield exemptions, the API and operational surfaces stay reachable
var shieldSkipPrefixes = []string{
	"/api/",
	"/health",
	"/swagger",
}

// Shield returns a gin middleware that gates requests through the
// access decision engine. Blocked crawlers receive a 403 page, every
// other request passes through untouched. A decision failure never
// blocks a visitor.
func Shield(decisions service.DecisionServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range shieldSkipPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		decision, err := decisions.Decide(c.Request.Context(), c.Request.UserAgent())
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Shield decision degraded")
		}

		if decision.Blocked {
			log.Info().
				Str("bot", decision.MatchedBot).
				Str("path", path).
				Msg("Blocked crawler request")
			c.Data(http.StatusForbidden, "text/html; charset=utf-8", []byte(blockedPage))
			c.Abort()
			return
		}

		c.Next()
	}
}
