package middleware

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/auctionhaus/go-auctionhaus/service/logger"
)

// ErrLogger logs any errors attached to the gin context after the handler
// chain runs.
func ErrLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) > 0 {
			logger.For(c).Errorf("%s %s: %s", c.Request.Method, c.Request.URL.Path, c.Errors.JSON())
		}
	}
}

// Sentry recovers panics into Sentry and optionally reports handler errors
// attached to the gin context.
func Sentry(reportGinErrors bool) gin.HandlerFunc {
	handler := sentrygin.New(sentrygin.Options{Repanic: true})

	return func(c *gin.Context) {
		handler(c)

		if reportGinErrors {
			if hub := sentrygin.GetHubFromContext(c); hub != nil {
				for _, err := range c.Errors {
					hub.CaptureException(err)
				}
			}
		}
	}
}
