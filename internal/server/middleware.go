package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	authdomain "github.com/storelane/storelane/internal/auth/domain"
	"go.uber.org/zap"
)

const contextUserKey = "user"

// AuthRequired validates the bearer access token and stores the resolved
// user on the request context.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			AbortWithError(c, authdomain.ErrInvalidToken)
			return
		}

		user, err := s.authSvc.ResolveUser(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthRequired, if any.
func CurrentUser(c *gin.Context) (authdomain.User, bool) {
	value, ok := c.Get(contextUserKey)
	if !ok {
		return authdomain.User{}, false
	}
	user, ok := value.(authdomain.User)
	return user, ok
}

// RequestLogger logs each request with method, path, status and latency.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
