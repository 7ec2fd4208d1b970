package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	authdomain "github.com/storelane/storelane/internal/auth/domain"
	customerdomain "github.com/storelane/storelane/internal/customer/domain"
	itemdomain "github.com/storelane/storelane/internal/item/domain"
	orderdomain "github.com/storelane/storelane/internal/order/domain"
	"github.com/storelane/storelane/internal/validation"
)

// ErrorHandlingMiddleware renders the last error recorded on the context,
// keeping status/body mapping for domain errors in one place. Validation
// failures serialize as a flat field-to-message object; everything else as
// {"detail": ...}.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, payload)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidBodyError() error {
	return validation.New("detail", "Invalid request body")
}

func mapError(err error) (int, any) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest, fieldErrs
	}

	switch {
	case errors.Is(err, itemdomain.ErrNotFound):
		return http.StatusNotFound, gin.H{"detail": "Item not found"}
	case errors.Is(err, customerdomain.ErrNotFound):
		return http.StatusNotFound, gin.H{"detail": "Customer not found"}
	case errors.Is(err, orderdomain.ErrNotFound):
		return http.StatusNotFound, gin.H{"detail": "Order not found"}
	case errors.Is(err, authdomain.ErrMissingCredentials):
		return http.StatusUnauthorized, gin.H{"detail": "Username and password are required"}
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"}
	case errors.Is(err, authdomain.ErrInvalidToken):
		return http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired"}
	case errors.Is(err, authdomain.ErrUserNotFound):
		return http.StatusUnauthorized, gin.H{"detail": "User not found"}
	default:
		return http.StatusInternalServerError, gin.H{"detail": "Internal server error"}
	}
}
