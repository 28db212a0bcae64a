package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"deep-summarizer/dto"
)

const HeaderCronSecret = "X-Cron-Secret"

var ErrInvalidSecret = errors.New("Unauthorized")

const secretHint = "The secret must exactly match CRON_SECRET. If it was just changed, restart the server."

// ExtractSecret returns the shared secret from the "secret" query parameter,
// or from the X-Cron-Secret header when the query has none.
func ExtractSecret(c *gin.Context) string {
	if s := strings.TrimSpace(c.Query("secret")); s != "" {
		return s
	}
	return strings.TrimSpace(c.GetHeader(HeaderCronSecret))
}

// CheckSecret compares the request secret with expected. An empty expected
// secret disables the check.
func CheckSecret(c *gin.Context, expected string) error {
	expected = strings.TrimSpace(expected)
	if expected == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(ExtractSecret(c)), []byte(expected)) != 1 {
		return ErrInvalidSecret
	}
	return nil
}

// RequireSecret aborts requests that fail CheckSecret.
func RequireSecret(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := CheckSecret(c, expected); err != nil {
			AbortWithUnauthorized(c, err)
			return
		}
		c.Next()
	}
}

// AbortWithUnauthorized aborts the request with 401 status and error JSON.
func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: err.Error(), Hint: secretHint})
}
