package shared

import (
	"github.com/dentora-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextString reads a string value from the context and responds
// with a uniform error when it is missing or malformed.
func GetContextString(c *gin.Context, key, typeInvalidKey string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return "", false
	}

	s, ok := value.(string)
	if !ok || s == "" {
		RespondError(c, response.CodeInternal, typeInvalidKey, nil)
		return "", false
	}
	return s, true
}

// GetSubject reads the authenticated subject set by the auth middleware.
func GetSubject(c *gin.Context) (string, bool) {
	return GetContextString(c, "subject", "error.subject_invalid")
}

// GetRole reads the authenticated role set by the auth middleware.
func GetRole(c *gin.Context) (string, bool) {
	return GetContextString(c, "role", "error.role_invalid")
}
