package public

import (
	"strings"

	handlershared "github.com/dentora-store/internal/http/handlers/shared"
	"github.com/dentora-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

const cartSessionHeader = "X-Cart-Session"

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func getSubject(c *gin.Context) (string, bool) {
	return handlershared.GetSubject(c)
}

// optionalSubject reads the subject without writing an error response.
func optionalSubject(c *gin.Context) string {
	if value, ok := c.Get("subject"); ok {
		if subject, ok := value.(string); ok {
			return subject
		}
	}
	return ""
}

// cartSessionID resolves the cart owner: the authenticated subject when
// present, otherwise the anonymous session header the storefront
// generates on first visit.
func cartSessionID(c *gin.Context) (string, bool) {
	if subject := optionalSubject(c); subject != "" {
		return "u:" + subject, true
	}
	session := strings.TrimSpace(c.GetHeader(cartSessionHeader))
	if session == "" {
		respondError(c, response.CodeBadRequest, "error.cart_session_required", nil)
		return "", false
	}
	return "s:" + session, true
}
