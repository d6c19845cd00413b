package admin

import (
	handlershared "github.com/dentora-store/internal/http/handlers/shared"
	"github.com/dentora-store/internal/service"

	"github.com/gin-gonic/gin"
)

// adminActor builds the acting admin from the verified token context.
func adminActor(c *gin.Context) (service.Actor, bool) {
	subject, ok := handlershared.GetSubject(c)
	if !ok {
		return service.Actor{}, false
	}
	role, ok := handlershared.GetRole(c)
	if !ok {
		return service.Actor{}, false
	}
	return service.Actor{Subject: subject, Role: role}, true
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}
