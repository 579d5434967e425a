package handlers

import (
	"net/http"

	"gta_clima/internal/domain/entities"
	"gta_clima/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserID    = "X-User-Id"
	HeaderUserLevel = "X-User-Level"
)

var errMissingActor = pkg.NewDomainErrorSimple("MISSING_ACTOR", "Missing or unknown actor headers", http.StatusUnauthorized)

// actorFrom reads the authenticated identity forwarded by the auth layer.
// Both headers are required; the level must be one of the known roles.
func actorFrom(c *gin.Context) (entities.Actor, *pkg.AppError) {
	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		return entities.Actor{}, errMissingActor
	}
	role, err := entities.ParseRole(c.GetHeader(HeaderUserLevel))
	if err != nil {
		return entities.Actor{}, errMissingActor
	}
	return entities.Actor{UserID: userID, Level: role}, nil
}
