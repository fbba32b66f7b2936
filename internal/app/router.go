package app

import (
	"github.com/gin-gonic/gin"

	"github.com/launchforge/launchforge-backend/internal/server"
)

func wireRouter(handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthMiddleware:     middlewareset.Auth,
		ProductHandler:     handlerset.Product,
		CriteriaHandler:    handlerset.Criteria,
		AssignmentHandler:  handlerset.Assignment,
		ScoringHandler:     handlerset.Scoring,
		CertificateHandler: handlerset.Certificate,
	})
}
