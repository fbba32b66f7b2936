package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/handlers"
	"github.com/launchforge/launchforge-backend/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware     *middleware.AuthMiddleware
	ProductHandler     *handlers.ProductHandler
	CriteriaHandler    *handlers.CriteriaHandler
	AssignmentHandler  *handlers.AssignmentHandler
	ScoringHandler     *handlers.ScoringHandler
	CertificateHandler *handlers.CertificateHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	router.Use(otelgin.Middleware("launchforge"))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.GET("/products", cfg.ProductHandler.ListProducts)
		api.GET("/products/:id", cfg.ProductHandler.GetProduct)
		api.GET("/products/:id/score", cfg.ScoringHandler.GetScore)
		api.GET("/products/:id/chart", cfg.ScoringHandler.GetChart)
		api.GET("/products/:id/certificate", cfg.CertificateHandler.GetCertificate)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Products
	protected.POST("/products", cfg.ProductHandler.CreateProduct)
	// Judging
	protected.GET("/products/:id/report", cfg.ScoringHandler.GetReport)
	protected.GET("/products/:id/status", cfg.ScoringHandler.GetStatus)
	protected.GET("/judges/:id/assignments", cfg.AssignmentHandler.ListForJudge)
	protected.POST("/products/:id/submissions", cfg.ScoringHandler.Submit)

	// ===============
	// || Admin     ||
	// ===============
	admin := router.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireRole(domain.RoleAdmin))
	// Products
	admin.PATCH("/products/:id/status", cfg.ProductHandler.SetStatus)
	// Criteria
	admin.GET("/criteria", cfg.CriteriaHandler.ListCriteria)
	admin.POST("/criteria", cfg.CriteriaHandler.CreateCriterion)
	admin.PUT("/criteria/:id", cfg.CriteriaHandler.UpdateCriterion)
	admin.DELETE("/criteria/:id", cfg.CriteriaHandler.DeleteCriterion)
	// Assignments
	admin.POST("/products/:id/judges", cfg.AssignmentHandler.AssignJudges)
	admin.POST("/judges/:id/products", cfg.AssignmentHandler.AssignProducts)
	admin.GET("/products/:id/judges", cfg.AssignmentHandler.ListForProduct)
	admin.GET("/products/:id/available-judges", cfg.AssignmentHandler.AvailableJudges)
	admin.DELETE("/assignments/:id", cfg.AssignmentHandler.RemoveAssignment)
	// Exports
	admin.GET("/products/:id/results.xlsx", cfg.CertificateHandler.ExportResults)
	admin.GET("/products/:id/assignments.xlsx", cfg.CertificateHandler.ExportAssignments)

	return router
}
