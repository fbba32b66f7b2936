package app

import (
	"github.com/launchforge/launchforge-backend/internal/handlers"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
)

type Handlers struct {
	Product     *handlers.ProductHandler
	Criteria    *handlers.CriteriaHandler
	Assignment  *handlers.AssignmentHandler
	Scoring     *handlers.ScoringHandler
	Certificate *handlers.CertificateHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Product:     handlers.NewProductHandler(log, serviceset.Product),
		Criteria:    handlers.NewCriteriaHandler(log, serviceset.Criteria),
		Assignment:  handlers.NewAssignmentHandler(log, serviceset.Assignment),
		Scoring:     handlers.NewScoringHandler(log, serviceset.Aggregation, serviceset.Status, serviceset.Report, serviceset.Submission),
		Certificate: handlers.NewCertificateHandler(log, serviceset.Certificate, serviceset.Export),
	}
}
