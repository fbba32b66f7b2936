package app

import (
	"gorm.io/gorm"

	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"github.com/launchforge/launchforge-backend/internal/services"
)

type Services struct {
	Product     services.ProductService
	Criteria    services.CriteriaService
	Assignment  services.AssignmentService
	Submission  services.SubmissionService
	Aggregation services.AggregationService
	Status      services.JudgingStatusService
	Report      services.ReportService
	Certificate services.CertificateService
	Export      services.ExportService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) (Services, error) {
	log.Info("Wiring services...")
	productService := services.NewProductService(db, log, reposet.Product)
	criteriaService := services.NewCriteriaService(db, log, reposet.Criterion, reposet.Submission)
	assignmentService := services.NewAssignmentService(db, log, reposet.Assignment, reposet.User)
	submissionService := services.NewSubmissionService(db, log, reposet.Submission, reposet.Criterion, reposet.Assignment)
	aggregationService := services.NewAggregationService(db, log, reposet.Criterion, reposet.Submission)
	statusService := services.NewJudgingStatusService(db, log, reposet.Assignment, reposet.Submission)
	reportService := services.NewReportService(db, log, aggregationService, reposet.Product, reposet.Assignment, reposet.Criterion)
	certificateService, err := services.NewCertificateService(db, log, reportService)
	if err != nil {
		return Services{}, err
	}
	exportService := services.NewExportService(db, log, reportService, statusService, assignmentService, submissionService)

	return Services{
		Product:     productService,
		Criteria:    criteriaService,
		Assignment:  assignmentService,
		Submission:  submissionService,
		Aggregation: aggregationService,
		Status:      statusService,
		Report:      reportService,
		Certificate: certificateService,
		Export:      exportService,
	}, nil
}
