package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/data/repos"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/domain/judging"
	"github.com/launchforge/launchforge-backend/internal/pkg/apperrors"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

// ProductReport bundles the aggregate with the display metadata the
// certificate and the scoring views need. The score inside is the aggregation
// engine's output verbatim; nothing here recomputes it.
type ProductReport struct {
	Product     *types.Product      `json:"product"`
	Makers      []*types.User       `json:"makers"`
	Judges      []*types.User       `json:"judges"`
	Criteria    []*types.Criterion  `json:"criteria"`
	Score       *types.ProductScore `json:"score"`
	GeneratedAt time.Time           `json:"generated_at"`
}

type ChartBar struct {
	CriterionName string          `json:"criteria_name"`
	Value         float64         `json:"value"`
	Band          types.ScoreBand `json:"band"`
}

// ScoreChart is the per-criterion rating bar chart the UI draws. Bars is
// empty (not zero-filled) when no rating data exists yet.
type ScoreChart struct {
	ProductID uuid.UUID  `json:"product_id"`
	Bars      []ChartBar `json:"bars"`
	Overall   *float64   `json:"overall_score"`
}

type ReportService interface {
	BuildReport(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*ProductReport, error)
	BuildChart(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*ScoreChart, error)
}

type reportService struct {
	db             *gorm.DB
	log            *logger.Logger
	aggregation    AggregationService
	productRepo    repos.ProductRepo
	assignmentRepo repos.AssignmentRepo
	criterionRepo  repos.CriterionRepo
}

func NewReportService(db *gorm.DB, log *logger.Logger, aggregation AggregationService, productRepo repos.ProductRepo, assignmentRepo repos.AssignmentRepo, criterionRepo repos.CriterionRepo) ReportService {
	serviceLog := log.With("service", "ReportService")
	return &reportService{
		db:             db,
		log:            serviceLog,
		aggregation:    aggregation,
		productRepo:    productRepo,
		assignmentRepo: assignmentRepo,
		criterionRepo:  criterionRepo,
	}
}

func (s *reportService) BuildReport(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*ProductReport, error) {
	product, err := s.productRepo.GetByID(ctx, tx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	score, err := s.aggregation.GetAggregate(ctx, tx, productID)
	if err != nil {
		return nil, err
	}

	criteria, err := s.criterionRepo.List(ctx, tx)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetByProductIDs(ctx, tx, []uuid.UUID{productID})
	if err != nil {
		return nil, err
	}
	judges := make([]*types.User, 0, len(assignments))
	for _, a := range assignments {
		if a.Judge != nil {
			judges = append(judges, a.Judge)
		}
	}

	return &ProductReport{
		Product:     product,
		Makers:      product.Makers,
		Judges:      judges,
		Criteria:    criteria,
		Score:       score,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (s *reportService) BuildChart(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*ScoreChart, error) {
	score, err := s.aggregation.GetAggregate(ctx, tx, productID)
	if err != nil {
		return nil, err
	}

	chart := &ScoreChart{ProductID: productID, Overall: score.Overall}
	for _, r := range score.Results {
		if r.CriterionType != types.CriterionTypeRating || r.AvgRating == nil {
			continue
		}
		chart.Bars = append(chart.Bars, ChartBar{
			CriterionName: r.CriterionName,
			Value:         *r.AvgRating,
			Band:          judging.BandForScore(*r.AvgRating),
		})
	}
	return chart, nil
}

// FormatScore renders a score for display, one decimal place. nil is "No
// score" so an unjudged product never reads as 0.0.
func FormatScore(score *float64) string {
	if score == nil {
		return "No score"
	}
	return fmt.Sprintf("%.1f", *score)
}

// FormatAggregate renders a per-criterion cell: avg for ratings, yes/no tally
// for booleans, a dash for text.
func FormatAggregate(agg types.CriterionAggregate) string {
	switch agg.CriterionType {
	case types.CriterionTypeRating:
		return FormatScore(agg.AvgRating)
	case types.CriterionTypeBoolean:
		return fmt.Sprintf("%d yes / %d no", agg.CountTrue, agg.CountFalse)
	default:
		return "-"
	}
}
