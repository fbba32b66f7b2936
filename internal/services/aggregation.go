package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/data/repos"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type AggregationService interface {
	// GetAggregate recomputes the product's evaluation summary from the
	// current criteria set and all persisted submissions. Results follow
	// criterion definition order. If either fetch fails the whole call fails;
	// a score is never computed from partial data.
	GetAggregate(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.ProductScore, error)
}

type aggregationService struct {
	db             *gorm.DB
	log            *logger.Logger
	criterionRepo  repos.CriterionRepo
	submissionRepo repos.SubmissionRepo
}

func NewAggregationService(db *gorm.DB, log *logger.Logger, criterionRepo repos.CriterionRepo, submissionRepo repos.SubmissionRepo) AggregationService {
	serviceLog := log.With("service", "AggregationService")
	return &aggregationService{
		db:             db,
		log:            serviceLog,
		criterionRepo:  criterionRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *aggregationService) GetAggregate(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.ProductScore, error) {
	var (
		criteria    []*types.Criterion
		submissions []*types.Submission
	)

	if tx != nil {
		// A single transaction handle is not safe for concurrent queries, so
		// fetch sequentially inside one.
		var err error
		if criteria, err = s.criterionRepo.List(ctx, tx); err != nil {
			return nil, err
		}
		if submissions, err = s.submissionRepo.GetByProductIDs(ctx, tx, []uuid.UUID{productID}); err != nil {
			return nil, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			criteria, err = s.criterionRepo.List(gctx, nil)
			return err
		})
		g.Go(func() error {
			var err error
			submissions, err = s.submissionRepo.GetByProductIDs(gctx, nil, []uuid.UUID{productID})
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return computeProductScore(productID, criteria, submissions), nil
}

// computeProductScore is the pure reduction: per-criterion aggregates plus
// the weighted overall score, order-independent over submissions.
func computeProductScore(productID uuid.UUID, criteria []*types.Criterion, submissions []*types.Submission) *types.ProductScore {
	byCriterion := make(map[uuid.UUID][]*types.Submission, len(criteria))
	for _, sub := range submissions {
		byCriterion[sub.CriterionID] = append(byCriterion[sub.CriterionID], sub)
	}

	score := &types.ProductScore{
		ProductID: productID,
		Results:   make([]types.CriterionAggregate, 0, len(criteria)),
	}

	var weightedSum, weightSum float64

	for _, c := range criteria {
		subset := byCriterion[c.ID]

		agg := types.CriterionAggregate{
			CriterionID:   c.ID,
			CriterionName: c.Name,
			CriterionType: c.Type,
			Weight:        c.Weight,
		}

		// Distinct judges, not row count: the unique index already prevents
		// duplicate rows per judge, this guards against dirty data anyway.
		judges := make(map[uuid.UUID]bool, len(subset))
		for _, sub := range subset {
			judges[sub.JudgeID] = true
		}
		agg.JudgeCount = len(judges)

		switch c.Type {
		case types.CriterionTypeRating:
			var sum float64
			var n int
			for _, sub := range subset {
				if sub.RatingValue != nil {
					sum += float64(*sub.RatingValue)
					n++
				}
			}
			if n > 0 {
				avg := sum / float64(n)
				agg.AvgRating = &avg
				weightedSum += avg * c.Weight
				weightSum += c.Weight
			}
		case types.CriterionTypeBoolean:
			for _, sub := range subset {
				if sub.BooleanValue == nil {
					continue
				}
				if *sub.BooleanValue {
					agg.CountTrue++
				} else {
					agg.CountFalse++
				}
			}
		case types.CriterionTypeText:
			for _, sub := range subset {
				if sub.TextValue != nil && *sub.TextValue != "" {
					agg.Comments = append(agg.Comments, *sub.TextValue)
				}
			}
		}

		score.Results = append(score.Results, agg)
	}

	if weightSum > 0 {
		overall := weightedSum / weightSum
		score.Overall = &overall
	}
	return score
}
