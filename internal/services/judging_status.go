package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/data/repos"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type JudgingStatusService interface {
	// StatusForProduct derives the tri-state judging status live from current
	// assignment and submission rows. Any lookup failure propagates: the
	// resolver never guesses "evaluated".
	StatusForProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.ProductStatus, error)
	StatusForProducts(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) (map[uuid.UUID]*types.ProductStatus, error)
}

type judgingStatusService struct {
	db             *gorm.DB
	log            *logger.Logger
	assignmentRepo repos.AssignmentRepo
	submissionRepo repos.SubmissionRepo
}

func NewJudgingStatusService(db *gorm.DB, log *logger.Logger, assignmentRepo repos.AssignmentRepo, submissionRepo repos.SubmissionRepo) JudgingStatusService {
	serviceLog := log.With("service", "JudgingStatusService")
	return &judgingStatusService{
		db:             db,
		log:            serviceLog,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *judgingStatusService) StatusForProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.ProductStatus, error) {
	statuses, err := s.StatusForProducts(ctx, tx, []uuid.UUID{productID})
	if err != nil {
		return nil, err
	}
	return statuses[productID], nil
}

func (s *judgingStatusService) StatusForProducts(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) (map[uuid.UUID]*types.ProductStatus, error) {
	statuses := make(map[uuid.UUID]*types.ProductStatus, len(productIDs))
	for _, id := range productIDs {
		statuses[id] = &types.ProductStatus{ProductID: id, Status: types.StatusNotAssigned}
	}
	if len(productIDs) == 0 {
		return statuses, nil
	}

	assignments, err := s.assignmentRepo.GetByProductIDs(ctx, tx, productIDs)
	if err != nil {
		return nil, err
	}
	submissions, err := s.submissionRepo.GetByProductIDs(ctx, tx, productIDs)
	if err != nil {
		return nil, err
	}

	// (product, judge) pairs with at least one submission row.
	submitted := make(map[uuid.UUID]map[uuid.UUID]bool)
	for _, sub := range submissions {
		if submitted[sub.ProductID] == nil {
			submitted[sub.ProductID] = make(map[uuid.UUID]bool)
		}
		submitted[sub.ProductID][sub.JudgeID] = true
	}

	for _, a := range assignments {
		st := statuses[a.ProductID]
		if st == nil {
			continue
		}
		st.AssignedCount++
		if submitted[a.ProductID][a.JudgeID] {
			st.JudgedCount++
		}
	}

	for _, st := range statuses {
		switch {
		case st.AssignedCount == 0:
			st.Status = types.StatusNotAssigned
		case st.JudgedCount > 0:
			// One assigned judge with one submitted value flips the product
			// to evaluated; JudgedCount/AssignedCount carries the real
			// completion ratio for the UI.
			st.Status = types.StatusEvaluated
		default:
			st.Status = types.StatusAssigned
		}
	}
	return statuses, nil
}
