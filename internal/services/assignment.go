package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/data/repos"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/pkg/apperrors"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type AssignmentService interface {
	// AssignJudges assigns every judge in judgeIDs to the product, silently
	// skipping judges already assigned. The unique index backs this up under
	// concurrent requests; a race losing the insert comes back as a conflict.
	AssignJudges(ctx context.Context, tx *gorm.DB, productID uuid.UUID, judgeIDs []uuid.UUID, assignedBy *uuid.UUID) ([]*types.Assignment, error)
	AssignProducts(ctx context.Context, tx *gorm.DB, judgeID uuid.UUID, productIDs []uuid.UUID, assignedBy *uuid.UUID) ([]*types.Assignment, error)
	// RemoveAssignment hard-deletes the assignment row. Submissions the judge
	// already made survive: judging work is historical data.
	RemoveAssignment(ctx context.Context, tx *gorm.DB, assignmentID uuid.UUID) error
	ListForProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Assignment, error)
	ListForJudge(ctx context.Context, tx *gorm.DB, judgeID uuid.UUID) ([]*types.Assignment, error)
	// AvailableJudges returns judge-role users not yet assigned to the product.
	AvailableJudges(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.User, error)
}

type assignmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	assignmentRepo repos.AssignmentRepo
	userRepo       repos.UserRepo
}

func NewAssignmentService(db *gorm.DB, log *logger.Logger, assignmentRepo repos.AssignmentRepo, userRepo repos.UserRepo) AssignmentService {
	serviceLog := log.With("service", "AssignmentService")
	return &assignmentService{
		db:             db,
		log:            serviceLog,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
	}
}

func (s *assignmentService) AssignJudges(ctx context.Context, tx *gorm.DB, productID uuid.UUID, judgeIDs []uuid.UUID, assignedBy *uuid.UUID) ([]*types.Assignment, error) {
	if productID == uuid.Nil {
		return nil, apperrors.NewValidation("product_id", "required")
	}
	if len(judgeIDs) == 0 {
		return []*types.Assignment{}, nil
	}

	existing, err := s.assignmentRepo.GetByProductIDs(ctx, tx, []uuid.UUID{productID})
	if err != nil {
		return nil, err
	}
	assigned := make(map[uuid.UUID]bool, len(existing))
	for _, a := range existing {
		assigned[a.JudgeID] = true
	}

	now := time.Now().UTC()
	var rows []*types.Assignment
	seen := make(map[uuid.UUID]bool, len(judgeIDs))
	for _, judgeID := range judgeIDs {
		if judgeID == uuid.Nil || assigned[judgeID] || seen[judgeID] {
			continue
		}
		seen[judgeID] = true
		rows = append(rows, &types.Assignment{
			ID:         uuid.New(),
			JudgeID:    judgeID,
			ProductID:  productID,
			AssignedBy: assignedBy,
			AssignedAt: now,
		})
	}
	if len(rows) == 0 {
		return []*types.Assignment{}, nil
	}

	created, err := s.assignmentRepo.Create(ctx, tx, rows)
	if err != nil {
		if repos.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("judge already assigned to product")
		}
		return nil, err
	}
	s.log.Info("judges assigned", "product_id", productID, "count", len(created))
	return created, nil
}

func (s *assignmentService) AssignProducts(ctx context.Context, tx *gorm.DB, judgeID uuid.UUID, productIDs []uuid.UUID, assignedBy *uuid.UUID) ([]*types.Assignment, error) {
	if judgeID == uuid.Nil {
		return nil, apperrors.NewValidation("judge_id", "required")
	}
	if len(productIDs) == 0 {
		return []*types.Assignment{}, nil
	}

	existing, err := s.assignmentRepo.GetByJudgeIDs(ctx, tx, []uuid.UUID{judgeID})
	if err != nil {
		return nil, err
	}
	assigned := make(map[uuid.UUID]bool, len(existing))
	for _, a := range existing {
		assigned[a.ProductID] = true
	}

	now := time.Now().UTC()
	var rows []*types.Assignment
	seen := make(map[uuid.UUID]bool, len(productIDs))
	for _, productID := range productIDs {
		if productID == uuid.Nil || assigned[productID] || seen[productID] {
			continue
		}
		seen[productID] = true
		rows = append(rows, &types.Assignment{
			ID:         uuid.New(),
			JudgeID:    judgeID,
			ProductID:  productID,
			AssignedBy: assignedBy,
			AssignedAt: now,
		})
	}
	if len(rows) == 0 {
		return []*types.Assignment{}, nil
	}

	created, err := s.assignmentRepo.Create(ctx, tx, rows)
	if err != nil {
		if repos.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("judge already assigned to product")
		}
		return nil, err
	}
	s.log.Info("products assigned", "judge_id", judgeID, "count", len(created))
	return created, nil
}

func (s *assignmentService) RemoveAssignment(ctx context.Context, tx *gorm.DB, assignmentID uuid.UUID) error {
	if err := s.assignmentRepo.DeleteByID(ctx, tx, assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *assignmentService) ListForProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Assignment, error) {
	return s.assignmentRepo.GetByProductIDs(ctx, tx, []uuid.UUID{productID})
}

func (s *assignmentService) ListForJudge(ctx context.Context, tx *gorm.DB, judgeID uuid.UUID) ([]*types.Assignment, error) {
	return s.assignmentRepo.GetByJudgeIDs(ctx, tx, []uuid.UUID{judgeID})
}

func (s *assignmentService) AvailableJudges(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.User, error) {
	judges, err := s.userRepo.GetByRole(ctx, tx, types.RoleJudge)
	if err != nil {
		return nil, err
	}
	existing, err := s.assignmentRepo.GetByProductIDs(ctx, tx, []uuid.UUID{productID})
	if err != nil {
		return nil, err
	}
	assigned := make(map[uuid.UUID]bool, len(existing))
	for _, a := range existing {
		assigned[a.JudgeID] = true
	}

	available := make([]*types.User, 0, len(judges))
	for _, j := range judges {
		if !assigned[j.ID] {
			available = append(available, j)
		}
	}
	return available, nil
}
