package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/data/repos"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/domain/judging"
	"github.com/launchforge/launchforge-backend/internal/pkg/apperrors"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type CriterionInput struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Type        types.CriterionType `json:"type"`
	MinValue    *int                `json:"min_value"`
	MaxValue    *int                `json:"max_value"`
	Weight      *float64            `json:"weight"`
}

type CriteriaService interface {
	CreateCriterion(ctx context.Context, tx *gorm.DB, input CriterionInput) (*types.Criterion, error)
	UpdateCriterion(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID, input CriterionInput) (*types.Criterion, error)
	DeleteCriterion(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID) error
	ListCriteria(ctx context.Context, tx *gorm.DB) ([]*types.Criterion, error)
	GetCriterion(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID) (*types.Criterion, error)
}

type criteriaService struct {
	db             *gorm.DB
	log            *logger.Logger
	criterionRepo  repos.CriterionRepo
	submissionRepo repos.SubmissionRepo
}

func NewCriteriaService(db *gorm.DB, log *logger.Logger, criterionRepo repos.CriterionRepo, submissionRepo repos.SubmissionRepo) CriteriaService {
	serviceLog := log.With("service", "CriteriaService")
	return &criteriaService{
		db:             db,
		log:            serviceLog,
		criterionRepo:  criterionRepo,
		submissionRepo: submissionRepo,
	}
}

// validateCriterionInput normalizes input in place: weight defaults to 1 when
// unset, and the numeric range is forced null for non-rating types.
func validateCriterionInput(input *CriterionInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return apperrors.NewValidation("name", "must not be empty")
	}
	if !input.Type.Valid() {
		return apperrors.NewValidation("type", "must be one of rating, boolean, text")
	}

	if input.Weight == nil {
		w := judging.WeightDefault
		input.Weight = &w
	}
	if *input.Weight <= judging.WeightMin || *input.Weight > judging.WeightMax {
		return apperrors.NewValidation("weight", "must be greater than 0.1 and at most 10")
	}

	if input.Type == types.CriterionTypeRating {
		if input.MinValue == nil || input.MaxValue == nil {
			return apperrors.NewValidation("min_value", "rating criteria require min_value and max_value")
		}
		if *input.MinValue >= *input.MaxValue {
			return apperrors.NewValidation("min_value", "must be less than max_value")
		}
		return nil
	}

	input.MinValue = nil
	input.MaxValue = nil
	return nil
}

func (s *criteriaService) CreateCriterion(ctx context.Context, tx *gorm.DB, input CriterionInput) (*types.Criterion, error) {
	if err := validateCriterionInput(&input); err != nil {
		return nil, err
	}

	criterion := &types.Criterion{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		MinValue:    input.MinValue,
		MaxValue:    input.MaxValue,
		Weight:      *input.Weight,
	}
	created, err := s.criterionRepo.Create(ctx, tx, criterion)
	if err != nil {
		return nil, err
	}
	s.log.Info("criterion created", "criterion_id", created.ID, "type", created.Type)
	return created, nil
}

func (s *criteriaService) UpdateCriterion(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID, input CriterionInput) (*types.Criterion, error) {
	existing, err := s.criterionRepo.GetByID(ctx, tx, criterionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	// An omitted weight keeps the stored one; the create-time default of 1
	// applies to new criteria only.
	if input.Weight == nil {
		w := existing.Weight
		input.Weight = &w
	}
	if err := validateCriterionInput(&input); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Type = input.Type
	existing.MinValue = input.MinValue
	existing.MaxValue = input.MaxValue
	existing.Weight = *input.Weight
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.criterionRepo.Update(ctx, tx, existing)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *criteriaService) DeleteCriterion(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID) error {
	inUse, err := s.submissionRepo.ExistsForCriterion(ctx, tx, criterionID)
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.NewConflict("criteria in use: submissions reference this criterion")
	}

	if err := s.criterionRepo.DeleteByID(ctx, tx, criterionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	s.log.Info("criterion deleted", "criterion_id", criterionID)
	return nil
}

func (s *criteriaService) ListCriteria(ctx context.Context, tx *gorm.DB) ([]*types.Criterion, error) {
	return s.criterionRepo.ListRecentFirst(ctx, tx)
}

func (s *criteriaService) GetCriterion(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID) (*types.Criterion, error) {
	criterion, err := s.criterionRepo.GetByID(ctx, tx, criterionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return criterion, nil
}
