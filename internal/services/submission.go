package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/data/repos"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/pkg/apperrors"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type SubmissionService interface {
	// Submit records or overwrites a judge's value for one criterion on one
	// product. The value shape must match the criterion type; rating values
	// must lie within the criterion's range; the judge must hold an active
	// assignment for the product.
	Submit(ctx context.Context, tx *gorm.DB, judgeID, productID, criterionID uuid.UUID, value types.SubmissionValue) (*types.Submission, error)
	ListForProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Submission, error)
}

type submissionService struct {
	db             *gorm.DB
	log            *logger.Logger
	submissionRepo repos.SubmissionRepo
	criterionRepo  repos.CriterionRepo
	assignmentRepo repos.AssignmentRepo
}

func NewSubmissionService(db *gorm.DB, log *logger.Logger, submissionRepo repos.SubmissionRepo, criterionRepo repos.CriterionRepo, assignmentRepo repos.AssignmentRepo) SubmissionService {
	serviceLog := log.With("service", "SubmissionService")
	return &submissionService{
		db:             db,
		log:            serviceLog,
		submissionRepo: submissionRepo,
		criterionRepo:  criterionRepo,
		assignmentRepo: assignmentRepo,
	}
}

func (s *submissionService) Submit(ctx context.Context, tx *gorm.DB, judgeID, productID, criterionID uuid.UUID, value types.SubmissionValue) (*types.Submission, error) {
	if value == nil {
		return nil, apperrors.NewValidation("value", "required")
	}

	criterion, err := s.criterionRepo.GetByID(ctx, tx, criterionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if err := validateSubmissionValue(criterion, value); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetByJudgeIDs(ctx, tx, []uuid.UUID{judgeID})
	if err != nil {
		return nil, err
	}
	assigned := false
	for _, a := range assignments {
		if a.ProductID == productID {
			assigned = true
			break
		}
	}
	if !assigned {
		return nil, apperrors.NewValidation("judge_id", "judge is not assigned to this product")
	}

	submission := &types.Submission{
		ID:          uuid.New(),
		JudgeID:     judgeID,
		ProductID:   productID,
		CriterionID: criterionID,
	}
	submission.SetValue(value)

	saved, err := s.submissionRepo.Upsert(ctx, tx, submission)
	if err != nil {
		return nil, err
	}
	s.log.Debug("submission recorded", "judge_id", judgeID, "product_id", productID, "criterion_id", criterionID)
	return saved, nil
}

func validateSubmissionValue(criterion *types.Criterion, value types.SubmissionValue) error {
	switch v := value.(type) {
	case types.RatingValue:
		if criterion.Type != types.CriterionTypeRating {
			return apperrors.NewValidation("value", fmt.Sprintf("criterion %q expects a %s value", criterion.Name, criterion.Type))
		}
		if criterion.MinValue == nil || criterion.MaxValue == nil {
			return apperrors.NewValidation("value", "rating criterion has no range configured")
		}
		if int(v) < *criterion.MinValue || int(v) > *criterion.MaxValue {
			return apperrors.NewValidation("value", fmt.Sprintf("rating must be between %d and %d", *criterion.MinValue, *criterion.MaxValue))
		}
	case types.BooleanValue:
		if criterion.Type != types.CriterionTypeBoolean {
			return apperrors.NewValidation("value", fmt.Sprintf("criterion %q expects a %s value", criterion.Name, criterion.Type))
		}
	case types.TextValue:
		if criterion.Type != types.CriterionTypeText {
			return apperrors.NewValidation("value", fmt.Sprintf("criterion %q expects a %s value", criterion.Name, criterion.Type))
		}
		if string(v) == "" {
			return apperrors.NewValidation("value", "text value must not be empty")
		}
	default:
		return apperrors.NewValidation("value", "unsupported value shape")
	}
	return nil
}

func (s *submissionService) ListForProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([]*types.Submission, error) {
	return s.submissionRepo.GetByProductIDs(ctx, tx, []uuid.UUID{productID})
}
