package judging

import (
	"context"
	"time"

	"github.com/google/uuid"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepo interface {
	// Upsert writes a judge's value for one criterion on one product. A second
	// write for the same (judge, product, criterion) identity updates the
	// existing row instead of inserting a duplicate.
	Upsert(ctx context.Context, tx *gorm.DB, submission *types.Submission) (*types.Submission, error)
	GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Submission, error)
	GetByProductAndJudges(ctx context.Context, tx *gorm.DB, productID uuid.UUID, judgeIDs []uuid.UUID) ([]*types.Submission, error)
	ExistsForCriterion(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID) (bool, error)
}

type submissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	repoLog := baseLog.With("repo", "SubmissionRepo")
	return &submissionRepo{db: db, log: repoLog}
}

func (r *submissionRepo) Upsert(ctx context.Context, tx *gorm.DB, submission *types.Submission) (*types.Submission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	submission.UpdatedAt = time.Now().UTC()

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "judge_id"},
				{Name: "product_id"},
				{Name: "criteria_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"rating_value",
				"boolean_value",
				"text_value",
				"updated_at",
			}),
		}).
		Create(submission).Error; err != nil {
		return nil, err
	}

	// On the conflict path the update keeps the stored row's id and
	// created_at, so the in-memory struct is not the row that was written.
	// Read the row back by its identity.
	var persisted types.Submission
	if err := transaction.WithContext(ctx).
		Where("judge_id = ? AND product_id = ? AND criteria_id = ?",
			submission.JudgeID, submission.ProductID, submission.CriterionID).
		First(&persisted).Error; err != nil {
		return nil, err
	}
	return &persisted, nil
}

func (r *submissionRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Submission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Submission
	if len(productIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *submissionRepo) GetByProductAndJudges(ctx context.Context, tx *gorm.DB, productID uuid.UUID, judgeIDs []uuid.UUID) ([]*types.Submission, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Submission
	if len(judgeIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("product_id = ? AND judge_id IN ?", productID, judgeIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *submissionRepo) ExistsForCriterion(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Submission{}).
		Where("criteria_id = ?", criterionID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
