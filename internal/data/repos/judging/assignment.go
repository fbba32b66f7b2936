package judging

import (
	"context"
	"strings"

	"github.com/google/uuid"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type AssignmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, assignments []*types.Assignment) ([]*types.Assignment, error)
	GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Assignment, error)
	GetByJudgeIDs(ctx context.Context, tx *gorm.DB, judgeIDs []uuid.UUID) ([]*types.Assignment, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, assignmentID uuid.UUID) error
}

type assignmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssignmentRepo(db *gorm.DB, baseLog *logger.Logger) AssignmentRepo {
	repoLog := baseLog.With("repo", "AssignmentRepo")
	return &assignmentRepo{db: db, log: repoLog}
}

// IsUniqueViolation reports whether err is the (judge_id, product_id) unique
// index rejecting a duplicate assignment. Both the postgres and the sqlite
// driver surface this as a driver error, not a gorm sentinel.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

func (r *assignmentRepo) Create(ctx context.Context, tx *gorm.DB, assignments []*types.Assignment) ([]*types.Assignment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(assignments) == 0 {
		return []*types.Assignment{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepo) GetByProductIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Assignment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Assignment
	if len(productIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Judge").
		Where("product_id IN ?", productIDs).
		Order("assigned_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assignmentRepo) GetByJudgeIDs(ctx context.Context, tx *gorm.DB, judgeIDs []uuid.UUID) ([]*types.Assignment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Assignment
	if len(judgeIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Product").
		Where("judge_id IN ?", judgeIDs).
		Order("assigned_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *assignmentRepo) DeleteByID(ctx context.Context, tx *gorm.DB, assignmentID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", assignmentID).
		Delete(&types.Assignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
