package judging

import (
	"context"

	"github.com/google/uuid"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

type CriterionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, criterion *types.Criterion) (*types.Criterion, error)
	Update(ctx context.Context, tx *gorm.DB, criterion *types.Criterion) (*types.Criterion, error)
	GetByID(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID) (*types.Criterion, error)
	// List returns criteria in definition order (oldest first). The results
	// table and the certificate both follow this order.
	List(ctx context.Context, tx *gorm.DB) ([]*types.Criterion, error)
	// ListRecentFirst is the registry view ordering.
	ListRecentFirst(ctx context.Context, tx *gorm.DB) ([]*types.Criterion, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID) error
}

type criterionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCriterionRepo(db *gorm.DB, baseLog *logger.Logger) CriterionRepo {
	repoLog := baseLog.With("repo", "CriterionRepo")
	return &criterionRepo{db: db, log: repoLog}
}

func (r *criterionRepo) Create(ctx context.Context, tx *gorm.DB, criterion *types.Criterion) (*types.Criterion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(criterion).Error; err != nil {
		return nil, err
	}
	return criterion, nil
}

func (r *criterionRepo) Update(ctx context.Context, tx *gorm.DB, criterion *types.Criterion) (*types.Criterion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	// Save with Select so a range nulled by a type change is written out, not
	// skipped as a zero value.
	if err := transaction.WithContext(ctx).
		Model(criterion).
		Select("name", "description", "type", "min_value", "max_value", "weight", "updated_at").
		Updates(criterion).Error; err != nil {
		return nil, err
	}
	return criterion, nil
}

func (r *criterionRepo) GetByID(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID) (*types.Criterion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Criterion
	if err := transaction.WithContext(ctx).
		Where("id = ?", criterionID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *criterionRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Criterion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Criterion
	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *criterionRepo) ListRecentFirst(ctx context.Context, tx *gorm.DB) ([]*types.Criterion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Criterion
	if err := transaction.WithContext(ctx).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *criterionRepo) DeleteByID(ctx context.Context, tx *gorm.DB, criterionID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", criterionID).
		Delete(&types.Criterion{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
