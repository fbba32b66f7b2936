package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/domain/judging"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email, role string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Username: email,
		Role:     role,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedJudge(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	return SeedUser(tb, ctx, tx, email, types.RoleJudge)
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, name string) *types.Product {
	tb.Helper()
	p := &types.Product{
		ID:       uuid.New(),
		Name:     name,
		Tagline:  "tagline",
		Status:   "approved",
		OwnerID:  ownerID,
		Metadata: datatypes.JSON([]byte("{}")),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedRatingCriterion(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, min, max int, weight float64) *types.Criterion {
	tb.Helper()
	c := &types.Criterion{
		ID:       uuid.New(),
		Name:     name,
		Type:     types.CriterionTypeRating,
		MinValue: PtrInt(min),
		MaxValue: PtrInt(max),
		Weight:   weight,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed rating criterion: %v", err)
	}
	return c
}

func SeedCriterion(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, typ types.CriterionType) *types.Criterion {
	tb.Helper()
	c := &types.Criterion{
		ID:     uuid.New(),
		Name:   name,
		Type:   typ,
		Weight: judging.WeightDefault,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed criterion: %v", err)
	}
	return c
}

func SeedAssignment(tb testing.TB, ctx context.Context, tx *gorm.DB, judgeID, productID uuid.UUID) *types.Assignment {
	tb.Helper()
	a := &types.Assignment{
		ID:         uuid.New(),
		JudgeID:    judgeID,
		ProductID:  productID,
		AssignedAt: time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed assignment: %v", err)
	}
	return a
}

func SeedRatingSubmission(tb testing.TB, ctx context.Context, tx *gorm.DB, judgeID, productID, criterionID uuid.UUID, rating int) *types.Submission {
	tb.Helper()
	s := &types.Submission{
		ID:          uuid.New(),
		JudgeID:     judgeID,
		ProductID:   productID,
		CriterionID: criterionID,
	}
	s.SetValue(types.RatingValue(rating))
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed rating submission: %v", err)
	}
	return s
}

func SeedBooleanSubmission(tb testing.TB, ctx context.Context, tx *gorm.DB, judgeID, productID, criterionID uuid.UUID, value bool) *types.Submission {
	tb.Helper()
	s := &types.Submission{
		ID:          uuid.New(),
		JudgeID:     judgeID,
		ProductID:   productID,
		CriterionID: criterionID,
	}
	s.SetValue(types.BooleanValue(value))
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed boolean submission: %v", err)
	}
	return s
}

func PtrInt(v int) *int { return &v }

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }
