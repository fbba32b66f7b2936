package services

import (
	"context"
	"testing"

	"github.com/launchforge/launchforge-backend/internal/data/repos"
	"github.com/launchforge/launchforge-backend/internal/data/repos/testutil"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/pkg/apperrors"
	"gorm.io/gorm"
)

func newCriteriaService(t *testing.T, tx *gorm.DB) CriteriaService {
	t.Helper()
	log := testutil.Logger(t)
	return NewCriteriaService(tx, log, repos.NewCriterionRepo(tx, log), repos.NewSubmissionRepo(tx, log))
}

func TestCreateCriterionDefaultsWeight(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCriteriaService(t, tx)

	created, err := svc.CreateCriterion(ctx, tx, CriterionInput{
		Name:     "Innovation",
		Type:     types.CriterionTypeRating,
		MinValue: testutil.PtrInt(1),
		MaxValue: testutil.PtrInt(10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Weight != 1.0 {
		t.Fatalf("default weight: want=1.0 got=%v", created.Weight)
	}
}

func TestCreateCriterionRejectsInvertedRange(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCriteriaService(t, tx)

	_, err := svc.CreateCriterion(ctx, tx, CriterionInput{
		Name:     "Broken",
		Type:     types.CriterionTypeRating,
		MinValue: testutil.PtrInt(10),
		MaxValue: testutil.PtrInt(1),
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("want validation error for min>=max, got %v", err)
	}

	_, err = svc.CreateCriterion(ctx, tx, CriterionInput{
		Name:     "Equal",
		Type:     types.CriterionTypeRating,
		MinValue: testutil.PtrInt(5),
		MaxValue: testutil.PtrInt(5),
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("want validation error for min==max, got %v", err)
	}
}

func TestCreateCriterionRejectsWeightOutOfRange(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCriteriaService(t, tx)

	for _, w := range []float64{0, 0.1, -1, 10.5} {
		weight := w
		_, err := svc.CreateCriterion(ctx, tx, CriterionInput{
			Name:   "Weighted",
			Type:   types.CriterionTypeBoolean,
			Weight: &weight,
		})
		if !apperrors.IsValidation(err) {
			t.Fatalf("weight=%v: want validation error, got %v", w, err)
		}
	}
}

func TestUpdateCriterionToBooleanClearsRange(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCriteriaService(t, tx)

	created, err := svc.CreateCriterion(ctx, tx, CriterionInput{
		Name:     "Design",
		Type:     types.CriterionTypeRating,
		MinValue: testutil.PtrInt(1),
		MaxValue: testutil.PtrInt(10),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The range travels with the rating type; switching type drops it even
	// when the caller sends stale bounds along.
	updated, err := svc.UpdateCriterion(ctx, tx, created.ID, CriterionInput{
		Name:     "Design",
		Type:     types.CriterionTypeBoolean,
		MinValue: testutil.PtrInt(1),
		MaxValue: testutil.PtrInt(10),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.MinValue != nil || updated.MaxValue != nil {
		t.Fatalf("range must be nulled for boolean, got=[%v,%v]", updated.MinValue, updated.MaxValue)
	}

	got, err := svc.GetCriterion(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.MinValue != nil || got.MaxValue != nil {
		t.Fatalf("persisted range must be nulled, got=[%v,%v]", got.MinValue, got.MaxValue)
	}
}

func TestUpdateCriterionKeepsWeightWhenOmitted(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCriteriaService(t, tx)

	weight := 2.5
	created, err := svc.CreateCriterion(ctx, tx, CriterionInput{
		Name:     "Traction",
		Type:     types.CriterionTypeRating,
		MinValue: testutil.PtrInt(1),
		MaxValue: testutil.PtrInt(10),
		Weight:   &weight,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateCriterion(ctx, tx, created.ID, CriterionInput{
		Name:     "Traction",
		Type:     types.CriterionTypeRating,
		MinValue: testutil.PtrInt(1),
		MaxValue: testutil.PtrInt(10),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Weight != 2.5 {
		t.Fatalf("omitted weight must keep stored value: want=2.5 got=%v", updated.Weight)
	}

	got, err := svc.GetCriterion(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Weight != 2.5 {
		t.Fatalf("persisted weight: want=2.5 got=%v", got.Weight)
	}
}

func TestDeleteCriterionBlockedWhenInUse(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCriteriaService(t, tx)

	owner := testutil.SeedUser(t, ctx, tx, "crit-owner@launchforge.dev", types.RoleUser)
	judge := testutil.SeedJudge(t, ctx, tx, "crit-judge@launchforge.dev")
	product := testutil.SeedProduct(t, ctx, tx, owner.ID, "Lumen")
	criterion := testutil.SeedRatingCriterion(t, ctx, tx, "Guarded", 1, 10, 1.0)
	testutil.SeedRatingSubmission(t, ctx, tx, judge.ID, product.ID, criterion.ID, 5)

	err := svc.DeleteCriterion(ctx, tx, criterion.ID)
	if !apperrors.IsConflict(err) {
		t.Fatalf("want conflict for criterion in use, got %v", err)
	}

	// Untouched criteria delete fine.
	free := testutil.SeedCriterion(t, ctx, tx, "Free", types.CriterionTypeText)
	if err := svc.DeleteCriterion(ctx, tx, free.ID); err != nil {
		t.Fatalf("delete unused: %v", err)
	}
}
