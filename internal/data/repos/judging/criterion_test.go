package judging

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/launchforge/launchforge-backend/internal/data/repos/testutil"
	types "github.com/launchforge/launchforge-backend/internal/domain"
)

func TestCriterionRepoCreateAndGet(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCriterionRepo(tx, testutil.Logger(t))

	created, err := repo.Create(ctx, tx, &types.Criterion{
		ID:       uuid.New(),
		Name:     "Innovation",
		Type:     types.CriterionTypeRating,
		MinValue: testutil.PtrInt(1),
		MaxValue: testutil.PtrInt(10),
		Weight:   2.0,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Innovation" {
		t.Fatalf("name: want=%q got=%q", "Innovation", got.Name)
	}
	if got.MinValue == nil || *got.MinValue != 1 || got.MaxValue == nil || *got.MaxValue != 10 {
		t.Fatalf("range: want=[1,10] got=[%v,%v]", got.MinValue, got.MaxValue)
	}
	if got.Weight != 2.0 {
		t.Fatalf("weight: want=2.0 got=%v", got.Weight)
	}
}

func TestCriterionRepoUpdateClearsRange(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCriterionRepo(tx, testutil.Logger(t))

	c := testutil.SeedRatingCriterion(t, ctx, tx, "Design", 1, 10, 1.0)

	c.Type = types.CriterionTypeBoolean
	c.MinValue = nil
	c.MaxValue = nil
	if _, err := repo.Update(ctx, tx, c); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Type != types.CriterionTypeBoolean {
		t.Fatalf("type: want=%q got=%q", types.CriterionTypeBoolean, got.Type)
	}
	if got.MinValue != nil || got.MaxValue != nil {
		t.Fatalf("range should be cleared, got=[%v,%v]", got.MinValue, got.MaxValue)
	}
}

func TestCriterionRepoListOrdering(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCriterionRepo(tx, testutil.Logger(t))

	first := testutil.SeedRatingCriterion(t, ctx, tx, "First", 1, 10, 1.0)
	second := testutil.SeedCriterion(t, ctx, tx, "Second", types.CriterionTypeBoolean)

	listed, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("list len: want=2 got=%d", len(listed))
	}
	if listed[0].ID != first.ID {
		t.Fatalf("definition order should put %q first, got %q", first.Name, listed[0].Name)
	}

	recent, err := repo.ListRecentFirst(ctx, tx)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if recent[0].ID != second.ID {
		t.Fatalf("recent-first order broken: got %q first", recent[0].Name)
	}
}

func TestCriterionRepoDelete(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCriterionRepo(tx, testutil.Logger(t))

	c := testutil.SeedCriterion(t, ctx, tx, "Doomed", types.CriterionTypeText)
	if err := repo.DeleteByID(ctx, tx, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, tx, c.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound after delete, got %v", err)
	}
}
