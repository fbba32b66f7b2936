package judging

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/launchforge/launchforge-backend/internal/data/repos/testutil"
	types "github.com/launchforge/launchforge-backend/internal/domain"
)

func TestSubmissionRepoUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewSubmissionRepo(tx, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "owner-sub@launchforge.dev", types.RoleUser)
	judge := testutil.SeedJudge(t, ctx, tx, "judge-sub@launchforge.dev")
	product := testutil.SeedProduct(t, ctx, tx, owner.ID, "Orbit")
	criterion := testutil.SeedRatingCriterion(t, ctx, tx, "Polish", 1, 10, 1.0)

	first := &types.Submission{
		ID:          uuid.New(),
		JudgeID:     judge.ID,
		ProductID:   product.ID,
		CriterionID: criterion.ID,
	}
	first.SetValue(types.RatingValue(4))
	if _, err := repo.Upsert(ctx, tx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := &types.Submission{
		ID:          uuid.New(),
		JudgeID:     judge.ID,
		ProductID:   product.ID,
		CriterionID: criterion.ID,
	}
	second.SetValue(types.RatingValue(9))
	if _, err := repo.Upsert(ctx, tx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	all, err := repo.GetByProductIDs(ctx, tx, []uuid.UUID{product.ID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("identity must stay unique: want=1 row got=%d", len(all))
	}
	if all[0].RatingValue == nil || *all[0].RatingValue != 9 {
		t.Fatalf("rating: want=9 got=%v", all[0].RatingValue)
	}
}

func TestSubmissionRepoGetByProductAndJudges(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewSubmissionRepo(tx, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "owner-sub2@launchforge.dev", types.RoleUser)
	judgeA := testutil.SeedJudge(t, ctx, tx, "judge-a@launchforge.dev")
	judgeB := testutil.SeedJudge(t, ctx, tx, "judge-b@launchforge.dev")
	product := testutil.SeedProduct(t, ctx, tx, owner.ID, "Nimbus")
	criterion := testutil.SeedCriterion(t, ctx, tx, "Would use", types.CriterionTypeBoolean)

	testutil.SeedBooleanSubmission(t, ctx, tx, judgeA.ID, product.ID, criterion.ID, true)
	testutil.SeedBooleanSubmission(t, ctx, tx, judgeB.ID, product.ID, criterion.ID, false)

	onlyA, err := repo.GetByProductAndJudges(ctx, tx, product.ID, []uuid.UUID{judgeA.ID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(onlyA) != 1 || onlyA[0].JudgeID != judgeA.ID {
		t.Fatalf("filter by judge: want only judge A, got %+v", onlyA)
	}
}

func TestSubmissionRepoExistsForCriterion(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewSubmissionRepo(tx, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "owner-sub3@launchforge.dev", types.RoleUser)
	judge := testutil.SeedJudge(t, ctx, tx, "judge-sub3@launchforge.dev")
	product := testutil.SeedProduct(t, ctx, tx, owner.ID, "Fathom")
	used := testutil.SeedRatingCriterion(t, ctx, tx, "Used", 1, 10, 1.0)
	unused := testutil.SeedRatingCriterion(t, ctx, tx, "Unused", 1, 10, 1.0)

	testutil.SeedRatingSubmission(t, ctx, tx, judge.ID, product.ID, used.ID, 7)

	got, err := repo.ExistsForCriterion(ctx, tx, used.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !got {
		t.Fatalf("want exists=true for criterion with submissions")
	}

	got, err = repo.ExistsForCriterion(ctx, tx, unused.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if got {
		t.Fatalf("want exists=false for untouched criterion")
	}
}
