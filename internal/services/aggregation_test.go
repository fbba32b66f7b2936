package services

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/launchforge/launchforge-backend/internal/data/repos"
	"github.com/launchforge/launchforge-backend/internal/data/repos/testutil"
	types "github.com/launchforge/launchforge-backend/internal/domain"
)

func ratingCriterion(name string, weight float64) *types.Criterion {
	return &types.Criterion{
		ID:       uuid.New(),
		Name:     name,
		Type:     types.CriterionTypeRating,
		MinValue: testutil.PtrInt(1),
		MaxValue: testutil.PtrInt(10),
		Weight:   weight,
	}
}

func ratingSubmission(judgeID, productID, criterionID uuid.UUID, rating int) *types.Submission {
	s := &types.Submission{
		ID:          uuid.New(),
		JudgeID:     judgeID,
		ProductID:   productID,
		CriterionID: criterionID,
	}
	s.SetValue(types.RatingValue(rating))
	return s
}

func TestComputeProductScoreWeightedOverall(t *testing.T) {
	productID := uuid.New()
	judgeA := uuid.New()
	judgeB := uuid.New()

	innovation := ratingCriterion("Innovation", 2.0)
	design := ratingCriterion("Design", 1.0)

	// Innovation: (8+6)/2 = 7, Design: (9+5)/2 = 7.
	// Overall: (7*2 + 7*1) / 3 = 7.0
	subs := []*types.Submission{
		ratingSubmission(judgeA, productID, innovation.ID, 8),
		ratingSubmission(judgeB, productID, innovation.ID, 6),
		ratingSubmission(judgeA, productID, design.ID, 9),
		ratingSubmission(judgeB, productID, design.ID, 5),
	}

	score := computeProductScore(productID, []*types.Criterion{innovation, design}, subs)

	if score.Overall == nil {
		t.Fatalf("overall: want 7.0, got nil")
	}
	if math.Abs(*score.Overall-7.0) > 1e-9 {
		t.Fatalf("overall: want=7.0 got=%v", *score.Overall)
	}
	if len(score.Results) != 2 {
		t.Fatalf("results len: want=2 got=%d", len(score.Results))
	}
	if score.Results[0].JudgeCount != 2 {
		t.Fatalf("judge count: want=2 got=%d", score.Results[0].JudgeCount)
	}
}

func TestComputeProductScoreUnevenWeights(t *testing.T) {
	productID := uuid.New()
	judge := uuid.New()

	heavy := ratingCriterion("Heavy", 3.0)
	light := ratingCriterion("Light", 0.5)

	subs := []*types.Submission{
		ratingSubmission(judge, productID, heavy.ID, 10),
		ratingSubmission(judge, productID, light.ID, 2),
	}

	score := computeProductScore(productID, []*types.Criterion{heavy, light}, subs)

	want := (10*3.0 + 2*0.5) / 3.5
	if score.Overall == nil || math.Abs(*score.Overall-want) > 1e-9 {
		t.Fatalf("overall: want=%v got=%v", want, score.Overall)
	}
}

func TestComputeProductScoreNoSubmissionsIsNil(t *testing.T) {
	productID := uuid.New()
	c := ratingCriterion("Innovation", 1.0)

	score := computeProductScore(productID, []*types.Criterion{c}, nil)

	if score.Overall != nil {
		t.Fatalf("overall must be nil with no data, got=%v", *score.Overall)
	}
	if len(score.Results) != 1 {
		t.Fatalf("results still enumerate every criterion: want=1 got=%d", len(score.Results))
	}
	if score.Results[0].AvgRating != nil {
		t.Fatalf("avg must be nil with no ratings, got=%v", *score.Results[0].AvgRating)
	}
	if score.Results[0].JudgeCount != 0 {
		t.Fatalf("judge count: want=0 got=%d", score.Results[0].JudgeCount)
	}
}

func TestComputeProductScoreExcludesBooleanAndText(t *testing.T) {
	productID := uuid.New()
	judge := uuid.New()

	rated := ratingCriterion("Rated", 1.0)
	boolean := &types.Criterion{ID: uuid.New(), Name: "Would use", Type: types.CriterionTypeBoolean, Weight: 5.0}
	text := &types.Criterion{ID: uuid.New(), Name: "Feedback", Type: types.CriterionTypeText, Weight: 5.0}

	boolSub := &types.Submission{ID: uuid.New(), JudgeID: judge, ProductID: productID, CriterionID: boolean.ID}
	boolSub.SetValue(types.BooleanValue(true))
	textSub := &types.Submission{ID: uuid.New(), JudgeID: judge, ProductID: productID, CriterionID: text.ID}
	textSub.SetValue(types.TextValue("solid launch"))

	subs := []*types.Submission{
		ratingSubmission(judge, productID, rated.ID, 6),
		boolSub,
		textSub,
	}

	score := computeProductScore(productID, []*types.Criterion{rated, boolean, text}, subs)

	// Only the rating criterion feeds the overall, whatever the other weights.
	if score.Overall == nil || math.Abs(*score.Overall-6.0) > 1e-9 {
		t.Fatalf("overall: want=6.0 got=%v", score.Overall)
	}
	if score.Results[1].CountTrue != 1 || score.Results[1].CountFalse != 0 {
		t.Fatalf("boolean tally: want 1/0 got %d/%d", score.Results[1].CountTrue, score.Results[1].CountFalse)
	}
	if len(score.Results[2].Comments) != 1 || score.Results[2].Comments[0] != "solid launch" {
		t.Fatalf("comments: want [solid launch] got %v", score.Results[2].Comments)
	}
}

func TestComputeProductScoreDistinctJudges(t *testing.T) {
	productID := uuid.New()
	judge := uuid.New()
	c := ratingCriterion("Innovation", 1.0)

	// Two rows from the same judge (dirty data): judge count stays 1.
	subs := []*types.Submission{
		ratingSubmission(judge, productID, c.ID, 4),
		ratingSubmission(judge, productID, c.ID, 8),
	}

	score := computeProductScore(productID, []*types.Criterion{c}, subs)

	if score.Results[0].JudgeCount != 1 {
		t.Fatalf("judge count: want=1 got=%d", score.Results[0].JudgeCount)
	}
}

func TestGetAggregateFromStore(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	svc := NewAggregationService(tx, log, repos.NewCriterionRepo(tx, log), repos.NewSubmissionRepo(tx, log))

	owner := testutil.SeedUser(t, ctx, tx, "agg-owner@launchforge.dev", types.RoleUser)
	judge := testutil.SeedJudge(t, ctx, tx, "agg-judge@launchforge.dev")
	product := testutil.SeedProduct(t, ctx, tx, owner.ID, "Comet")
	criterion := testutil.SeedRatingCriterion(t, ctx, tx, "Innovation", 1, 10, 1.0)

	testutil.SeedRatingSubmission(t, ctx, tx, judge.ID, product.ID, criterion.ID, 7)

	score, err := svc.GetAggregate(ctx, tx, product.ID)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if score.Overall == nil || math.Abs(*score.Overall-7.0) > 1e-9 {
		t.Fatalf("overall: want=7.0 got=%v", score.Overall)
	}

	// A second submission from another judge moves the average live.
	judgeB := testutil.SeedJudge(t, ctx, tx, "agg-judge-b@launchforge.dev")
	testutil.SeedRatingSubmission(t, ctx, tx, judgeB.ID, product.ID, criterion.ID, 9)

	score, err = svc.GetAggregate(ctx, tx, product.ID)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if score.Overall == nil || math.Abs(*score.Overall-8.0) > 1e-9 {
		t.Fatalf("overall after second judge: want=8.0 got=%v", score.Overall)
	}
}
