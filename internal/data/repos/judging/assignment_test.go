package judging

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/launchforge/launchforge-backend/internal/data/repos/testutil"
	types "github.com/launchforge/launchforge-backend/internal/domain"
)

func TestAssignmentRepoCreateAndList(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewAssignmentRepo(tx, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "owner@launchforge.dev", types.RoleUser)
	judge := testutil.SeedJudge(t, ctx, tx, "judge@launchforge.dev")
	product := testutil.SeedProduct(t, ctx, tx, owner.ID, "RocketNotes")

	created, err := repo.Create(ctx, tx, []*types.Assignment{{
		ID:         uuid.New(),
		JudgeID:    judge.ID,
		ProductID:  product.ID,
		AssignedAt: time.Now().UTC(),
	}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created len: want=1 got=%d", len(created))
	}

	byProduct, err := repo.GetByProductIDs(ctx, tx, []uuid.UUID{product.ID})
	if err != nil {
		t.Fatalf("get by product: %v", err)
	}
	if len(byProduct) != 1 || byProduct[0].JudgeID != judge.ID {
		t.Fatalf("by product: want judge %s, got %+v", judge.ID, byProduct)
	}

	byJudge, err := repo.GetByJudgeIDs(ctx, tx, []uuid.UUID{judge.ID})
	if err != nil {
		t.Fatalf("get by judge: %v", err)
	}
	if len(byJudge) != 1 || byJudge[0].ProductID != product.ID {
		t.Fatalf("by judge: want product %s, got %+v", product.ID, byJudge)
	}
}

func TestAssignmentRepoDuplicateIdentityRejected(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewAssignmentRepo(tx, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "owner2@launchforge.dev", types.RoleUser)
	judge := testutil.SeedJudge(t, ctx, tx, "judge2@launchforge.dev")
	product := testutil.SeedProduct(t, ctx, tx, owner.ID, "PixelPad")

	testutil.SeedAssignment(t, ctx, tx, judge.ID, product.ID)

	_, err := repo.Create(ctx, tx, []*types.Assignment{{
		ID:         uuid.New(),
		JudgeID:    judge.ID,
		ProductID:  product.ID,
		AssignedAt: time.Now().UTC(),
	}})
	if err == nil {
		t.Fatalf("expected unique violation for duplicate judge/product pair")
	}
	if !IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
}

func TestAssignmentRepoDelete(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewAssignmentRepo(tx, testutil.Logger(t))

	owner := testutil.SeedUser(t, ctx, tx, "owner3@launchforge.dev", types.RoleUser)
	judge := testutil.SeedJudge(t, ctx, tx, "judge3@launchforge.dev")
	product := testutil.SeedProduct(t, ctx, tx, owner.ID, "Glide")
	a := testutil.SeedAssignment(t, ctx, tx, judge.ID, product.ID)

	if err := repo.DeleteByID(ctx, tx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	remaining, err := repo.GetByProductIDs(ctx, tx, []uuid.UUID{product.ID})
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("want no assignments after delete, got %d", len(remaining))
	}
}
