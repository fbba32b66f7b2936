package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/data/repos/testutil"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"gorm.io/gorm"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func newCertificateService(t *testing.T, tx *gorm.DB) CertificateService {
	t.Helper()
	svc, err := NewCertificateService(tx, testutil.Logger(t), newReportService(t, tx))
	if err != nil {
		t.Fatalf("certificate service: %v", err)
	}
	return svc
}

func TestRenderCertificate(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCertificateService(t, tx)

	owner := testutil.SeedUser(t, ctx, tx, "cert-owner@launchforge.dev", types.RoleUser)
	judge := testutil.SeedJudge(t, ctx, tx, "cert-judge@launchforge.dev")
	product := testutil.SeedProduct(t, ctx, tx, owner.ID, "Northstar")
	criterion := testutil.SeedRatingCriterion(t, ctx, tx, "Innovation", 1, 10, 1.0)
	testutil.SeedAssignment(t, ctx, tx, judge.ID, product.ID)
	testutil.SeedRatingSubmission(t, ctx, tx, judge.ID, product.ID, criterion.ID, 9)

	pages, err := svc.RenderCertificate(ctx, tx, product.ID)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("pages: want=2 got=%d", len(pages))
	}
	for i, page := range pages {
		if len(page) == 0 {
			t.Fatalf("page %d is empty", i)
		}
		if !bytes.HasPrefix(page, pngMagic) {
			t.Fatalf("page %d is not a PNG", i)
		}
	}
}

func TestRenderCertificateWithoutScores(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCertificateService(t, tx)

	owner := testutil.SeedUser(t, ctx, tx, "cert-owner2@launchforge.dev", types.RoleUser)
	product := testutil.SeedProduct(t, ctx, tx, owner.ID, "Quietlaunch")
	testutil.SeedRatingCriterion(t, ctx, tx, "Innovation", 1, 10, 1.0)

	// An unjudged product still renders; the score block reads "No score".
	pages, err := svc.RenderCertificate(ctx, tx, product.ID)
	if err != nil {
		t.Fatalf("render without scores: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("pages: want=2 got=%d", len(pages))
	}
}

func TestRenderCertificateUnknownProduct(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newCertificateService(t, tx)

	_, err := svc.RenderCertificate(ctx, tx, uuid.New())
	if err == nil {
		t.Fatalf("want error for unknown product")
	}
}
