package services

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	types "github.com/launchforge/launchforge-backend/internal/domain"
	"github.com/launchforge/launchforge-backend/internal/domain/judging"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"golang.org/x/image/font"
	"gorm.io/gorm"
)

// A4 portrait at 150dpi.
const (
	certPageW = 1240
	certPageH = 1754
)

var (
	bandGreenColor = color.NRGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF}
	bandAmberColor = color.NRGBA{R: 0xF9, G: 0xA8, B: 0x25, A: 0xFF}
	bandRedColor   = color.NRGBA{R: 0xC6, G: 0x28, B: 0x28, A: 0xFF}
	certInkColor   = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF}
	certRuleColor  = color.NRGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF}
)

func bandColor(band types.ScoreBand) color.NRGBA {
	switch band {
	case types.BandGreen:
		return bandGreenColor
	case types.BandAmber:
		return bandAmberColor
	default:
		return bandRedColor
	}
}

type CertificateService interface {
	// RenderCertificate produces the two-page evaluation document as PNG
	// pages: the formal certificate, then the detailed per-criterion
	// breakdown. Every number shown comes from the report's aggregate.
	RenderCertificate(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([][]byte, error)
}

type certificateService struct {
	db      *gorm.DB
	log     *logger.Logger
	reports ReportService

	titleFace font.Face
	bodyFace  font.Face
}

func NewCertificateService(db *gorm.DB, log *logger.Logger, reports ReportService) (CertificateService, error) {
	serviceLog := log.With("service", "CertificateService")

	svc := &certificateService{
		db:      db,
		log:     serviceLog,
		reports: reports,
	}

	// Optional TTF; the gg default face keeps rendering working without one.
	fontPath := strings.TrimSpace(os.Getenv("CERTIFICATE_FONT"))
	if fontPath != "" {
		titleFace, err := loadFontFace(fontPath, 64)
		if err != nil {
			return nil, fmt.Errorf("could not load certificate font: %w", err)
		}
		bodyFace, err := loadFontFace(fontPath, 28)
		if err != nil {
			return nil, fmt.Errorf("could not load certificate font: %w", err)
		}
		svc.titleFace = titleFace
		svc.bodyFace = bodyFace
		serviceLog.Info("certificate font loaded", "font", fontPath)
	}

	return svc, nil
}

func (s *certificateService) RenderCertificate(ctx context.Context, tx *gorm.DB, productID uuid.UUID) ([][]byte, error) {
	report, err := s.reports.BuildReport(ctx, tx, productID)
	if err != nil {
		return nil, err
	}

	certPage, err := s.renderCertificatePage(report)
	if err != nil {
		return nil, err
	}
	detailPage, err := s.renderDetailPage(report)
	if err != nil {
		return nil, err
	}
	return [][]byte{certPage, detailPage}, nil
}

func (s *certificateService) renderCertificatePage(report *ProductReport) ([]byte, error) {
	dc := gg.NewContext(certPageW, certPageH)
	dc.SetColor(color.White)
	dc.Clear()

	// Double border
	dc.SetColor(certInkColor)
	dc.SetLineWidth(6)
	dc.DrawRectangle(40, 40, certPageW-80, certPageH-80)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(60, 60, certPageW-120, certPageH-120)
	dc.Stroke()

	cx := float64(certPageW) / 2

	s.setTitleFace(dc)
	dc.SetColor(certInkColor)
	dc.DrawStringAnchored("Certificate of Evaluation", cx, 280, 0.5, 0.5)

	s.setBodyFace(dc)
	dc.DrawStringAnchored("This certifies that", cx, 420, 0.5, 0.5)

	s.setTitleFace(dc)
	dc.DrawStringAnchored(report.Product.Name, cx, 520, 0.5, 0.5)

	s.setBodyFace(dc)
	if report.Product.Tagline != "" {
		dc.DrawStringAnchored(report.Product.Tagline, cx, 600, 0.5, 0.5)
	}
	dc.DrawStringAnchored("has been evaluated by the judging panel", cx, 700, 0.5, 0.5)

	// Overall score, colored by band; nil renders as "No score", never 0.0.
	scoreText := FormatScore(report.Score.Overall)
	if report.Score.Overall != nil {
		dc.SetColor(bandColor(judging.BandForScore(*report.Score.Overall)))
	}
	s.setTitleFace(dc)
	dc.DrawStringAnchored(scoreText, cx, 860, 0.5, 0.5)
	dc.SetColor(certInkColor)
	s.setBodyFace(dc)
	if report.Score.Overall != nil {
		dc.DrawStringAnchored("overall score out of 10", cx, 940, 0.5, 0.5)
	}

	if len(report.Makers) > 0 {
		names := make([]string, 0, len(report.Makers))
		for _, m := range report.Makers {
			names = append(names, m.Username)
		}
		dc.DrawStringAnchored("Made by "+strings.Join(names, ", "), cx, 1080, 0.5, 0.5)
	}
	dc.DrawStringAnchored(fmt.Sprintf("Evaluated by %d judge(s)", len(report.Judges)), cx, 1140, 0.5, 0.5)

	dc.SetColor(certRuleColor)
	dc.SetLineWidth(1)
	dc.DrawLine(cx-200, 1500, cx+200, 1500)
	dc.Stroke()
	dc.SetColor(certInkColor)
	dc.DrawStringAnchored(report.GeneratedAt.Format("January 2, 2006"), cx, 1540, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode certificate page: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *certificateService) renderDetailPage(report *ProductReport) ([]byte, error) {
	dc := gg.NewContext(certPageW, certPageH)
	dc.SetColor(color.White)
	dc.Clear()

	s.setTitleFace(dc)
	dc.SetColor(certInkColor)
	dc.DrawStringAnchored("Detailed Evaluation", float64(certPageW)/2, 140, 0.5, 0.5)

	s.setBodyFace(dc)
	dc.DrawStringAnchored(report.Product.Name, float64(certPageW)/2, 220, 0.5, 0.5)

	const (
		left   = 120.0
		right  = certPageW - 120.0
		rowH   = 56.0
		colVal = right - 360
		colJdg = right - 120
	)
	y := 320.0

	dc.DrawString("Criterion", left, y)
	dc.DrawString("Weight", colVal-220, y)
	dc.DrawString("Score", colVal, y)
	dc.DrawString("Judges", colJdg, y)
	y += 16
	dc.SetColor(certRuleColor)
	dc.SetLineWidth(2)
	dc.DrawLine(left, y, right, y)
	dc.Stroke()
	y += rowH - 16

	hasRating := false
	for _, agg := range report.Score.Results {
		dc.SetColor(certInkColor)
		dc.DrawString(agg.CriterionName, left, y)
		dc.DrawString(fmt.Sprintf("%.1f", agg.Weight), colVal-220, y)

		if agg.CriterionType == types.CriterionTypeRating && agg.AvgRating != nil {
			hasRating = true
			dc.SetColor(bandColor(judging.BandForScore(*agg.AvgRating)))
		}
		dc.DrawString(FormatAggregate(agg), colVal, y)

		dc.SetColor(certInkColor)
		dc.DrawString(fmt.Sprintf("%d", agg.JudgeCount), colJdg, y)

		y += rowH
		if y > certPageH-400 {
			break
		}
	}

	if !hasRating {
		y += 24
		dc.SetColor(certInkColor)
		dc.DrawString("No rating data available", left, y)
		y += rowH
	}

	y += 40
	dc.SetColor(certInkColor)
	dc.DrawString("Overall: "+FormatScore(report.Score.Overall), left, y)

	// Criteria descriptions and judge names, for transparency.
	y += 2 * rowH
	dc.SetColor(certRuleColor)
	dc.SetLineWidth(1)
	dc.DrawLine(left, y-rowH/2, right, y-rowH/2)
	dc.Stroke()
	dc.SetColor(certInkColor)
	for _, c := range report.Criteria {
		if c.Description == "" {
			continue
		}
		dc.DrawString(fmt.Sprintf("%s - %s", c.Name, c.Description), left, y)
		y += rowH - 14
		if y > certPageH-200 {
			break
		}
	}

	if len(report.Judges) > 0 && y < certPageH-160 {
		names := make([]string, 0, len(report.Judges))
		for _, j := range report.Judges {
			names = append(names, j.Username)
		}
		y += rowH
		dc.DrawString("Judging panel: "+strings.Join(names, ", "), left, y)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode detail page: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *certificateService) setTitleFace(dc *gg.Context) {
	if s.titleFace != nil {
		dc.SetFontFace(s.titleFace)
	}
}

func (s *certificateService) setBodyFace(dc *gg.Context) {
	if s.bodyFace != nil {
		dc.SetFontFace(s.bodyFace)
	}
}

func loadFontFace(fontPath string, size float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsedFont, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TTF: %w", err)
	}
	face := truetype.NewFace(parsedFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	return face, nil
}
