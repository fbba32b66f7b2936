package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/launchforge/launchforge-backend/internal/pkg/logger"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ExportService interface {
	// ExportProductResults writes the product's evaluation summary to an XLSX
	// workbook: one row per criterion plus the overall score row.
	ExportProductResults(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*bytes.Buffer, string, error)
	// ExportAssignments writes the product's judge assignments with their
	// judged/pending state.
	ExportAssignments(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*bytes.Buffer, string, error)
}

type exportService struct {
	db          *gorm.DB
	log         *logger.Logger
	reports     ReportService
	status      JudgingStatusService
	assignments AssignmentService
	submissions SubmissionService
}

func NewExportService(db *gorm.DB, log *logger.Logger, reports ReportService, status JudgingStatusService, assignments AssignmentService, submissions SubmissionService) ExportService {
	serviceLog := log.With("service", "ExportService")
	return &exportService{
		db:          db,
		log:         serviceLog,
		reports:     reports,
		status:      status,
		assignments: assignments,
		submissions: submissions,
	}
}

func (s *exportService) ExportProductResults(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*bytes.Buffer, string, error) {
	report, err := s.reports.BuildReport(ctx, tx, productID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Evaluation"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 32)
	f.SetColWidth(sheetName, "B", "E", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s - Evaluation Results", report.Product.Name))
	f.MergeCell(sheetName, "A1", "E1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	row := 2
	headers := []string{"Criterion", "Type", "Weight", "Score", "Judges"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row = 3
	for _, agg := range report.Score.Results {
		f.SetCellValue(sheetName, cellRef(1, row), agg.CriterionName)
		f.SetCellValue(sheetName, cellRef(2, row), string(agg.CriterionType))
		f.SetCellValue(sheetName, cellRef(3, row), agg.Weight)
		f.SetCellValue(sheetName, cellRef(4, row), FormatAggregate(agg))
		f.SetCellValue(sheetName, cellRef(5, row), agg.JudgeCount)
		row++
	}

	row++
	f.SetCellValue(sheetName, cellRef(1, row), "Overall score")
	f.SetCellValue(sheetName, cellRef(4, row), FormatScore(report.Score.Overall))

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.log.Error("failed to write results workbook", "product_id", productID, "error", err)
		return nil, "", err
	}

	return buf, resultsFilename(report.Product.Name), nil
}

// resultsFilename builds a Content-Disposition safe name from the product
// name: only ASCII letters, digits, hyphen and underscore survive.
func resultsFilename(productName string) string {
	var b strings.Builder
	for _, r := range productName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "evaluation.xlsx"
	}
	return fmt.Sprintf("evaluation_%s.xlsx", b.String())
}

func (s *exportService) ExportAssignments(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*bytes.Buffer, string, error) {
	assignments, err := s.assignments.ListForProduct(ctx, tx, productID)
	if err != nil {
		return nil, "", err
	}
	submissions, err := s.submissions.ListForProduct(ctx, tx, productID)
	if err != nil {
		return nil, "", err
	}
	judged := make(map[uuid.UUID]bool)
	for _, sub := range submissions {
		judged[sub.JudgeID] = true
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Assignments"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "B", 28)
	f.SetColWidth(sheetName, "C", "D", 18)

	headers := []string{"Judge", "Email", "Assigned at", "Judged"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	row := 2
	for _, a := range assignments {
		username, email := "", ""
		if a.Judge != nil {
			username = a.Judge.Username
			email = a.Judge.Email
		}
		f.SetCellValue(sheetName, cellRef(1, row), username)
		f.SetCellValue(sheetName, cellRef(2, row), email)
		f.SetCellValue(sheetName, cellRef(3, row), a.AssignedAt.Format("2006-01-02 15:04"))
		if judged[a.JudgeID] {
			f.SetCellValue(sheetName, cellRef(4, row), "yes")
		} else {
			f.SetCellValue(sheetName, cellRef(4, row), "no")
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.log.Error("failed to write assignments workbook", "product_id", productID, "error", err)
		return nil, "", err
	}

	return buf, "assignments.xlsx", nil
}

func cellRef(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
