// Package export writes progress reports as spreadsheets.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

// Ensure XLSX implements the interface.
var _ driven.ProgressExporter = (*XLSX)(nil)

// Sheet names.
const (
	ProgressSheet = "Progress"
	FeedbackSheet = "Feedback"
)

var (
	progressHeader = []any{"الموضوع", "المعرف", "الخطوات المكتملة", "إجمالي الخطوات", "مكتمل"}
	feedbackHeader = []any{"الموضوع", "مفيد", "غير مفيد"}
)

// XLSX renders a report as an Excel workbook with right-to-left sheets.
type XLSX struct{}

// NewXLSX creates an XLSX exporter.
func NewXLSX() *XLSX {
	return &XLSX{}
}

// Extension returns the file extension of exported reports.
func (x *XLSX) Extension() string {
	return ".xlsx"
}

// Export writes report to w.
func (x *XLSX) Export(ctx context.Context, w io.Writer, report *domain.ProgressReport) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ProgressSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(FeedbackSheet); err != nil {
		return fmt.Errorf("create feedback sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	rows := make([][]any, 0, len(report.Topics)+1)
	rows = append(rows, progressHeader)
	for _, tp := range report.Topics {
		done := "لا"
		if tp.Complete {
			done = "نعم"
		}
		rows = append(rows, []any{tp.Title, string(tp.TopicID), tp.Checked.Count(), tp.Total, done})
	}
	if err := writeSheet(ctx, f, ProgressSheet, rows, bold); err != nil {
		return err
	}

	rows = rows[:0]
	rows = append(rows, feedbackHeader)
	titles := make(map[domain.TopicID]string, len(report.Topics))
	for _, tp := range report.Topics {
		titles[tp.TopicID] = tp.Title
	}
	for _, s := range report.Feedback {
		title := titles[s.TopicID]
		if title == "" {
			title = string(s.TopicID)
		}
		rows = append(rows, []any{title, s.Up, s.Down})
	}
	if err := writeSheet(ctx, f, FeedbackSheet, rows, bold); err != nil {
		return err
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "LMS guide progress",
		Created: report.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}); err != nil {
		return fmt.Errorf("set properties: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(ctx context.Context, f *excelize.File, sheet string, rows [][]any, header int) error {
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last+"1", header); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 32); err != nil {
		return fmt.Errorf("size %s columns: %w", sheet, err)
	}

	rtl := true
	if err := f.SetSheetView(sheet, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return fmt.Errorf("set %s view: %w", sheet, err)
	}
	return nil
}
