package report

import (
	"fmt"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/avelis/revu/internal/review"
)

const (
	maxPDFFeedbackChars   = 800
	maxPDFSuggestions     = 3
	maxPDFMessageChars    = 100
	reviewsPerPDFPage     = 3
	labelColumnWidthMM    = 38.0
	valueColumnWidthMM    = 132.0
	tableRowHeightMM      = 7.0
	bodyLineHeightMM      = 5.5
)

// DocRenderer builds the PDF directly from the review sequence with
// explicit paragraph and table styling. Pure Go; used when wkhtmltopdf is
// not installed.
type DocRenderer struct{}

func (r *DocRenderer) Name() string { return "document" }

func (r *DocRenderer) Render(reviews []review.Review, _ string, meta Meta, outPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Title and subtitle
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 12, "Git Commit Review Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 14)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Analysis for GitHub User: %s", meta.Username)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Configuration echo
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(30, 41, 59)
	pdf.MultiCell(0, bodyLineHeightMM, tr(fmt.Sprintf(
		"Configuration:\nMax Diff Size: %d characters\nDefault Commit Count: %d\nLog Level: %s",
		meta.MaxDiffSize, meta.DefaultCommitCount, meta.LogLevel)), "", "L", false)
	pdf.Ln(4)

	// Summary
	summary := fmt.Sprintf("Total commits reviewed: %d\n", len(reviews))
	if avg, ok := review.AverageScore(reviews); ok {
		summary += fmt.Sprintf("Average quality score: %.1f/10\n", avg)
	}
	summary += fmt.Sprintf("Generated on: %s", meta.GeneratedAt.Format("January 2, 2006 at 3:04 PM"))
	if len(reviews) == 0 {
		summary = "No commits reviewed"
	}
	pdf.MultiCell(0, bodyLineHeightMM, tr(summary), "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Detailed Commit Analysis", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for i, rv := range reviews {
		r.renderReview(pdf, tr, i+1, rv)

		if (i+1)%reviewsPerPDFPage == 0 && i+1 < len(reviews) {
			pdf.AddPage()
		}
	}

	// Footer
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(100, 116, 139)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf(
		"Report generated by AI-Powered Git Commit Reviewer | %d", meta.GeneratedAt.Year())), "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("writing PDF document: %w", err)
	}
	return nil
}

func (r *DocRenderer) renderReview(pdf *fpdf.Fpdf, tr func(string) string, n int, rv review.Review) {
	c := rv.Commit
	a := rv.Analysis

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(37, 99, 235)
	pdf.CellFormat(0, 9, tr(fmt.Sprintf("#%d - Commit: %s (%s)", n, c.ShortHash(), filepath.Base(rv.Repository))), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	rows := [][2]string{
		{"Author", c.Author},
		{"Date", clip(c.Date, 19)},
		{"Message", clip(c.Message, maxPDFMessageChars)},
		// Sentinel scores render as plain text, same as numeric ones.
		{"Quality Score", a.Score + "/10"},
	}
	pdf.SetTextColor(30, 41, 59)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(248, 250, 252)
		pdf.CellFormat(labelColumnWidthMM, tableRowHeightMM, tr(row[0]), "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(valueColumnWidthMM, tableRowHeightMM, tr(row[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "AI Analysis:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, bodyLineHeightMM, tr(clip(a.Feedback, maxPDFFeedbackChars)), "", "L", false)

	if len(a.Suggestions) > 0 {
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 7, "Improvement Suggestions:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for i, s := range a.Suggestions {
			if i >= maxPDFSuggestions {
				break
			}
			pdf.MultiCell(0, bodyLineHeightMM, tr("• "+s), "", "L", false)
		}
	}
	pdf.Ln(4)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
