package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	marginLeft = 15.0
	lineHeight = 5.0
	pageBottom = 255.0
)

var tableWidths = []float64{10, 85, 40, 40, 20}

var tableHeader = []string{"#", "Question", "Your Answer", "Correct Answer", "Result"}

// RenderPDF typesets the report model and writes the PDF to w.
func RenderPDF(model *ReportModel, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(marginLeft, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Quiz Performance Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	headerLine(pdf, "Name", model.Header.UserName)
	headerLine(pdf, "Topic", model.Header.Topic)
	headerLine(pdf, "Date", model.Header.Date.Format("2006-01-02 15:04"))
	headerLine(pdf, "Final Score", fmt.Sprintf("%s / %d", model.Header.ScoreDisplay, model.Header.TotalQuestions))
	pdf.Ln(6)

	section(pdf, "AI Performance Summary", model.Analysis.PerformanceSummary)
	section(pdf, "Recommendations & Resources", model.Analysis.Recommendations)

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Question-by-Question Breakdown", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	writeTableHeader(pdf)
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range model.Rows {
		result := "Incorrect"
		if row.Correct {
			result = "Correct"
		}
		writeTableRow(pdf, []string{
			fmt.Sprintf("%d", row.Number),
			row.Question,
			row.UserAnswer,
			row.CorrectAnswer,
			result,
		})
	}

	return pdf.Output(w)
}

func headerLine(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, lineHeight, label+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, lineHeight, value, "", "L", false)
}

func section(pdf *fpdf.Fpdf, title, body string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, lineHeight, body, "", "L", false)
	pdf.Ln(6)
}

func writeTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for i, title := range tableHeader {
		pdf.CellFormat(tableWidths[i], 8, title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

// writeTableRow draws one row with per-cell borders, growing the row to fit
// the tallest wrapped cell and breaking the page when needed.
func writeTableRow(pdf *fpdf.Fpdf, cells []string) {
	height := lineHeight
	for i, text := range cells {
		lines := pdf.SplitText(text, tableWidths[i]-2)
		if h := float64(len(lines)) * lineHeight; h > height {
			height = h
		}
	}

	if pdf.GetY()+height > pageBottom {
		pdf.AddPage()
		writeTableHeader(pdf)
		pdf.SetFont("Helvetica", "", 9)
	}

	x := marginLeft
	y := pdf.GetY()
	for i, text := range cells {
		pdf.Rect(x, y, tableWidths[i], height, "D")
		pdf.SetXY(x+1, y)
		pdf.MultiCell(tableWidths[i]-2, lineHeight, text, "", "L", false)
		x += tableWidths[i]
	}
	pdf.SetXY(marginLeft, y+height)
}
