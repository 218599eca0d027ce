package tui

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/go-pdf/fpdf"
)

// ExportMonthPDF writes a one-page landscape sheet of the month grid to path.
func ExportMonthPDF(path string, year, month int, weeks []calendar.Week, today, selected calendar.Date, withWeeks bool) error {
	if len(weeks) == 0 {
		return fmt.Errorf("export %04d-%02d: empty month grid", year, month)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(FormatMonthTitle(year, month), true)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(usable, 14, FormatMonthTitle(year, month), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	weekW := 0.0
	if withWeeks {
		weekW = 14
	}
	cellW := (usable - weekW) / config.DaysPerWeek
	cellH := float64(config.PDFCellHeight)

	// Header
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	if withWeeks {
		pdf.CellFormat(weekW, 8, "W", "1", 0, "C", true, 0, "")
	}
	for _, name := range calendar.WeekdayNames {
		pdf.CellFormat(cellW, 8, name, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	for _, w := range weeks {
		y := pdf.GetY()
		x := left
		if withWeeks {
			pdf.SetFont("Arial", "", 10)
			pdf.SetTextColor(120, 120, 120)
			pdf.SetXY(x, y)
			pdf.CellFormat(weekW, cellH, strconv.Itoa(w.Number), "1", 0, "C", false, 0, "")
			x += weekW
		}
		for _, d := range w.Days {
			info := calendar.Describe(d, year, month, today, selected)
			pdf.SetXY(x, y)
			pdf.SetFont("Arial", "", 12)
			switch {
			case !info.InMonth:
				pdf.SetTextColor(170, 170, 170)
			case info.Weekend:
				pdf.SetTextColor(180, 40, 40)
			default:
				pdf.SetTextColor(0, 0, 0)
			}
			if info.Today {
				pdf.SetFont("Arial", "B", 12)
			}
			pdf.CellFormat(cellW, cellH, strconv.Itoa(d.Day), "1", 0, "RT", false, 0, "")
			if info.Selected {
				pdf.SetDrawColor(40, 90, 200)
				pdf.SetLineWidth(0.8)
				pdf.Rect(x+1, y+1, cellW-2, cellH-2, "D")
				pdf.SetDrawColor(0, 0, 0)
				pdf.SetLineWidth(0.2)
			}
			x += cellW
		}
		pdf.SetXY(left, y+cellH)
	}
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetX(left)
	pdf.CellFormat(usable, 6, fmt.Sprintf("Selected %s", selected), "", 0, "L", false, 0, "")

	return pdf.OutputFileAndClose(path)
}
