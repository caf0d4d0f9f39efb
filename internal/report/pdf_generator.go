package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/user/matrixbench_go/internal/analysis"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and state for PDF generation
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func() // map of style name to function that sets font, color etc.
	lineHeight  float64
	currentY    float64 // To manually track Y position for flowing content
	pageHeight  float64
	contentTopY float64 // Top Y after margin
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6, // mm
		pageHeight:  pdfPageHeightLandscape - (2 * pdfMargin),
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 14)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["warning"] = func() {
		s.pdf.SetFont("Arial", "I", 9)
		s.pdf.SetTextColor(150, 80, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200) // Light grey
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
	s.styles["tableCellBest"] = func() { // For the fastest method's row
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetTextColor(0, 120, 0)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.pdf.AddPage()
		s.currentY = s.contentTopY
	}
}

func (s *pdfStyler) newPage() {
	s.pdf.AddPage()
	s.currentY = s.contentTopY
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)

	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() // MultiCell may have wrapped onto several lines
	s.currentY += 1           // Small gap after paragraph
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

// writeTable draws a bordered table with a styled header row. cellStyle
// picks the style per body row so callers can highlight rows.
func (s *pdfStyler) writeTable(headers []string, rows [][]string, colWidthsRel []float64, cellStyle func(rowIdx int) string) {
	colWidthsAbs := make([]float64, len(colWidthsRel))
	for i, rel := range colWidthsRel {
		colWidthsAbs[i] = rel * pdfContentWidth
	}

	tableHeightNeeded := s.lineHeight * (float64(len(rows)) + 1.0)
	s.checkAddPage(tableHeightNeeded)

	sY := s.currentY
	sX := pdfMargin
	s.applyStyle("tableHeader")
	for i, header := range headers {
		s.pdf.SetXY(sX, sY)
		s.pdf.CellFormat(colWidthsAbs[i], s.lineHeight, header, "1", 0, "C", true, 0, "")
		sX += colWidthsAbs[i]
	}
	sY += s.lineHeight
	s.currentY = sY

	for rowIdx, rowData := range rows {
		s.checkAddPage(s.lineHeight) // Check for each row
		sY = s.currentY              // Potentially new Y if page break occurred
		sX = pdfMargin

		s.applyStyle(cellStyle(rowIdx))
		for i, cellData := range rowData {
			s.pdf.SetXY(sX, sY)
			s.pdf.CellFormat(colWidthsAbs[i], s.lineHeight, cellData, "1", 0, "C", false, 0, "")
			sX += colWidthsAbs[i]
		}
		sY += s.lineHeight
		s.currentY = sY
	}
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width float64, height float64, caption string) {
	// Gofpdf uses imageName as the key to refer to the image data later.
	s.pdf.RegisterImageReader(imageName, "PNG", bytes.NewReader(imageBytes))

	if width > pdfContentWidth {
		ratio := pdfContentWidth / width
		width = pdfContentWidth
		height *= ratio
	}

	captionHeight := 0.0
	if caption != "" {
		captionHeight = s.lineHeight + 1
	}
	s.checkAddPage(height + captionHeight)

	s.pdf.Image(imageName, pdfMargin, s.currentY, width, height, false, "PNG", 0, "")
	s.currentY += height

	if caption != "" {
		s.addSpacer(1)
		s.writeParagraph(caption, "normal", "C")
	}
	s.addSpacer(2)
}

// BuildPDFReport creates the PDF report: per-method summary table, any
// input anomalies, and the comparison chart.
func BuildPDFReport(filepath string, summaries []analysis.MethodSummary,
	numTrials int, parseWarnings []string, chartPNG []byte) error {

	pdf := gofpdf.New("L", "mm", "Letter", "") // Landscape, mm, Letter size
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)

	styler.writeParagraph(fmt.Sprintf("Matrix Multiplication Benchmark Report (%d Trials)", numTrials), "h1", "C")
	styler.addSpacer(5)

	if len(summaries) == 0 {
		styler.writeParagraph("No benchmark results to display.", "normal", "L")
		return pdf.OutputFileAndClose(filepath)
	}

	styler.writeParagraph("Method Summary", "h2", "L")
	headers := []string{"Method", "Trials", "Sizes", "Min Compute (ms)", "Mean Compute (ms)", "Max Compute (ms)", "Peak Mem (MB)", "Mean GFlops", "Peak GFlops"}
	colWidthsRel := []float64{0.16, 0.07, 0.11, 0.11, 0.11, 0.11, 0.11, 0.11, 0.11}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Method,
			fmt.Sprintf("%d", s.Trials),
			fmt.Sprintf("%d - %d", s.MinSize, s.MaxSize),
			fmt.Sprintf("%.3f", s.MinComputeMs),
			fmt.Sprintf("%.3f", s.MeanComputeMs),
			fmt.Sprintf("%.3f", s.MaxComputeMs),
			fmt.Sprintf("%.1f", s.PeakMemoryMB),
			fmt.Sprintf("%.2f", s.MeanGFlops),
			fmt.Sprintf("%.2f", s.PeakGFlops),
		})
	}
	fastest := analysis.FastestMethod(summaries)
	styler.writeTable(headers, rows, colWidthsRel, func(rowIdx int) string {
		if summaries[rowIdx].Method == fastest {
			return "tableCellBest"
		}
		return "tableCell"
	})
	styler.addSpacer(5)

	if len(parseWarnings) > 0 {
		styler.writeParagraph(fmt.Sprintf("Input Anomalies (%d rows skipped)", len(parseWarnings)), "h2", "L")
		for _, warn := range parseWarnings {
			styler.writeParagraph(warn, "warning", "L")
		}
		styler.addSpacer(5)
	}

	styler.newPage()
	styler.writeParagraph("Graphical Comparison", "h1", "C")
	styler.addSpacer(5)

	if len(chartPNG) > 0 {
		imgWidth := pdfContentWidth * 0.95
		imgHeight := imgWidth * (7.0 / 16.0) // Chart canvas aspect ratio
		styler.addImage(chartPNG, "comparison_chart", imgWidth, imgHeight,
			"Compute time (log scale) and achieved throughput versus matrix size")
	} else {
		styler.writeParagraph("Comparison chart not available.", "normal", "L")
	}

	return pdf.OutputFileAndClose(filepath)
}
