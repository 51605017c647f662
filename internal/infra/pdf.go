package infra

// pdf.go — Low-stock report export using go-pdf/fpdf. Renders an A4 page with
// a header, generation timestamp, and a product/quantity/reorder-level table,
// flagging out-of-stock rows.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/super-sam-code/VyaparTracker/internal/dto"

	"github.com/go-pdf/fpdf"
)

// WriteLowStockPDF writes the low-stock report to outPath, creating parent
// directories as needed. Returns the absolute path to the generated file.
func WriteLowStockPDF(items []dto.LowStockItem, outPath string) (string, error) {
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("pdf: create output dir: %w", err)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "VyaparTracker", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 7, "Low Stock Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Generated "+time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ──────────────────────────────────────────────────────────
	col1 := contentW * 0.52 // product name
	col2 := contentW * 0.16 // quantity
	col3 := contentW * 0.18 // reorder level
	col4 := contentW * 0.14 // status

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Quantity", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 7, "Reorder At", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 7, "Status", "B", 1, "C", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		name := truncateName(item.Name, 48)
		status := "LOW"
		if item.Quantity == 0 {
			status = "OUT"
		}
		pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, fmt.Sprintf("%d", item.ReorderLevel), "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, status, "", 1, "C", false, 0, "")
	}

	if len(items) == 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 6, "All products are above their reorder levels.", "", 1, "C", false, 0, "")
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d product(s) need reordering", len(items)), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	abs, err := filepath.Abs(outPath)
	if err != nil {
		return outPath, nil
	}
	return abs, nil
}

// truncateName caps a cell value at max characters. Counted in runes, not
// bytes, so multibyte product names are never split mid-character; the ellipsis
// stays ASCII because the core fonts are cp1252-encoded.
func truncateName(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
