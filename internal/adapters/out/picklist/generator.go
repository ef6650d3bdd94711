// Package picklist renders printable pick lists for outbound orders: one row per
// picking task with a QR code of the task id for scanner confirmation.
package picklist

import (
	"bytes"
	"fmt"

	"wms/internal/core/application/usecases/queries"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	pageHeight   = 297.0
	marginLeft   = 12.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 24.0
	qrSize       = 20.0
	qrPixels     = 256
)

// column widths in mm; the last column holds the QR code.
var (
	headers = []string{"#", "Item", "Description", "Location", "Qty", "Status", "Task"}
	widths  = []float64{8, 28, 58, 26, 18, 22, 26}
)

// Generator renders pick lists as A4 PDFs.
type Generator struct {
	qrLevel qrcode.RecoveryLevel
}

func NewGenerator() Generator {
	return Generator{qrLevel: qrcode.Medium}
}

// Render returns the PDF bytes for order. Tasks are printed in the order given.
func (g Generator) Render(order queries.OrderResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle("Pick list "+order.Number, false)

	pdf.AddPage()
	g.header(pdf, order)
	g.tableHeader(pdf)

	if len(order.Tasks) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 10, "No picking tasks for this order.", "", 1, "L", false, 0, "")
	}

	for i, t := range order.Tasks {
		if pdf.GetY()+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			g.tableHeader(pdf)
		}
		if err := g.row(pdf, i, t); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pick list %s: %w", order.Number, err)
	}
	return buf.Bytes(), nil
}

func (g Generator) header(pdf *gofpdf.Fpdf, order queries.OrderResponse) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 9, "Pick list "+order.Number, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Customer: "+order.CustomerID, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Status: "+order.Status, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Created: "+order.CreatedAt.Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func (g Generator) tableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func (g Generator) row(pdf *gofpdf.Fpdf, index int, t queries.TaskResponse) error {
	png, err := qrcode.Encode(t.ID.String(), g.qrLevel, qrPixels)
	if err != nil {
		return fmt.Errorf("encode task %s: %w", t.ID, err)
	}

	imgName := "task_" + t.ID.String()
	imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader(imgName, imgOptions, bytes.NewReader(png))

	x, y := pdf.GetX(), pdf.GetY()
	cells := []string{
		fmt.Sprintf("%d", index+1),
		t.ItemCode,
		pdf.UnicodeTranslatorFromDescriptor("")(t.ItemName),
		t.LocationCode,
		t.TargetQuantity.String(),
		t.Status,
	}

	pdf.SetFont("Arial", "", 9)
	for i, text := range cells {
		pdf.CellFormat(widths[i], rowHeight, text, "1", 0, "C", false, 0, "")
	}
	pdf.CellFormat(widths[len(widths)-1], rowHeight, "", "1", 0, "C", false, 0, "")

	qrX := pdf.GetX() - widths[len(widths)-1] + (widths[len(widths)-1]-qrSize)/2
	pdf.ImageOptions(imgName, qrX, y+(rowHeight-qrSize)/2, qrSize, qrSize, false, imgOptions, 0, "")

	pdf.SetXY(x, y+rowHeight)
	return pdf.Error()
}
