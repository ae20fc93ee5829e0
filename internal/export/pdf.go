// Package export renders placement results to PDF, DXF and XLSX files.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/OpenSpot/internal/model"
)

// windowColor represents an RGB color for a drawn window.
type windowColor struct {
	R, G, B int
}

// windowColors cycles across the windows on the layout diagram.
var windowColors = []windowColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	qrSize       = 28.0
)

// placementStamp is the payload encoded into the summary page QR code.
type placementStamp struct {
	Scenario string          `json:"scenario"`
	Screen   model.Rectangle `json:"screen"`
	Position model.Point     `json:"position"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Fallback bool            `json:"fallback"`
}

// ExportPDF generates a PDF document for a placement run. The first page shows
// the screen layout with existing windows, the discovered open spaces and the
// chosen position; the second page lists the spaces and carries a QR code with
// the placement data.
func ExportPDF(path string, scenario model.Scenario, result model.PlacementResult, width, height int) error {
	if scenario.Screen.Width <= 0 || scenario.Screen.Height <= 0 {
		return fmt.Errorf("no screen to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, scenario, result, width, height)

	pdf.AddPage()
	if err := renderSummaryPage(pdf, scenario, result, width, height); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// renderLayoutPage draws the screen, its windows, the open spaces and the
// placed rectangle to scale on the current page.
func renderLayoutPage(pdf *fpdf.Fpdf, scenario model.Scenario, result model.PlacementResult, width, height int) {
	screen := scenario.Screen

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: %dx%d screen, placing %dx%d", scenario.Name, screen.Width, screen.Height, width, height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	mode := "open space"
	if result.Fallback {
		mode = "centered fallback"
	}
	stats := fmt.Sprintf("Windows: %d | Open spaces: %d | Position: (%d, %d) | Mode: %s",
		len(scenario.Windows), len(result.Spaces), result.Position.X, result.Position.Y, mode)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scaleX := drawWidth / float64(screen.Width)
	scaleY := drawHeight / float64(screen.Height)
	scale := math.Min(scaleX, scaleY)

	canvasW := float64(screen.Width) * scale
	canvasH := float64(screen.Height) * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// project maps a screen rectangle onto the page.
	project := func(r model.Rectangle) (x, y, w, h float64) {
		x = offsetX + float64(r.X-screen.X)*scale
		y = offsetY + float64(r.Y-screen.Y)*scale
		w = float64(r.Width) * scale
		h = float64(r.Height) * scale
		return
	}

	// Screen background
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Open spaces, dashed outlines under the windows
	pdf.SetDrawColor(0, 150, 136)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{1.5, 1.5}, 0)
	for _, space := range result.Spaces {
		sx, sy, sw, sh := project(space)
		pdf.Rect(sx, sy, sw, sh, "D")
	}
	pdf.SetDashPattern([]float64{}, 0)

	// Existing windows
	for i, win := range scenario.Windows {
		col := windowColors[i%len(windowColors)]
		wx, wy, ww, wh := project(win.Rect)

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(wx, wy, ww, wh, "FD")

		drawWindowLabel(pdf, win.Label, win.Rect, wx, wy, ww, wh)
	}

	// Placed window on top
	placed := result.Rect(width, height)
	px, py, pw, ph := project(placed)
	pdf.SetFillColor(255, 255, 255)
	pdf.SetDrawColor(211, 47, 47)
	pdf.SetLineWidth(0.6)
	pdf.Rect(px, py, pw, ph, "FD")
	drawWindowLabel(pdf, "NEW", placed, px, py, pw, ph)
}

// drawWindowLabel writes a label and the dimensions centered in a rectangle,
// skipping whatever does not fit.
func drawWindowLabel(pdf *fpdf.Fpdf, label string, r model.Rectangle, x, y, w, h float64) {
	if w <= 15 || h <= 8 {
		return
	}

	pdf.SetFont("Helvetica", "", labelFontSize(w, h))
	pdf.SetTextColor(0, 0, 0)

	dims := fmt.Sprintf("%dx%d", r.Width, r.Height)
	labelW := pdf.GetStringWidth(label)
	dimsW := pdf.GetStringWidth(dims)

	if labelW < w-2 {
		pdf.SetXY(x+(w-labelW)/2, y+h/2-4)
		pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	}
	if h > 14 && dimsW < w-2 {
		pdf.SetXY(x+(w-dimsW)/2, y+h/2)
		pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
	}
}

// labelFontSize picks a font size that fits the rectangle being labeled.
func labelFontSize(w, h float64) float64 {
	size := math.Min(w/8, h/3)
	if size > 9 {
		size = 9
	}
	if size < 4 {
		size = 4
	}
	return size
}

// renderSummaryPage lists the discovered spaces and embeds a QR code that
// encodes the placement as JSON.
func renderSummaryPage(pdf *fpdf.Fpdf, scenario model.Scenario, result model.PlacementResult, width, height int) error {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Placement summary", "", 0, "L", false, 0, "")

	y := marginTop + headerHeight + 4

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(0, 5, fmt.Sprintf("Chosen position: (%d, %d)", result.Position.X, result.Position.Y), "", 1, "L", false, 0, "")
	y += 6

	if result.Fallback {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(0, 5, "No usable open space, the window was centered on the screen.", "", 1, "L", false, 0, "")
		y += 6
	} else if result.Space.Area() > 0 {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(0, 5, fmt.Sprintf("Placed into space (%d, %d) %dx%d",
			result.Space.X, result.Space.Y, result.Space.Width, result.Space.Height), "", 1, "L", false, 0, "")
		y += 6
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(0, 5, fmt.Sprintf("Open spaces (%d)", len(result.Spaces)), "", 1, "L", false, 0, "")
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, space := range result.Spaces {
		if y > pageHeight-marginBottom-10 {
			pdf.SetXY(marginLeft, y)
			pdf.CellFormat(0, 5, fmt.Sprintf("... and %d more", len(result.Spaces)-i), "", 1, "L", false, 0, "")
			break
		}
		pdf.SetXY(marginLeft, y)
		line := fmt.Sprintf("%2d. (%d, %d) %dx%d, area %d", i+1, space.X, space.Y, space.Width, space.Height, space.Area())
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		y += 5
	}

	stamp := placementStamp{
		Scenario: scenario.Name,
		Screen:   scenario.Screen,
		Position: result.Position,
		Width:    width,
		Height:   height,
		Fallback: result.Fallback,
	}
	qrData, err := json.Marshal(stamp)
	if err != nil {
		return fmt.Errorf("failed to encode placement data: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%d_%d", scenario.Name, result.Position.X, result.Position.Y)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	return nil
}
