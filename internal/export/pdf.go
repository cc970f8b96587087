package export

import (
	"fmt"
	"os"

	"github.com/signintech/gopdf"
)

// metricColors distinguishes each headline metric on the PDF summary.
var metricColors = []struct{ r, g, b uint8 }{
	{34, 197, 94},  // income green
	{239, 68, 68},  // expense red
	{168, 85, 247}, // savings purple
	{14, 165, 233}, // balance blue
	{100, 116, 139}, // wealth slate
}

// candidateFonts are tried in order when no font path is configured.
var candidateFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
}

// DefaultFontPath returns the first usable system TTF, or empty when none
// is found. The export command surfaces a configuration error in that case.
func DefaultFontPath() string {
	for _, path := range candidateFonts {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// PDF renders the single-page summary document: a colored header band, the
// reporting-period label, the headline metrics as colored label/value
// pairs, and a footer attribution line.
func PDF(r Report, fontPath string) ([]byte, error) {
	if fontPath == "" {
		return nil, fmt.Errorf("no TTF font available for PDF export; set export.font in the config")
	}

	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})

	if err := pdf.AddTTFFont("sans", fontPath); err != nil {
		return nil, fmt.Errorf("failed to load font %s: %w", fontPath, err)
	}

	pdf.AddPage()

	// Header band
	pdf.SetFillColor(15, 23, 42)
	pdf.RectFromUpperLeftWithStyle(0, 0, 595, 110, "F")

	pdf.SetTextColor(255, 255, 255)
	if err := pdf.SetFont("sans", "", 26); err != nil {
		return nil, fmt.Errorf("failed to set font: %w", err)
	}
	pdf.SetXY(40, 30)
	if err := pdf.Cell(nil, "Expense Report"); err != nil {
		return nil, fmt.Errorf("failed to write title: %w", err)
	}

	_ = pdf.SetFont("sans", "", 12)
	pdf.SetXY(40, 70)
	if err := pdf.Cell(nil, "Reporting period: "+r.Range.Label()); err != nil {
		return nil, fmt.Errorf("failed to write period: %w", err)
	}

	metrics := []struct {
		label string
		value float64
	}{
		{"Period Income", r.Period.Income},
		{"Period Expense", r.Period.Expense},
		{"Period Savings", r.Period.Savings},
		{"Current Balance", r.Global.CurrentBalance},
		{"Total Wealth", r.Global.TotalWealth()},
	}

	y := 150.0
	for i, m := range metrics {
		c := metricColors[i%len(metricColors)]
		pdf.SetTextColor(c.r, c.g, c.b)
		_ = pdf.SetFont("sans", "", 14)
		pdf.SetXY(50, y)
		if err := pdf.Cell(nil, m.label); err != nil {
			return nil, fmt.Errorf("failed to write metric label: %w", err)
		}

		pdf.SetTextColor(30, 41, 59)
		pdf.SetXY(260, y)
		if err := pdf.Cell(nil, fmt.Sprintf("%s %.2f", r.Currency, m.value)); err != nil {
			return nil, fmt.Errorf("failed to write metric value: %w", err)
		}
		y += 34
	}

	pdf.SetTextColor(148, 163, 184)
	_ = pdf.SetFont("sans", "", 9)
	pdf.SetXY(40, 790)
	footer := "Generated by dext on " + r.GeneratedAt.Format("2006-01-02 15:04")
	if err := pdf.Cell(nil, footer); err != nil {
		return nil, fmt.Errorf("failed to write footer: %w", err)
	}

	return pdf.GetBytesPdf(), nil
}
