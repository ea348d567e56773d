package report

import (
	"strconv"
	"strings"

	"Airframe/internal/calc/skeleton"

	"github.com/phpdave11/gofpdf"
)

const (
	diagramBoxMM = 100.0
	ptToMM       = 25.4 / 72
	// the reference drawing is a 4 inch (101.6 mm) figure; line widths and fonts scale to the box
	figureMM = 101.6
)

// drawDiagram fits d into a size x size mm box whose top left corner is (x, y).
func drawDiagram(pdf *gofpdf.Fpdf, d skeleton.Diagram, x, y, size float64) {
	b := d.Bounds
	span := b.Width()
	if b.Height() > span {
		span = b.Height()
	}
	if span <= 0 {
		span = 1
	}
	scale := size / span
	px := func(p skeleton.Point) (float64, float64) {
		return x + (p.X-b.MinX)*scale, y + (b.MaxY-p.Y)*scale
	}
	k := size / figureMM

	pdf.SetFont("Helvetica", "", 10)
	tw := pdf.GetStringWidth(d.Title)
	pdf.Text(x+(size-tw)/2, y+4, d.Title)
	y += 6

	for _, p := range d.Primitives {
		switch v := p.(type) {
		case skeleton.Line:
			setDraw(pdf, v.Color)
			pdf.SetLineWidth(v.Width * ptToMM * k)
			x1, y1 := px(v.From)
			x2, y2 := px(v.To)
			pdf.Line(x1, y1, x2, y2)
		case skeleton.Circle:
			cx, cy := px(v.Center)
			pdf.SetLineWidth(0.3 * k)
			if v.Style == skeleton.Dashed {
				pdf.SetDashPattern([]float64{2 * k, 1.5 * k}, 0)
			}
			if v.Filled {
				setFill(pdf, v.Color)
				pdf.Circle(cx, cy, v.Radius*scale, "F")
			} else {
				setDraw(pdf, v.Color)
				pdf.Circle(cx, cy, v.Radius*scale, "D")
			}
			pdf.SetDashPattern([]float64{}, 0)
		case skeleton.Rect:
			// corner is bottom left in diagram space, gofpdf wants top left
			rx, ry := px(skeleton.Point{X: v.Corner.X, Y: v.Corner.Y + v.Height})
			if v.Alpha > 0 && v.Alpha < 1 {
				pdf.SetAlpha(v.Alpha, "Normal")
			}
			style := "D"
			if v.Filled {
				setFill(pdf, v.Color)
				style = "F"
			} else {
				setDraw(pdf, v.Color)
			}
			pdf.Rect(rx, ry, v.Width*scale, v.Height*scale, style)
			pdf.SetAlpha(1, "Normal")
		case skeleton.Text:
			tx, ty := px(v.Position)
			pdf.SetFont("Helvetica", "", v.FontSize*k)
			r, g, bl := rgb(v.Color)
			pdf.SetTextColor(r, g, bl)
			w := pdf.GetStringWidth(v.Content)
			h := v.FontSize * k * ptToMM
			switch v.HAlign {
			case "center":
				tx -= w / 2
			case "right":
				tx -= w
			}
			switch v.VAlign {
			case "center":
				ty += h / 3
			case "top":
				ty += h
			}
			pdf.Text(tx, ty, v.Content)
			pdf.SetTextColor(0, 0, 0)
		}
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
}

func setDraw(pdf *gofpdf.Fpdf, color string) {
	r, g, b := rgb(color)
	pdf.SetDrawColor(r, g, b)
}

func setFill(pdf *gofpdf.Fpdf, color string) {
	r, g, b := rgb(color)
	pdf.SetFillColor(r, g, b)
}

// rgb parses "#rrggbb"; anything else is black.
func rgb(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
