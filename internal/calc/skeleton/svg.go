package skeleton

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	// 4x4 logical units at 100 px each
	CanvasPx = 400
	// the canvas is 4 inches wide
	canvasPt    = 288.0
	titleBandPx = 30
	titleFontPt = 10.0
	dashOnPx    = 6.0
	dashOffPx   = 4.0
)

// WriteSVG renders d with the y axis pointing up and equal aspect.
func WriteSVG(w io.Writer, d Diagram) error {
	bw := bufio.NewWriter(w)
	b := normalize(d.Bounds)

	// user units per pixel, used to keep the title band a fixed pixel height
	upp := b.Width() / CanvasPx
	band := titleBandPx * upp

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%s %s %s %s">`+"\n",
		CanvasPx, CanvasPx+titleBandPx, num(b.MinX), num(-b.MaxY-band), num(b.Width()), num(b.Height()+band))
	fmt.Fprintf(bw, "<title>%s</title>\n", escape(d.Title))
	fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="#ffffff"/>`+"\n",
		num(b.MinX), num(-b.MaxY-band), num(b.Width()), num(b.Height()+band))
	fmt.Fprintf(bw, `<text x="%s" y="%s" font-family="sans-serif" font-size="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		num((b.MinX+b.MaxX)/2), num(-b.MaxY-band/2), num(fontSize(titleFontPt, upp)), escape(d.Title))

	for _, p := range d.Primitives {
		switch v := p.(type) {
		case Line:
			fmt.Fprintf(bw, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
				num(v.From.X), num(-v.From.Y), num(v.To.X), num(-v.To.Y), v.Color, num(v.Width*upp))
		case Circle:
			fill, stroke := "none", v.Color
			if v.Filled {
				fill, stroke = v.Color, "none"
			}
			dash := ""
			if v.Style == Dashed {
				dash = fmt.Sprintf(` stroke-dasharray="%s"`, scaledDash(upp))
			}
			fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
				num(v.Center.X), num(-v.Center.Y), num(v.Radius), fill, stroke, num(upp), dash)
		case Rect:
			fill, stroke := "none", v.Color
			if v.Filled {
				fill, stroke = v.Color, "none"
			}
			opacity := v.Alpha
			if opacity <= 0 {
				opacity = 1
			}
			// SVG rects grow downward from the top left corner
			fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" opacity="%s"/>`+"\n",
				num(v.Corner.X), num(-(v.Corner.Y + v.Height)), num(v.Width), num(v.Height), fill, stroke, num(opacity))
		case Text:
			fmt.Fprintf(bw, `<text x="%s" y="%s" font-family="sans-serif" font-size="%s" fill="%s" text-anchor="%s" dominant-baseline="%s">%s</text>`+"\n",
				num(v.Position.X), num(-v.Position.Y), num(fontSize(v.FontSize, upp)), v.Color,
				anchor(v.HAlign), baseline(v.VAlign), escape(v.Content))
		}
	}
	fmt.Fprint(bw, "</svg>\n")
	return bw.Flush()
}

// normalize keeps degenerate or inverted bounds drawable.
func normalize(b Bounds) Bounds {
	if b.MinX > b.MaxX {
		b.MinX, b.MaxX = b.MaxX, b.MinX
	}
	if b.MinY > b.MaxY {
		b.MinY, b.MaxY = b.MaxY, b.MinY
	}
	if b.Width() == 0 {
		b.MinX, b.MaxX = b.MinX-1, b.MaxX+1
	}
	if b.Height() == 0 {
		b.MinY, b.MaxY = b.MinY-1, b.MaxY+1
	}
	return b
}

func scaledDash(upp float64) string {
	return num(dashOnPx*upp) + " " + num(dashOffPx*upp)
}

// fontSize converts points to user units.
func fontSize(pt, upp float64) float64 {
	return pt / canvasPt * CanvasPx * upp
}

func anchor(h string) string {
	switch h {
	case "left":
		return "start"
	case "right":
		return "end"
	}
	return "middle"
}

func baseline(v string) string {
	switch v {
	case "top":
		return "hanging"
	case "bottom":
		return "text-after-edge"
	}
	return "central"
}

func num(f float64) string {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
