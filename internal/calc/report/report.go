package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"Airframe/internal/calc/recommend"
	"Airframe/internal/calc/skeleton"

	"github.com/phpdave11/gofpdf"
)

const DefaultTitle = "Drone Design Report"

type Input struct {
	Project  string          `json:"project"`
	Author   string          `json:"author"`
	Title    string          `json:"title"`
	Notes    string          `json:"notes"`
	Mission  recommend.Input `json:"mission"`
	Geometry skeleton.Input  `json:"geometry"`
}

// Write renders a one page A4 report: inputs, recommendation banners and the skeleton drawing.
func Write(w io.Writer, in Input, date time.Time) error {
	if strings.TrimSpace(in.Title) == "" {
		in.Title = DefaultTitle
	}
	res := recommend.Recommend(in.Mission)
	diagram := skeleton.Render(in.Geometry)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(in.Title, true)
	pdf.SetAuthor(in.Author, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", in.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", in.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Mission")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Type: %s", in.Mission.MissionType)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Payload weight: %g g", in.Mission.PayloadWeightG))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Desired flight time: %g min", in.Mission.FlightTimeMin))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Frame size: %g mm, propeller diameter: %g in", in.Geometry.FrameSizeMM, in.Geometry.PropellerDiameterIn))
	pdf.Ln(9)

	lines := res.Lines()
	pdf.SetTextColor(0, 110, 40)
	pdf.MultiCell(0, 6, tr(lines[0]), "", "L", false)
	if res.Warning != "" {
		pdf.SetTextColor(190, 110, 0)
		pdf.MultiCell(0, 6, tr(res.Warning), "", "L", false)
	}
	pdf.SetTextColor(0, 0, 0)
	if in.Notes != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
	}
	pdf.Ln(4)

	_, top := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	drawDiagram(pdf, diagram, (pageW-diagramBoxMM)/2, top, diagramBoxMM)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}
