package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"Airframe/internal/calc/premium/batch"
	"Airframe/internal/calc/recommend"

	"github.com/xuri/excelize/v2"
)

const ExportSheet = "Recommendations"

var ErrEmptySheet = errors.New("empty sheet")

type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type RecommendImportResult struct {
	Count   int          `json:"count"`
	Results []batch.Item `json:"results"`
	Skipped []SkippedRow `json:"skipped,omitempty"`
}

// ImportRecommendations reads the first sheet of a workbook.
// Expected columns: mission_type, payload_weight_g, flight_time_min; the first row is a header.
func ImportRecommendations(rd io.Reader) (RecommendImportResult, error) {
	f, err := excelize.OpenReader(rd)
	if err != nil {
		return RecommendImportResult{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return RecommendImportResult{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return RecommendImportResult{}, ErrEmptySheet
	}

	out := RecommendImportResult{Results: []batch.Item{}}
	for i := 1; i < len(rows); i++ {
		input, err := parseRecommendRow(rows[i])
		if err != nil {
			// spreadsheet rows are 1-based
			out.Skipped = append(out.Skipped, SkippedRow{Row: i + 1, Reason: err.Error()})
			continue
		}
		out.Results = append(out.Results, batch.Item{Input: input, Result: recommend.Recommend(input)})
	}
	out.Count = len(out.Results)
	return out, nil
}

func parseRecommendRow(row []string) (recommend.Input, error) {
	if len(row) < 3 {
		return recommend.Input{}, fmt.Errorf("bad row: want 3 columns, got %d", len(row))
	}
	mission := recommend.MissionType(strings.TrimSpace(row[0]))
	if m, err := recommend.ParseMissionType(row[0]); err == nil {
		mission = m
	}
	payload, err := toFloat(row[1])
	if err != nil {
		return recommend.Input{}, fmt.Errorf("payload_weight_g: %w", err)
	}
	flight, err := toFloat(row[2])
	if err != nil {
		return recommend.Input{}, fmt.Errorf("flight_time_min: %w", err)
	}
	in := recommend.Input{MissionType: mission, PayloadWeightG: payload, FlightTimeMin: flight}
	if err := in.Validate(); err != nil {
		return recommend.Input{}, err
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ExportRecommendations writes res as a single sheet workbook.
func ExportRecommendations(w io.Writer, res batch.RecommendBatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return err
	}
	header := []any{"Mission", "Payload (g)", "Flight time (min)", "Recommendation", "Warning"}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(ExportSheet, "A1", "E1", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(ExportSheet, "D", "E", 80); err != nil {
		return err
	}

	for i, item := range res.Results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		recommendation := item.Result.Recommendation
		if !item.Result.Available {
			recommendation = "No recommendation available"
		}
		row := []any{
			string(item.Input.MissionType),
			item.Input.PayloadWeightG,
			item.Input.FlightTimeMin,
			recommendation,
			item.Result.Warning,
		}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
