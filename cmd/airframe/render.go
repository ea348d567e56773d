package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"Airframe/internal/calc/recommend"
	"Airframe/internal/calc/report"
	"Airframe/internal/calc/skeleton"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRenderCmd() *cobra.Command {
	var (
		in      skeleton.Input
		format  string
		out     string
		mission string
		payload float64
		flight  float64
		project string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the top view skeleton",
		Long: `Renders the quad skeleton for a frame size and propeller diameter.
The pdf format produces the full design report; --mission, --payload and --flight fill its mission section.`,
		Example: `  airframe render --frame 450 --prop 10 -o skeleton.svg
  airframe render --frame 250 --prop 5 --format pdf --mission racing -o report.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rin report.Input
			switch format {
			case "svg", "json", "yaml":
			case "pdf":
				rin = report.Input{Project: project, Geometry: in}
				rin.Mission = recommend.Input{PayloadWeightG: payload, FlightTimeMin: flight}
				if mission != "" {
					m, err := recommend.ParseMissionType(mission)
					if err != nil {
						return err
					}
					rin.Mission.MissionType = m
				}
			default:
				return fmt.Errorf("unknown format %q", format)
			}

			// render fully before touching -o so a failure leaves no partial file
			var buf bytes.Buffer
			var err error
			if format == "pdf" {
				err = report.Write(&buf, rin, time.Now())
			} else {
				err = writeDiagram(&buf, format, skeleton.Render(in))
			}
			if err != nil {
				return err
			}

			if out != "" {
				return os.WriteFile(out, buf.Bytes(), 0o644)
			}
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}
	cmd.Flags().Float64Var(&in.FrameSizeMM, "frame", 450, "frame size (motor to motor diagonal) in mm")
	cmd.Flags().Float64Var(&in.PropellerDiameterIn, "prop", 10, "propeller diameter in inches")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, json, yaml or pdf")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVarP(&mission, "mission", "m", "", "mission type for the pdf report")
	cmd.Flags().Float64Var(&payload, "payload", 0, "payload weight in grams for the pdf report")
	cmd.Flags().Float64Var(&flight, "flight", 10, "flight time in minutes for the pdf report")
	cmd.Flags().StringVar(&project, "project", "", "project name for the pdf report")
	return cmd
}

func writeDiagram(w io.Writer, format string, d skeleton.Diagram) error {
	switch format {
	case "svg":
		return skeleton.WriteSVG(w, d)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(d)
	}
	return fmt.Errorf("unknown format %q", format)
}
