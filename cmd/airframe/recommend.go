package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"Airframe/internal/calc/recommend"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type recommendOutput struct {
	Input  recommend.Input  `json:"input" yaml:"input"`
	Result recommend.Result `json:"result" yaml:"result"`
}

func newRecommendCmd() *cobra.Command {
	var (
		mission string
		payload float64
		flight  float64
		format  string
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend components for a mission",
		Long: `Looks up the component kit for the mission type and warns about long flight times.
Mission accepts the label ("Payload Delivery") or the slug ("payload_delivery").`,
		Example: `  airframe recommend --mission racing --payload 0 --flight 10
  airframe recommend --mission "Payload Delivery" --payload 1500 --flight 40 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := recommend.ParseMissionType(mission)
			if err != nil {
				return err
			}
			in := recommend.Input{MissionType: m, PayloadWeightG: payload, FlightTimeMin: flight}
			if err := in.Validate(); err != nil {
				return err
			}
			return writeRecommendation(cmd.OutOrStdout(), format, in, recommend.Recommend(in))
		},
	}
	cmd.Flags().StringVarP(&mission, "mission", "m", "", "mission type, label or slug")
	cmd.Flags().Float64VarP(&payload, "payload", "p", 0, "payload weight in grams")
	cmd.Flags().Float64VarP(&flight, "flight", "t", 10, "desired flight time in minutes")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.MarkFlagRequired("mission")
	return cmd
}

func writeRecommendation(w io.Writer, format string, in recommend.Input, res recommend.Result) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, strings.Join(res.Lines(), "\n"))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recommendOutput{Input: in, Result: res})
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(recommendOutput{Input: in, Result: res})
	}
	return fmt.Errorf("unknown format %q", format)
}
