package main

import (
	"fmt"
	"strconv"
	"strings"

	"Airframe/internal/calc/recommend"
	"Airframe/internal/calc/skeleton"
)

const helpText = `Commands:
/recommend <mission> <payload_g> <flight_min>
/skeleton <frame_mm> <propeller_in>
/missions
Example: /recommend payload_delivery 1200 35`

// reply builds the answer to one chat message.
func reply(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return helpText
	}
	// commands may arrive as /recommend@SomeBot in groups
	cmd, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]

	switch cmd {
	case "/recommend":
		return recommendReply(args)
	case "/skeleton":
		return skeletonReply(args)
	case "/missions":
		var sb strings.Builder
		for _, m := range recommend.MissionTypes() {
			fmt.Fprintf(&sb, "%s - %s\n", m.Slug(), m)
		}
		return strings.TrimRight(sb.String(), "\n")
	}
	return helpText
}

func recommendReply(args []string) string {
	if len(args) != 3 {
		return "Usage: /recommend <mission> <payload_g> <flight_min>"
	}
	mission, err := recommend.ParseMissionType(args[0])
	if err != nil {
		return fmt.Sprintf("Unknown mission %q. Send /missions for the list.", args[0])
	}
	payload, err1 := strconv.ParseFloat(args[1], 64)
	flight, err2 := strconv.ParseFloat(args[2], 64)
	if err1 != nil || err2 != nil {
		return "Payload and flight time must be numbers."
	}
	in := recommend.Input{MissionType: mission, PayloadWeightG: payload, FlightTimeMin: flight}
	if err := in.Validate(); err != nil {
		return err.Error()
	}
	return strings.Join(recommend.Recommend(in).Lines(), "\n")
}

func skeletonReply(args []string) string {
	if len(args) != 2 {
		return "Usage: /skeleton <frame_mm> <propeller_in>"
	}
	frame, err1 := strconv.ParseFloat(args[0], 64)
	prop, err2 := strconv.ParseFloat(args[1], 64)
	if err1 != nil || err2 != nil {
		return "Frame size and propeller diameter must be numbers."
	}
	d := skeleton.Render(skeleton.Input{FrameSizeMM: frame, PropellerDiameterIn: prop})

	var sb strings.Builder
	sb.WriteString(d.Title + "\n")
	for _, p := range d.Primitives {
		if c, ok := p.(skeleton.Circle); ok && c.Filled {
			fmt.Fprintf(&sb, "motor at (%g, %g) mm\n", c.Center.X, c.Center.Y)
		}
	}
	fmt.Fprintf(&sb, "propeller sweep radius %g mm\n", skeleton.SweepRadius(prop))
	fmt.Fprintf(&sb, "payload bay %gx%g mm at centre", skeleton.PayloadBaySizeMM, skeleton.PayloadBaySizeMM)
	return sb.String()
}
