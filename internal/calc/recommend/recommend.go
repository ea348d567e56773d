package recommend

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type MissionType string

const (
	Racing            MissionType = "Racing"
	AerialPhotography MissionType = "Aerial Photography"
	PayloadDelivery   MissionType = "Payload Delivery"
	SurveyMapping     MissionType = "Survey/Mapping"
)

const (
	HeavyLiftThresholdG = 1000.0
	HighFlightTimeMin   = 30.0
)

const (
	racingKit        = "Lightweight carbon fiber frame, 2306 2400KV motors, 5-inch propellers, 4S LiPo battery (1500mAh)"
	aerialPhotoKit   = "450mm frame, 2212 920KV motors, 10-inch propellers, 3S or 4S LiPo (5200mAh), gimbal for camera"
	heavyLiftKit     = "Heavy-lift frame, 3510 or larger motors, 15-inch props, 6S LiPo (10000mAh), strong ESCs"
	mediumLiftKit    = "Medium-lift quad, 2814 700KV motors, 12-inch props, 4S or 6S battery"
	surveyMappingKit = "Fixed-wing airframe, efficient motor, 10-12 inch props, long-range 4S or 6S battery"

	FlightTimeWarning = "High flight time! Consider using larger batteries or fixed-wing designs for endurance."
)

var (
	ErrInvalidMissionType = errors.New("invalid mission type")
	ErrInvalidInput       = errors.New("invalid input")
)

// MissionTypes returns the mission types in the order the form lists them.
func MissionTypes() []MissionType {
	return []MissionType{Racing, AerialPhotography, PayloadDelivery, SurveyMapping}
}

func (m MissionType) Valid() bool {
	switch m {
	case Racing, AerialPhotography, PayloadDelivery, SurveyMapping:
		return true
	}
	return false
}

// Slug is the lowercase identifier used on the command line and in chat commands.
func (m MissionType) Slug() string {
	switch m {
	case Racing:
		return "racing"
	case AerialPhotography:
		return "aerial_photography"
	case PayloadDelivery:
		return "payload_delivery"
	case SurveyMapping:
		return "survey_mapping"
	}
	return ""
}

// ParseMissionType accepts either the exact label or the slug.
func ParseMissionType(s string) (MissionType, error) {
	s = strings.TrimSpace(s)
	for _, m := range MissionTypes() {
		if s == string(m) || strings.EqualFold(s, m.Slug()) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMissionType, s)
}

type Input struct {
	MissionType    MissionType `json:"mission_type" yaml:"mission_type"`
	PayloadWeightG float64     `json:"payload_weight_g" yaml:"payload_weight_g"`
	FlightTimeMin  float64     `json:"flight_time_min" yaml:"flight_time_min"`
}

type Result struct {
	Recommendation string `json:"recommendation" yaml:"recommendation"`
	Warning        string `json:"warning,omitempty" yaml:"warning,omitempty"`
	Available      bool   `json:"available" yaml:"available"`
	Notes          string `json:"notes" yaml:"notes"`
}

// Validate checks the numeric bounds the form enforces. The mission type is not
// checked here; use ParseMissionType for that.
func (in Input) Validate() error {
	if !finite(in.PayloadWeightG) || !finite(in.FlightTimeMin) {
		return fmt.Errorf("%w: payload weight and flight time must be finite numbers", ErrInvalidInput)
	}
	if in.PayloadWeightG < 0 {
		return fmt.Errorf("%w: payload weight must not be negative", ErrInvalidInput)
	}
	if in.FlightTimeMin < 1 {
		return fmt.Errorf("%w: flight time must be at least 1 minute", ErrInvalidInput)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Recommend never fails. An unknown mission type yields an unavailable result,
// the flight time warning is still evaluated.
func Recommend(in Input) Result {
	res := Result{Notes: "Static component lookup by mission type."}
	if kit, ok := components(in.MissionType, in.PayloadWeightG); ok {
		res.Recommendation = kit
		res.Available = true
	} else {
		res.Notes = "No recommendation available for this mission type."
	}
	if in.FlightTimeMin > HighFlightTimeMin {
		res.Warning = FlightTimeWarning
	}
	return res
}

func components(m MissionType, payloadG float64) (string, bool) {
	switch m {
	case Racing:
		return racingKit, true
	case AerialPhotography:
		return aerialPhotoKit, true
	case PayloadDelivery:
		// exactly 1000 g is still medium-lift
		if payloadG > HeavyLiftThresholdG {
			return heavyLiftKit, true
		}
		return mediumLiftKit, true
	case SurveyMapping:
		return surveyMappingKit, true
	}
	return "", false
}

// Lines renders the result as the success and warning banners shown to the user.
func (r Result) Lines() []string {
	var out []string
	if r.Available {
		out = append(out, "Recommended: "+r.Recommendation)
	} else {
		out = append(out, "No recommendation available")
	}
	if r.Warning != "" {
		out = append(out, r.Warning)
	}
	return out
}
