package skeleton

const (
	Title = "Drone Skeleton (Top View)"

	MotorRadiusMM    = 20.0
	PayloadBaySizeMM = 60.0
	PayloadLabel     = "Payload"

	viewportMarginMM = 100.0
	// propeller rings use a fixed 12.7 mm per inch of diameter, halved to a radius
	sweepScaleMM = 12.7

	frameLineWidth = 2.0
	labelFontSize  = 8.0
	bayAlpha       = 0.4
)

const (
	ColorFrame   = "#000000"
	ColorMotor   = "#ff0000"
	ColorSweep   = "#000000"
	ColorPayload = "#0000ff"
	ColorLabel   = "#ffffff"
)

type Input struct {
	FrameSizeMM         float64 `json:"frame_size_mm" yaml:"frame_size_mm"`
	PropellerDiameterIn float64 `json:"propeller_diameter_in" yaml:"propeller_diameter_in"`
}

// SweepRadius is the radius of the dashed propeller ring for a propeller diameter in inches.
func SweepRadius(propellerDiameterIn float64) float64 {
	return propellerDiameterIn * sweepScaleMM / 2
}

// MotorPositions returns the corners of the frame square, clockwise from top left.
func MotorPositions(frameSizeMM float64) [4]Point {
	h := frameSizeMM / 2
	return [4]Point{
		{X: -h, Y: h},
		{X: h, Y: h},
		{X: h, Y: -h},
		{X: -h, Y: -h},
	}
}

// Render lays out the X frame, motors, propeller sweeps and payload bay.
// Inputs are not range checked.
func Render(in Input) Diagram {
	half := in.FrameSizeMM / 2
	motors := MotorPositions(in.FrameSizeMM)
	sweep := SweepRadius(in.PropellerDiameterIn)

	prims := make([]Primitive, 0, 2+3*len(motors))
	origin := Point{}
	for _, m := range motors {
		prims = append(prims, Line{From: origin, To: m, Width: frameLineWidth, Color: ColorFrame})
	}
	for _, m := range motors {
		prims = append(prims,
			Circle{Center: m, Radius: MotorRadiusMM, Filled: true, Style: Solid, Color: ColorMotor},
			Circle{Center: m, Radius: sweep, Filled: false, Style: Dashed, Color: ColorSweep},
		)
	}
	prims = append(prims,
		Rect{
			Corner: Point{X: -PayloadBaySizeMM / 2, Y: -PayloadBaySizeMM / 2},
			Width:  PayloadBaySizeMM,
			Height: PayloadBaySizeMM,
			Filled: true,
			Color:  ColorPayload,
			Alpha:  bayAlpha,
		},
		Text{
			Position: origin,
			Content:  PayloadLabel,
			HAlign:   "center",
			VAlign:   "center",
			FontSize: labelFontSize,
			Color:    ColorLabel,
		},
	)

	return Diagram{
		Title: Title,
		Bounds: Bounds{
			MinX: -half - viewportMarginMM,
			MinY: -half - viewportMarginMM,
			MaxX: half + viewportMarginMM,
			MaxY: half + viewportMarginMM,
		},
		Primitives: prims,
	}
}
