package skeleton

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Reference450x10(t *testing.T) {
	d := Render(Input{FrameSizeMM: 450, PropellerDiameterIn: 10})

	assert.Equal(t, "Drone Skeleton (Top View)", d.Title)
	assert.Equal(t, Bounds{MinX: -325, MinY: -325, MaxX: 325, MaxY: 325}, d.Bounds)
	require.Len(t, d.Primitives, 14)

	corners := []Point{{-225, 225}, {225, 225}, {225, -225}, {-225, -225}}
	for i, c := range corners {
		line, ok := d.Primitives[i].(Line)
		require.True(t, ok, "primitive %d should be a line", i)
		assert.Equal(t, Point{0, 0}, line.From)
		assert.Equal(t, c, line.To)
	}
	for i, c := range corners {
		motor, ok := d.Primitives[4+2*i].(Circle)
		require.True(t, ok)
		assert.Equal(t, c, motor.Center)
		assert.Equal(t, 20.0, motor.Radius)
		assert.True(t, motor.Filled)

		sweep, ok := d.Primitives[5+2*i].(Circle)
		require.True(t, ok)
		assert.Equal(t, c, sweep.Center)
		assert.Equal(t, 63.5, sweep.Radius)
		assert.False(t, sweep.Filled)
		assert.Equal(t, Dashed, sweep.Style)
	}

	bay, ok := d.Primitives[12].(Rect)
	require.True(t, ok)
	assert.Equal(t, Point{-30, -30}, bay.Corner)
	assert.Equal(t, 60.0, bay.Width)
	assert.Equal(t, 60.0, bay.Height)
	assert.True(t, bay.Filled)

	label, ok := d.Primitives[13].(Text)
	require.True(t, ok)
	assert.Equal(t, Point{0, 0}, label.Position)
	assert.Equal(t, "Payload", label.Content)
	assert.Equal(t, "center", label.HAlign)
	assert.Equal(t, "center", label.VAlign)
}

func TestRender_KindOrder(t *testing.T) {
	d := Render(Input{FrameSizeMM: 150, PropellerDiameterIn: 5})
	var kinds []Kind
	for _, p := range d.Primitives {
		kinds = append(kinds, p.Kind())
	}
	assert.Equal(t, []Kind{
		KindLine, KindLine, KindLine, KindLine,
		KindCircle, KindCircle, KindCircle, KindCircle,
		KindCircle, KindCircle, KindCircle, KindCircle,
		KindRect, KindText,
	}, kinds)
}

func TestRender_MotorsFormSquare(t *testing.T) {
	for frame := 150.0; frame <= 650; frame += 50 {
		m := MotorPositions(frame)
		for i := range m {
			next := m[(i+1)%4]
			side := math.Hypot(next.X-m[i].X, next.Y-m[i].Y)
			assert.InDelta(t, frame, side, 1e-9)
		}
		assert.Equal(t, 0.0, m[0].X+m[1].X+m[2].X+m[3].X)
		assert.Equal(t, 0.0, m[0].Y+m[1].Y+m[2].Y+m[3].Y)
	}
}

func TestRender_MotorRadiusIndependentOfFrame(t *testing.T) {
	small := Render(Input{FrameSizeMM: 150, PropellerDiameterIn: 10})
	large := Render(Input{FrameSizeMM: 650, PropellerDiameterIn: 10})
	assert.Equal(t, small.Primitives[4].(Circle).Radius, large.Primitives[4].(Circle).Radius)
	assert.Equal(t, small.Primitives[5].(Circle).Radius, large.Primitives[5].(Circle).Radius)
}

func TestRender_SweepMonotonic(t *testing.T) {
	prev := 0.0
	for _, prop := range []float64{5, 6, 8, 10, 12, 15} {
		d := Render(Input{FrameSizeMM: 450, PropellerDiameterIn: prop})
		r := d.Primitives[5].(Circle).Radius
		assert.Greater(t, r, prev, "prop %v", prop)
		assert.Equal(t, prop*12.7/2, r)
		prev = r
	}
}

func TestRender_Deterministic(t *testing.T) {
	in := Input{FrameSizeMM: 300, PropellerDiameterIn: 8}
	assert.Equal(t, Render(in), Render(in))
}

func TestRender_OutOfRangeDoesNotPanic(t *testing.T) {
	inputs := []Input{
		{},
		{FrameSizeMM: -400, PropellerDiameterIn: -3},
		{FrameSizeMM: 1e9, PropellerDiameterIn: 1e6},
		{FrameSizeMM: 10, PropellerDiameterIn: 0.5},
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			d := Render(in)
			assert.Len(t, d.Primitives, 14)
		})
	}
}

func TestDiagram_MarshalJSON(t *testing.T) {
	d := Render(Input{FrameSizeMM: 450, PropellerDiameterIn: 10})
	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var doc struct {
		Title      string           `json:"title"`
		Bounds     Bounds           `json:"bounds"`
		Primitives []map[string]any `json:"primitives"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, Title, doc.Title)
	assert.Equal(t, d.Bounds, doc.Bounds)
	require.Len(t, doc.Primitives, 14)
	assert.Equal(t, "line", doc.Primitives[0]["kind"])
	assert.Equal(t, "circle", doc.Primitives[5]["kind"])
	assert.Equal(t, 63.5, doc.Primitives[5]["radius"])
	assert.Equal(t, "dashed", doc.Primitives[5]["style"])
	assert.Equal(t, "rect", doc.Primitives[12]["kind"])
	assert.Equal(t, "Payload", doc.Primitives[13]["content"])
}
