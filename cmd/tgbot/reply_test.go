package main

import (
	"strings"
	"testing"

	"Airframe/internal/calc/recommend"

	"github.com/stretchr/testify/assert"
)

func TestReply_Recommend(t *testing.T) {
	out := reply("/recommend payload_delivery 1200 35")
	assert.True(t, strings.HasPrefix(out, "Recommended: Heavy-lift frame"))
	assert.Contains(t, out, recommend.FlightTimeWarning)

	out = reply("/recommend@AirframeBot racing 0 30")
	assert.True(t, strings.HasPrefix(out, "Recommended: Lightweight carbon fiber frame"))
	assert.NotContains(t, out, "High flight time")
}

func TestReply_RecommendErrors(t *testing.T) {
	assert.Contains(t, reply("/recommend racing 0"), "Usage")
	assert.Contains(t, reply("/recommend hover 0 10"), "Unknown mission")
	assert.Contains(t, reply("/recommend racing x 10"), "must be numbers")
	assert.Contains(t, reply("/recommend racing 0 0"), "invalid input")
	assert.Contains(t, reply("/recommend racing NaN 10"), "finite")
	assert.Contains(t, reply("/recommend racing 0 NaN"), "finite")
	assert.Contains(t, reply("/recommend racing 0 +Inf"), "finite")
}

func TestReply_Skeleton(t *testing.T) {
	out := reply("/skeleton 450 10")
	assert.Contains(t, out, "Drone Skeleton (Top View)")
	assert.Contains(t, out, "motor at (-225, 225) mm")
	assert.Contains(t, out, "motor at (225, -225) mm")
	assert.Equal(t, 4, strings.Count(out, "motor at"))
	assert.Contains(t, out, "propeller sweep radius 63.5 mm")

	assert.Contains(t, reply("/skeleton 450"), "Usage")
	assert.Contains(t, reply("/skeleton big 10"), "must be numbers")
}

func TestReply_MissionsAndHelp(t *testing.T) {
	out := reply("/missions")
	assert.Contains(t, out, "aerial_photography - Aerial Photography")
	assert.Equal(t, 4, len(strings.Split(out, "\n")))

	assert.Equal(t, helpText, reply("hello"))
	assert.Equal(t, helpText, reply("   "))
}
