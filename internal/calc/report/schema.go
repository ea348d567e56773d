package report

import (
	"fmt"

	"Airframe/internal/calc/recommend"
	"Airframe/internal/calc/skeleton"
	"Airframe/internal/validation"
)

var inputSchema = validation.MustCompile(fmt.Sprintf(`{
	"type": "object",
	"required": ["mission", "geometry"],
	"properties": {
		"project": {"type": "string", "maxLength": 200},
		"author": {"type": "string", "maxLength": 200},
		"title": {"type": "string", "maxLength": 200},
		"notes": {"type": "string", "maxLength": 4000},
		"mission": %s,
		"geometry": %s
	}
}`, recommend.InputSchema, skeleton.InputSchema))
