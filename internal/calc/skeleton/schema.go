package skeleton

import "Airframe/internal/validation"

const InputSchema = `{
	"type": "object",
	"required": ["frame_size_mm", "propeller_diameter_in"],
	"properties": {
		"frame_size_mm": {"type": "number", "minimum": 150, "maximum": 650, "multipleOf": 50},
		"propeller_diameter_in": {"type": "number", "enum": [5, 6, 8, 10, 12, 15]}
	}
}`

var inputSchema = validation.MustCompile(InputSchema)
