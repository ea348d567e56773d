package recommend

import "Airframe/internal/validation"

// InputSchema bounds the form values. mission_type is a free string on purpose:
// unknown missions degrade to an unavailable result instead of a 400.
const InputSchema = `{
	"type": "object",
	"required": ["mission_type", "payload_weight_g", "flight_time_min"],
	"properties": {
		"mission_type": {"type": "string"},
		"payload_weight_g": {"type": "number", "minimum": 0},
		"flight_time_min": {"type": "number", "minimum": 1}
	}
}`

var inputSchema = validation.MustCompile(InputSchema)
