package batch

import (
	"fmt"

	"Airframe/internal/calc/recommend"
	"Airframe/internal/validation"
)

// InputSchema validates a batch request body.
var InputSchema = validation.MustCompile(fmt.Sprintf(`{
	"type": "object",
	"required": ["items"],
	"properties": {
		"items": {"type": "array", "maxItems": %d, "items": %s}
	}
}`, MaxItems, recommend.InputSchema))
