package recommend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Calc(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		available bool
		warning   bool
	}{
		{"racing", `{"mission_type": "Racing", "payload_weight_g": 0, "flight_time_min": 30}`, true, false},
		{"heavy payload long flight", `{"mission_type": "Payload Delivery", "payload_weight_g": 1200, "flight_time_min": 45}`, true, true},
		{"unknown mission degrades", `{"mission_type": "Hover", "payload_weight_g": 0, "flight_time_min": 10}`, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			(&Handler{}).Calc(w, httptest.NewRequest(http.MethodPost, "/api/tools/recommend/calc", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusOK, w.Code)
			var res Result
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.available, res.Available)
			assert.Equal(t, tt.warning, res.Warning != "")
		})
	}
}

func TestHandler_Calc_RejectsBounds(t *testing.T) {
	for _, body := range []string{
		`{"mission_type": "Racing", "payload_weight_g": -5, "flight_time_min": 10}`,
		`{"mission_type": "Racing", "payload_weight_g": 0, "flight_time_min": 0}`,
		`{"mission_type": "Racing", "payload_weight_g": 0}`,
		`{"mission_type": 3, "payload_weight_g": 0, "flight_time_min": 10}`,
		`{`,
	} {
		w := httptest.NewRecorder()
		(&Handler{}).Calc(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestHandler_Missions(t *testing.T) {
	w := httptest.NewRecorder()
	(&Handler{}).Missions(w, httptest.NewRequest(http.MethodGet, "/api/tools/missions", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var out []Mission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 4)
	assert.Equal(t, Racing, out[0].Label)
	assert.Equal(t, "survey_mapping", out[3].Slug)
}
