package recommend

import (
	"net/http"

	"Airframe/internal/httpx"
	"Airframe/internal/metrics"

	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

type Mission struct {
	Label MissionType `json:"label"`
	Slug  string      `json:"slug"`
}

func (h *Handler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httpx.DecodeJSON(w, r, inputSchema, &input); err != nil {
		h.logger().Debug("recommend: rejected payload", zap.Error(err))
		httpx.BadRequest(w, err)
		return
	}
	res := Recommend(input)
	metrics.ObserveRecommendation(string(input.MissionType), res.Available, res.Warning != "")
	if !res.Available {
		h.logger().Info("recommend: unknown mission type", zap.String("mission_type", string(input.MissionType)))
	}
	if err := httpx.WriteJSON(w, res); err != nil {
		h.logger().Error("recommend: encode response", zap.Error(err))
	}
}

func (h *Handler) Missions(w http.ResponseWriter, r *http.Request) {
	out := make([]Mission, 0, len(MissionTypes()))
	for _, m := range MissionTypes() {
		out = append(out, Mission{Label: m, Slug: m.Slug()})
	}
	if err := httpx.WriteJSON(w, out); err != nil {
		h.logger().Error("missions: encode response", zap.Error(err))
	}
}
