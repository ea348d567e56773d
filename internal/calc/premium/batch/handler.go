package batch

import (
	"net/http"

	"Airframe/internal/httpx"
	"Airframe/internal/metrics"

	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func (h *Handler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	var input RecommendBatchInput
	if err := httpx.DecodeJSON(w, r, InputSchema, &input); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	res, err := Recommend(input)
	if err != nil {
		h.logger().Debug("batch: rejected", zap.Error(err))
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	for _, item := range res.Results {
		metrics.ObserveRecommendation(string(item.Input.MissionType), item.Result.Available, item.Result.Warning != "")
	}
	if err := httpx.WriteJSON(w, res); err != nil {
		h.logger().Error("batch: encode response", zap.Error(err))
	}
}
