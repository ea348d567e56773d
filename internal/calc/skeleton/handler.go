package skeleton

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"Airframe/internal/httpx"

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

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httpx.DecodeJSON(w, r, inputSchema, &input); err != nil {
		h.logger().Debug("skeleton: rejected payload", zap.Error(err))
		httpx.BadRequest(w, err)
		return
	}
	if err := httpx.WriteJSON(w, Render(input)); err != nil {
		h.logger().Error("skeleton: encode response", zap.Error(err))
	}
}

// SVG serves the diagram as an image so a form can point an <img> at it.
func (h *Handler) SVG(w http.ResponseWriter, r *http.Request) {
	input, err := inputFromQuery(r)
	if err != nil {
		httpx.BadRequest(w, err)
		return
	}
	if err := inputSchema.ValidateValue(input); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, Render(input)); err != nil {
		h.logger().Error("skeleton: render svg", zap.Error(err))
		http.Error(w, "Rendering error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

func inputFromQuery(r *http.Request) (Input, error) {
	q := r.URL.Query()
	frame, err := strconv.ParseFloat(q.Get("frame_size_mm"), 64)
	if err != nil {
		return Input{}, fmt.Errorf("frame_size_mm: %w", err)
	}
	prop, err := strconv.ParseFloat(q.Get("propeller_diameter_in"), 64)
	if err != nil {
		return Input{}, fmt.Errorf("propeller_diameter_in: %w", err)
	}
	return Input{FrameSizeMM: frame, PropellerDiameterIn: prop}, nil
}
