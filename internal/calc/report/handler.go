package report

import (
	"bytes"
	"net/http"
	"time"

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

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := httpx.DecodeJSON(w, r, inputSchema, &input); err != nil {
		httpx.BadRequest(w, err)
		return
	}

	var buf bytes.Buffer
	if err := Write(&buf, input, time.Now()); err != nil {
		h.logger().Error("report: generate pdf", zap.Error(err))
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"drone-report.pdf\"")
	w.Write(buf.Bytes())
}
