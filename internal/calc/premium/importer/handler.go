package importer

import (
	"bytes"
	"errors"
	"net/http"

	"Airframe/internal/calc/premium/batch"
	"Airframe/internal/httpx"
	"Airframe/internal/metrics"

	"go.uber.org/zap"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct {
	Log *zap.Logger
}

func (h *Handler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

// Recommend takes a multipart upload with the workbook in the "file" field.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		http.Error(w, "File too big", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := ImportRecommendations(file)
	if err != nil {
		h.logger().Debug("import: rejected workbook", zap.Error(err))
		if errors.Is(err, ErrEmptySheet) {
			http.Error(w, "Empty sheet", http.StatusBadRequest)
			return
		}
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	for _, item := range res.Results {
		metrics.ObserveRecommendation(string(item.Input.MissionType), item.Result.Available, item.Result.Warning != "")
	}
	if err := httpx.WriteJSON(w, res); err != nil {
		h.logger().Error("import: encode response", zap.Error(err))
	}
}

// Export answers a batch request with an xlsx workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input batch.RecommendBatchInput
	if err := httpx.DecodeJSON(w, r, batch.InputSchema, &input); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	res, err := batch.Recommend(input)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := ExportRecommendations(&buf, res); err != nil {
		h.logger().Error("export: write workbook", zap.Error(err))
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"recommendations.xlsx\"")
	w.Write(buf.Bytes())
}
