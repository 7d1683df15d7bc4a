package pr3import

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

const maxUploadBytes = 32 << 20

// Handler exposes the import pipeline over HTTP.
type Handler struct {
	importer *Importer
}

// NewHTTPHandler wraps the importer in an upload endpoint. The caller posts
// the PR3 export as multipart form data under the "file" field; the
// response is a JSON summary, or the failure-report workbook as an
// attachment when any row failed.
func NewHTTPHandler(importer *Importer) http.Handler {
	return &Handler{importer: importer}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("failed to parse upload: %v", err), http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing \"file\" form field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := h.importer.ImportFromExcel(r.Context(), file)
	if err != nil {
		http.Error(w, fmt.Sprintf("import failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("X-Import-Total", strconv.Itoa(result.Total))
	w.Header().Set("X-Import-Failed", strconv.Itoa(result.Failed))
	w.Header().Set("X-Import-Successful", strconv.Itoa(result.Successful()))

	if result.Failed > 0 {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="failed-entries.xlsx"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.FailedRows)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int{
		"total":      result.Total,
		"failed":     result.Failed,
		"successful": result.Successful(),
	})
}
