package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MikhailRaia/slugid"
	"github.com/MikhailRaia/slugid/internal/model"
)

func (h *Handler) HandleBatchJSON(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var request model.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	mode, err := slugid.ParseMode(request.Mode)
	if err != nil {
		writeError(w, err)
		return
	}

	h.writeBatch(w, r, mode, request.Count, http.StatusCreated)
}

func (h *Handler) writeBatch(w http.ResponseWriter, r *http.Request, mode slugid.Mode, count, status int) {
	ids, err := h.slugService.GenerateBatch(r.Context(), mode, count)
	if err != nil {
		writeError(w, err)
		return
	}

	response, err := json.Marshal(model.BatchResponse{
		Mode:    mode.String(),
		Slugids: ids,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(response)
}
