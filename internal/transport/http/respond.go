package http

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithField("err", err).Error("write response body")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status, message := mapDomainError(err)
	if status == http.StatusInternalServerError {
		log.WithField("err", err).Error("request failed")
	}
	writeJSON(w, status, errorResponse{Message: message})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message})
}
