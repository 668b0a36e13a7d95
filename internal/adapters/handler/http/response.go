package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	msgUnauthenticated          = "No autenticado."
	msgMalformedBody            = "Body inválido."
	msgMissingFields            = "Faltan categoryId y nomineeId."
	msgInvalidNomineeOrCategory = "Nominado/Categoría no válidos."
	msgCategoryNotFound         = "Categoría no encontrada."
	msgMissingEdition           = "La categoría no tiene edition_id."
	msgAlreadyVoted             = "Ya votaste en esta categoría."
	msgStorageFallback          = "Error guardando voto."

	statusAlreadyVoted = "already_voted"
)

type errorResponse struct {
	Error string `json:"error"`
}

type alreadyVotedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type acceptedResponse struct {
	OK bool `json:"ok"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
