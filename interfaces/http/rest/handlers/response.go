package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	pkgerrors "infograph-backend/pkg/errors"
	"infograph-backend/pkg/utils"
)

// StatusResponse is the body of endpoints that only acknowledge
type StatusResponse struct {
	Status string `json:"status"`
}

// decodeJSON reads the body into dst and runs struct validation
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return pkgerrors.NewValidationError("request body is required")
		}
		return pkgerrors.NewValidationError("invalid request body: " + err.Error())
	}
	if err := utils.ValidateStruct(dst); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}
