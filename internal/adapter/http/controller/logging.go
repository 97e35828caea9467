package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/logger"
)

func logStart(r *http.Request) time.Time {
	logger.Info("http request", logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"query":  r.URL.RawQuery,
	})
	return time.Now()
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error("http handler error", err, fields)
}

func accountFields(accountID string) logger.Fields {
	return logger.Fields{"accountId": accountID}
}

func writeAndLog(w http.ResponseWriter, r *http.Request, status int, payload any, start time.Time) {
	writeJSON(w, status, payload)
	logger.Info("http response", logger.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"durationMs": time.Since(start).Milliseconds(),
		"response":   logger.SanitizePayload(payload),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps the ledger's failure kinds to HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateAccount):
		return http.StatusConflict
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrSameAccount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrTransferNotProcessed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
