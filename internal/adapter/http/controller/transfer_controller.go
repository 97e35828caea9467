package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/adapter/http/models"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/commons"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/logger"
)

type TransferService interface {
	Transfer(ctx context.Context, transfer domain.Transfer) error
}

type TransferController struct {
	service TransferService
}

func NewTransferController(service TransferService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	var handler http.Handler = http.HandlerFunc(c.processTransfer)
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}
	mux.Handle("POST /v1/transfers/process", handler)
}

func (c *TransferController) processTransfer(w http.ResponseWriter, r *http.Request) {
	start := logStart(r)

	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeAndLog(w, r, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("invalid request body", err.Error()), start)
		return
	}

	if err := req.Validate(); err != nil {
		writeAndLog(w, r, http.StatusBadRequest, commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), start)
		return
	}

	transfer := domain.Transfer{
		AccountFromID: req.AccountFromID,
		AccountToID:   req.AccountToID,
		Amount:        req.Amount,
	}

	if err := c.service.Transfer(r.Context(), transfer); err != nil {
		logError(r, err, transferFields(req))
		writeAndLog(w, r, statusForError(err), commons.ErrorResponse[models.TransferResponse]("failed to process transfer", err.Error()), start)
		return
	}

	response := commons.SuccessResponse("transfer processed", models.TransferResponse{
		AccountFromID: req.AccountFromID,
		AccountToID:   req.AccountToID,
		Amount:        req.Amount,
		Status:        "Success",
	})
	writeAndLog(w, r, http.StatusCreated, response, start)
}

func transferFields(req models.TransferRequest) logger.Fields {
	return logger.Fields{
		"accountFromId": req.AccountFromID,
		"accountToId":   req.AccountToID,
		"amount":        req.Amount.String(),
	}
}
