package rest

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

const (
	defaultReceiptTimeout = 5 * time.Second
	maxReceiptTimeout     = 30 * time.Second
)

// SendRawTransaction relays a signed transaction to the node
func (h *handler) SendRawTransaction(c *gin.Context) {
	var req SendRawTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidParameter(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	txHash, err := h.chain.SendRawTransaction(c.Request.Context(), req.RawTx)
	if err != nil {
		if errors.Is(err, domain.ErrServiceUnavailable) {
			respondServiceUnavailable(c, "blockchain node unavailable")
			return
		}
		respondInvalidParameter(c, "transaction rejected by the node")
		return
	}

	respondOK(c, SendRawTransactionDTO{TransactionHash: txHash})
}

// WaitForTransactionReceipt polls the node until the transaction is mined or
// the timeout elapses
func (h *handler) WaitForTransactionReceipt(c *gin.Context) {
	var req WaitForTransactionReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidParameter(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	timeout := defaultReceiptTimeout
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout) * time.Second
	}
	if timeout > maxReceiptTimeout {
		respondInvalidParameter(c, fmt.Sprintf("timeout must not exceed %d seconds", int(maxReceiptTimeout.Seconds())))
		return
	}

	receipt, err := h.chain.WaitForTransactionReceipt(c.Request.Context(), req.TransactionHash, timeout)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDataNotExists):
			respondDataNotExists(c, "transaction is not yet mined")
		case errors.Is(err, domain.ErrServiceUnavailable):
			respondServiceUnavailable(c, "blockchain node unavailable")
		default:
			respondInternalError(c, err, zap.String("transaction_hash", req.TransactionHash))
		}
		return
	}

	respondOK(c, TransactionReceiptDTO{
		TransactionHash: receipt.TxHash.Hex(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		Status:          receipt.Status,
		GasUsed:         receipt.GasUsed,
	})
}

// GetABI returns the registered contract ABI for a template
func (h *handler) GetABI(c *gin.Context) {
	template := domain.TokenTemplate(c.Param("template"))
	if !template.Valid() {
		respondNotSupported(c, "unknown token template")
		return
	}

	raw, ok := h.registry.RawABI(string(template))
	if !ok {
		respondDataNotExists(c, "no ABI registered for template")
		return
	}
	respondOK(c, raw)
}
