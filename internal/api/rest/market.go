package rest

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/store"
)

// GetOrderBook returns one side of a token's order book, best price first
func (h *handler) GetOrderBook(c *gin.Context) {
	ctx := c.Request.Context()

	address := c.Param("token_address")
	if !common.IsHexAddress(address) {
		respondInvalidParameter(c, "token_address is not a valid address")
		return
	}
	checksummed := common.HexToAddress(address).Hex()

	params, err := ParseOrderBookQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	detail, err := h.store.GetTokenDetail(ctx, checksummed)
	if err != nil {
		respondInternalError(c, err, zap.String("token_address", address))
		return
	}
	if detail == nil {
		respondDataNotExists(c, "token not found")
		return
	}

	exchangeAddress := detail.Base().TradableExchange
	if exchangeAddress == "" {
		respondNotSupported(c, "token has no tradable exchange")
		return
	}

	entries, err := h.store.GetOrderBook(ctx, store.OrderBookInput{
		TokenAddress:    checksummed,
		ExchangeAddress: exchangeAddress,
		IsBuy:           params.OrderType == "buy",
		ExcludeAccount:  params.AccountAddress,
	})
	if err != nil {
		respondInternalError(c, err, zap.String("token_address", address))
		return
	}

	respondOK(c, newOrderBookDTO(entries))
}

// GetLastPrice returns the latest settled price per requested token
func (h *handler) GetLastPrice(c *gin.Context) {
	params, err := ParseAddressListQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	out := make([]LastPriceDTO, 0, len(params.AddressList))
	for _, address := range params.AddressList {
		checksummed := common.HexToAddress(address).Hex()
		price, err := h.store.GetLastPrice(c.Request.Context(), checksummed)
		if err != nil {
			respondInternalError(c, err, zap.String("token_address", address))
			return
		}
		out = append(out, LastPriceDTO{TokenAddress: checksummed, LastPrice: price})
	}
	respondOK(c, out)
}

// GetTick returns the settled trade history per requested token, most recent
// first
func (h *handler) GetTick(c *gin.Context) {
	params, err := ParseAddressListQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	out := make([]TickDTO, 0, len(params.AddressList))
	for _, address := range params.AddressList {
		checksummed := common.HexToAddress(address).Hex()
		agreements, _, err := h.store.GetTick(c.Request.Context(), checksummed, store.Pagination{})
		if err != nil {
			respondInternalError(c, err, zap.String("token_address", address))
			return
		}

		tick := make([]TickEntryDTO, 0, len(agreements))
		for _, a := range agreements {
			tick = append(tick, newTickEntryDTO(a))
		}
		out = append(out, TickDTO{TokenAddress: checksummed, Tick: tick})
	}
	respondOK(c, out)
}
