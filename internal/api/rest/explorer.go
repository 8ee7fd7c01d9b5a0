package rest

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/ibet-fin/ibet-indexer/internal/store"
)

// GetBlockSyncStatus reports node sync health
func (h *handler) GetBlockSyncStatus(c *gin.Context) {
	status, err := h.chain.SyncStatus(c.Request.Context())
	if err != nil {
		respondServiceUnavailable(c, "blockchain node unavailable")
		return
	}

	respondOK(c, BlockSyncStatusDTO{
		IsSynced:          status.IsSynced,
		LatestBlockNumber: status.LatestBlockNumber,
	})
}

// ListBlocks returns explorer block rows. A search whose result set would
// exceed the ceiling is refused outright rather than silently truncated.
func (h *handler) ListBlocks(c *gin.Context) {
	if !h.explorerEnabled {
		respondNotSupported(c, "explorer is not enabled")
		return
	}

	params, err := ParseBlockListQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	filter := store.BlockQueryFilter{
		FromBlockNumber: params.FromBlockNumber,
		ToBlockNumber:   params.ToBlockNumber,
		SortOrder:       params.Order(),
		Pagination:      params.Pagination(),
	}

	matched, err := h.store.CountBlocks(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	if resultCount(matched, params.Pagination()) > MAX_BLOCK_RESPONSE {
		respondResponseLimitExceeded(c, "search results exceed the limit")
		return
	}

	blocks, total, err := h.store.GetBlocks(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	out := make([]BlockDTO, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, newBlockDTO(b))
	}
	respondOK(c, newListResponse(out, len(out), params.Pagination(), total))
}

// ListTransactions returns explorer transaction rows under the same ceiling
// rule as ListBlocks
func (h *handler) ListTransactions(c *gin.Context) {
	if !h.explorerEnabled {
		respondNotSupported(c, "explorer is not enabled")
		return
	}

	params, err := ParseTxListQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	filter := store.TxQueryFilter{
		BlockNumber: params.BlockNumber,
		SortOrder:   params.Order(),
		Pagination:  params.Pagination(),
	}
	if params.FromAddress != nil {
		checksummed := common.HexToAddress(*params.FromAddress).Hex()
		filter.FromAddress = &checksummed
	}
	if params.ToAddress != nil {
		checksummed := common.HexToAddress(*params.ToAddress).Hex()
		filter.ToAddress = &checksummed
	}

	matched, err := h.store.CountTransactions(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	if resultCount(matched, params.Pagination()) > MAX_TX_RESPONSE {
		respondResponseLimitExceeded(c, "search results exceed the limit")
		return
	}

	txs, total, err := h.store.GetTransactions(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	out := make([]TxDTO, 0, len(txs))
	for _, t := range txs {
		out = append(out, newTxDTO(t))
	}
	respondOK(c, newListResponse(out, len(out), params.Pagination(), total))
}

// resultCount computes how many rows a query will actually return once
// offset and limit are applied to the filtered match count
func resultCount(matched uint64, page store.Pagination) uint64 {
	if page.Offset != nil {
		offset := uint64(*page.Offset)
		if offset >= matched {
			return 0
		}
		matched -= offset
	}
	if page.Limit != nil && uint64(*page.Limit) < matched {
		matched = uint64(*page.Limit)
	}
	return matched
}
