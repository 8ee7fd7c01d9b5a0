package rest

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/chain"
	"github.com/ibet-fin/ibet-indexer/internal/company"
	"github.com/ibet-fin/ibet-indexer/internal/contracts"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListCompanies returns the company directory
	// GET /v1/Companies
	ListCompanies(c *gin.Context)

	// GetCompany returns one company by issuer address
	// GET /v1/Companies/:eth_address
	GetCompany(c *gin.Context)

	// ListCompanyTokens returns the indexed tokens issued by a company
	// GET /v1/Companies/:eth_address/Tokens
	ListCompanyTokens(c *gin.Context)

	// ListBondTokens returns indexed bond tokens with filters, sort and pagination
	// GET /v1/Token/StraightBond
	ListBondTokens(c *gin.Context)

	// ListShareTokens returns indexed share tokens
	// GET /v1/Token/Share
	ListShareTokens(c *gin.Context)

	// ListMembershipTokens returns indexed membership tokens
	// GET /v1/Token/Membership
	ListMembershipTokens(c *gin.Context)

	// ListCouponTokens returns indexed coupon tokens
	// GET /v1/Token/Coupon
	ListCouponTokens(c *gin.Context)

	// GetToken returns the indexed detail of one token, resolved through its
	// registered template
	// GET /v1/Token/:contract_address
	GetToken(c *gin.Context)

	// GetTokenStatus reads status/transferable directly from the contract
	// GET /v1/Token/:contract_address/Status
	GetTokenStatus(c *gin.Context)

	// ListPositions returns the non-zero holdings of an account
	// GET /v1/Position/:account_address
	ListPositions(c *gin.Context)

	// ListLockedPositions returns the lock-scoped holdings of an account
	// GET /v1/Position/:account_address/Lock
	ListLockedPositions(c *gin.Context)

	// GetOrderBook returns one side of a token's order book, best price first
	// GET /v1/DEX/Market/OrderBook/:token_address?order_type=buy|sell
	GetOrderBook(c *gin.Context)

	// GetLastPrice returns the latest settled price per token
	// GET /v1/DEX/Market/LastPrice?address_list=...
	GetLastPrice(c *gin.Context)

	// GetTick returns the settled trade history per token, most recent first
	// GET /v1/DEX/Market/Tick?address_list=...
	GetTick(c *gin.Context)

	// ListNotifications returns the signer's notification feed
	// GET /v1/Notifications
	ListNotifications(c *gin.Context)

	// CountNotifications returns total/unread counters for the signer
	// GET /v1/Notifications/Count
	CountNotifications(c *gin.Context)

	// MarkAllNotificationsRead flags the signer's entire feed read
	// POST /v1/Notifications/Read
	MarkAllNotificationsRead(c *gin.Context)

	// UpdateNotification updates read/flagged/deleted flags of one entry
	// POST /v1/Notifications/:id
	UpdateNotification(c *gin.Context)

	// DeleteNotification soft-deletes one entry
	// DELETE /v1/Notifications/:id
	DeleteNotification(c *gin.Context)

	// CreateListing registers a token for indexing after validating it against
	// the on-chain TokenList registry
	// POST /v1/Admin/Tokens
	CreateListing(c *gin.Context)

	// ListListings returns registered listings
	// GET /v1/Admin/Tokens
	ListListings(c *gin.Context)

	// GetListing returns one listing
	// GET /v1/Admin/Tokens/:token_address
	GetListing(c *gin.Context)

	// UpdateListing updates the mutable fields of a listing
	// PUT /v1/Admin/Tokens/:token_address
	UpdateListing(c *gin.Context)

	// DeleteListing removes a listing and its template registration
	// DELETE /v1/Admin/Tokens/:token_address
	DeleteListing(c *gin.Context)

	// GetBlockSyncStatus reports node sync health
	// GET /v1/NodeInfo/BlockSyncStatus
	GetBlockSyncStatus(c *gin.Context)

	// ListBlocks returns explorer block rows (explorer flag required)
	// GET /v1/Blocks
	ListBlocks(c *gin.Context)

	// ListTransactions returns explorer transaction rows (explorer flag required)
	// GET /v1/Transactions
	ListTransactions(c *gin.Context)

	// SendRawTransaction relays a signed transaction to the node
	// POST /v1/Eth/SendRawTransaction
	SendRawTransaction(c *gin.Context)

	// WaitForTransactionReceipt polls the node for a receipt
	// POST /v1/Eth/WaitForTransactionReceipt
	WaitForTransactionReceipt(c *gin.Context)

	// GetABI returns the contract ABI for a template
	// GET /v1/ABI/:template
	GetABI(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store            store.Store
	chain            chain.Client
	registry         *contracts.Registry
	companies        company.List
	tokenListAddress string
	explorerEnabled  bool
}

// NewHandler creates a new REST API handler
func NewHandler(s store.Store, chainClient chain.Client, registry *contracts.Registry, companies company.List, tokenListAddress string, explorerEnabled bool) Handler {
	return &handler{
		store:            s,
		chain:            chainClient,
		registry:         registry,
		companies:        companies,
		tokenListAddress: tokenListAddress,
		explorerEnabled:  explorerEnabled,
	}
}

// ListCompanies returns the company directory
func (h *handler) ListCompanies(c *gin.Context) {
	companies, err := h.companies.All(c.Request.Context())
	if err != nil {
		respondServiceUnavailable(c, "company directory unavailable")
		return
	}

	out := make([]CompanyDTO, 0, len(companies))
	for _, entry := range companies {
		out = append(out, newCompanyDTO(entry))
	}
	respondOK(c, out)
}

// GetCompany returns one company by issuer address
func (h *handler) GetCompany(c *gin.Context) {
	address := c.Param("eth_address")
	if !common.IsHexAddress(address) {
		respondInvalidParameter(c, "eth_address is not a valid address")
		return
	}

	entry := h.companies.Find(c.Request.Context(), address)
	if entry.Address == "" {
		respondDataNotExists(c, "company not found")
		return
	}
	respondOK(c, newCompanyDTO(entry))
}

// ListCompanyTokens returns the indexed tokens issued by a company
func (h *handler) ListCompanyTokens(c *gin.Context) {
	address := c.Param("eth_address")
	if !common.IsHexAddress(address) {
		respondInvalidParameter(c, "eth_address is not a valid address")
		return
	}

	details, err := h.store.ListTokensByOwner(c.Request.Context(), common.HexToAddress(address).Hex())
	if err != nil {
		respondInternalError(c, err, zap.String("owner_address", address))
		return
	}

	out := make([]interface{}, 0, len(details))
	for _, detail := range details {
		if dto := newTokenDetailDTO(detail); dto != nil {
			out = append(out, dto)
		}
	}
	respondOK(c, out)
}

// ListBondTokens returns indexed bond tokens
func (h *handler) ListBondTokens(c *gin.Context) {
	params, err := ParseTokenListQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	tokens, total, err := h.store.ListBondTokens(c.Request.Context(), params.Filter())
	if err != nil {
		respondInternalError(c, err)
		return
	}

	out := make([]BondTokenDTO, 0, len(tokens))
	for i := range tokens {
		out = append(out, newBondTokenDTO(&tokens[i]))
	}
	respondOK(c, newListResponse(out, len(out), params.Pagination(), total))
}

// ListShareTokens returns indexed share tokens
func (h *handler) ListShareTokens(c *gin.Context) {
	params, err := ParseTokenListQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	tokens, total, err := h.store.ListShareTokens(c.Request.Context(), params.Filter())
	if err != nil {
		respondInternalError(c, err)
		return
	}

	out := make([]ShareTokenDTO, 0, len(tokens))
	for i := range tokens {
		out = append(out, newShareTokenDTO(&tokens[i]))
	}
	respondOK(c, newListResponse(out, len(out), params.Pagination(), total))
}

// ListMembershipTokens returns indexed membership tokens
func (h *handler) ListMembershipTokens(c *gin.Context) {
	params, err := ParseTokenListQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	tokens, total, err := h.store.ListMembershipTokens(c.Request.Context(), params.Filter())
	if err != nil {
		respondInternalError(c, err)
		return
	}

	out := make([]MembershipTokenDTO, 0, len(tokens))
	for i := range tokens {
		out = append(out, newMembershipTokenDTO(&tokens[i]))
	}
	respondOK(c, newListResponse(out, len(out), params.Pagination(), total))
}

// ListCouponTokens returns indexed coupon tokens
func (h *handler) ListCouponTokens(c *gin.Context) {
	params, err := ParseTokenListQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	tokens, total, err := h.store.ListCouponTokens(c.Request.Context(), params.Filter())
	if err != nil {
		respondInternalError(c, err)
		return
	}

	out := make([]CouponTokenDTO, 0, len(tokens))
	for i := range tokens {
		out = append(out, newCouponTokenDTO(&tokens[i]))
	}
	respondOK(c, newListResponse(out, len(out), params.Pagination(), total))
}

// GetToken returns the indexed detail of one token
func (h *handler) GetToken(c *gin.Context) {
	address := c.Param("contract_address")
	if !common.IsHexAddress(address) {
		respondInvalidParameter(c, "contract_address is not a valid address")
		return
	}

	detail, err := h.store.GetTokenDetail(c.Request.Context(), common.HexToAddress(address).Hex())
	if err != nil {
		respondInternalError(c, err, zap.String("token_address", address))
		return
	}
	if detail == nil {
		respondDataNotExists(c, "token not found")
		return
	}

	respondOK(c, newTokenDetailDTO(detail))
}

// GetTokenStatus reads status/transferable directly from the contract,
// bypassing the index
func (h *handler) GetTokenStatus(c *gin.Context) {
	ctx := c.Request.Context()

	address := c.Param("contract_address")
	if !common.IsHexAddress(address) {
		respondInvalidParameter(c, "contract_address is not a valid address")
		return
	}
	checksummed := common.HexToAddress(address).Hex()

	template, err := h.store.GetTokenTemplate(ctx, checksummed)
	if err != nil {
		respondInternalError(c, err, zap.String("token_address", address))
		return
	}
	if !template.Valid() {
		respondDataNotExists(c, "token not found")
		return
	}

	contractABI, ok := h.registry.TemplateABI(template)
	if !ok {
		respondNotSupported(c, "no ABI registered for template")
		return
	}

	status, err := h.chain.CallBool(ctx, contractABI, checksummed, "status")
	if err != nil {
		h.respondChainError(c, err)
		return
	}
	transferable, err := h.chain.CallBool(ctx, contractABI, checksummed, "transferable")
	if err != nil {
		h.respondChainError(c, err)
		return
	}

	respondOK(c, TokenStatusDTO{
		TokenTemplate: template,
		Status:        status,
		Transferable:  transferable,
	})
}

// ListPositions returns the non-zero holdings of an account
func (h *handler) ListPositions(c *gin.Context) {
	address := c.Param("account_address")
	if !common.IsHexAddress(address) {
		respondInvalidParameter(c, "account_address is not a valid address")
		return
	}

	var page PaginationQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}
	if err := page.Validate(); err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	positions, total, err := h.store.GetPositions(c.Request.Context(), common.HexToAddress(address).Hex(), page.Pagination())
	if err != nil {
		respondInternalError(c, err, zap.String("account_address", address))
		return
	}

	out := make([]PositionDTO, 0, len(positions))
	for _, p := range positions {
		out = append(out, newPositionDTO(p))
	}
	respondOK(c, newListResponse(out, len(out), page.Pagination(), total))
}

// ListLockedPositions returns the lock-scoped holdings of an account
func (h *handler) ListLockedPositions(c *gin.Context) {
	address := c.Param("account_address")
	if !common.IsHexAddress(address) {
		respondInvalidParameter(c, "account_address is not a valid address")
		return
	}

	var page PaginationQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}
	if err := page.Validate(); err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	positions, total, err := h.store.GetLockedPositions(c.Request.Context(), common.HexToAddress(address).Hex(), page.Pagination())
	if err != nil {
		respondInternalError(c, err, zap.String("account_address", address))
		return
	}

	out := make([]LockedPositionDTO, 0, len(positions))
	for _, p := range positions {
		out = append(out, newLockedPositionDTO(p))
	}
	respondOK(c, newListResponse(out, len(out), page.Pagination(), total))
}

// respondChainError maps chain client failures onto the response taxonomy
func (h *handler) respondChainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrServiceUnavailable):
		respondServiceUnavailable(c, "blockchain node unavailable")
	case errors.Is(err, domain.ErrCallFailed):
		respondDataNotExists(c, "contract does not answer as a registered token")
	default:
		respondInternalError(c, err)
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "ibet-indexer-api",
	})
}
