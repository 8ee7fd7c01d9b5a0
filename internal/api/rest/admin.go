package rest

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/contracts"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

var zeroAddress = common.Address{}

// CreateListing registers a token for indexing. The token must already be
// registered on the on-chain TokenList contract; the registry is the source
// of truth for the template and issuer.
func (h *handler) CreateListing(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidParameter(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if !common.IsHexAddress(req.ContractAddress) {
		respondInvalidParameter(c, "contract_address is not a valid address")
		return
	}
	tokenAddress := common.HexToAddress(req.ContractAddress).Hex()

	registryABI, ok := h.registry.ABI(contracts.NameTokenList)
	if !ok {
		respondInternalError(c, errors.New("TokenList ABI missing from registry"))
		return
	}

	outputs, err := h.chain.Call(ctx, registryABI, h.tokenListAddress, "getTokenByAddress", common.HexToAddress(tokenAddress))
	if err != nil {
		h.respondChainError(c, err)
		return
	}

	registered, template, owner, err := parseTokenListEntry(outputs)
	if err != nil {
		respondInternalError(c, err, zap.String("token_address", tokenAddress))
		return
	}
	if registered == zeroAddress {
		respondInvalidParameter(c, "token is not registered on the TokenList contract")
		return
	}
	if !template.Valid() {
		respondNotSupported(c, fmt.Sprintf("unsupported token template: %s", template))
		return
	}

	listing := &schema.Listing{
		TokenAddress:       tokenAddress,
		IsPublic:           req.IsPublic,
		MaxHoldingQuantity: req.MaxHoldingQuantity,
		MaxSellAmount:      req.MaxSellAmount,
		OwnerAddress:       owner.Hex(),
	}
	if err := h.store.CreateListing(ctx, listing); err != nil {
		if errors.Is(err, domain.ErrDataConflict) {
			respondDataConflict(c, "token is already listed")
			return
		}
		respondInternalError(c, err, zap.String("token_address", tokenAddress))
		return
	}

	item := &schema.TokenListItem{
		TokenAddress:  tokenAddress,
		TokenTemplate: template,
		OwnerAddress:  owner.Hex(),
	}
	if err := h.store.UpsertTokenListItem(ctx, item); err != nil {
		respondInternalError(c, err, zap.String("token_address", tokenAddress))
		return
	}

	respondOK(c, newListingDTO(listing))
}

// ListListings returns registered listings
func (h *handler) ListListings(c *gin.Context) {
	params, err := ParseListingListQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	filter := store.ListingQueryFilter{
		IsPublic:   params.IsPublic,
		Pagination: params.Pagination(),
	}
	if params.TokenAddress != nil {
		checksummed := common.HexToAddress(*params.TokenAddress).Hex()
		filter.TokenAddress = &checksummed
	}

	listings, total, err := h.store.GetListings(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err)
		return
	}

	out := make([]ListingDTO, 0, len(listings))
	for i := range listings {
		out = append(out, newListingDTO(&listings[i]))
	}
	respondOK(c, newListResponse(out, len(out), params.Pagination(), total))
}

// GetListing returns one listing
func (h *handler) GetListing(c *gin.Context) {
	address := c.Param("token_address")
	if !common.IsHexAddress(address) {
		respondInvalidParameter(c, "token_address is not a valid address")
		return
	}

	listing, err := h.store.GetListing(c.Request.Context(), common.HexToAddress(address).Hex())
	if err != nil {
		respondInternalError(c, err, zap.String("token_address", address))
		return
	}
	if listing == nil {
		respondDataNotExists(c, "listing not found")
		return
	}
	respondOK(c, newListingDTO(listing))
}

// UpdateListing updates the mutable fields of a listing
func (h *handler) UpdateListing(c *gin.Context) {
	ctx := c.Request.Context()

	address := c.Param("token_address")
	if !common.IsHexAddress(address) {
		respondInvalidParameter(c, "token_address is not a valid address")
		return
	}
	tokenAddress := common.HexToAddress(address).Hex()

	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidParameter(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.OwnerAddress != nil && !common.IsHexAddress(*req.OwnerAddress) {
		respondInvalidParameter(c, "owner_address is not a valid address")
		return
	}

	listing, err := h.store.GetListing(ctx, tokenAddress)
	if err != nil {
		respondInternalError(c, err, zap.String("token_address", address))
		return
	}
	if listing == nil {
		respondDataNotExists(c, "listing not found")
		return
	}

	input := store.UpdateListingInput{
		IsPublic:           req.IsPublic,
		MaxHoldingQuantity: req.MaxHoldingQuantity,
		MaxSellAmount:      req.MaxSellAmount,
	}
	if req.OwnerAddress != nil {
		checksummed := common.HexToAddress(*req.OwnerAddress).Hex()
		input.OwnerAddress = &checksummed
	}

	if err := h.store.UpdateListing(ctx, tokenAddress, input); err != nil {
		respondInternalError(c, err, zap.String("token_address", address))
		return
	}

	updated, err := h.store.GetListing(ctx, tokenAddress)
	if err != nil || updated == nil {
		respondInternalError(c, fmt.Errorf("failed to reload listing: %w", err), zap.String("token_address", address))
		return
	}
	respondOK(c, newListingDTO(updated))
}

// DeleteListing removes a listing and its template registration
func (h *handler) DeleteListing(c *gin.Context) {
	ctx := c.Request.Context()

	address := c.Param("token_address")
	if !common.IsHexAddress(address) {
		respondInvalidParameter(c, "token_address is not a valid address")
		return
	}
	tokenAddress := common.HexToAddress(address).Hex()

	listing, err := h.store.GetListing(ctx, tokenAddress)
	if err != nil {
		respondInternalError(c, err, zap.String("token_address", address))
		return
	}
	if listing == nil {
		respondDataNotExists(c, "listing not found")
		return
	}

	if err := h.store.DeleteListing(ctx, tokenAddress); err != nil {
		respondInternalError(c, err, zap.String("token_address", address))
		return
	}
	respondOK(c, nil)
}

// parseTokenListEntry unpacks the (tokenAddress, tokenTemplate, ownerAddress)
// triple returned by the TokenList contract
func parseTokenListEntry(outputs []interface{}) (common.Address, domain.TokenTemplate, common.Address, error) {
	if len(outputs) != 3 {
		return zeroAddress, "", zeroAddress, fmt.Errorf("unexpected TokenList output arity: %d", len(outputs))
	}

	registered, ok := outputs[0].(common.Address)
	if !ok {
		return zeroAddress, "", zeroAddress, errors.New("unexpected TokenList tokenAddress type")
	}
	template, ok := outputs[1].(string)
	if !ok {
		return zeroAddress, "", zeroAddress, errors.New("unexpected TokenList tokenTemplate type")
	}
	owner, ok := outputs[2].(common.Address)
	if !ok {
		return zeroAddress, "", zeroAddress, errors.New("unexpected TokenList ownerAddress type")
	}

	return registered, domain.TokenTemplate(template), owner, nil
}
