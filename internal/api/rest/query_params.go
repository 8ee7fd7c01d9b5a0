package rest

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/ibet-fin/ibet-indexer/internal/store"
)

// Explorer endpoints refuse result sets larger than these ceilings instead of
// truncating them
const (
	MAX_BLOCK_RESPONSE = 1000
	MAX_TX_RESPONSE    = 10000
)

// PaginationQuery holds the shared offset/limit parameters. Omitted values
// leave that side unbounded.
type PaginationQuery struct {
	Offset *int `form:"offset"`
	Limit  *int `form:"limit"`
}

// Validate checks the pagination bounds
func (p *PaginationQuery) Validate() error {
	if p.Offset != nil && *p.Offset < 0 {
		return errors.New("offset must not be negative")
	}
	if p.Limit != nil && *p.Limit < 0 {
		return errors.New("limit must not be negative")
	}
	return nil
}

// Pagination converts the query to a store pagination
func (p *PaginationQuery) Pagination() store.Pagination {
	return store.Pagination{Offset: p.Offset, Limit: p.Limit}
}

// SortQuery holds the shared sort parameters. sort_order is 0 for ascending,
// 1 for descending.
type SortQuery struct {
	SortItem  string `form:"sort_item"`
	SortOrder int    `form:"sort_order,default=0"`
}

// Validate checks the sort direction
func (s *SortQuery) Validate() error {
	if s.SortOrder != int(store.SortAsc) && s.SortOrder != int(store.SortDesc) {
		return errors.New("sort_order must be 0 (asc) or 1 (desc)")
	}
	return nil
}

// Order returns the store sort direction
func (s *SortQuery) Order() store.SortOrder {
	return store.SortOrder(s.SortOrder)
}

// TokenListQuery holds query parameters for the per-template token listings
type TokenListQuery struct {
	Name                  *string  `form:"name"`
	OwnerAddress          *string  `form:"owner_address"`
	CompanyName           *string  `form:"company_name"`
	Status                *bool    `form:"status"`
	Transferable          *bool    `form:"transferable"`
	IsOffering            *bool    `form:"is_offering"`
	InitialOfferingStatus *bool    `form:"initial_offering_status"`
	Addresses             []string `form:"address"`

	SortQuery
	PaginationQuery
}

// ParseTokenListQuery parses and validates the token listing parameters
func ParseTokenListQuery(c *gin.Context) (*TokenListQuery, error) {
	var params TokenListQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.SortQuery.Validate(); err != nil {
		return nil, err
	}
	if err := params.PaginationQuery.Validate(); err != nil {
		return nil, err
	}
	if params.OwnerAddress != nil && !common.IsHexAddress(*params.OwnerAddress) {
		return nil, errors.New("owner_address is not a valid address")
	}
	for _, address := range params.Addresses {
		if !common.IsHexAddress(address) {
			return nil, fmt.Errorf("address %s is not a valid address", address)
		}
	}
	return &params, nil
}

// Filter converts the query to a store token filter
func (p *TokenListQuery) Filter() store.TokenQueryFilter {
	return store.TokenQueryFilter{
		Name:                  p.Name,
		OwnerAddress:          p.OwnerAddress,
		CompanyName:           p.CompanyName,
		Status:                p.Status,
		Transferable:          p.Transferable,
		IsOffering:            p.IsOffering,
		InitialOfferingStatus: p.InitialOfferingStatus,
		Addresses:             p.Addresses,
		SortItem:              p.SortItem,
		SortOrder:             p.Order(),
		Pagination:            p.Pagination(),
	}
}

// OrderBookQuery holds query parameters for the order book endpoint
type OrderBookQuery struct {
	// OrderType is the side the caller wants to take: "buy" returns resting
	// sell orders, "sell" returns resting buy orders
	OrderType string `form:"order_type"`
	// AccountAddress omits that account's own orders when set
	AccountAddress *string `form:"account_address"`
}

// ParseOrderBookQuery parses and validates the order book parameters
func ParseOrderBookQuery(c *gin.Context) (*OrderBookQuery, error) {
	var params OrderBookQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.OrderType != "buy" && params.OrderType != "sell" {
		return nil, errors.New("order_type must be buy or sell")
	}
	if params.AccountAddress != nil && !common.IsHexAddress(*params.AccountAddress) {
		return nil, errors.New("account_address is not a valid address")
	}
	return &params, nil
}

// AddressListQuery holds the address_list parameter shared by the market
// price endpoints
type AddressListQuery struct {
	AddressList []string `form:"address_list"`
}

// ParseAddressListQuery parses and validates an address list
func ParseAddressListQuery(c *gin.Context) (*AddressListQuery, error) {
	var params AddressListQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if len(params.AddressList) == 0 {
		return nil, errors.New("address_list is required")
	}
	for _, address := range params.AddressList {
		if !common.IsHexAddress(address) {
			return nil, fmt.Errorf("address %s is not a valid address", address)
		}
	}
	return &params, nil
}

// NotificationListQuery holds query parameters for the notification feed
type NotificationListQuery struct {
	NotificationType *string `form:"notification_type"`
	Priority         *int    `form:"priority"`

	SortQuery
	PaginationQuery
}

// ParseNotificationListQuery parses and validates the notification feed
// parameters
func ParseNotificationListQuery(c *gin.Context) (*NotificationListQuery, error) {
	var params NotificationListQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.SortQuery.Validate(); err != nil {
		return nil, err
	}
	if err := params.PaginationQuery.Validate(); err != nil {
		return nil, err
	}
	return &params, nil
}

// ListingListQuery holds query parameters for the admin listing index
type ListingListQuery struct {
	TokenAddress *string `form:"token_address"`
	IsPublic     *bool   `form:"is_public"`

	PaginationQuery
}

// ParseListingListQuery parses and validates the admin listing parameters
func ParseListingListQuery(c *gin.Context) (*ListingListQuery, error) {
	var params ListingListQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.PaginationQuery.Validate(); err != nil {
		return nil, err
	}
	if params.TokenAddress != nil && !common.IsHexAddress(*params.TokenAddress) {
		return nil, errors.New("token_address is not a valid address")
	}
	return &params, nil
}

// BlockListQuery holds query parameters for the explorer block index
type BlockListQuery struct {
	FromBlockNumber *uint64 `form:"from_block_number"`
	ToBlockNumber   *uint64 `form:"to_block_number"`

	SortQuery
	PaginationQuery
}

// ParseBlockListQuery parses and validates the block index parameters
func ParseBlockListQuery(c *gin.Context) (*BlockListQuery, error) {
	var params BlockListQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.SortQuery.Validate(); err != nil {
		return nil, err
	}
	if err := params.PaginationQuery.Validate(); err != nil {
		return nil, err
	}
	if params.FromBlockNumber != nil && params.ToBlockNumber != nil &&
		*params.FromBlockNumber > *params.ToBlockNumber {
		return nil, errors.New("from_block_number must not exceed to_block_number")
	}
	return &params, nil
}

// TxListQuery holds query parameters for the explorer transaction index
type TxListQuery struct {
	BlockNumber *uint64 `form:"block_number"`
	FromAddress *string `form:"from_address"`
	ToAddress   *string `form:"to_address"`

	SortQuery
	PaginationQuery
}

// ParseTxListQuery parses and validates the transaction index parameters
func ParseTxListQuery(c *gin.Context) (*TxListQuery, error) {
	var params TxListQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.SortQuery.Validate(); err != nil {
		return nil, err
	}
	if err := params.PaginationQuery.Validate(); err != nil {
		return nil, err
	}
	if params.FromAddress != nil && !common.IsHexAddress(*params.FromAddress) {
		return nil, errors.New("from_address is not a valid address")
	}
	if params.ToAddress != nil && !common.IsHexAddress(*params.ToAddress) {
		return nil, errors.New("to_address is not a valid address")
	}
	return &params, nil
}
