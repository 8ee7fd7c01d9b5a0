package schema

import (
	"time"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

// Listing represents the listing table - tokens accepted for indexing and
// trading, curated through the admin API
type Listing struct {
	// ID is the internal database primary key; also the processing order of the indexer
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the token contract address
	TokenAddress string `gorm:"column:token_address;not null;uniqueIndex;type:varchar(42)"`
	// IsPublic controls whether the token shows up in public listings
	IsPublic bool `gorm:"column:is_public;not null;default:false"`
	// MaxHoldingQuantity is the per-account holding ceiling (nil = unlimited)
	MaxHoldingQuantity *int64 `gorm:"column:max_holding_quantity"`
	// MaxSellAmount is the per-order sell ceiling (nil = unlimited)
	MaxSellAmount *int64 `gorm:"column:max_sell_amount"`
	// OwnerAddress is the issuer address
	OwnerAddress string `gorm:"column:owner_address;type:varchar(42)"`
	// CreatedAt is the timestamp the listing was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Listing model
func (Listing) TableName() string {
	return "listing"
}

// TokenListItem represents the token_list table - a mirror of the on-chain
// TokenList registry, keyed by token address
type TokenListItem struct {
	// TokenAddress is the token contract address
	TokenAddress string `gorm:"column:token_address;primaryKey;type:varchar(42)"`
	// TokenTemplate is the contract interface of the token
	TokenTemplate domain.TokenTemplate `gorm:"column:token_template;not null;index;type:varchar(40)"`
	// OwnerAddress is the issuer address recorded in the registry
	OwnerAddress string `gorm:"column:owner_address;index;type:varchar(42)"`
}

// TableName specifies the table name for the TokenListItem model
func (TokenListItem) TableName() string {
	return "token_list"
}
