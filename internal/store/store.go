package store

import (
	"context"
	"time"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks

// SortOrder selects the direction of a sorted listing. Ascending is the zero
// value.
type SortOrder int

const (
	SortAsc  SortOrder = 0
	SortDesc SortOrder = 1
)

// Pagination carries optional offset/limit bounds. A nil field leaves that
// side unbounded.
type Pagination struct {
	Offset *int
	Limit  *int
}

// ListingQueryFilter filters admin listing queries
type ListingQueryFilter struct {
	TokenAddress *string
	IsPublic     *bool
	Pagination
}

// UpdateListingInput carries the mutable listing fields. Nil fields are left
// untouched.
type UpdateListingInput struct {
	IsPublic           *bool
	MaxHoldingQuantity *int64
	MaxSellAmount      *int64
	OwnerAddress       *string
}

// ListedToken is a public listing joined with its registered template
type ListedToken struct {
	Listing  schema.Listing
	Template domain.TokenTemplate
}

// TokenQueryFilter filters per-template token listings
type TokenQueryFilter struct {
	Name                  *string
	OwnerAddress          *string
	CompanyName           *string
	Status                *bool
	Transferable          *bool
	IsOffering            *bool
	InitialOfferingStatus *bool
	// Addresses restricts the result to the given token addresses
	Addresses []string
	SortItem  string
	SortOrder SortOrder
	Pagination
}

// PositionWithToken is a position joined with the token's registered template
type PositionWithToken struct {
	schema.Position
	TokenTemplate domain.TokenTemplate `gorm:"column:token_template"`
}

// OrderBookInput selects one side of a token's order book
type OrderBookInput struct {
	TokenAddress    string
	ExchangeAddress string
	// IsBuy selects the side the caller wants to take: true returns resting
	// sell orders, false returns resting buy orders
	IsBuy bool
	// ExcludeAccount omits the caller's own orders when set
	ExcludeAccount *string
}

// OrderBookEntry is one price level of an order book
type OrderBookEntry struct {
	ExchangeAddress string `gorm:"column:exchange_address"`
	OrderID         int64  `gorm:"column:order_id"`
	Price           int64  `gorm:"column:price"`
	Amount          int64  `gorm:"column:amount"`
	AccountAddress  string `gorm:"column:account_address"`
}

// NotificationQueryFilter filters the per-address notification feed
type NotificationQueryFilter struct {
	Address          string
	NotificationType *string
	Priority         *domain.NotificationPriority
	SortOrder        SortOrder
	Pagination
}

// NotificationCounts aggregates feed counters for one address
type NotificationCounts struct {
	Total  int64
	Unread int64
}

// UpdateNotificationInput carries the mutable notification flags. Nil fields
// are left untouched.
type UpdateNotificationInput struct {
	IsRead    *bool
	IsFlagged *bool
	IsDeleted *bool
}

// BlockQueryFilter filters explorer block queries
type BlockQueryFilter struct {
	FromBlockNumber *uint64
	ToBlockNumber   *uint64
	SortOrder       SortOrder
	Pagination
}

// TxQueryFilter filters explorer transaction queries
type TxQueryFilter struct {
	BlockNumber *uint64
	FromAddress *string
	ToAddress   *string
	SortOrder   SortOrder
	Pagination
}

// Store defines the interface for database operations
type Store interface {
	// CreateListing inserts a new listing, returning domain.ErrDataConflict
	// when the token address is already listed
	CreateListing(ctx context.Context, listing *schema.Listing) error
	// GetListing retrieves a listing by token address, nil when absent
	GetListing(ctx context.Context, tokenAddress string) (*schema.Listing, error)
	// GetListings retrieves listings matching the filter, plus the unpaged total
	GetListings(ctx context.Context, filter ListingQueryFilter) ([]schema.Listing, uint64, error)
	// UpdateListing applies the non-nil fields of input to an existing listing
	UpdateListing(ctx context.Context, tokenAddress string, input UpdateListingInput) error
	// DeleteListing removes a listing and its token_list registration
	DeleteListing(ctx context.Context, tokenAddress string) error
	// UpsertTokenListItem records the template registration for a token
	UpsertTokenListItem(ctx context.Context, item *schema.TokenListItem) error
	// GetListedTokenAddresses returns every listed token address
	GetListedTokenAddresses(ctx context.Context) ([]string, error)

	// GetPublicListings returns public listings registered under the given
	// template, ordered by listing id
	GetPublicListings(ctx context.Context, template domain.TokenTemplate) ([]ListedToken, error)
	// UpsertTokenDetails merges a batch of fetched token details in a single
	// transaction. Tokens whose listing disappeared mid-pass are skipped and
	// reported back; any other failure rolls the whole batch back.
	UpsertTokenDetails(ctx context.Context, details []schema.TokenDetail) ([]string, error)

	// GetTokenTemplate returns the registered template for a token, "" when
	// the token is not listed
	GetTokenTemplate(ctx context.Context, tokenAddress string) (domain.TokenTemplate, error)
	// GetTokenDetail retrieves the indexed detail row for a token, nil when
	// absent
	GetTokenDetail(ctx context.Context, tokenAddress string) (schema.TokenDetail, error)
	// ListBondTokens retrieves bond details matching the filter, plus the
	// unpaged total
	ListBondTokens(ctx context.Context, filter TokenQueryFilter) ([]schema.BondToken, uint64, error)
	ListShareTokens(ctx context.Context, filter TokenQueryFilter) ([]schema.ShareToken, uint64, error)
	ListMembershipTokens(ctx context.Context, filter TokenQueryFilter) ([]schema.MembershipToken, uint64, error)
	ListCouponTokens(ctx context.Context, filter TokenQueryFilter) ([]schema.CouponToken, uint64, error)
	// ListTokensByOwner retrieves every indexed token issued by an owner
	ListTokensByOwner(ctx context.Context, ownerAddress string) ([]schema.TokenDetail, error)

	// UpsertPositions merges balance snapshots keyed by (token, account)
	UpsertPositions(ctx context.Context, positions []*schema.Position) error
	// UpsertLockedPositions merges locked-value snapshots keyed by
	// (token, lock, account)
	UpsertLockedPositions(ctx context.Context, positions []*schema.LockedPosition) error
	// GetPositions retrieves non-zero positions for an account joined with
	// the token template, plus the unpaged total
	GetPositions(ctx context.Context, accountAddress string, page Pagination) ([]PositionWithToken, uint64, error)
	// GetLockedPositions retrieves non-zero locked positions for an account
	GetLockedPositions(ctx context.Context, accountAddress string, page Pagination) ([]schema.LockedPosition, uint64, error)

	// UpsertOrder merges an order keyed by (exchange_address, order_id)
	UpsertOrder(ctx context.Context, order *schema.Order) error
	// CancelOrder marks an order cancelled
	CancelOrder(ctx context.Context, exchangeAddress string, orderID int64) error
	// UpsertAgreement merges an agreement keyed by
	// (exchange_address, order_id, agreement_id)
	UpsertAgreement(ctx context.Context, agreement *schema.Agreement) error
	// SetAgreementStatus transitions an agreement's settlement state
	SetAgreementStatus(ctx context.Context, exchangeAddress string, orderID, agreementID int64, status schema.AgreementStatus, settledAt *time.Time) error
	// GetOrderBook returns the resting orders on the requested side,
	// net of pending agreement amounts, best price first
	GetOrderBook(ctx context.Context, input OrderBookInput) ([]OrderBookEntry, error)
	// GetLastPrice returns the price of the most recent settled agreement
	// for a token, 0 when the token has never traded
	GetLastPrice(ctx context.Context, tokenAddress string) (int64, error)
	// GetTick returns settled agreements for a token, most recent first
	GetTick(ctx context.Context, tokenAddress string, page Pagination) ([]schema.Agreement, uint64, error)

	// InsertNotifications inserts feed rows, silently skipping ids already
	// present so redelivered events stay idempotent
	InsertNotifications(ctx context.Context, notifications []*schema.Notification) error
	// GetNotifications retrieves the non-deleted feed for an address
	GetNotifications(ctx context.Context, filter NotificationQueryFilter) ([]schema.Notification, uint64, error)
	// CountNotifications returns total and unread counters for an address
	CountNotifications(ctx context.Context, address string) (NotificationCounts, error)
	// MarkAllNotificationsRead flags every notification of an address read
	MarkAllNotificationsRead(ctx context.Context, address string) error
	// UpdateNotification applies flag changes to one notification owned by
	// the address, returning domain.ErrDataNotExists when missing
	UpdateNotification(ctx context.Context, notificationID, address string, input UpdateNotificationInput) (*schema.Notification, error)
	// DeleteNotification soft-deletes one notification owned by the address
	DeleteNotification(ctx context.Context, notificationID, address string) error

	// SaveBlockBatch persists a contiguous range of blocks and their
	// transactions together with the advanced cursor in one transaction
	SaveBlockBatch(ctx context.Context, blocks []*schema.BlockData, txs []*schema.TxData, cursorName string, cursor uint64) error
	// CountBlocks returns the number of explorer block rows matching the
	// filter, ignoring pagination
	CountBlocks(ctx context.Context, filter BlockQueryFilter) (uint64, error)
	// CountTransactions returns the number of explorer transaction rows
	// matching the filter, ignoring pagination
	CountTransactions(ctx context.Context, filter TxQueryFilter) (uint64, error)
	// GetBlocks retrieves explorer block rows matching the filter
	GetBlocks(ctx context.Context, filter BlockQueryFilter) ([]schema.BlockData, uint64, error)
	// GetTransactions retrieves explorer transaction rows matching the filter
	GetTransactions(ctx context.Context, filter TxQueryFilter) ([]schema.TxData, uint64, error)
	// GetLatestBlockNumber returns the highest indexed block number, 0 when
	// no blocks are indexed yet
	GetLatestBlockNumber(ctx context.Context) (uint64, error)

	// GetSyncCursor retrieves the resume point for a worker, 0 when unset
	GetSyncCursor(ctx context.Context, name string) (uint64, error)
	// SetSyncCursor stores the resume point for a worker
	SetSyncCursor(ctx context.Context, name string, blockNumber uint64) error
}
