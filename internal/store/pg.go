package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. If any of the pool settings are zero, reasonable
// defaults are used:
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// calculateSafeBatchSize computes a bulk-insert batch size that stays under
// PostgreSQL's 65535 extended-protocol parameter limit. Each record consumes
// one parameter per field, and a headroom of 1000 covers the ON CONFLICT
// clause and GORM bookkeeping.
func calculateSafeBatchSize(totalRecords, fieldsPerRecord int) int {
	const maxParams = 65535
	const headroom = 1000

	if fieldsPerRecord <= 0 {
		fieldsPerRecord = 1
	}
	safe := (maxParams - headroom) / fieldsPerRecord
	if safe < 1 {
		safe = 1
	}
	if totalRecords > 0 && totalRecords < safe {
		return totalRecords
	}
	return safe
}

func applyPagination(db *gorm.DB, page Pagination) *gorm.DB {
	if page.Offset != nil {
		db = db.Offset(*page.Offset)
	}
	if page.Limit != nil {
		db = db.Limit(*page.Limit)
	}
	return db
}

func orderDirection(o SortOrder) string {
	if o == SortDesc {
		return "DESC"
	}
	return "ASC"
}

// CreateListing inserts a new listing, returning domain.ErrDataConflict when
// the token address is already listed
func (s *pgStore) CreateListing(ctx context.Context, listing *schema.Listing) error {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_address"}},
			DoNothing: true,
		}).
		Create(listing)
	if result.Error != nil {
		return fmt.Errorf("failed to create listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDataConflict
	}
	return nil
}

// GetListing retrieves a listing by token address, nil when absent
func (s *pgStore) GetListing(ctx context.Context, tokenAddress string) (*schema.Listing, error) {
	var listing schema.Listing
	err := s.db.WithContext(ctx).Where("token_address = ?", tokenAddress).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// GetListings retrieves listings matching the filter, plus the unpaged total
func (s *pgStore) GetListings(ctx context.Context, filter ListingQueryFilter) ([]schema.Listing, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Listing{})
	if filter.TokenAddress != nil {
		query = query.Where("token_address = ?", *filter.TokenAddress)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	var listings []schema.Listing
	err := applyPagination(query.Order("id ASC"), filter.Pagination).Find(&listings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get listings: %w", err)
	}
	return listings, uint64(total), nil
}

// UpdateListing applies the non-nil fields of input to an existing listing
func (s *pgStore) UpdateListing(ctx context.Context, tokenAddress string, input UpdateListingInput) error {
	updates := map[string]interface{}{}
	if input.IsPublic != nil {
		updates["is_public"] = *input.IsPublic
	}
	if input.MaxHoldingQuantity != nil {
		updates["max_holding_quantity"] = *input.MaxHoldingQuantity
	}
	if input.MaxSellAmount != nil {
		updates["max_sell_amount"] = *input.MaxSellAmount
	}
	if input.OwnerAddress != nil {
		updates["owner_address"] = *input.OwnerAddress
	}
	if len(updates) == 0 {
		return nil
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Listing{}).
		Where("token_address = ?", tokenAddress).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDataNotExists
	}
	return nil
}

// DeleteListing removes a listing and its token_list registration
func (s *pgStore) DeleteListing(ctx context.Context, tokenAddress string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("token_address = ?", tokenAddress).Delete(&schema.Listing{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete listing: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrDataNotExists
		}
		if err := tx.Where("token_address = ?", tokenAddress).Delete(&schema.TokenListItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete token list item: %w", err)
		}
		return nil
	})
}

// UpsertTokenListItem records the template registration for a token
func (s *pgStore) UpsertTokenListItem(ctx context.Context, item *schema.TokenListItem) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_address"}},
			UpdateAll: true,
		}).
		Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to upsert token list item: %w", err)
	}
	return nil
}

// GetListedTokenAddresses returns every listed token address
func (s *pgStore) GetListedTokenAddresses(ctx context.Context) ([]string, error) {
	var addresses []string
	err := s.db.WithContext(ctx).
		Model(&schema.Listing{}).
		Order("id ASC").
		Pluck("token_address", &addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get listed token addresses: %w", err)
	}
	return addresses, nil
}

// GetPublicListings returns public listings registered under the given
// template, ordered by listing id
func (s *pgStore) GetPublicListings(ctx context.Context, template domain.TokenTemplate) ([]ListedToken, error) {
	var rows []struct {
		schema.Listing
		TokenTemplate domain.TokenTemplate `gorm:"column:token_template"`
	}
	err := s.db.WithContext(ctx).
		Table("listing").
		Select("listing.*, token_list.token_template").
		Joins("JOIN token_list ON token_list.token_address = listing.token_address").
		Where("listing.is_public = ? AND token_list.token_template = ?", true, template).
		Order("listing.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get public listings: %w", err)
	}

	listed := make([]ListedToken, 0, len(rows))
	for _, r := range rows {
		listed = append(listed, ListedToken{Listing: r.Listing, Template: r.TokenTemplate})
	}
	return listed, nil
}

// UpsertTokenDetails merges a batch of fetched token details in a single
// transaction. A token whose listing disappeared since the batch was read is
// skipped and reported back; any other failure rolls the whole batch back.
func (s *pgStore) UpsertTokenDetails(ctx context.Context, details []schema.TokenDetail) ([]string, error) {
	if len(details) == 0 {
		return nil, nil
	}

	var skipped []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, detail := range details {
			var count int64
			if err := tx.Model(&schema.Listing{}).
				Where("token_address = ?", detail.Address()).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check listing: %w", err)
			}
			if count == 0 {
				skipped = append(skipped, detail.Address())
				continue
			}

			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "token_address"}},
				UpdateAll: true,
			}).Create(detail).Error; err != nil {
				return fmt.Errorf("failed to upsert token detail %s: %w", detail.Address(), err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return skipped, nil
}

// GetTokenTemplate returns the registered template for a token, "" when the
// token is not listed
func (s *pgStore) GetTokenTemplate(ctx context.Context, tokenAddress string) (domain.TokenTemplate, error) {
	var item schema.TokenListItem
	err := s.db.WithContext(ctx).Where("token_address = ?", tokenAddress).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get token template: %w", err)
	}
	return item.TokenTemplate, nil
}

// GetTokenDetail retrieves the indexed detail row for a token, nil when absent
func (s *pgStore) GetTokenDetail(ctx context.Context, tokenAddress string) (schema.TokenDetail, error) {
	template, err := s.GetTokenTemplate(ctx, tokenAddress)
	if err != nil {
		return nil, err
	}

	var detail schema.TokenDetail
	switch template {
	case domain.TemplateStraightBond:
		detail = &schema.BondToken{}
	case domain.TemplateShare:
		detail = &schema.ShareToken{}
	case domain.TemplateMembership:
		detail = &schema.MembershipToken{}
	case domain.TemplateCoupon:
		detail = &schema.CouponToken{}
	default:
		return nil, nil
	}

	err = s.db.WithContext(ctx).Where("token_address = ?", tokenAddress).First(detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token detail: %w", err)
	}
	return detail, nil
}

// tokenSortColumns whitelists the sortable columns of the token listings.
// Anything else falls back to created_at.
var tokenSortColumns = map[string]bool{
	"token_address": true,
	"owner_address": true,
	"company_name":  true,
	"name":          true,
	"symbol":        true,
	"total_supply":  true,
	"created_at":    true,
}

// applyTokenFilter builds the shared WHERE/ORDER clause of the per-template
// token listings. offeringColumn names the template's offering flag column.
func applyTokenFilter(db *gorm.DB, filter TokenQueryFilter, offeringColumn string) *gorm.DB {
	if filter.Name != nil {
		db = db.Where("name LIKE ?", "%"+*filter.Name+"%")
	}
	if filter.OwnerAddress != nil {
		db = db.Where("owner_address = ?", *filter.OwnerAddress)
	}
	if filter.CompanyName != nil {
		db = db.Where("company_name LIKE ?", "%"+*filter.CompanyName+"%")
	}
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.Transferable != nil {
		db = db.Where("transferable = ?", *filter.Transferable)
	}
	if filter.IsOffering != nil && offeringColumn == "is_offering" {
		db = db.Where("is_offering = ?", *filter.IsOffering)
	}
	if filter.InitialOfferingStatus != nil && offeringColumn == "initial_offering_status" {
		db = db.Where("initial_offering_status = ?", *filter.InitialOfferingStatus)
	}
	if len(filter.Addresses) > 0 {
		db = db.Where("token_address IN ?", filter.Addresses)
	}
	return db
}

// applyTokenSort orders a token listing deterministically: the requested sort
// column first, token_address as the tie-break
func applyTokenSort(db *gorm.DB, filter TokenQueryFilter) *gorm.DB {
	column := filter.SortItem
	if !tokenSortColumns[column] {
		column = "created_at"
	}
	direction := orderDirection(filter.SortOrder)
	db = db.Order(fmt.Sprintf("%s %s", column, direction))
	if column != "token_address" {
		db = db.Order(fmt.Sprintf("token_address %s", direction))
	}
	return db
}

func listTokens[T any](ctx context.Context, db *gorm.DB, filter TokenQueryFilter, offeringColumn string) ([]T, uint64, error) {
	var model T
	query := applyTokenFilter(db.WithContext(ctx).Model(&model), filter, offeringColumn)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tokens: %w", err)
	}

	var tokens []T
	err := applyPagination(applyTokenSort(query, filter), filter.Pagination).Find(&tokens).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, uint64(total), nil
}

// ListBondTokens retrieves bond details matching the filter, plus the unpaged
// total
func (s *pgStore) ListBondTokens(ctx context.Context, filter TokenQueryFilter) ([]schema.BondToken, uint64, error) {
	return listTokens[schema.BondToken](ctx, s.db, filter, "is_offering")
}

func (s *pgStore) ListShareTokens(ctx context.Context, filter TokenQueryFilter) ([]schema.ShareToken, uint64, error) {
	return listTokens[schema.ShareToken](ctx, s.db, filter, "is_offering")
}

func (s *pgStore) ListMembershipTokens(ctx context.Context, filter TokenQueryFilter) ([]schema.MembershipToken, uint64, error) {
	return listTokens[schema.MembershipToken](ctx, s.db, filter, "initial_offering_status")
}

func (s *pgStore) ListCouponTokens(ctx context.Context, filter TokenQueryFilter) ([]schema.CouponToken, uint64, error) {
	return listTokens[schema.CouponToken](ctx, s.db, filter, "initial_offering_status")
}

// ListTokensByOwner retrieves every indexed token issued by an owner
func (s *pgStore) ListTokensByOwner(ctx context.Context, ownerAddress string) ([]schema.TokenDetail, error) {
	var details []schema.TokenDetail

	var bonds []schema.BondToken
	if err := s.db.WithContext(ctx).Where("owner_address = ?", ownerAddress).Order("created_at ASC").Find(&bonds).Error; err != nil {
		return nil, fmt.Errorf("failed to list bond tokens by owner: %w", err)
	}
	for i := range bonds {
		details = append(details, &bonds[i])
	}

	var shares []schema.ShareToken
	if err := s.db.WithContext(ctx).Where("owner_address = ?", ownerAddress).Order("created_at ASC").Find(&shares).Error; err != nil {
		return nil, fmt.Errorf("failed to list share tokens by owner: %w", err)
	}
	for i := range shares {
		details = append(details, &shares[i])
	}

	var memberships []schema.MembershipToken
	if err := s.db.WithContext(ctx).Where("owner_address = ?", ownerAddress).Order("created_at ASC").Find(&memberships).Error; err != nil {
		return nil, fmt.Errorf("failed to list membership tokens by owner: %w", err)
	}
	for i := range memberships {
		details = append(details, &memberships[i])
	}

	var coupons []schema.CouponToken
	if err := s.db.WithContext(ctx).Where("owner_address = ?", ownerAddress).Order("created_at ASC").Find(&coupons).Error; err != nil {
		return nil, fmt.Errorf("failed to list coupon tokens by owner: %w", err)
	}
	for i := range coupons {
		details = append(details, &coupons[i])
	}

	return details, nil
}

// UpsertPositions merges balance snapshots keyed by (token, account)
func (s *pgStore) UpsertPositions(ctx context.Context, positions []*schema.Position) error {
	if len(positions) == 0 {
		return nil
	}
	batchSize := calculateSafeBatchSize(len(positions), 6)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_address"}, {Name: "account_address"}},
			UpdateAll: true,
		}).
		CreateInBatches(positions, batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert positions: %w", err)
	}
	return nil
}

// UpsertLockedPositions merges locked-value snapshots keyed by
// (token, lock, account)
func (s *pgStore) UpsertLockedPositions(ctx context.Context, positions []*schema.LockedPosition) error {
	if len(positions) == 0 {
		return nil
	}
	batchSize := calculateSafeBatchSize(len(positions), 5)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_address"}, {Name: "lock_address"}, {Name: "account_address"}},
			UpdateAll: true,
		}).
		CreateInBatches(positions, batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert locked positions: %w", err)
	}
	return nil
}

// GetPositions retrieves non-zero positions for an account joined with the
// token template, plus the unpaged total
func (s *pgStore) GetPositions(ctx context.Context, accountAddress string, page Pagination) ([]PositionWithToken, uint64, error) {
	query := s.db.WithContext(ctx).
		Table("position").
		Joins("JOIN token_list ON token_list.token_address = position.token_address").
		Where("position.account_address = ?", accountAddress).
		Where("position.balance > 0 OR position.exchange_balance > 0 OR position.exchange_commitment > 0")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count positions: %w", err)
	}

	var positions []PositionWithToken
	err := applyPagination(query.
		Select("position.*, token_list.token_template").
		Order("position.token_address ASC"), page).
		Scan(&positions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get positions: %w", err)
	}
	return positions, uint64(total), nil
}

// GetLockedPositions retrieves non-zero locked positions for an account
func (s *pgStore) GetLockedPositions(ctx context.Context, accountAddress string, page Pagination) ([]schema.LockedPosition, uint64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.LockedPosition{}).
		Where("account_address = ? AND value > 0", accountAddress)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count locked positions: %w", err)
	}

	var positions []schema.LockedPosition
	err := applyPagination(query.Order("token_address ASC, lock_address ASC"), page).Find(&positions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get locked positions: %w", err)
	}
	return positions, uint64(total), nil
}

// UpsertOrder merges an order keyed by (exchange_address, order_id)
func (s *pgStore) UpsertOrder(ctx context.Context, order *schema.Order) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "exchange_address"}, {Name: "order_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"token_address", "account_address", "counterpart_address",
				"is_buy", "price", "amount", "agent_address", "is_cancelled",
				"order_timestamp",
			}),
		}).
		Create(order).Error
	if err != nil {
		return fmt.Errorf("failed to upsert order: %w", err)
	}
	return nil
}

// CancelOrder marks an order cancelled
func (s *pgStore) CancelOrder(ctx context.Context, exchangeAddress string, orderID int64) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Order{}).
		Where("exchange_address = ? AND order_id = ?", exchangeAddress, orderID).
		Update("is_cancelled", true).Error
	if err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	return nil
}

// UpsertAgreement merges an agreement keyed by
// (exchange_address, order_id, agreement_id)
func (s *pgStore) UpsertAgreement(ctx context.Context, agreement *schema.Agreement) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "exchange_address"}, {Name: "order_id"}, {Name: "agreement_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"token_address", "buyer_address", "seller_address",
				"counterpart_address", "price", "amount", "status",
				"agreement_timestamp", "settlement_timestamp",
			}),
		}).
		Create(agreement).Error
	if err != nil {
		return fmt.Errorf("failed to upsert agreement: %w", err)
	}
	return nil
}

// SetAgreementStatus transitions an agreement's settlement state
func (s *pgStore) SetAgreementStatus(ctx context.Context, exchangeAddress string, orderID, agreementID int64, status schema.AgreementStatus, settledAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if settledAt != nil {
		updates["settlement_timestamp"] = *settledAt
	}
	err := s.db.WithContext(ctx).
		Model(&schema.Agreement{}).
		Where("exchange_address = ? AND order_id = ? AND agreement_id = ?", exchangeAddress, orderID, agreementID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to set agreement status: %w", err)
	}
	return nil
}

// GetOrderBook returns the resting orders on the requested side, net of
// pending agreement amounts, best price first. Asking to buy returns resting
// sell orders sorted cheapest first; asking to sell returns resting buy
// orders sorted highest first.
func (s *pgStore) GetOrderBook(ctx context.Context, input OrderBookInput) ([]OrderBookEntry, error) {
	query := s.db.WithContext(ctx).
		Table(`"order"`).
		Select(`"order".exchange_address, "order".order_id, "order".price, `+
			`"order".amount - COALESCE((`+
			`SELECT SUM(agreement.amount) FROM agreement `+
			`WHERE agreement.exchange_address = "order".exchange_address `+
			`AND agreement.order_id = "order".order_id `+
			`AND agreement.status <> ?`+
			`), 0) AS amount, "order".account_address`, schema.AgreementStatusCanceled).
		Where(`"order".token_address = ?`, input.TokenAddress).
		Where(`"order".is_cancelled = ?`, false).
		Where(`"order".is_buy = ?`, !input.IsBuy)
	if input.ExchangeAddress != "" {
		query = query.Where(`"order".exchange_address = ?`, input.ExchangeAddress)
	}
	if input.ExcludeAccount != nil {
		query = query.Where(`"order".account_address <> ?`, *input.ExcludeAccount)
	}
	if input.IsBuy {
		query = query.Order(`"order".price ASC, "order".order_id ASC`)
	} else {
		query = query.Order(`"order".price DESC, "order".order_id ASC`)
	}

	var entries []OrderBookEntry
	if err := query.Scan(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get order book: %w", err)
	}

	// Fully agreed orders net to zero remaining amount
	book := make([]OrderBookEntry, 0, len(entries))
	for _, e := range entries {
		if e.Amount > 0 {
			book = append(book, e)
		}
	}
	return book, nil
}

// GetLastPrice returns the price of the most recent settled agreement for a
// token, 0 when the token has never traded
func (s *pgStore) GetLastPrice(ctx context.Context, tokenAddress string) (int64, error) {
	var agreement schema.Agreement
	err := s.db.WithContext(ctx).
		Where("token_address = ? AND status = ?", tokenAddress, schema.AgreementStatusDone).
		Order("settlement_timestamp DESC, id DESC").
		First(&agreement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get last price: %w", err)
	}
	return agreement.Price, nil
}

// GetTick returns settled agreements for a token, most recent first
func (s *pgStore) GetTick(ctx context.Context, tokenAddress string, page Pagination) ([]schema.Agreement, uint64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.Agreement{}).
		Where("token_address = ? AND status = ?", tokenAddress, schema.AgreementStatusDone)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count agreements: %w", err)
	}

	var agreements []schema.Agreement
	err := applyPagination(query.Order("settlement_timestamp DESC, id DESC"), page).Find(&agreements).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get tick: %w", err)
	}
	return agreements, uint64(total), nil
}

// InsertNotifications inserts feed rows, silently skipping ids already
// present so redelivered events stay idempotent
func (s *pgStore) InsertNotifications(ctx context.Context, notifications []*schema.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	batchSize := calculateSafeBatchSize(len(notifications), 12)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "notification_id"}},
			DoNothing: true,
		}).
		CreateInBatches(notifications, batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to insert notifications: %w", err)
	}
	return nil
}

// GetNotifications retrieves the non-deleted feed for an address. The
// notification id encodes (block, tx index, log index), so ordering by it
// orders by chain position.
func (s *pgStore) GetNotifications(ctx context.Context, filter NotificationQueryFilter) ([]schema.Notification, uint64, error) {
	query := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("address = ? AND is_deleted = ?", filter.Address, false)
	if filter.NotificationType != nil {
		query = query.Where("notification_type = ?", *filter.NotificationType)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", *filter.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notifications []schema.Notification
	err := applyPagination(query.
		Order(fmt.Sprintf("notification_id %s", orderDirection(filter.SortOrder))), filter.Pagination).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}
	return notifications, uint64(total), nil
}

// CountNotifications returns total and unread counters for an address
func (s *pgStore) CountNotifications(ctx context.Context, address string) (NotificationCounts, error) {
	var counts NotificationCounts
	base := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("address = ? AND is_deleted = ?", address, false)

	if err := base.Session(&gorm.Session{}).Count(&counts.Total).Error; err != nil {
		return counts, fmt.Errorf("failed to count notifications: %w", err)
	}
	if err := base.Session(&gorm.Session{}).Where("is_read = ?", false).Count(&counts.Unread).Error; err != nil {
		return counts, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return counts, nil
}

// MarkAllNotificationsRead flags every notification of an address read
func (s *pgStore) MarkAllNotificationsRead(ctx context.Context, address string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("address = ? AND is_read = ?", address, false).
		Update("is_read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// UpdateNotification applies flag changes to one notification owned by the
// address, returning domain.ErrDataNotExists when missing
func (s *pgStore) UpdateNotification(ctx context.Context, notificationID, address string, input UpdateNotificationInput) (*schema.Notification, error) {
	updates := map[string]interface{}{}
	if input.IsRead != nil {
		updates["is_read"] = *input.IsRead
	}
	if input.IsFlagged != nil {
		updates["is_flagged"] = *input.IsFlagged
	}
	if input.IsDeleted != nil {
		updates["is_deleted"] = *input.IsDeleted
		if *input.IsDeleted {
			updates["deleted_at"] = time.Now().UTC()
		} else {
			updates["deleted_at"] = nil
		}
	}

	var notification schema.Notification
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			result := tx.Model(&schema.Notification{}).
				Where("notification_id = ? AND address = ?", notificationID, address).
				Updates(updates)
			if result.Error != nil {
				return fmt.Errorf("failed to update notification: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return domain.ErrDataNotExists
			}
		}
		err := tx.Where("notification_id = ? AND address = ?", notificationID, address).
			First(&notification).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDataNotExists
			}
			return fmt.Errorf("failed to get notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// DeleteNotification soft-deletes one notification owned by the address
func (s *pgStore) DeleteNotification(ctx context.Context, notificationID, address string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("notification_id = ? AND address = ?", notificationID, address).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDataNotExists
	}
	return nil
}

// SaveBlockBatch persists a contiguous range of blocks and their transactions
// together with the advanced cursor in one transaction
func (s *pgStore) SaveBlockBatch(ctx context.Context, blocks []*schema.BlockData, txs []*schema.TxData, cursorName string, cursor uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(blocks) > 0 {
			batchSize := calculateSafeBatchSize(len(blocks), 11)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "block_number"}},
				UpdateAll: true,
			}).CreateInBatches(blocks, batchSize).Error; err != nil {
				return fmt.Errorf("failed to upsert blocks: %w", err)
			}
		}
		if len(txs) > 0 {
			batchSize := calculateSafeBatchSize(len(txs), 12)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "hash"}},
				UpdateAll: true,
			}).CreateInBatches(txs, batchSize).Error; err != nil {
				return fmt.Errorf("failed to upsert transactions: %w", err)
			}
		}
		return setSyncCursor(tx, cursorName, cursor)
	})
}

func (s *pgStore) filteredBlocks(ctx context.Context, filter BlockQueryFilter) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&schema.BlockData{})
	if filter.FromBlockNumber != nil {
		query = query.Where("block_number >= ?", *filter.FromBlockNumber)
	}
	if filter.ToBlockNumber != nil {
		query = query.Where("block_number <= ?", *filter.ToBlockNumber)
	}
	return query
}

func (s *pgStore) filteredTransactions(ctx context.Context, filter TxQueryFilter) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&schema.TxData{})
	if filter.BlockNumber != nil {
		query = query.Where("block_number = ?", *filter.BlockNumber)
	}
	if filter.FromAddress != nil {
		query = query.Where("from_address = ?", *filter.FromAddress)
	}
	if filter.ToAddress != nil {
		query = query.Where("to_address = ?", *filter.ToAddress)
	}
	return query
}

// CountBlocks returns the number of explorer block rows matching the filter,
// ignoring pagination
func (s *pgStore) CountBlocks(ctx context.Context, filter BlockQueryFilter) (uint64, error) {
	var total int64
	if err := s.filteredBlocks(ctx, filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count blocks: %w", err)
	}
	return uint64(total), nil
}

// CountTransactions returns the number of explorer transaction rows matching
// the filter, ignoring pagination
func (s *pgStore) CountTransactions(ctx context.Context, filter TxQueryFilter) (uint64, error) {
	var total int64
	if err := s.filteredTransactions(ctx, filter).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return uint64(total), nil
}

// GetBlocks retrieves explorer block rows matching the filter
func (s *pgStore) GetBlocks(ctx context.Context, filter BlockQueryFilter) ([]schema.BlockData, uint64, error) {
	query := s.filteredBlocks(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count blocks: %w", err)
	}

	var blocks []schema.BlockData
	err := applyPagination(query.
		Order(fmt.Sprintf("block_number %s", orderDirection(filter.SortOrder))), filter.Pagination).
		Find(&blocks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get blocks: %w", err)
	}
	return blocks, uint64(total), nil
}

// GetTransactions retrieves explorer transaction rows matching the filter
func (s *pgStore) GetTransactions(ctx context.Context, filter TxQueryFilter) ([]schema.TxData, uint64, error) {
	query := s.filteredTransactions(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	direction := orderDirection(filter.SortOrder)
	var transactions []schema.TxData
	err := applyPagination(query.
		Order(fmt.Sprintf("block_number %s, transaction_index %s", direction, direction)), filter.Pagination).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, uint64(total), nil
}

// GetLatestBlockNumber returns the highest indexed block number, 0 when no
// blocks are indexed yet
func (s *pgStore) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	var latest *uint64
	err := s.db.WithContext(ctx).
		Model(&schema.BlockData{}).
		Select("MAX(block_number)").
		Scan(&latest).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}
	if latest == nil {
		return 0, nil
	}
	return *latest, nil
}

// GetSyncCursor retrieves the resume point for a worker, 0 when unset
func (s *pgStore) GetSyncCursor(ctx context.Context, name string) (uint64, error) {
	var cursor schema.SyncCursor
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&cursor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get sync cursor: %w", err)
	}
	return cursor.BlockNumber, nil
}

// SetSyncCursor stores the resume point for a worker
func (s *pgStore) SetSyncCursor(ctx context.Context, name string, blockNumber uint64) error {
	return setSyncCursor(s.db.WithContext(ctx), name, blockNumber)
}

func setSyncCursor(db *gorm.DB, name string, blockNumber uint64) error {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"block_number"}),
	}).Create(&schema.SyncCursor{Name: name, BlockNumber: blockNumber}).Error
	if err != nil {
		return fmt.Errorf("failed to set sync cursor: %w", err)
	}
	return nil
}
