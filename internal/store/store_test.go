package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const (
	addrBond     = "0x1000000000000000000000000000000000000001"
	addrShare    = "0x1000000000000000000000000000000000000002"
	addrCoupon   = "0x1000000000000000000000000000000000000003"
	addrIssuer   = "0x2000000000000000000000000000000000000001"
	addrAccount  = "0x3000000000000000000000000000000000000001"
	addrAccount2 = "0x3000000000000000000000000000000000000002"
	addrExchange = "0x4000000000000000000000000000000000000001"
	addrLock     = "0x5000000000000000000000000000000000000001"
)

func buildTestListing(tokenAddress string, isPublic bool) *schema.Listing {
	max := int64(1000000)
	return &schema.Listing{
		TokenAddress:       tokenAddress,
		IsPublic:           isPublic,
		MaxHoldingQuantity: &max,
		MaxSellAmount:      &max,
		OwnerAddress:       addrIssuer,
	}
}

// listToken registers a listing together with its template so join-based
// queries see the token
func listToken(t *testing.T, s Store, tokenAddress string, template domain.TokenTemplate, isPublic bool) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.CreateListing(ctx, buildTestListing(tokenAddress, isPublic)))
	require.NoError(t, s.UpsertTokenListItem(ctx, &schema.TokenListItem{
		TokenAddress:  tokenAddress,
		TokenTemplate: template,
		OwnerAddress:  addrIssuer,
	}))
}

func buildTestBond(tokenAddress, name string) *schema.BondToken {
	bond := &schema.BondToken{
		FaceValue:      10000,
		InterestRate:   0.0602,
		RedemptionDate: "20301231",
		Transferable:   true,
	}
	bond.TokenAddress = tokenAddress
	bond.TokenTemplate = domain.TemplateStraightBond
	bond.OwnerAddress = addrIssuer
	bond.Name = name
	bond.Symbol = "BOND"
	bond.TotalSupply = 1000000
	bond.TradableExchange = addrExchange
	bond.Status = true
	bond.CreatedAt = time.Now().UTC()
	return bond
}

func buildTestOrder(orderID int64, isBuy bool, price, amount int64) *schema.Order {
	return &schema.Order{
		TokenAddress:    addrBond,
		ExchangeAddress: addrExchange,
		OrderID:         orderID,
		AccountAddress:  addrAccount,
		IsBuy:           isBuy,
		Price:           price,
		Amount:          amount,
		AgentAddress:    addrIssuer,
		OrderTimestamp:  time.Now().UTC(),
	}
}

func buildTestAgreement(orderID, agreementID int64, status schema.AgreementStatus, price, amount int64) *schema.Agreement {
	agreement := &schema.Agreement{
		TokenAddress:       addrBond,
		ExchangeAddress:    addrExchange,
		OrderID:            orderID,
		AgreementID:        agreementID,
		BuyerAddress:       addrAccount,
		SellerAddress:      addrAccount2,
		Price:              price,
		Amount:             amount,
		Status:             status,
		AgreementTimestamp: time.Now().UTC(),
	}
	if status == schema.AgreementStatusDone {
		settled := time.Now().UTC()
		agreement.SettlementTimestamp = &settled
	}
	return agreement
}

func buildTestNotification(id, address, notificationType string) *schema.Notification {
	return &schema.Notification{
		NotificationID:   id,
		NotificationType: notificationType,
		Priority:         domain.PriorityLow,
		Address:          address,
		Args:             schema.NotificationArgs{"value": float64(100)},
		Metainfo:         schema.NotificationArgs{"token_type": "IbetStraightBond"},
		BlockTimestamp:   time.Now().UTC(),
	}
}

// =============================================================================
// Listings
// =============================================================================

func testListings(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("create and get listing", func(t *testing.T) {
		require.NoError(t, s.CreateListing(ctx, buildTestListing(addrBond, true)))

		listing, err := s.GetListing(ctx, addrBond)
		require.NoError(t, err)
		require.NotNil(t, listing)
		assert.Equal(t, addrBond, listing.TokenAddress)
		assert.True(t, listing.IsPublic)
		assert.Equal(t, int64(1000000), *listing.MaxHoldingQuantity)
	})

	t.Run("duplicate listing returns conflict", func(t *testing.T) {
		err := s.CreateListing(ctx, buildTestListing(addrBond, false))
		assert.ErrorIs(t, err, domain.ErrDataConflict)
	})

	t.Run("get absent listing returns nil", func(t *testing.T) {
		listing, err := s.GetListing(ctx, addrCoupon)
		require.NoError(t, err)
		assert.Nil(t, listing)
	})

	t.Run("update listing", func(t *testing.T) {
		isPublic := false
		max := int64(500)
		require.NoError(t, s.UpdateListing(ctx, addrBond, UpdateListingInput{
			IsPublic:           &isPublic,
			MaxHoldingQuantity: &max,
		}))

		listing, err := s.GetListing(ctx, addrBond)
		require.NoError(t, err)
		assert.False(t, listing.IsPublic)
		assert.Equal(t, int64(500), *listing.MaxHoldingQuantity)
		// untouched field keeps its value
		assert.Equal(t, int64(1000000), *listing.MaxSellAmount)
	})

	t.Run("update absent listing returns not exists", func(t *testing.T) {
		isPublic := true
		err := s.UpdateListing(ctx, addrCoupon, UpdateListingInput{IsPublic: &isPublic})
		assert.ErrorIs(t, err, domain.ErrDataNotExists)
	})

	t.Run("filter listings", func(t *testing.T) {
		require.NoError(t, s.CreateListing(ctx, buildTestListing(addrShare, true)))

		isPublic := true
		listings, total, err := s.GetListings(ctx, ListingQueryFilter{IsPublic: &isPublic})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, listings, 1)
		assert.Equal(t, addrShare, listings[0].TokenAddress)
	})

	t.Run("delete listing removes template registration", func(t *testing.T) {
		require.NoError(t, s.UpsertTokenListItem(ctx, &schema.TokenListItem{
			TokenAddress:  addrShare,
			TokenTemplate: domain.TemplateShare,
		}))

		require.NoError(t, s.DeleteListing(ctx, addrShare))

		listing, err := s.GetListing(ctx, addrShare)
		require.NoError(t, err)
		assert.Nil(t, listing)

		template, err := s.GetTokenTemplate(ctx, addrShare)
		require.NoError(t, err)
		assert.Equal(t, domain.TokenTemplate(""), template)
	})

	t.Run("delete absent listing returns not exists", func(t *testing.T) {
		err := s.DeleteListing(ctx, addrShare)
		assert.ErrorIs(t, err, domain.ErrDataNotExists)
	})
}

// =============================================================================
// Token details
// =============================================================================

func testTokenDetails(t *testing.T, s Store) {
	ctx := context.Background()

	listToken(t, s, addrBond, domain.TemplateStraightBond, true)

	t.Run("upsert and read back a bond", func(t *testing.T) {
		skipped, err := s.UpsertTokenDetails(ctx, []schema.TokenDetail{buildTestBond(addrBond, "Sample Bond 2030")})
		require.NoError(t, err)
		assert.Empty(t, skipped)

		detail, err := s.GetTokenDetail(ctx, addrBond)
		require.NoError(t, err)
		require.NotNil(t, detail)
		bond, ok := detail.(*schema.BondToken)
		require.True(t, ok)
		assert.Equal(t, "Sample Bond 2030", bond.Name)
		assert.InDelta(t, 0.0602, bond.InterestRate, 1e-9)
	})

	t.Run("upsert replaces the previous snapshot", func(t *testing.T) {
		updated := buildTestBond(addrBond, "Sample Bond 2030 (2nd series)")
		updated.TotalSupply = 2000000

		_, err := s.UpsertTokenDetails(ctx, []schema.TokenDetail{updated})
		require.NoError(t, err)

		detail, err := s.GetTokenDetail(ctx, addrBond)
		require.NoError(t, err)
		assert.Equal(t, "Sample Bond 2030 (2nd series)", detail.Base().Name)
		assert.Equal(t, int64(2000000), detail.Base().TotalSupply)
	})

	t.Run("unlisted token is skipped, listed one still lands", func(t *testing.T) {
		skipped, err := s.UpsertTokenDetails(ctx, []schema.TokenDetail{
			buildTestBond(addrBond, "Sample Bond 2030"),
			buildTestBond(addrCoupon, "Orphaned"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{addrCoupon}, skipped)

		detail, err := s.GetTokenDetail(ctx, addrBond)
		require.NoError(t, err)
		assert.Equal(t, "Sample Bond 2030", detail.Base().Name)
	})

	t.Run("detail of unlisted token is nil", func(t *testing.T) {
		detail, err := s.GetTokenDetail(ctx, addrCoupon)
		require.NoError(t, err)
		assert.Nil(t, detail)
	})

	t.Run("list bonds with filter and pagination", func(t *testing.T) {
		status := true
		limit := 10
		bonds, total, err := s.ListBondTokens(ctx, TokenQueryFilter{
			Status:     &status,
			SortItem:   "name",
			Pagination: Pagination{Limit: &limit},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, bonds, 1)
		assert.Equal(t, addrBond, bonds[0].TokenAddress)
	})

	t.Run("list tokens by owner", func(t *testing.T) {
		details, err := s.ListTokensByOwner(ctx, addrIssuer)
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, addrBond, details[0].Address())
	})

	t.Run("public listings join the template registry", func(t *testing.T) {
		listed, err := s.GetPublicListings(ctx, domain.TemplateStraightBond)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, addrBond, listed[0].Listing.TokenAddress)
		assert.Equal(t, domain.TemplateStraightBond, listed[0].Template)
	})
}

func testPagination(t *testing.T, s Store) {
	ctx := context.Background()

	// five bonds sharing one name, so the primary sort column alone cannot
	// order them
	addresses := make([]string, 0, 5)
	details := make([]schema.TokenDetail, 0, 5)
	for i := 0; i < 5; i++ {
		addr := fmt.Sprintf("0x%040x", 0xd000+i)
		listToken(t, s, addr, domain.TemplateStraightBond, true)
		details = append(details, buildTestBond(addr, "Serial Bond"))
		addresses = append(addresses, addr)
	}
	skipped, err := s.UpsertTokenDetails(ctx, details)
	require.NoError(t, err)
	require.Empty(t, skipped)

	listPage := func(offset, limit int) []string {
		bonds, total, err := s.ListBondTokens(ctx, TokenQueryFilter{
			SortItem:   "name",
			Pagination: Pagination{Offset: &offset, Limit: &limit},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(5), total)

		page := make([]string, 0, len(bonds))
		for _, b := range bonds {
			page = append(page, b.TokenAddress)
		}
		return page
	}

	t.Run("pages over duplicate sort values are disjoint and contiguous", func(t *testing.T) {
		all, _, err := s.ListBondTokens(ctx, TokenQueryFilter{SortItem: "name"})
		require.NoError(t, err)
		require.Len(t, all, 5)

		var walked []string
		walked = append(walked, listPage(0, 2)...)
		walked = append(walked, listPage(2, 2)...)
		walked = append(walked, listPage(4, 2)...)

		unpaged := make([]string, 0, len(all))
		for _, b := range all {
			unpaged = append(unpaged, b.TokenAddress)
		}
		assert.Equal(t, unpaged, walked)
		assert.ElementsMatch(t, addresses, walked)
	})
}

// =============================================================================
// Positions
// =============================================================================

func testPositions(t *testing.T, s Store) {
	ctx := context.Background()

	listToken(t, s, addrBond, domain.TemplateStraightBond, true)

	t.Run("upsert and read positions", func(t *testing.T) {
		require.NoError(t, s.UpsertPositions(ctx, []*schema.Position{
			{TokenAddress: addrBond, AccountAddress: addrAccount, Balance: 100, Modified: time.Now().UTC()},
			{TokenAddress: addrBond, AccountAddress: addrAccount2, Balance: 0, ExchangeBalance: 50, Modified: time.Now().UTC()},
		}))

		positions, total, err := s.GetPositions(ctx, addrAccount, Pagination{})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, positions, 1)
		assert.Equal(t, int64(100), positions[0].Balance)
		assert.Equal(t, domain.TemplateStraightBond, positions[0].TokenTemplate)
	})

	t.Run("upsert overwrites the snapshot", func(t *testing.T) {
		require.NoError(t, s.UpsertPositions(ctx, []*schema.Position{
			{TokenAddress: addrBond, AccountAddress: addrAccount, Balance: 75, ExchangeCommitment: 25, Modified: time.Now().UTC()},
		}))

		positions, _, err := s.GetPositions(ctx, addrAccount, Pagination{})
		require.NoError(t, err)
		require.Len(t, positions, 1)
		assert.Equal(t, int64(75), positions[0].Balance)
		assert.Equal(t, int64(25), positions[0].ExchangeCommitment)
	})

	t.Run("zero position drops out of the listing", func(t *testing.T) {
		require.NoError(t, s.UpsertPositions(ctx, []*schema.Position{
			{TokenAddress: addrBond, AccountAddress: addrAccount, Balance: 0, Modified: time.Now().UTC()},
		}))

		positions, total, err := s.GetPositions(ctx, addrAccount, Pagination{})
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)
		assert.Empty(t, positions)
	})

	t.Run("locked positions", func(t *testing.T) {
		require.NoError(t, s.UpsertLockedPositions(ctx, []*schema.LockedPosition{
			{TokenAddress: addrBond, LockAddress: addrLock, AccountAddress: addrAccount, Value: 30, Modified: time.Now().UTC()},
		}))

		locked, total, err := s.GetLockedPositions(ctx, addrAccount, Pagination{})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, locked, 1)
		assert.Equal(t, int64(30), locked[0].Value)

		// unlocking everything removes the row from the listing
		require.NoError(t, s.UpsertLockedPositions(ctx, []*schema.LockedPosition{
			{TokenAddress: addrBond, LockAddress: addrLock, AccountAddress: addrAccount, Value: 0, Modified: time.Now().UTC()},
		}))
		locked, _, err = s.GetLockedPositions(ctx, addrAccount, Pagination{})
		require.NoError(t, err)
		assert.Empty(t, locked)
	})
}

// =============================================================================
// Orders and agreements
// =============================================================================

func testOrderBook(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("order book returns the opposite side, best price first", func(t *testing.T) {
		// resting sell orders at 102 and 101
		require.NoError(t, s.UpsertOrder(ctx, buildTestOrder(1, false, 102, 100)))
		require.NoError(t, s.UpsertOrder(ctx, buildTestOrder(2, false, 101, 50)))
		// resting buy order, must not show up for a buyer
		require.NoError(t, s.UpsertOrder(ctx, buildTestOrder(3, true, 99, 10)))

		book, err := s.GetOrderBook(ctx, OrderBookInput{
			TokenAddress:    addrBond,
			ExchangeAddress: addrExchange,
			IsBuy:           true,
		})
		require.NoError(t, err)
		require.Len(t, book, 2)
		assert.Equal(t, int64(101), book[0].Price)
		assert.Equal(t, int64(102), book[1].Price)
	})

	t.Run("pending agreements reduce the resting amount", func(t *testing.T) {
		require.NoError(t, s.UpsertAgreement(ctx, buildTestAgreement(1, 1, schema.AgreementStatusPending, 102, 40)))

		book, err := s.GetOrderBook(ctx, OrderBookInput{
			TokenAddress:    addrBond,
			ExchangeAddress: addrExchange,
			IsBuy:           true,
		})
		require.NoError(t, err)
		require.Len(t, book, 2)
		assert.Equal(t, int64(60), book[1].Amount)
	})

	t.Run("fully agreed orders drop out", func(t *testing.T) {
		require.NoError(t, s.UpsertAgreement(ctx, buildTestAgreement(2, 1, schema.AgreementStatusPending, 101, 50)))

		book, err := s.GetOrderBook(ctx, OrderBookInput{
			TokenAddress:    addrBond,
			ExchangeAddress: addrExchange,
			IsBuy:           true,
		})
		require.NoError(t, err)
		require.Len(t, book, 1)
		assert.Equal(t, int64(1), book[0].OrderID)
	})

	t.Run("cancelled agreements free the amount again", func(t *testing.T) {
		require.NoError(t, s.SetAgreementStatus(ctx, addrExchange, 2, 1, schema.AgreementStatusCanceled, nil))

		book, err := s.GetOrderBook(ctx, OrderBookInput{
			TokenAddress:    addrBond,
			ExchangeAddress: addrExchange,
			IsBuy:           true,
		})
		require.NoError(t, err)
		assert.Len(t, book, 2)
	})

	t.Run("cancelled orders drop out", func(t *testing.T) {
		require.NoError(t, s.CancelOrder(ctx, addrExchange, 2))

		book, err := s.GetOrderBook(ctx, OrderBookInput{
			TokenAddress:    addrBond,
			ExchangeAddress: addrExchange,
			IsBuy:           true,
		})
		require.NoError(t, err)
		require.Len(t, book, 1)
		assert.Equal(t, int64(1), book[0].OrderID)
	})

	t.Run("own orders are excluded on request", func(t *testing.T) {
		exclude := addrAccount
		book, err := s.GetOrderBook(ctx, OrderBookInput{
			TokenAddress:    addrBond,
			ExchangeAddress: addrExchange,
			IsBuy:           true,
			ExcludeAccount:  &exclude,
		})
		require.NoError(t, err)
		assert.Empty(t, book)
	})
}

func testMarketHistory(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("last price of an untraded token is zero", func(t *testing.T) {
		price, err := s.GetLastPrice(ctx, addrBond)
		require.NoError(t, err)
		assert.Equal(t, int64(0), price)
	})

	t.Run("last price tracks the latest settlement", func(t *testing.T) {
		first := buildTestAgreement(1, 1, schema.AgreementStatusDone, 100, 10)
		earlier := time.Now().UTC().Add(-time.Hour)
		first.SettlementTimestamp = &earlier
		require.NoError(t, s.UpsertAgreement(ctx, first))
		require.NoError(t, s.UpsertAgreement(ctx, buildTestAgreement(2, 1, schema.AgreementStatusDone, 105, 20)))
		// pending agreements do not move the price
		require.NoError(t, s.UpsertAgreement(ctx, buildTestAgreement(3, 1, schema.AgreementStatusPending, 200, 5)))

		price, err := s.GetLastPrice(ctx, addrBond)
		require.NoError(t, err)
		assert.Equal(t, int64(105), price)
	})

	t.Run("tick lists settled trades most recent first", func(t *testing.T) {
		agreements, total, err := s.GetTick(ctx, addrBond, Pagination{})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, agreements, 2)
		assert.Equal(t, int64(105), agreements[0].Price)
		assert.Equal(t, int64(100), agreements[1].Price)
	})
}

// =============================================================================
// Notifications
// =============================================================================

func testNotifications(t *testing.T, s Store) {
	ctx := context.Background()

	ids := []string{
		"0x000000bc614e00001100000100",
		"0x000000bc614e00001100000200",
		"0x000000bc614f00000000000000",
	}

	t.Run("insert is idempotent on redelivery", func(t *testing.T) {
		require.NoError(t, s.InsertNotifications(ctx, []*schema.Notification{
			buildTestNotification(ids[0], addrAccount, "Transfer"),
			buildTestNotification(ids[1], addrAccount, "Transfer"),
			buildTestNotification(ids[2], addrAccount2, "Agree"),
		}))
		require.NoError(t, s.InsertNotifications(ctx, []*schema.Notification{
			buildTestNotification(ids[0], addrAccount, "Transfer"),
		}))

		counts, err := s.CountNotifications(ctx, addrAccount)
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts.Total)
		assert.Equal(t, int64(2), counts.Unread)
	})

	t.Run("feed is scoped to the address and ordered by chain position", func(t *testing.T) {
		notifications, total, err := s.GetNotifications(ctx, NotificationQueryFilter{
			Address:   addrAccount,
			SortOrder: SortDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		require.Len(t, notifications, 2)
		assert.Equal(t, ids[1], notifications[0].NotificationID)
		assert.Equal(t, ids[0], notifications[1].NotificationID)
	})

	t.Run("filter by type", func(t *testing.T) {
		transferType := "Agree"
		notifications, _, err := s.GetNotifications(ctx, NotificationQueryFilter{
			Address:          addrAccount,
			NotificationType: &transferType,
		})
		require.NoError(t, err)
		assert.Empty(t, notifications)
	})

	t.Run("update flags one entry", func(t *testing.T) {
		isRead := true
		notification, err := s.UpdateNotification(ctx, ids[0], addrAccount, UpdateNotificationInput{IsRead: &isRead})
		require.NoError(t, err)
		assert.True(t, notification.IsRead)

		counts, err := s.CountNotifications(ctx, addrAccount)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts.Unread)
	})

	t.Run("update is fenced to the owner", func(t *testing.T) {
		isRead := true
		_, err := s.UpdateNotification(ctx, ids[0], addrAccount2, UpdateNotificationInput{IsRead: &isRead})
		assert.ErrorIs(t, err, domain.ErrDataNotExists)
	})

	t.Run("mark all read", func(t *testing.T) {
		require.NoError(t, s.MarkAllNotificationsRead(ctx, addrAccount))

		counts, err := s.CountNotifications(ctx, addrAccount)
		require.NoError(t, err)
		assert.Equal(t, int64(0), counts.Unread)
	})

	t.Run("soft delete removes the entry from feed and counters", func(t *testing.T) {
		require.NoError(t, s.DeleteNotification(ctx, ids[0], addrAccount))

		notifications, total, err := s.GetNotifications(ctx, NotificationQueryFilter{Address: addrAccount})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, notifications, 1)
		assert.Equal(t, ids[1], notifications[0].NotificationID)

		err = s.DeleteNotification(ctx, ids[0], addrAccount2)
		assert.ErrorIs(t, err, domain.ErrDataNotExists)
	})
}

// =============================================================================
// Explorer
// =============================================================================

func testBlockData(t *testing.T, s Store) {
	ctx := context.Background()

	blocks := make([]*schema.BlockData, 0, 5)
	txs := make([]*schema.TxData, 0, 5)
	to := addrBond
	for i := uint64(100); i < 105; i++ {
		blocks = append(blocks, &schema.BlockData{
			BlockNumber:      i,
			BlockHash:        fmt.Sprintf("0xblock%d", i),
			ParentHash:       fmt.Sprintf("0xblock%d", i-1),
			Timestamp:        time.Now().Unix(),
			TransactionCount: 1,
		})
		txs = append(txs, &schema.TxData{
			Hash:        fmt.Sprintf("0xtx%d", i),
			BlockNumber: i,
			BlockHash:   fmt.Sprintf("0xblock%d", i),
			FromAddress: addrAccount,
			ToAddress:   &to,
		})
	}

	t.Run("save batch advances the cursor atomically", func(t *testing.T) {
		require.NoError(t, s.SaveBlockBatch(ctx, blocks, txs, "block-sync", 104))

		cursor, err := s.GetSyncCursor(ctx, "block-sync")
		require.NoError(t, err)
		assert.Equal(t, uint64(104), cursor)

		latest, err := s.GetLatestBlockNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(104), latest)
	})

	t.Run("blocks filter by range", func(t *testing.T) {
		from, to := uint64(101), uint64(103)
		rows, total, err := s.GetBlocks(ctx, BlockQueryFilter{
			FromBlockNumber: &from,
			ToBlockNumber:   &to,
			SortOrder:       SortDesc,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, rows, 3)
		assert.Equal(t, uint64(103), rows[0].BlockNumber)
	})

	t.Run("transactions filter by sender", func(t *testing.T) {
		from := addrAccount
		rows, total, err := s.GetTransactions(ctx, TxQueryFilter{FromAddress: &from})
		require.NoError(t, err)
		assert.Equal(t, uint64(5), total)
		assert.Len(t, rows, 5)
	})

	t.Run("counts ignore pagination", func(t *testing.T) {
		from, to := uint64(101), uint64(103)
		limit := 1
		blockCount, err := s.CountBlocks(ctx, BlockQueryFilter{
			FromBlockNumber: &from,
			ToBlockNumber:   &to,
			Pagination:      Pagination{Limit: &limit},
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(3), blockCount)

		sender := addrAccount
		txCount, err := s.CountTransactions(ctx, TxQueryFilter{FromAddress: &sender})
		require.NoError(t, err)
		assert.Equal(t, uint64(5), txCount)
	})

	t.Run("re-saving a block is an upsert", func(t *testing.T) {
		require.NoError(t, s.SaveBlockBatch(ctx, blocks[:1], nil, "block-sync", 104))

		latest, err := s.GetLatestBlockNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(104), latest)
	})
}

func testSyncCursor(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("unset cursor reads as zero", func(t *testing.T) {
		cursor, err := s.GetSyncCursor(ctx, "event-emitter")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("set and advance", func(t *testing.T) {
		require.NoError(t, s.SetSyncCursor(ctx, "event-emitter", 500))
		require.NoError(t, s.SetSyncCursor(ctx, "event-emitter", 510))

		cursor, err := s.GetSyncCursor(ctx, "event-emitter")
		require.NoError(t, err)
		assert.Equal(t, uint64(510), cursor)
	})

	t.Run("cursors are independent per worker", func(t *testing.T) {
		require.NoError(t, s.SetSyncCursor(ctx, "block-sync", 9000))

		cursor, err := s.GetSyncCursor(ctx, "event-emitter")
		require.NoError(t, err)
		assert.Equal(t, uint64(510), cursor)
	})
}

// RunStoreTests runs the full store suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Listings", testListings},
		{"TokenDetails", testTokenDetails},
		{"Pagination", testPagination},
		{"Positions", testPositions},
		{"OrderBook", testOrderBook},
		{"MarketHistory", testMarketHistory},
		{"Notifications", testNotifications},
		{"BlockData", testBlockData},
		{"SyncCursor", testSyncCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
