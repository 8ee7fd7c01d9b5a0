package rest

import (
	"time"

	"github.com/ibet-fin/ibet-indexer/internal/company"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"
)

// ResultSet describes the window a list response was cut from
type ResultSet struct {
	Count  int    `json:"count"`
	Offset *int   `json:"offset"`
	Limit  *int   `json:"limit"`
	Total  uint64 `json:"total"`
}

// ListResponse pairs rows with their result set
type ListResponse struct {
	ResultSet ResultSet   `json:"result_set"`
	Items     interface{} `json:"items"`
}

func newListResponse(items interface{}, count int, page store.Pagination, total uint64) ListResponse {
	return ListResponse{
		ResultSet: ResultSet{
			Count:  count,
			Offset: page.Offset,
			Limit:  page.Limit,
			Total:  total,
		},
		Items: items,
	}
}

// CompanyDTO is one entry of the company directory
type CompanyDTO struct {
	Address       string `json:"address"`
	CorporateName string `json:"corporate_name"`
	RSAPublicKey  string `json:"rsa_publickey"`
	Homepage      string `json:"homepage,omitempty"`
}

func newCompanyDTO(c company.Company) CompanyDTO {
	return CompanyDTO{
		Address:       c.Address,
		CorporateName: c.CorporateName,
		RSAPublicKey:  c.RSAPublicKey,
		Homepage:      c.Homepage,
	}
}

// tokenBaseDTO holds the response fields shared by every token template
type tokenBaseDTO struct {
	TokenAddress       string               `json:"token_address"`
	TokenTemplate      domain.TokenTemplate `json:"token_template"`
	OwnerAddress       string               `json:"owner_address"`
	CompanyName        string               `json:"company_name"`
	RSAPublicKey       string               `json:"rsa_publickey"`
	Name               string               `json:"name"`
	Symbol             string               `json:"symbol"`
	TotalSupply        int64                `json:"total_supply"`
	TradableExchange   string               `json:"tradable_exchange"`
	ContactInformation string               `json:"contact_information"`
	PrivacyPolicy      string               `json:"privacy_policy"`
	Status             bool                 `json:"status"`
	MaxHoldingQuantity *int64               `json:"max_holding_quantity"`
	MaxSellAmount      *int64               `json:"max_sell_amount"`
}

func newTokenBaseDTO(b *schema.TokenBase) tokenBaseDTO {
	return tokenBaseDTO{
		TokenAddress:       b.TokenAddress,
		TokenTemplate:      b.TokenTemplate,
		OwnerAddress:       b.OwnerAddress,
		CompanyName:        b.CompanyName,
		RSAPublicKey:       b.RSAPublicKey,
		Name:               b.Name,
		Symbol:             b.Symbol,
		TotalSupply:        b.TotalSupply,
		TradableExchange:   b.TradableExchange,
		ContactInformation: b.ContactInformation,
		PrivacyPolicy:      b.PrivacyPolicy,
		Status:             b.Status,
		MaxHoldingQuantity: b.MaxHoldingQuantity,
		MaxSellAmount:      b.MaxSellAmount,
	}
}

// BondTokenDTO is the response shape of an IbetStraightBond token
type BondTokenDTO struct {
	tokenBaseDTO

	PersonalInfoAddress      string   `json:"personal_info_address"`
	Transferable             bool     `json:"transferable"`
	IsOffering               bool     `json:"is_offering"`
	TransferApprovalRequired bool     `json:"transfer_approval_required"`
	FaceValue                int64    `json:"face_value"`
	InterestRate             float64  `json:"interest_rate"`
	InterestPaymentDate      []string `json:"interest_payment_date"`
	RedemptionDate           string   `json:"redemption_date"`
	RedemptionValue          int64    `json:"redemption_value"`
	ReturnDate               string   `json:"return_date"`
	ReturnAmount             string   `json:"return_amount"`
	Purpose                  string   `json:"purpose"`
	Memo                     string   `json:"memo"`
	IsRedeemed               bool     `json:"is_redeemed"`
}

func newBondTokenDTO(t *schema.BondToken) BondTokenDTO {
	paymentDates := make([]string, 0, 12)
	for _, d := range []string{
		t.InterestPaymentDate1, t.InterestPaymentDate2, t.InterestPaymentDate3,
		t.InterestPaymentDate4, t.InterestPaymentDate5, t.InterestPaymentDate6,
		t.InterestPaymentDate7, t.InterestPaymentDate8, t.InterestPaymentDate9,
		t.InterestPaymentDate10, t.InterestPaymentDate11, t.InterestPaymentDate12,
	} {
		if d != "" {
			paymentDates = append(paymentDates, d)
		}
	}

	return BondTokenDTO{
		tokenBaseDTO:             newTokenBaseDTO(&t.TokenBase),
		PersonalInfoAddress:      t.PersonalInfoAddress,
		Transferable:             t.Transferable,
		IsOffering:               t.IsOffering,
		TransferApprovalRequired: t.TransferApprovalRequired,
		FaceValue:                t.FaceValue,
		InterestRate:             t.InterestRate,
		InterestPaymentDate:      paymentDates,
		RedemptionDate:           t.RedemptionDate,
		RedemptionValue:          t.RedemptionValue,
		ReturnDate:               t.ReturnDate,
		ReturnAmount:             t.ReturnAmount,
		Purpose:                  t.Purpose,
		Memo:                     t.Memo,
		IsRedeemed:               t.IsRedeemed,
	}
}

// DividendInformationDTO is the share dividend triple
type DividendInformationDTO struct {
	Dividends           float64 `json:"dividends"`
	DividendRecordDate  string  `json:"dividend_record_date"`
	DividendPaymentDate string  `json:"dividend_payment_date"`
}

// ShareTokenDTO is the response shape of an IbetShare token
type ShareTokenDTO struct {
	tokenBaseDTO

	PersonalInfoAddress      string                 `json:"personal_info_address"`
	Transferable             bool                   `json:"transferable"`
	IsOffering               bool                   `json:"is_offering"`
	TransferApprovalRequired bool                   `json:"transfer_approval_required"`
	IssuePrice               int64                  `json:"issue_price"`
	PrincipalValue           int64                  `json:"principal_value"`
	CancellationDate         string                 `json:"cancellation_date"`
	IsCanceled               bool                   `json:"is_canceled"`
	DividendInformation      DividendInformationDTO `json:"dividend_information"`
	Memo                     string                 `json:"memo"`
}

func newShareTokenDTO(t *schema.ShareToken) ShareTokenDTO {
	return ShareTokenDTO{
		tokenBaseDTO:             newTokenBaseDTO(&t.TokenBase),
		PersonalInfoAddress:      t.PersonalInfoAddress,
		Transferable:             t.Transferable,
		IsOffering:               t.IsOffering,
		TransferApprovalRequired: t.TransferApprovalRequired,
		IssuePrice:               t.IssuePrice,
		PrincipalValue:           t.PrincipalValue,
		CancellationDate:         t.CancellationDate,
		IsCanceled:               t.IsCanceled,
		DividendInformation: DividendInformationDTO{
			Dividends:           t.DividendInformation.Dividends,
			DividendRecordDate:  t.DividendInformation.DividendRecordDate,
			DividendPaymentDate: t.DividendInformation.DividendPaymentDate,
		},
		Memo: t.Memo,
	}
}

// ImageURLDTO is one entry of the membership/coupon image list
type ImageURLDTO struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// MembershipTokenDTO is the response shape of an IbetMembership token
type MembershipTokenDTO struct {
	tokenBaseDTO

	Details               string        `json:"details"`
	ReturnDetails         string        `json:"return_details"`
	ExpirationDate        string        `json:"expiration_date"`
	Memo                  string        `json:"memo"`
	Transferable          bool          `json:"transferable"`
	InitialOfferingStatus bool          `json:"initial_offering_status"`
	ImageURL              []ImageURLDTO `json:"image_url"`
}

func newMembershipTokenDTO(t *schema.MembershipToken) MembershipTokenDTO {
	return MembershipTokenDTO{
		tokenBaseDTO:          newTokenBaseDTO(&t.TokenBase),
		Details:               t.Details,
		ReturnDetails:         t.ReturnDetails,
		ExpirationDate:        t.ExpirationDate,
		Memo:                  t.Memo,
		Transferable:          t.Transferable,
		InitialOfferingStatus: t.InitialOfferingStatus,
		ImageURL:              newImageURLDTOs(t.ImageURL),
	}
}

// CouponTokenDTO is the response shape of an IbetCoupon token
type CouponTokenDTO struct {
	tokenBaseDTO

	Details               string        `json:"details"`
	ReturnDetails         string        `json:"return_details"`
	ExpirationDate        string        `json:"expiration_date"`
	Memo                  string        `json:"memo"`
	Transferable          bool          `json:"transferable"`
	InitialOfferingStatus bool          `json:"initial_offering_status"`
	ImageURL              []ImageURLDTO `json:"image_url"`
}

func newCouponTokenDTO(t *schema.CouponToken) CouponTokenDTO {
	return CouponTokenDTO{
		tokenBaseDTO:          newTokenBaseDTO(&t.TokenBase),
		Details:               t.Details,
		ReturnDetails:         t.ReturnDetails,
		ExpirationDate:        t.ExpirationDate,
		Memo:                  t.Memo,
		Transferable:          t.Transferable,
		InitialOfferingStatus: t.InitialOfferingStatus,
		ImageURL:              newImageURLDTOs(t.ImageURL),
	}
}

func newImageURLDTOs(urls schema.ImageURLs) []ImageURLDTO {
	out := make([]ImageURLDTO, 0, len(urls))
	for _, u := range urls {
		out = append(out, ImageURLDTO{ID: u.ID, URL: u.URL})
	}
	return out
}

// newTokenDetailDTO dispatches a stored detail row to its template DTO
func newTokenDetailDTO(detail schema.TokenDetail) interface{} {
	switch t := detail.(type) {
	case *schema.BondToken:
		return newBondTokenDTO(t)
	case *schema.ShareToken:
		return newShareTokenDTO(t)
	case *schema.MembershipToken:
		return newMembershipTokenDTO(t)
	case *schema.CouponToken:
		return newCouponTokenDTO(t)
	default:
		return nil
	}
}

// TokenStatusDTO is the response of the direct on-chain status read
type TokenStatusDTO struct {
	TokenTemplate domain.TokenTemplate `json:"token_template"`
	Status        bool                 `json:"status"`
	Transferable  bool                 `json:"transferable"`
}

// PositionDTO is one holding of an account
type PositionDTO struct {
	TokenAddress       string               `json:"token_address"`
	TokenTemplate      domain.TokenTemplate `json:"token_template"`
	Balance            int64                `json:"balance"`
	ExchangeBalance    int64                `json:"exchange_balance"`
	ExchangeCommitment int64                `json:"exchange_commitment"`
	Modified           time.Time            `json:"modified"`
}

func newPositionDTO(p store.PositionWithToken) PositionDTO {
	return PositionDTO{
		TokenAddress:       p.TokenAddress,
		TokenTemplate:      p.TokenTemplate,
		Balance:            p.Balance,
		ExchangeBalance:    p.ExchangeBalance,
		ExchangeCommitment: p.ExchangeCommitment,
		Modified:           p.Modified,
	}
}

// LockedPositionDTO is one lock-scoped holding of an account
type LockedPositionDTO struct {
	TokenAddress   string    `json:"token_address"`
	LockAddress    string    `json:"lock_address"`
	AccountAddress string    `json:"account_address"`
	Value          int64     `json:"value"`
	Modified       time.Time `json:"modified"`
}

func newLockedPositionDTO(p schema.LockedPosition) LockedPositionDTO {
	return LockedPositionDTO{
		TokenAddress:   p.TokenAddress,
		LockAddress:    p.LockAddress,
		AccountAddress: p.AccountAddress,
		Value:          p.Value,
		Modified:       p.Modified,
	}
}

// OrderBookEntryDTO is one resting order of an order book side
type OrderBookEntryDTO struct {
	ExchangeAddress string `json:"exchange_address"`
	OrderID         int64  `json:"order_id"`
	Price           int64  `json:"price"`
	Amount          int64  `json:"amount"`
	AccountAddress  string `json:"account_address"`
}

func newOrderBookDTO(entries []store.OrderBookEntry) []OrderBookEntryDTO {
	out := make([]OrderBookEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, OrderBookEntryDTO{
			ExchangeAddress: e.ExchangeAddress,
			OrderID:         e.OrderID,
			Price:           e.Price,
			Amount:          e.Amount,
			AccountAddress:  e.AccountAddress,
		})
	}
	return out
}

// LastPriceDTO is the latest settled price of one token
type LastPriceDTO struct {
	TokenAddress string `json:"token_address"`
	LastPrice    int64  `json:"last_price"`
}

// TickEntryDTO is one settled agreement of a token's trade history
type TickEntryDTO struct {
	BlockTimestamp time.Time `json:"block_timestamp"`
	BuyAddress     string    `json:"buy_address"`
	SellAddress    string    `json:"sell_address"`
	OrderID        int64     `json:"order_id"`
	AgreementID    int64     `json:"agreement_id"`
	Price          int64     `json:"price"`
	Amount         int64     `json:"amount"`
}

// TickDTO is the trade history of one token, most recent first
type TickDTO struct {
	TokenAddress string         `json:"token_address"`
	Tick         []TickEntryDTO `json:"tick"`
}

func newTickEntryDTO(a schema.Agreement) TickEntryDTO {
	blockTimestamp := a.AgreementTimestamp
	if a.SettlementTimestamp != nil {
		blockTimestamp = *a.SettlementTimestamp
	}
	return TickEntryDTO{
		BlockTimestamp: blockTimestamp,
		BuyAddress:     a.BuyerAddress,
		SellAddress:    a.SellerAddress,
		OrderID:        a.OrderID,
		AgreementID:    a.AgreementID,
		Price:          a.Price,
		Amount:         a.Amount,
	}
}

// NotificationDTO is one entry of the per-address notification feed
type NotificationDTO struct {
	NotificationID   string                      `json:"notification_id"`
	NotificationType string                      `json:"notification_type"`
	Priority         domain.NotificationPriority `json:"priority"`
	Address          string                      `json:"address"`
	IsRead           bool                        `json:"is_read"`
	IsFlagged        bool                        `json:"is_flagged"`
	IsDeleted        bool                        `json:"is_deleted"`
	DeletedAt        *time.Time                  `json:"deleted_at"`
	Args             schema.NotificationArgs     `json:"args"`
	Metainfo         schema.NotificationArgs     `json:"metainfo"`
	BlockTimestamp   time.Time                   `json:"block_timestamp"`
	Created          time.Time                   `json:"created"`
}

func newNotificationDTO(n *schema.Notification) NotificationDTO {
	return NotificationDTO{
		NotificationID:   n.NotificationID,
		NotificationType: n.NotificationType,
		Priority:         n.Priority,
		Address:          n.Address,
		IsRead:           n.IsRead,
		IsFlagged:        n.IsFlagged,
		IsDeleted:        n.IsDeleted,
		DeletedAt:        n.DeletedAt,
		Args:             n.Args,
		Metainfo:         n.Metainfo,
		BlockTimestamp:   n.BlockTimestamp,
		Created:          n.Created,
	}
}

// NotificationCountDTO aggregates feed counters for one address
type NotificationCountDTO struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
}

// ListingDTO is the admin view of one listing
type ListingDTO struct {
	ID                 int64     `json:"id"`
	TokenAddress       string    `json:"token_address"`
	IsPublic           bool      `json:"is_public"`
	MaxHoldingQuantity *int64    `json:"max_holding_quantity"`
	MaxSellAmount      *int64    `json:"max_sell_amount"`
	OwnerAddress       string    `json:"owner_address"`
	CreatedAt          time.Time `json:"created_at"`
}

func newListingDTO(l *schema.Listing) ListingDTO {
	return ListingDTO{
		ID:                 l.ID,
		TokenAddress:       l.TokenAddress,
		IsPublic:           l.IsPublic,
		MaxHoldingQuantity: l.MaxHoldingQuantity,
		MaxSellAmount:      l.MaxSellAmount,
		OwnerAddress:       l.OwnerAddress,
		CreatedAt:          l.CreatedAt,
	}
}

// CreateListingRequest is the admin token registration body
type CreateListingRequest struct {
	ContractAddress    string `json:"contract_address" binding:"required"`
	IsPublic           bool   `json:"is_public"`
	MaxHoldingQuantity *int64 `json:"max_holding_quantity"`
	MaxSellAmount      *int64 `json:"max_sell_amount"`
}

// UpdateListingRequest carries the mutable listing fields. Omitted fields are
// left untouched.
type UpdateListingRequest struct {
	IsPublic           *bool   `json:"is_public"`
	MaxHoldingQuantity *int64  `json:"max_holding_quantity"`
	MaxSellAmount      *int64  `json:"max_sell_amount"`
	OwnerAddress       *string `json:"owner_address"`
}

// UpdateNotificationRequest carries the mutable notification flags
type UpdateNotificationRequest struct {
	IsRead    *bool `json:"is_read"`
	IsFlagged *bool `json:"is_flagged"`
	IsDeleted *bool `json:"is_deleted"`
}

// BlockSyncStatusDTO reports node sync health
type BlockSyncStatusDTO struct {
	IsSynced          bool   `json:"is_synced"`
	LatestBlockNumber uint64 `json:"latest_block_number"`
}

// BlockDTO is one explorer block row
type BlockDTO struct {
	BlockNumber      uint64   `json:"block_number"`
	BlockHash        string   `json:"block_hash"`
	ParentHash       string   `json:"parent_hash"`
	Timestamp        int64    `json:"timestamp"`
	Miner            string   `json:"miner"`
	GasLimit         uint64   `json:"gas_limit"`
	GasUsed          uint64   `json:"gas_used"`
	Size             uint64   `json:"size"`
	TransactionCount int      `json:"transaction_count"`
	Transactions     []string `json:"transactions"`
}

func newBlockDTO(b schema.BlockData) BlockDTO {
	return BlockDTO{
		BlockNumber:      b.BlockNumber,
		BlockHash:        b.BlockHash,
		ParentHash:       b.ParentHash,
		Timestamp:        b.Timestamp,
		Miner:            b.Miner,
		GasLimit:         b.GasLimit,
		GasUsed:          b.GasUsed,
		Size:             b.Size,
		TransactionCount: b.TransactionCount,
		Transactions:     []string(b.Transactions),
	}
}

// TxDTO is one explorer transaction row
type TxDTO struct {
	Hash             string  `json:"hash"`
	BlockNumber      uint64  `json:"block_number"`
	BlockHash        string  `json:"block_hash"`
	TransactionIndex uint    `json:"transaction_index"`
	FromAddress      string  `json:"from_address"`
	ToAddress        *string `json:"to_address"`
	Nonce            uint64  `json:"nonce"`
	Value            string  `json:"value"`
	GasPrice         string  `json:"gas_price"`
	Gas              uint64  `json:"gas"`
	Input            string  `json:"input"`
}

func newTxDTO(t schema.TxData) TxDTO {
	return TxDTO{
		Hash:             t.Hash,
		BlockNumber:      t.BlockNumber,
		BlockHash:        t.BlockHash,
		TransactionIndex: t.TransactionIndex,
		FromAddress:      t.FromAddress,
		ToAddress:        t.ToAddress,
		Nonce:            t.Nonce,
		Value:            t.Value,
		GasPrice:         t.GasPrice,
		Gas:              t.Gas,
		Input:            t.Input,
	}
}

// SendRawTransactionRequest is the raw transaction relay body
type SendRawTransactionRequest struct {
	RawTx string `json:"raw_tx" binding:"required"`
}

// SendRawTransactionDTO is the raw transaction relay response
type SendRawTransactionDTO struct {
	TransactionHash string `json:"transaction_hash"`
}

// WaitForTransactionReceiptRequest is the receipt poll body. Timeout is in
// seconds, capped by the handler.
type WaitForTransactionReceiptRequest struct {
	TransactionHash string `json:"transaction_hash" binding:"required"`
	Timeout         int    `json:"timeout"`
}

// TransactionReceiptDTO is the receipt poll response
type TransactionReceiptDTO struct {
	TransactionHash string `json:"transaction_hash"`
	BlockNumber     uint64 `json:"block_number"`
	Status          uint64 `json:"status"`
	GasUsed         uint64 `json:"gas_used"`
}
