package schema

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

// TokenDetail is implemented by the four per-template detail rows so the
// indexer can stage and merge them uniformly
type TokenDetail interface {
	TableName() string
	Address() string
	Template() domain.TokenTemplate
	SetCreated(t time.Time)
	// Base exposes the shared columns of the detail row
	Base() *TokenBase
}

// TokenBase holds the columns shared by every token detail table
type TokenBase struct {
	// TokenAddress is the token contract address (primary key)
	TokenAddress string `gorm:"column:token_address;primaryKey;type:varchar(42)"`
	// TokenTemplate is the contract interface of the token
	TokenTemplate domain.TokenTemplate `gorm:"column:token_template;type:varchar(40)"`
	// OwnerAddress is the issuer address
	OwnerAddress string `gorm:"column:owner_address;index;type:varchar(42)"`
	// CompanyName is the issuer display name resolved from the company directory
	CompanyName string `gorm:"column:company_name;type:text"`
	// RSAPublicKey is the issuer messaging key resolved from the company directory
	RSAPublicKey string `gorm:"column:rsa_publickey;type:varchar(2000)"`
	Name         string `gorm:"column:name;type:varchar(200)"`
	Symbol       string `gorm:"column:symbol;type:varchar(200)"`
	TotalSupply  int64  `gorm:"column:total_supply"`
	// TradableExchange is the DEX contract the token trades on
	TradableExchange   string `gorm:"column:tradable_exchange;index;type:varchar(42)"`
	ContactInformation string `gorm:"column:contact_information;type:varchar(2000)"`
	PrivacyPolicy      string `gorm:"column:privacy_policy;type:varchar(5000)"`
	Status             bool   `gorm:"column:status"`
	MaxHoldingQuantity *int64 `gorm:"column:max_holding_quantity"`
	MaxSellAmount      *int64 `gorm:"column:max_sell_amount"`
	// CreatedAt is the refresh timestamp set on every sync pass
	CreatedAt time.Time `gorm:"column:created_at"`
}

// Address returns the token contract address
func (b *TokenBase) Address() string {
	return b.TokenAddress
}

// Template returns the contract interface of the token
func (b *TokenBase) Template() domain.TokenTemplate {
	return b.TokenTemplate
}

// SetCreated stamps the row with the sync pass time
func (b *TokenBase) SetCreated(t time.Time) {
	b.CreatedAt = t
}

// Base exposes the shared columns of the detail row
func (b *TokenBase) Base() *TokenBase {
	return b
}

// BondToken represents the bond_token table - the denormalized snapshot of an
// IbetStraightBond contract
type BondToken struct {
	TokenBase

	PersonalInfoAddress      string  `gorm:"column:personal_info_address;index;type:varchar(42)"`
	Transferable             bool    `gorm:"column:transferable"`
	IsOffering               bool    `gorm:"column:is_offering"`
	TransferApprovalRequired bool    `gorm:"column:transfer_approval_required"`
	FaceValue                int64   `gorm:"column:face_value"`
	// InterestRate is stored as a decimal fraction (on-chain value is an integer in units of 0.0001)
	InterestRate             float64 `gorm:"column:interest_rate"`
	InterestPaymentDate1     string  `gorm:"column:interest_payment_date1;type:varchar(10)"`
	InterestPaymentDate2     string  `gorm:"column:interest_payment_date2;type:varchar(10)"`
	InterestPaymentDate3     string  `gorm:"column:interest_payment_date3;type:varchar(10)"`
	InterestPaymentDate4     string  `gorm:"column:interest_payment_date4;type:varchar(10)"`
	InterestPaymentDate5     string  `gorm:"column:interest_payment_date5;type:varchar(10)"`
	InterestPaymentDate6     string  `gorm:"column:interest_payment_date6;type:varchar(10)"`
	InterestPaymentDate7     string  `gorm:"column:interest_payment_date7;type:varchar(10)"`
	InterestPaymentDate8     string  `gorm:"column:interest_payment_date8;type:varchar(10)"`
	InterestPaymentDate9     string  `gorm:"column:interest_payment_date9;type:varchar(10)"`
	InterestPaymentDate10    string  `gorm:"column:interest_payment_date10;type:varchar(10)"`
	InterestPaymentDate11    string  `gorm:"column:interest_payment_date11;type:varchar(10)"`
	InterestPaymentDate12    string  `gorm:"column:interest_payment_date12;type:varchar(10)"`
	RedemptionDate           string  `gorm:"column:redemption_date;type:varchar(10)"`
	RedemptionValue          int64   `gorm:"column:redemption_value"`
	ReturnDate               string  `gorm:"column:return_date;type:varchar(10)"`
	ReturnAmount             string  `gorm:"column:return_amount;type:varchar(2000)"`
	Purpose                  string  `gorm:"column:purpose;type:varchar(2000)"`
	Memo                     string  `gorm:"column:memo;type:varchar(2000)"`
	IsRedeemed               bool    `gorm:"column:is_redeemed"`
}

// TableName specifies the table name for the BondToken model
func (BondToken) TableName() string {
	return "bond_token"
}

// DividendInformation is the share dividend triple, stored as JSONB
type DividendInformation struct {
	Dividends           float64 `json:"dividends"`
	DividendRecordDate  string  `json:"dividend_record_date"`
	DividendPaymentDate string  `json:"dividend_payment_date"`
}

// Scan implements the sql.Scanner interface for reading from database
func (d *DividendInformation) Scan(value interface{}) error {
	if value == nil {
		*d = DividendInformation{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, d)
}

// Value implements the driver.Valuer interface for writing to database
func (d DividendInformation) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// ShareToken represents the share_token table - the denormalized snapshot of
// an IbetShare contract
type ShareToken struct {
	TokenBase

	PersonalInfoAddress      string              `gorm:"column:personal_info_address;index;type:varchar(42)"`
	Transferable             bool                `gorm:"column:transferable"`
	IsOffering               bool                `gorm:"column:is_offering"`
	TransferApprovalRequired bool                `gorm:"column:transfer_approval_required"`
	IssuePrice               int64               `gorm:"column:issue_price"`
	PrincipalValue           int64               `gorm:"column:principal_value"`
	CancellationDate         string              `gorm:"column:cancellation_date;type:varchar(10)"`
	IsCanceled               bool                `gorm:"column:is_canceled"`
	DividendInformation      DividendInformation `gorm:"column:dividend_information;type:jsonb"`
	Memo                     string              `gorm:"column:memo;type:varchar(2000)"`
}

// TableName specifies the table name for the ShareToken model
func (ShareToken) TableName() string {
	return "share_token"
}

// ImageURL is one entry of the membership/coupon image list
type ImageURL struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// ImageURLs is a slice of ImageURL stored as JSONB
type ImageURLs []ImageURL

// Scan implements the sql.Scanner interface for reading from database
func (u *ImageURLs) Scan(value interface{}) error {
	if value == nil {
		*u = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, u)
}

// Value implements the driver.Valuer interface for writing to database
func (u ImageURLs) Value() (driver.Value, error) {
	if u == nil {
		return nil, nil
	}
	return json.Marshal(u)
}

// MembershipToken represents the membership_token table - the denormalized
// snapshot of an IbetMembership contract
type MembershipToken struct {
	TokenBase

	Details               string    `gorm:"column:details;type:varchar(2000)"`
	ReturnDetails         string    `gorm:"column:return_details;type:varchar(2000)"`
	ExpirationDate        string    `gorm:"column:expiration_date;type:varchar(10)"`
	Memo                  string    `gorm:"column:memo;type:varchar(2000)"`
	Transferable          bool      `gorm:"column:transferable"`
	InitialOfferingStatus bool      `gorm:"column:initial_offering_status"`
	ImageURL              ImageURLs `gorm:"column:image_url;type:jsonb"`
}

// TableName specifies the table name for the MembershipToken model
func (MembershipToken) TableName() string {
	return "membership_token"
}

// CouponToken represents the coupon_token table - the denormalized snapshot
// of an IbetCoupon contract
type CouponToken struct {
	TokenBase

	Details               string    `gorm:"column:details;type:varchar(2000)"`
	ReturnDetails         string    `gorm:"column:return_details;type:varchar(2000)"`
	ExpirationDate        string    `gorm:"column:expiration_date;type:varchar(10)"`
	Memo                  string    `gorm:"column:memo;type:varchar(2000)"`
	Transferable          bool      `gorm:"column:transferable"`
	InitialOfferingStatus bool      `gorm:"column:initial_offering_status"`
	ImageURL              ImageURLs `gorm:"column:image_url;type:jsonb"`
}

// TableName specifies the table name for the CouponToken model
func (CouponToken) TableName() string {
	return "coupon_token"
}
