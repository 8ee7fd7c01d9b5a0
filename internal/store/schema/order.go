package schema

import (
	"time"
)

// Order represents the order table - exchange orders mirrored from the DEX
// contract, keyed by (exchange_address, order_id)
type Order struct {
	ID                 int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TokenAddress       string    `gorm:"column:token_address;index;type:varchar(42)"`
	ExchangeAddress    string    `gorm:"column:exchange_address;uniqueIndex:uq_order_exchange_order;type:varchar(42)"`
	OrderID            int64     `gorm:"column:order_id;uniqueIndex:uq_order_exchange_order"`
	AccountAddress     string    `gorm:"column:account_address;index;type:varchar(42)"`
	CounterpartAddress string    `gorm:"column:counterpart_address;type:varchar(42)"`
	IsBuy              bool      `gorm:"column:is_buy"`
	Price              int64     `gorm:"column:price"`
	Amount             int64     `gorm:"column:amount"`
	AgentAddress       string    `gorm:"column:agent_address;type:varchar(42)"`
	IsCancelled        bool      `gorm:"column:is_cancelled;not null;default:false"`
	OrderTimestamp     time.Time `gorm:"column:order_timestamp"`
	CreatedAt          time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "order"
}

// AgreementStatus enumerates the settlement state of an agreement
type AgreementStatus int

const (
	AgreementStatusPending AgreementStatus = iota
	AgreementStatusDone
	AgreementStatusCanceled
)

// Agreement represents the agreement table - matched trades awaiting or past
// settlement, keyed by (exchange_address, order_id, agreement_id)
type Agreement struct {
	ID                  int64           `gorm:"column:id;primaryKey;autoIncrement"`
	TokenAddress        string          `gorm:"column:token_address;index;type:varchar(42)"`
	ExchangeAddress     string          `gorm:"column:exchange_address;uniqueIndex:uq_agreement_exchange_order;type:varchar(42)"`
	OrderID             int64           `gorm:"column:order_id;uniqueIndex:uq_agreement_exchange_order"`
	AgreementID         int64           `gorm:"column:agreement_id;uniqueIndex:uq_agreement_exchange_order"`
	BuyerAddress        string          `gorm:"column:buyer_address;index;type:varchar(42)"`
	SellerAddress       string          `gorm:"column:seller_address;index;type:varchar(42)"`
	CounterpartAddress  string          `gorm:"column:counterpart_address;type:varchar(42)"`
	Price               int64           `gorm:"column:price"`
	Amount              int64           `gorm:"column:amount"`
	Status              AgreementStatus `gorm:"column:status;not null;default:0"`
	AgreementTimestamp  time.Time       `gorm:"column:agreement_timestamp"`
	SettlementTimestamp *time.Time      `gorm:"column:settlement_timestamp"`
	CreatedAt           time.Time       `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Agreement model
func (Agreement) TableName() string {
	return "agreement"
}
