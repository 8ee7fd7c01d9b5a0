package schema

import (
	"time"
)

// Position represents the position table - per-account balance snapshots,
// maintained by the event bridge from Transfer logs
type Position struct {
	// TokenAddress is the token contract address
	TokenAddress string `gorm:"column:token_address;primaryKey;type:varchar(42)"`
	// AccountAddress is the holder address
	AccountAddress string `gorm:"column:account_address;primaryKey;index;type:varchar(42)"`
	// Balance is the amount held directly in the token contract
	Balance int64 `gorm:"column:balance;not null;default:0"`
	// ExchangeBalance is the amount deposited to the tradable exchange
	ExchangeBalance int64 `gorm:"column:exchange_balance;not null;default:0"`
	// ExchangeCommitment is the amount committed to open orders on the exchange
	ExchangeCommitment int64 `gorm:"column:exchange_commitment;not null;default:0"`
	// Modified is the time of the last balance refresh
	Modified time.Time `gorm:"column:modified;not null;default:now()"`
}

// TableName specifies the table name for the Position model
func (Position) TableName() string {
	return "position"
}

// LockedPosition represents the locked_position table - per-account locked
// value snapshots keyed by the lock contract address
type LockedPosition struct {
	TokenAddress   string `gorm:"column:token_address;primaryKey;type:varchar(42)"`
	LockAddress    string `gorm:"column:lock_address;primaryKey;type:varchar(42)"`
	AccountAddress string `gorm:"column:account_address;primaryKey;index;type:varchar(42)"`
	// Value is the currently locked amount
	Value    int64     `gorm:"column:value;not null;default:0"`
	Modified time.Time `gorm:"column:modified;not null;default:now()"`
}

// TableName specifies the table name for the LockedPosition model
func (LockedPosition) TableName() string {
	return "locked_position"
}
