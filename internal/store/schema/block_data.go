package schema

import (
	"gorm.io/datatypes"
)

// BlockData represents the block_data table - one row per indexed block,
// maintained by the block sync worker for the explorer endpoints
type BlockData struct {
	// BlockNumber is the height of the block
	BlockNumber uint64 `gorm:"column:block_number;primaryKey;autoIncrement:false"`
	// BlockHash is the 0x-prefixed hash of the block
	BlockHash  string `gorm:"column:block_hash;index;type:varchar(66)"`
	ParentHash string `gorm:"column:parent_hash;type:varchar(66)"`
	// Timestamp is the block timestamp in unix seconds
	Timestamp int64  `gorm:"column:timestamp;not null"`
	Miner     string `gorm:"column:miner;type:varchar(42)"`
	GasLimit  uint64 `gorm:"column:gas_limit"`
	GasUsed   uint64 `gorm:"column:gas_used"`
	Size      uint64 `gorm:"column:size"`
	// TransactionCount is the number of transactions in the block
	TransactionCount int `gorm:"column:transaction_count;not null;default:0"`
	// Transactions holds the ordered list of transaction hashes
	Transactions datatypes.JSONSlice[string] `gorm:"column:transactions;type:jsonb"`
}

// TableName specifies the table name for the BlockData model
func (BlockData) TableName() string {
	return "block_data"
}

// TxData represents the tx_data table - one row per indexed transaction
type TxData struct {
	// Hash is the 0x-prefixed transaction hash
	Hash string `gorm:"column:hash;primaryKey;type:varchar(66)"`
	// BlockNumber is the height of the containing block
	BlockNumber uint64 `gorm:"column:block_number;index"`
	// BlockHash is the hash of the containing block
	BlockHash string `gorm:"column:block_hash;type:varchar(66)"`
	// TransactionIndex is the position within the block
	TransactionIndex uint `gorm:"column:transaction_index"`
	// FromAddress is the sender, recovered from the signature
	FromAddress string `gorm:"column:from_address;index;type:varchar(42)"`
	// ToAddress is nil for contract creations
	ToAddress *string `gorm:"column:to_address;index;type:varchar(42)"`
	Nonce     uint64  `gorm:"column:nonce"`
	Value     string  `gorm:"column:value;type:varchar(80)"`
	GasPrice  string  `gorm:"column:gas_price;type:varchar(80)"`
	Gas       uint64  `gorm:"column:gas"`
	// Input is the 0x-prefixed calldata
	Input string `gorm:"column:input;type:text"`
}

// TableName specifies the table name for the TxData model
func (TxData) TableName() string {
	return "tx_data"
}

// SyncCursor represents the sync_cursor table - durable per-worker resume
// points, one row per worker name
type SyncCursor struct {
	// Name identifies the worker that owns the cursor
	Name string `gorm:"column:name;primaryKey"`
	// BlockNumber is the latest block fully processed by the worker
	BlockNumber uint64 `gorm:"column:block_number;not null;default:0"`
}

// TableName specifies the table name for the SyncCursor model
func (SyncCursor) TableName() string {
	return "sync_cursor"
}
