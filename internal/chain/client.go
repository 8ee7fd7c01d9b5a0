// Package chain wraps the JSON-RPC connection to the ibet network with typed
// contract call helpers. Transport failures surface as
// domain.ErrServiceUnavailable; calls that revert or hit a missing method
// surface as domain.ErrCallFailed so callers can substitute defaults per
// field.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

//go:generate mockgen -source=client.go -destination=../mocks/chain.go -package=mocks

// SyncStatus reports how far the connected node has caught up
type SyncStatus struct {
	IsSynced          bool
	LatestBlockNumber uint64
}

// Client is the typed contract call surface used across the indexer and API
type Client interface {
	// CallString calls a view method returning a single string
	CallString(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) (string, error)
	// CallUint256 calls a view method returning a single uint256
	CallUint256(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) (*big.Int, error)
	// CallBool calls a view method returning a single bool
	CallBool(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) (bool, error)
	// CallAddress calls a view method returning a single address
	CallAddress(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) (string, error)
	// Call calls a view method and returns the raw unpacked outputs
	Call(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) ([]interface{}, error)

	// BlockNumber returns the latest block number
	BlockNumber(ctx context.Context) (uint64, error)
	// BlockByNumber returns a full block by number
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
	// HeaderByNumber returns a block header by number
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	// SyncStatus reports whether the node is synced and its latest block
	SyncStatus(ctx context.Context) (*SyncStatus, error)

	// SendRawTransaction decodes and broadcasts a signed raw transaction,
	// returning its hash
	SendRawTransaction(ctx context.Context, rawTx string) (string, error)
	// WaitForTransactionReceipt polls until the transaction is mined or the
	// timeout elapses
	WaitForTransactionReceipt(ctx context.Context, txHash string, timeout time.Duration) (*types.Receipt, error)

	// SubscribeFilterLogs subscribes to filtered logs
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)
	// FilterLogs fetches historical filtered logs
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)

	// Close closes the connection
	Close()
}

type client struct {
	eth   adapter.EthClient
	clock adapter.Clock
}

// NewClient creates a chain client on top of an RPC connection
func NewClient(eth adapter.EthClient, clock adapter.Clock) Client {
	return &client{eth: eth, clock: clock}
}

func (c *client) call(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) ([]byte, error) {
	input, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: pack %s: %v", domain.ErrCallFailed, method, err)
	}

	to := common.HexToAddress(contract)
	output, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &to, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: call %s on %s: %v", classifyCallError(err), method, contract, err)
	}
	// Calling an address with no code returns no data and no error
	if len(output) == 0 {
		return nil, fmt.Errorf("%w: %s on %s returned no data", domain.ErrCallFailed, method, contract)
	}
	return output, nil
}

// classifyCallError separates failures of the call itself from failures to
// reach the node. A JSON-RPC error means the node answered and the call
// reverted or hit a missing method, so callers may substitute a default;
// anything else is a transport problem and the node must be treated as down.
func classifyCallError(err error) error {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return domain.ErrCallFailed
	}
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		return domain.ErrCallFailed
	}
	if strings.Contains(err.Error(), "execution reverted") {
		return domain.ErrCallFailed
	}
	return domain.ErrServiceUnavailable
}

// Call calls a view method and returns the raw unpacked outputs
func (c *client) Call(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) ([]interface{}, error) {
	output, err := c.call(ctx, contractABI, contract, method, args...)
	if err != nil {
		return nil, err
	}
	values, err := contractABI.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("%w: unpack %s: %v", domain.ErrCallFailed, method, err)
	}
	return values, nil
}

// CallString calls a view method returning a single string
func (c *client) CallString(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) (string, error) {
	values, err := c.Call(ctx, contractABI, contract, method, args...)
	if err != nil {
		return "", err
	}
	value, ok := values[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s did not return a string", domain.ErrCallFailed, method)
	}
	return value, nil
}

// CallUint256 calls a view method returning a single uint256
func (c *client) CallUint256(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) (*big.Int, error) {
	values, err := c.Call(ctx, contractABI, contract, method, args...)
	if err != nil {
		return nil, err
	}
	value, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %s did not return a uint256", domain.ErrCallFailed, method)
	}
	return value, nil
}

// CallBool calls a view method returning a single bool
func (c *client) CallBool(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) (bool, error) {
	values, err := c.Call(ctx, contractABI, contract, method, args...)
	if err != nil {
		return false, err
	}
	value, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s did not return a bool", domain.ErrCallFailed, method)
	}
	return value, nil
}

// CallAddress calls a view method returning a single address
func (c *client) CallAddress(ctx context.Context, contractABI abi.ABI, contract string, method string, args ...interface{}) (string, error) {
	values, err := c.Call(ctx, contractABI, contract, method, args...)
	if err != nil {
		return "", err
	}
	value, ok := values[0].(common.Address)
	if !ok {
		return "", fmt.Errorf("%w: %s did not return an address", domain.ErrCallFailed, method)
	}
	return value.Hex(), nil
}

// BlockNumber returns the latest block number
func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	number, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: block number: %v", domain.ErrServiceUnavailable, err)
	}
	return number, nil
}

// BlockByNumber returns a full block by number
func (c *client) BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error) {
	block, err := c.eth.BlockByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("%w: block by number: %v", domain.ErrServiceUnavailable, err)
	}
	return block, nil
}

// HeaderByNumber returns a block header by number
func (c *client) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	header, err := c.eth.HeaderByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("%w: header by number: %v", domain.ErrServiceUnavailable, err)
	}
	return header, nil
}

// SyncStatus reports whether the node is synced and its latest block
func (c *client) SyncStatus(ctx context.Context) (*SyncStatus, error) {
	progress, err := c.eth.SyncProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: sync progress: %v", domain.ErrServiceUnavailable, err)
	}

	latest, err := c.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	return &SyncStatus{
		IsSynced:          progress == nil,
		LatestBlockNumber: latest,
	}, nil
}

// SendRawTransaction decodes and broadcasts a signed raw transaction,
// returning its hash
func (c *client) SendRawTransaction(ctx context.Context, rawTx string) (string, error) {
	raw, err := hexutil.Decode(rawTx)
	if err != nil {
		return "", fmt.Errorf("%w: decode raw transaction: %v", domain.ErrCallFailed, err)
	}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return "", fmt.Errorf("%w: unmarshal raw transaction: %v", domain.ErrCallFailed, err)
	}

	if err := c.eth.SendTransaction(ctx, tx); err != nil {
		return "", fmt.Errorf("%w: send transaction: %v", domain.ErrServiceUnavailable, err)
	}
	return tx.Hash().Hex(), nil
}

// WaitForTransactionReceipt polls until the transaction is mined or the
// timeout elapses
func (c *client) WaitForTransactionReceipt(ctx context.Context, txHash string, timeout time.Duration) (*types.Receipt, error) {
	hash := common.HexToHash(txHash)
	deadline := c.clock.Now().Add(timeout)

	for {
		receipt, err := c.eth.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if c.clock.Now().After(deadline) {
			return nil, fmt.Errorf("%w: transaction %s not mined within %s", domain.ErrDataNotExists, txHash, timeout)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(time.Second):
		}
	}
}

// SubscribeFilterLogs subscribes to filtered logs
func (c *client) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	sub, err := c.eth.SubscribeFilterLogs(ctx, query, ch)
	if err != nil {
		return nil, fmt.Errorf("%w: subscribe logs: %v", domain.ErrServiceUnavailable, err)
	}
	return sub, nil
}

// FilterLogs fetches historical filtered logs
func (c *client) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	logs, err := c.eth.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: filter logs: %v", domain.ErrServiceUnavailable, err)
	}
	return logs, nil
}

// Close closes the connection
func (c *client) Close() {
	c.eth.Close()
}
