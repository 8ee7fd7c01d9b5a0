package rest_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/api/middleware"
	"github.com/ibet-fin/ibet-indexer/internal/api/rest"
	"github.com/ibet-fin/ibet-indexer/internal/chain"
	"github.com/ibet-fin/ibet-indexer/internal/contracts"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/logger"
	"github.com/ibet-fin/ibet-indexer/internal/mocks"
	"github.com/ibet-fin/ibet-indexer/internal/store"
	"github.com/ibet-fin/ibet-indexer/internal/store/schema"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	logger.Initialize(logger.Config{Debug: false})
	gin.SetMode(gin.TestMode)
	m.Run()
}

const (
	testTokenAddress    = "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"
	testAccountAddress  = "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	testExchangeAddress = "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D"
	testTokenList       = "0x0000000000000000000000000000000000001000"
)

type handlerMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	chain     *mocks.MockClient
	companies *mocks.MockList
}

func newTestRouter(t *testing.T, explorerEnabled bool) (*gin.Engine, *handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tm := &handlerMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		chain:     mocks.NewMockClient(ctrl),
		companies: mocks.NewMockList(ctrl),
	}

	registry, err := contracts.LoadRegistry(adapter.NewFileSystem(), adapter.NewJSON(), "../../../config/contracts.json")
	require.NoError(t, err)

	handler := rest.NewHandler(tm.store, tm.chain, registry, tm.companies, testTokenList, explorerEnabled)

	router := gin.New()
	rest.SetupRoutes(router, handler, middleware.AuthConfig{APIKeys: []string{"test-key"}})
	return router, tm
}

func doRequest(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := doRequest(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestListBondTokens(t *testing.T) {
	router, tm := newTestRouter(t, false)

	tm.store.EXPECT().
		ListBondTokens(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.TokenQueryFilter) ([]schema.BondToken, uint64, error) {
			assert.Equal(t, 10, *filter.Pagination.Limit)
			bond := schema.BondToken{FaceValue: 10000}
			bond.TokenAddress = testTokenAddress
			bond.TokenTemplate = domain.TemplateStraightBond
			bond.Name = "Sample Bond 2030"
			return []schema.BondToken{bond}, 1, nil
		})

	w := doRequest(router, http.MethodGet, "/v1/Token/StraightBond?limit=10")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sample Bond 2030")
	assert.Contains(t, w.Body.String(), `"code":200`)
}

func TestListBondTokens_InvalidQuery(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := doRequest(router, http.MethodGet, "/v1/Token/StraightBond?sort_order=5")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":88`)

	w = doRequest(router, http.MethodGet, "/v1/Token/StraightBond?owner_address=not-an-address")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/v1/Token/StraightBond?offset=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetToken(t *testing.T) {
	router, tm := newTestRouter(t, false)

	bond := &schema.BondToken{}
	bond.TokenAddress = testTokenAddress
	bond.TokenTemplate = domain.TemplateStraightBond
	bond.Name = "Sample Bond 2030"

	tm.store.EXPECT().
		GetTokenDetail(gomock.Any(), testTokenAddress).
		Return(bond, nil)

	w := doRequest(router, http.MethodGet, "/v1/Token/"+testTokenAddress)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sample Bond 2030")
}

func TestGetToken_InvalidAddress(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := doRequest(router, http.MethodGet, "/v1/Token/0x123")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":88`)
}

func TestGetToken_NotFound(t *testing.T) {
	router, tm := newTestRouter(t, false)

	tm.store.EXPECT().
		GetTokenDetail(gomock.Any(), testTokenAddress).
		Return(nil, nil)

	w := doRequest(router, http.MethodGet, "/v1/Token/"+testTokenAddress)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":30`)
}

func TestGetTokenStatus(t *testing.T) {
	router, tm := newTestRouter(t, false)

	tm.store.EXPECT().
		GetTokenTemplate(gomock.Any(), testTokenAddress).
		Return(domain.TemplateStraightBond, nil)
	tm.chain.EXPECT().
		CallBool(gomock.Any(), gomock.Any(), testTokenAddress, "status").
		Return(true, nil)
	tm.chain.EXPECT().
		CallBool(gomock.Any(), gomock.Any(), testTokenAddress, "transferable").
		Return(false, nil)

	w := doRequest(router, http.MethodGet, "/v1/Token/"+testTokenAddress+"/Status")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":true`)
	assert.Contains(t, w.Body.String(), `"transferable":false`)
}

func TestGetTokenStatus_NodeUnavailable(t *testing.T) {
	router, tm := newTestRouter(t, false)

	tm.store.EXPECT().
		GetTokenTemplate(gomock.Any(), testTokenAddress).
		Return(domain.TemplateStraightBond, nil)
	tm.chain.EXPECT().
		CallBool(gomock.Any(), gomock.Any(), testTokenAddress, "status").
		Return(false, fmt.Errorf("%w: connection refused", domain.ErrServiceUnavailable))

	w := doRequest(router, http.MethodGet, "/v1/Token/"+testTokenAddress+"/Status")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"code":503`)
}

func TestGetTokenStatus_UnlistedToken(t *testing.T) {
	router, tm := newTestRouter(t, false)

	tm.store.EXPECT().
		GetTokenTemplate(gomock.Any(), testTokenAddress).
		Return(domain.TokenTemplate(""), nil)

	w := doRequest(router, http.MethodGet, "/v1/Token/"+testTokenAddress+"/Status")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":30`)
}

func TestListPositions(t *testing.T) {
	router, tm := newTestRouter(t, false)

	position := store.PositionWithToken{TokenTemplate: domain.TemplateShare}
	position.TokenAddress = testTokenAddress
	position.AccountAddress = testAccountAddress
	position.Balance = 100

	tm.store.EXPECT().
		GetPositions(gomock.Any(), testAccountAddress, gomock.Any()).
		Return([]store.PositionWithToken{position}, uint64(1), nil)

	w := doRequest(router, http.MethodGet, "/v1/Position/"+testAccountAddress)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testTokenAddress)
}

func TestListPositions_InvalidAddress(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := doRequest(router, http.MethodGet, "/v1/Position/not-an-address")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":88`)
}

func TestGetOrderBook(t *testing.T) {
	router, tm := newTestRouter(t, false)

	bond := &schema.BondToken{}
	bond.TokenAddress = testTokenAddress
	bond.TradableExchange = testExchangeAddress

	tm.store.EXPECT().
		GetTokenDetail(gomock.Any(), testTokenAddress).
		Return(bond, nil)
	tm.store.EXPECT().
		GetOrderBook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.OrderBookInput) ([]store.OrderBookEntry, error) {
			assert.True(t, input.IsBuy)
			assert.Equal(t, testExchangeAddress, input.ExchangeAddress)
			return []store.OrderBookEntry{
				{ExchangeAddress: testExchangeAddress, OrderID: 7, Price: 100, Amount: 50, AccountAddress: testAccountAddress},
			}, nil
		})

	w := doRequest(router, http.MethodGet, "/v1/DEX/Market/OrderBook/"+testTokenAddress+"?order_type=buy")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"order_id":7`)
}

func TestGetOrderBook_InvalidOrderType(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := doRequest(router, http.MethodGet, "/v1/DEX/Market/OrderBook/"+testTokenAddress+"?order_type=hold")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderBook_NoExchange(t *testing.T) {
	router, tm := newTestRouter(t, false)

	bond := &schema.BondToken{}
	bond.TokenAddress = testTokenAddress

	tm.store.EXPECT().
		GetTokenDetail(gomock.Any(), testTokenAddress).
		Return(bond, nil)

	w := doRequest(router, http.MethodGet, "/v1/DEX/Market/OrderBook/"+testTokenAddress+"?order_type=sell")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":10`)
}

func TestGetLastPrice(t *testing.T) {
	router, tm := newTestRouter(t, false)

	tm.store.EXPECT().
		GetLastPrice(gomock.Any(), testTokenAddress).
		Return(int64(9950), nil)

	w := doRequest(router, http.MethodGet, "/v1/DEX/Market/LastPrice?address_list="+testTokenAddress)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"last_price":9950`)
}

func TestGetLastPrice_MissingAddressList(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := doRequest(router, http.MethodGet, "/v1/DEX/Market/LastPrice")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":88`)
}

func TestListBlocks_ExplorerDisabled(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := doRequest(router, http.MethodGet, "/v1/Blocks?limit=10")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":10`)
}

func TestListBlocks_ResultCeiling(t *testing.T) {
	router, tm := newTestRouter(t, true)

	// a search matching more rows than the ceiling is refused, not truncated
	tm.store.EXPECT().
		CountBlocks(gomock.Any(), gomock.Any()).
		Return(uint64(1001), nil)

	w := doRequest(router, http.MethodGet, "/v1/Blocks")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":86`)
}

func TestListBlocks_LimitKeepsResultUnderCeiling(t *testing.T) {
	router, tm := newTestRouter(t, true)

	// an explicit limit caps the result set even when the filter matches more
	tm.store.EXPECT().
		CountBlocks(gomock.Any(), gomock.Any()).
		Return(uint64(5000), nil)
	tm.store.EXPECT().
		GetBlocks(gomock.Any(), gomock.Any()).
		Return([]schema.BlockData{{BlockNumber: 1, BlockHash: "0xabc"}}, uint64(5000), nil)

	w := doRequest(router, http.MethodGet, "/v1/Blocks?limit=100")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListBlocks_UnboundedUnderCeiling(t *testing.T) {
	router, tm := newTestRouter(t, true)

	// no limit at all is fine while the whole result fits under the ceiling
	tm.store.EXPECT().
		CountBlocks(gomock.Any(), gomock.Any()).
		Return(uint64(3), nil)
	tm.store.EXPECT().
		GetBlocks(gomock.Any(), gomock.Any()).
		Return([]schema.BlockData{
			{BlockNumber: 1, BlockHash: "0xa"},
			{BlockNumber: 2, BlockHash: "0xb"},
			{BlockNumber: 3, BlockHash: "0xc"},
		}, uint64(3), nil)

	w := doRequest(router, http.MethodGet, "/v1/Blocks")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"block_number":3`)
}

func TestListBlocks(t *testing.T) {
	router, tm := newTestRouter(t, true)

	tm.store.EXPECT().
		CountBlocks(gomock.Any(), gomock.Any()).
		Return(uint64(100), nil)
	tm.store.EXPECT().
		GetBlocks(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.BlockQueryFilter) ([]schema.BlockData, uint64, error) {
			assert.Equal(t, uint64(100), *filter.FromBlockNumber)
			assert.Equal(t, uint64(199), *filter.ToBlockNumber)
			return []schema.BlockData{{BlockNumber: 100, BlockHash: "0xabc"}}, 100, nil
		})

	w := doRequest(router, http.MethodGet, "/v1/Blocks?from_block_number=100&to_block_number=199")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"block_number":100`)
}

func TestListTransactions_ResultCeiling(t *testing.T) {
	router, tm := newTestRouter(t, true)

	tm.store.EXPECT().
		CountTransactions(gomock.Any(), gomock.Any()).
		Return(uint64(10001), nil).
		Times(2)

	w := doRequest(router, http.MethodGet, "/v1/Transactions")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":86`)

	// a limit above the ceiling does not help when the matches exceed it too
	w = doRequest(router, http.MethodGet, "/v1/Transactions?limit=20000")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":86`)
}

func TestListTransactions(t *testing.T) {
	router, tm := newTestRouter(t, true)

	tm.store.EXPECT().
		CountTransactions(gomock.Any(), gomock.Any()).
		Return(uint64(1), nil)
	tm.store.EXPECT().
		GetTransactions(gomock.Any(), gomock.Any()).
		Return([]schema.TxData{{Hash: "0xdeadbeef", BlockNumber: 42}}, uint64(1), nil)

	w := doRequest(router, http.MethodGet, "/v1/Transactions?limit=100")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "0xdeadbeef")
}

func TestGetBlockSyncStatus(t *testing.T) {
	router, tm := newTestRouter(t, false)

	tm.chain.EXPECT().
		SyncStatus(gomock.Any()).
		Return(&chain.SyncStatus{IsSynced: true, LatestBlockNumber: 123456}, nil)

	w := doRequest(router, http.MethodGet, "/v1/NodeInfo/BlockSyncStatus")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"latest_block_number":123456`)
}

func TestGetBlockSyncStatus_NodeUnavailable(t *testing.T) {
	router, tm := newTestRouter(t, false)

	tm.chain.EXPECT().
		SyncStatus(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	w := doRequest(router, http.MethodGet, "/v1/NodeInfo/BlockSyncStatus")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"code":503`)
}

func TestListNotifications_Unsigned(t *testing.T) {
	// the route group enforces signatures, so an unsigned request never
	// reaches the handler
	router, _ := newTestRouter(t, false)

	w := doRequest(router, http.MethodGet, "/v1/Notifications")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":88`)
}

func TestAdminRoutes_Unauthorized(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := doRequest(router, http.MethodGet, "/v1/Admin/Tokens")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":401`)
}

func TestListListings(t *testing.T) {
	router, tm := newTestRouter(t, false)

	listing := schema.Listing{TokenAddress: testTokenAddress, IsPublic: true}
	tm.store.EXPECT().
		GetListings(gomock.Any(), gomock.Any()).
		Return([]schema.Listing{listing}, uint64(1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/Admin/Tokens", nil)
	req.Header.Set("Authorization", "apikey test-key")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testTokenAddress)
}
