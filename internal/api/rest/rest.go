package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ibet-fin/ibet-indexer/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/v1")
	{
		// Company directory (public read access)
		v1.GET("/Companies", handler.ListCompanies)
		v1.GET("/Companies/:eth_address", handler.GetCompany)
		v1.GET("/Companies/:eth_address/Tokens", handler.ListCompanyTokens)

		// Indexed token listings per template (public read access)
		v1.GET("/Token/StraightBond", handler.ListBondTokens)
		v1.GET("/Token/Share", handler.ListShareTokens)
		v1.GET("/Token/Membership", handler.ListMembershipTokens)
		v1.GET("/Token/Coupon", handler.ListCouponTokens)
		v1.GET("/Token/:contract_address", handler.GetToken)
		v1.GET("/Token/:contract_address/Status", handler.GetTokenStatus)

		// Account positions (public read access)
		v1.GET("/Position/:account_address", handler.ListPositions)
		v1.GET("/Position/:account_address/Lock", handler.ListLockedPositions)

		// DEX market data (public read access)
		v1.GET("/DEX/Market/OrderBook/:token_address", handler.GetOrderBook)
		v1.GET("/DEX/Market/LastPrice", handler.GetLastPrice)
		v1.GET("/DEX/Market/Tick", handler.GetTick)

		// Notification feed (signature-authenticated, address-scoped)
		notifications := v1.Group("/Notifications", middleware.Signature())
		{
			notifications.GET("", handler.ListNotifications)
			notifications.GET("/Count", handler.CountNotifications)
			notifications.POST("/Read", handler.MarkAllNotificationsRead)
			notifications.POST("/:id", handler.UpdateNotification)
			notifications.DELETE("/:id", handler.DeleteNotification)
		}

		// Listing administration (JWT or API key)
		admin := v1.Group("/Admin", middleware.Auth(authCfg))
		{
			admin.POST("/Tokens", handler.CreateListing)
			admin.GET("/Tokens", handler.ListListings)
			admin.GET("/Tokens/:token_address", handler.GetListing)
			admin.PUT("/Tokens/:token_address", handler.UpdateListing)
			admin.DELETE("/Tokens/:token_address", handler.DeleteListing)
		}

		// Node and explorer (explorer endpoints refuse unless enabled)
		v1.GET("/NodeInfo/BlockSyncStatus", handler.GetBlockSyncStatus)
		v1.GET("/Blocks", handler.ListBlocks)
		v1.GET("/Transactions", handler.ListTransactions)

		// Raw transaction relay
		v1.POST("/Eth/SendRawTransaction", handler.SendRawTransaction)
		v1.POST("/Eth/WaitForTransactionReceipt", handler.WaitForTransactionReceipt)

		// Contract ABI passthrough
		v1.GET("/ABI/:template", handler.GetABI)
	}
}
