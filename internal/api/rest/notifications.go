package rest

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ibet-fin/ibet-indexer/internal/api/middleware"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
	"github.com/ibet-fin/ibet-indexer/internal/store"
)

// signerAddress extracts the authenticated address placed in the context by
// the signature middleware
func signerAddress(c *gin.Context) (string, bool) {
	address := middleware.SignerAddress(c)
	return address, address != ""
}

// ListNotifications returns the signer's notification feed
func (h *handler) ListNotifications(c *gin.Context) {
	address, ok := signerAddress(c)
	if !ok {
		respondInvalidParameter(c, "request is not signed")
		return
	}

	params, err := ParseNotificationListQuery(c)
	if err != nil {
		respondInvalidParameter(c, err.Error())
		return
	}

	filter := store.NotificationQueryFilter{
		Address:          address,
		NotificationType: params.NotificationType,
		SortOrder:        params.Order(),
		Pagination:       params.Pagination(),
	}
	if params.Priority != nil {
		priority := domain.NotificationPriority(*params.Priority)
		filter.Priority = &priority
	}

	notifications, total, err := h.store.GetNotifications(c.Request.Context(), filter)
	if err != nil {
		respondInternalError(c, err, zap.String("address", address))
		return
	}

	out := make([]NotificationDTO, 0, len(notifications))
	for i := range notifications {
		out = append(out, newNotificationDTO(&notifications[i]))
	}
	respondOK(c, newListResponse(out, len(out), params.Pagination(), total))
}

// CountNotifications returns total/unread counters for the signer
func (h *handler) CountNotifications(c *gin.Context) {
	address, ok := signerAddress(c)
	if !ok {
		respondInvalidParameter(c, "request is not signed")
		return
	}

	counts, err := h.store.CountNotifications(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, zap.String("address", address))
		return
	}
	respondOK(c, NotificationCountDTO{Total: counts.Total, Unread: counts.Unread})
}

// MarkAllNotificationsRead flags the signer's entire feed read
func (h *handler) MarkAllNotificationsRead(c *gin.Context) {
	address, ok := signerAddress(c)
	if !ok {
		respondInvalidParameter(c, "request is not signed")
		return
	}

	if err := h.store.MarkAllNotificationsRead(c.Request.Context(), address); err != nil {
		respondInternalError(c, err, zap.String("address", address))
		return
	}
	respondOK(c, nil)
}

// UpdateNotification updates read/flagged/deleted flags of one entry owned by
// the signer
func (h *handler) UpdateNotification(c *gin.Context) {
	address, ok := signerAddress(c)
	if !ok {
		respondInvalidParameter(c, "request is not signed")
		return
	}

	notificationID := c.Param("id")
	if notificationID == "" {
		respondInvalidParameter(c, "notification id is required")
		return
	}

	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidParameter(c, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	notification, err := h.store.UpdateNotification(c.Request.Context(), notificationID, address, store.UpdateNotificationInput{
		IsRead:    req.IsRead,
		IsFlagged: req.IsFlagged,
		IsDeleted: req.IsDeleted,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDataNotExists) {
			respondDataNotExists(c, "notification not found")
			return
		}
		respondInternalError(c, err, zap.String("notification_id", notificationID))
		return
	}

	respondOK(c, newNotificationDTO(notification))
}

// DeleteNotification soft-deletes one entry owned by the signer
func (h *handler) DeleteNotification(c *gin.Context) {
	address, ok := signerAddress(c)
	if !ok {
		respondInvalidParameter(c, "request is not signed")
		return
	}

	notificationID := c.Param("id")
	if notificationID == "" {
		respondInvalidParameter(c, "notification id is required")
		return
	}

	if err := h.store.DeleteNotification(c.Request.Context(), notificationID, address); err != nil {
		if errors.Is(err, domain.ErrDataNotExists) {
			respondDataNotExists(c, "notification not found")
			return
		}
		respondInternalError(c, err, zap.String("notification_id", notificationID))
		return
	}
	respondOK(c, nil)
}
