package order

import (
	"errors"

	"adisyon-backend/internal/apperr"
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/localtime"
	"adisyon-backend/internal/models"

	"gorm.io/gorm"
)

// Durum akışı doğrusal: pending → preparing → ready → served → paid.
// Atlama ve geri dönüş yok; aynı duruma istek no-op.
var allowedStatusFlow = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusPending:   {models.OrderStatusPreparing},
	models.OrderStatusPreparing: {models.OrderStatusReady},
	models.OrderStatusReady:     {models.OrderStatusServed},
	models.OrderStatusServed:    {models.OrderStatusPaid},
}

// UpdateOrderStatus - durumu doğrulayarak ilerletir. expectedVersion verilirse
// saklanan version ile karşılaştırılır (optimistic concurrency); uyuşmazsa
// VERSION_CONFLICT döner ve hiçbir değişiklik uygulanmaz. Yazma, version
// üzerinde compare-and-swap ile yapılır: aynı anda iki güncellemeden yalnızca
// biri başarılı olur.
func UpdateOrderStatus(orderID uint, newStatus models.OrderStatus, expectedVersion *int) (*models.Order, error) {
	var o models.Order
	if err := database.DB.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrOrderNotFound
		}
		return nil, err
	}

	if o.Status == newStatus {
		return GetOrderWithItems(orderID)
	}

	legal := false
	for _, s := range allowedStatusFlow[o.Status] {
		if s == newStatus {
			legal = true
			break
		}
	}
	if !legal {
		return nil, apperr.ErrInvalidStatus
	}

	if expectedVersion != nil && o.Version != *expectedVersion {
		return nil, apperr.ErrVersionConflict
	}

	res := database.DB.Model(&models.Order{}).
		Where("id = ? AND version = ?", orderID, o.Version).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"version":    gorm.Expr("version + 1"),
			"updated_at": localtime.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Okuma ile yazma arasında başka bir istemci versiyonu ilerletti
		return nil, apperr.ErrVersionConflict
	}

	return GetOrderWithItems(orderID)
}

// ValidStatus - bilinen beş sipariş durumundan biri mi?
func ValidStatus(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusPending, models.OrderStatusPreparing,
		models.OrderStatusReady, models.OrderStatusServed, models.OrderStatusPaid:
		return true
	}
	return false
}

// ForceUpdateOrderStatus - akış denetimi olmadan durum yazar. Yalnızca
// yönetici düzeltmeleri için ayrı bir uçta sunulur; normal akış her zaman
// UpdateOrderStatus üzerinden gider.
func ForceUpdateOrderStatus(orderID uint, newStatus models.OrderStatus) (*models.Order, error) {
	if !ValidStatus(newStatus) {
		return nil, apperr.ErrInvalidStatus
	}
	res := database.DB.Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"version":    gorm.Expr("version + 1"),
			"updated_at": localtime.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.ErrOrderNotFound
	}
	return GetOrderWithItems(orderID)
}
