package order

import (
	"errors"

	"adisyon-backend/internal/apperr"
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/localtime"
	"adisyon-backend/internal/menu"
	"adisyon-backend/internal/models"

	"gorm.io/gorm"
)

type NewOrderItem struct {
	MenuItemID uint    `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Notes      *string `json:"notes"`
}

type CreateOrderInput struct {
	TableID       *uint
	OrderType     models.OrderType
	CustomerID    *uint
	CustomerName  *string
	Items         []NewOrderItem
	IsPaid        bool
	PaymentMethod string
}

// CreateOrder - siparişi ve kalemlerini tek transaction içinde oluşturur.
// Kalem fiyatları ekleme anında menüden okunur (snapshot); toplam sunucuda
// hesaplanır. Dine-in ise masa occupied yapılır ve masa numarası siparişe
// kopyalanır. Takeaway mutfak akışına girmediği için doğrudan served açılır.
func CreateOrder(in CreateOrderInput) (*models.Order, error) {
	orderType := in.OrderType
	if orderType == "" {
		if in.TableID != nil {
			orderType = models.OrderTypeDineIn
		} else {
			orderType = models.OrderTypeTakeaway
		}
	}

	var orderID uint
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var tableNumber *string
		if in.TableID != nil {
			var tbl models.Table
			if err := tx.First(&tbl, *in.TableID).Error; err == nil {
				tableNumber = &tbl.Number
			}
		}

		status := models.OrderStatusPending
		if orderType == models.OrderTypeTakeaway {
			status = models.OrderStatusServed
		}

		now := localtime.Now()
		o := models.Order{
			TableID:       in.TableID,
			OrderType:     orderType,
			CustomerID:    in.CustomerID,
			CustomerName:  in.CustomerName,
			TableNumber:   tableNumber,
			Status:        status,
			PaymentStatus: models.PaymentStatusUnpaid,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		if o.ID == 0 {
			return apperr.ErrOrderCreateFailed
		}

		var total float64
		for _, it := range in.Items {
			if it.Quantity <= 0 {
				continue
			}
			price, ok, err := menu.ActivePriceTx(tx, it.MenuItemID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.ErrMenuItemUnavailable
			}
			item := models.OrderItem{
				OrderID:    o.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				Price:      price,
				Notes:      it.Notes,
				CreatedAt:  localtime.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			total += float64(it.Quantity) * price
		}

		if err := tx.Model(&o).Update("total", total).Error; err != nil {
			return err
		}

		if in.IsPaid && in.PaymentMethod != "" {
			paidAt := localtime.Now()
			updates := map[string]interface{}{
				"payment_status": models.PaymentStatusPaid,
				"paid_at":        paidAt,
				"payment_method": in.PaymentMethod,
				"paid_amount":    total,
			}
			if err := tx.Model(&o).Updates(updates).Error; err != nil {
				return err
			}
		}

		if in.TableID != nil {
			if err := tx.Model(&models.Table{}).Where("id = ?", *in.TableID).
				Update("status", models.TableStatusOccupied).Error; err != nil {
				return err
			}
		}

		orderID = o.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetOrderWithItems(orderID)
}

// AddItemsToOrder - siparişe yeni kalem ekler. Sipariş ready/served/paid ise
// kilitlidir; miktarı 0 veya negatif kalemler sessizce atlanır. Ekleme sonrası
// toplam yeniden hesaplanır ve version bir artar.
func AddItemsToOrder(orderID uint, items []NewOrderItem) (*models.Order, error) {
	var o models.Order
	if err := database.DB.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrOrderNotFound
		}
		return nil, err
	}

	switch o.Status {
	case models.OrderStatusReady, models.OrderStatusServed, models.OrderStatusPaid:
		return nil, apperr.ErrOrderLocked
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			if it.Quantity <= 0 {
				continue
			}
			price, ok, err := menu.ActivePriceTx(tx, it.MenuItemID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.ErrMenuItemUnavailable
			}
			item := models.OrderItem{
				OrderID:    orderID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				Price:      price,
				Notes:      it.Notes,
				CreatedAt:  localtime.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return recalcOrderTotal(tx, orderID)
	})
	if err != nil {
		return nil, err
	}
	return GetOrderWithItems(orderID)
}

// recalcOrderTotal - toplamı kalemlerden yeniden hesaplar, version'ı artırır.
func recalcOrderTotal(tx *gorm.DB, orderID uint) error {
	var total float64
	if err := tx.Model(&models.OrderItem{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&total).Error; err != nil {
		return err
	}
	return tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"total":      total,
		"version":    gorm.Expr("version + 1"),
		"updated_at": localtime.Now(),
	}).Error
}

func GetOrderWithItems(orderID uint) (*models.Order, error) {
	var o models.Order
	if err := database.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrOrderNotFound
		}
		return nil, err
	}
	return &o, nil
}

// GetOpenOrderForTable - masadaki açık (served/paid olmayan) en son siparişi
// döndürür; yoksa nil.
func GetOpenOrderForTable(tableID uint) (*models.Order, error) {
	var o models.Order
	err := database.DB.Preload("Items").
		Where("table_id = ? AND status NOT IN ?", tableID,
			[]models.OrderStatus{models.OrderStatusServed, models.OrderStatusPaid}).
		Order("id DESC").
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

// ListActiveOrders - mutfak ekranı için servis sırası: en eski önce.
func ListActiveOrders() ([]models.Order, error) {
	var orders []models.Order
	err := database.DB.Preload("Items").
		Where("status NOT IN ?",
			[]models.OrderStatus{models.OrderStatusServed, models.OrderStatusPaid}).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// ListUnpaidOrders - ödemesi alınmamış tüm siparişler, en yeni önce.
func ListUnpaidOrders() ([]models.Order, error) {
	var orders []models.Order
	err := database.DB.Preload("Items").
		Where("payment_status <> ?", models.PaymentStatusPaid).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// DeleteOrder - siparişi ve kalemlerini arşivlemeden siler (iptal).
// Ödenmemiş dine-in siparişin masası boşa çıkarılır.
func DeleteOrder(orderID uint) error {
	var o models.Order
	if err := database.DB.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrOrderNotFound
		}
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Order{}, orderID).Error; err != nil {
			return err
		}
		if o.TableID != nil && o.PaymentStatus != models.PaymentStatusPaid {
			if err := tx.Model(&models.Table{}).Where("id = ?", *o.TableID).
				Update("status", models.TableStatusAvailable).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
