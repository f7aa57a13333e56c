package payment

import (
	"errors"
	"log"

	"adisyon-backend/internal/apperr"
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/localtime"
	"adisyon-backend/internal/models"

	"gorm.io/gorm"
)

// ProcessPayment - siparişin ödemesini alır ve siparişi arşive taşır. Tüm
// adımlar tek transaction içindedir: ödeme damgası, masanın boşaltılması,
// order_history + order_history_items kopyası, canlı siparişe bağlı parçalı
// ödeme satırlarının arşive taşınması ve canlı kaydın silinmesi. Arşivleme
// başarısız olursa hiçbir şey uygulanmaz ve çağırana tekrar denenebilir
// ARCHIVE_FAILED döner; ödeme asla sessizce kaybolmaz.
func ProcessPayment(orderID uint, amount float64, method string, customerID *uint) (uint, error) {
	var historyID uint

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.First(&o, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrOrderNotFound
			}
			return err
		}

		paymentStatus := models.PaymentStatusPaid
		if method == models.PaymentMethodDebt {
			paymentStatus = models.PaymentStatusDebt
		}
		paidAt := localtime.Now()

		custID := o.CustomerID
		if customerID != nil {
			custID = customerID
		}

		if o.TableID != nil {
			if err := tx.Model(&models.Table{}).Where("id = ?", *o.TableID).
				Update("status", models.TableStatusAvailable).Error; err != nil {
				return err
			}
		}

		history := models.OrderHistory{
			OrderType:     o.OrderType,
			CustomerID:    custID,
			Total:         o.Total,
			PaymentStatus: paymentStatus,
			PaidAt:        &paidAt,
			PaymentMethod: &method,
			PaidAmount:    &amount,
			CreatedAt:     o.CreatedAt,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		var items []models.OrderItem
		if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
			return err
		}
		for _, it := range items {
			hi := models.OrderHistoryItem{
				OrderHistoryID: history.ID,
				MenuItemID:     it.MenuItemID,
				Quantity:       it.Quantity,
				Price:          it.Price,
				Notes:          it.Notes,
			}
			if err := tx.Create(&hi).Error; err != nil {
				return err
			}
		}

		// Canlı siparişe yazılmış parçalı katkılar arşiv kaydına bağlanır
		if err := tx.Model(&models.PartialPayment{}).
			Where("order_id = ?", orderID).
			Updates(map[string]interface{}{
				"order_history_id": history.ID,
				"order_id":         nil,
			}).Error; err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Order{}, orderID).Error; err != nil {
			return err
		}

		historyID = history.ID
		return nil
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return 0, err
		}
		log.Printf("Sipariş %d arşivlenemedi: %v", orderID, err)
		return 0, apperr.ErrArchiveFailed
	}

	return historyID, nil
}

// RecordPartialContribution - parçalı ödemede tek bir katkıyı (kanal bazında)
// anında canlı siparişe bağlı olarak kalıcılaştırır. İstemci çökse bile
// önceki katkılar kaybolmaz; yalnızca yazılmamış son adım gider.
func RecordPartialContribution(orderID uint, cash, card, ticket float64) (*models.PartialPayment, error) {
	var count int64
	if err := database.DB.Model(&models.Order{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.ErrOrderNotFound
	}

	pp := models.PartialPayment{
		OrderID:   &orderID,
		Cash:      cash,
		Card:      card,
		Ticket:    ticket,
		CreatedAt: localtime.Now(),
	}
	if err := database.DB.Create(&pp).Error; err != nil {
		return nil, err
	}
	return &pp, nil
}

// RecordPartialPayment - kapanmış parçalı ödemenin kanal kırılımını arşiv
// kaydına yazar (kasa mutabakatında kanal bazında toplanır).
func RecordPartialPayment(historyID uint, cash, card, ticket float64) (*models.PartialPayment, error) {
	var count int64
	if err := database.DB.Model(&models.OrderHistory{}).Where("id = ?", historyID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.ErrOrderNotFound
	}

	pp := models.PartialPayment{
		OrderHistoryID: &historyID,
		Cash:           cash,
		Card:           card,
		Ticket:         ticket,
		CreatedAt:      localtime.Now(),
	}
	if err := database.DB.Create(&pp).Error; err != nil {
		return nil, err
	}
	return &pp, nil
}

// ListPastOrders - arşivdeki siparişler, kalemleri ve parçalı ödeme
// kırılımlarıyla birlikte; ödeme tarihi en yeni önce.
func ListPastOrders() ([]models.OrderHistory, error) {
	var histories []models.OrderHistory
	err := database.DB.Preload("Items").Preload("Partials").
		Order("COALESCE(paid_at, created_at) DESC").
		Find(&histories).Error
	return histories, err
}
