package debt

import (
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/localtime"
	"adisyon-backend/internal/models"

	"gorm.io/gorm"
)

type CustomerDebt struct {
	ID           uint    `json:"id"`
	CustomerName string  `json:"customer_name"`
	Debt         float64 `json:"debt"`
}

type DebtEntry struct {
	models.OrderHistory
	// Bu arşiv kaydına şimdiye kadar yazılmış parçalı tahsilatların toplamı;
	// kalan borç = total - partial_paid
	PartialPaid float64 `json:"partial_paid"`
}

// GetCustomersWithDebt - borç bakiyesi pozitif olan müşteriler. Bakiye,
// borç etiketli arşiv toplamından kayıtlı parçalı tahsilatlar düşülerek
// hesaplanır.
func GetCustomersWithDebt() ([]CustomerDebt, error) {
	var rows []CustomerDebt
	err := database.DB.Raw(`
		SELECT oh.customer_id AS id,
		       c.customer_name AS customer_name,
		       SUM(oh.total) - COALESCE(SUM(pp.paid), 0) AS debt
		FROM order_history oh
		JOIN customers c ON oh.customer_id = c.id
		LEFT JOIN (
			SELECT order_history_id, SUM(cash + credit_kart + ticket) AS paid
			FROM partial_payments
			GROUP BY order_history_id
		) pp ON pp.order_history_id = oh.id
		WHERE (oh.payment_method = ? OR oh.payment_status = ?)
		  AND oh.customer_id IS NOT NULL
		GROUP BY oh.customer_id, c.customer_name
		HAVING SUM(oh.total) - COALESCE(SUM(pp.paid), 0) > 0
		ORDER BY debt DESC`,
		models.PaymentMethodDebt, models.PaymentStatusDebt).
		Scan(&rows).Error
	return rows, err
}

// GetCustomerDebts - müşterinin borç etiketli arşiv kayıtları, her biri
// parçalı tahsilat toplamıyla birlikte.
func GetCustomerDebts(customerID uint) ([]DebtEntry, error) {
	var rows []DebtEntry
	err := database.DB.Raw(`
		SELECT oh.*,
		       (SELECT COALESCE(SUM(cash + credit_kart + ticket), 0)
		        FROM partial_payments pp
		        WHERE pp.order_history_id = oh.id) AS partial_paid
		FROM order_history oh
		WHERE oh.customer_id = ?
		  AND (oh.payment_method = ? OR oh.payment_status = ?)
		ORDER BY oh.created_at DESC`,
		customerID, models.PaymentMethodDebt, models.PaymentStatusDebt).
		Scan(&rows).Error
	return rows, err
}

// SettleCustomerDebts - seçilen borç kayıtlarını tahsil edilmiş olarak
// işaretler. Yalnızca verilen müşteriye ait ve hâlâ borç etiketli satırlar
// güncellenir. updatePaidAmount true ise tahsilat "tamamı şimdi ödendi"
// sayılır ve paid_amount = total yazılır; false ise yalnızca etiket değişir
// (tarihsel davranış). Boş id listesi başarılı no-op'tur.
func SettleCustomerDebts(customerID uint, historyIDs []uint, method string, updatePaidAmount bool) error {
	if len(historyIDs) == 0 {
		return nil
	}

	now := localtime.Now()
	updates := map[string]interface{}{
		"payment_method": method,
		"payment_status": models.PaymentStatusPaid,
		"paid_at":        now,
	}
	if updatePaidAmount {
		updates["paid_amount"] = gorm.Expr("total")
	}

	return database.DB.Model(&models.OrderHistory{}).
		Where("customer_id = ? AND id IN ?", customerID, historyIDs).
		Where("payment_method = ? OR payment_status = ?",
			models.PaymentMethodDebt, models.PaymentStatusDebt).
		Updates(updates).Error
}

// GetCustomerOrderHistory - müşteriye bağlı arşiv kayıtları; customerID nil
// ise müşterisi olan tüm kayıtlar.
func GetCustomerOrderHistory(customerID *uint) ([]models.OrderHistory, error) {
	dbq := database.DB.Preload("Items").Preload("Customer").
		Where("customer_id IS NOT NULL")
	if customerID != nil {
		dbq = dbq.Where("customer_id = ?", *customerID)
	}

	var rows []models.OrderHistory
	err := dbq.Order("COALESCE(paid_at, created_at) DESC").Find(&rows).Error
	return rows, err
}
