package cashsession

import (
	"errors"
	"time"

	"adisyon-backend/internal/apperr"
	"adisyon-backend/internal/database"
	"adisyon-backend/internal/localtime"
	"adisyon-backend/internal/models"

	"gorm.io/gorm"
)

type CloseResult struct {
	CashTotal float64             `json:"cash_total"`
	CardTotal float64             `json:"card_total"`
	Session   *models.CashSession `json:"session"`
}

// GetOpenSession - açık (is_open) oturumu döndürür; yoksa nil.
func GetOpenSession() (*models.CashSession, error) {
	var s models.CashSession
	err := database.DB.Where("is_open = ?", true).Order("id DESC").First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Open - yeni kasa oturumu açar. Aynı anda yalnızca bir oturum açık olabilir.
func Open(openingUser string, openingAmount float64) (*models.CashSession, error) {
	open, err := GetOpenSession()
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperr.ErrCashSessionOpen
	}

	s := models.CashSession{
		OpenedAt:      localtime.Now(),
		IsOpen:        true,
		OpeningUser:   openingUser,
		OpeningAmount: openingAmount,
	}
	if err := database.DB.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Close - açık oturumu kapatır ve mutabakatı hesaplar. Pencere içindeki
// nakit/kart ciroları iki kaynaktan toplanır: payment_method etiketi eşleşen
// sipariş ve arşiv satırları, artı parçalı ödemelerin (partial-payment)
// kanal kırılımları. Parçalı satırların paid_amount'u etiket toplamına
// girmediği için çift sayım olmaz.
func Close(closingUser string, realCashCounted float64) (*CloseResult, error) {
	open, err := GetOpenSession()
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, apperr.ErrCashSessionNotOpen
	}

	now := localtime.Now()

	cashTotal := sumPaidByMethod(&models.Order{}, models.PaymentMethodCash, open.OpenedAt, now) +
		sumPaidByMethod(&models.OrderHistory{}, models.PaymentMethodCash, open.OpenedAt, now)
	cardTotal := sumPaidByMethod(&models.Order{}, models.PaymentMethodCard, open.OpenedAt, now) +
		sumPaidByMethod(&models.OrderHistory{}, models.PaymentMethodCard, open.OpenedAt, now)

	partialCash, partialCard := sumPartialChannels(open.OpenedAt, now)
	cashTotal += partialCash
	cardTotal += partialCard

	expectedCash := open.OpeningAmount + cashTotal
	difference := realCashCounted - expectedCash

	updates := map[string]interface{}{
		"closed_at":         now,
		"is_open":           false,
		"closing_user":      closingUser,
		"cash_total":        cashTotal,
		"card_total":        cardTotal,
		"real_cash_counted": realCashCounted,
		"difference":        difference,
	}
	if err := database.DB.Model(&models.CashSession{}).Where("id = ?", open.ID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	var closed models.CashSession
	if err := database.DB.First(&closed, open.ID).Error; err != nil {
		return nil, err
	}
	return &CloseResult{CashTotal: cashTotal, CardTotal: cardTotal, Session: &closed}, nil
}

func sumPaidByMethod(model interface{}, method string, from, to time.Time) float64 {
	var total float64
	database.DB.Model(model).
		Where("payment_method = ? AND paid_at BETWEEN ? AND ?", method, from, to).
		Select("COALESCE(SUM(paid_amount), 0)").
		Scan(&total)
	return total
}

// sumPartialChannels - pencere içinde kapanmış partial-payment arşiv
// kayıtlarının kanal bazında nakit/kart toplamları.
func sumPartialChannels(from, to time.Time) (cash, card float64) {
	var row struct {
		Cash float64
		Card float64
	}
	database.DB.Table("partial_payments").
		Joins("JOIN order_history ON order_history.id = partial_payments.order_history_id").
		Where("order_history.payment_method = ? AND order_history.paid_at BETWEEN ? AND ?",
			models.PaymentMethodPartial, from, to).
		Select("COALESCE(SUM(partial_payments.cash), 0) AS cash, COALESCE(SUM(partial_payments.credit_kart), 0) AS card").
		Scan(&row)
	return row.Cash, row.Card
}
