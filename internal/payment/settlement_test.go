package payment

import (
	"errors"
	"testing"

	"adisyon-backend/internal/apperr"
	"adisyon-backend/internal/models"
	"adisyon-backend/internal/order"
	"adisyon-backend/internal/testutil"
)

func TestProcessPayment(t *testing.T) {
	t.Run("sipariş yaşam döngüsü uçtan uca", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		itemA := testutil.SeedMenuItem(t, db, "Adana", 10.00)
		itemB := testutil.SeedMenuItem(t, db, "Ayran", 5.00)
		tbl := testutil.SeedTable(t, db, "M1")

		o, err := order.CreateOrder(order.CreateOrderInput{
			TableID:   &tbl.ID,
			OrderType: models.OrderTypeDineIn,
			Items:     []order.NewOrderItem{{MenuItemID: itemA.ID, Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("CreateOrder hata: %v", err)
		}
		if o.Total != 20.00 || o.Version != 0 {
			t.Fatalf("total/version = %v/%d, beklenen 20.00/0", o.Total, o.Version)
		}

		o, err = order.AddItemsToOrder(o.ID, []order.NewOrderItem{{MenuItemID: itemB.ID, Quantity: 1}})
		if err != nil {
			t.Fatalf("AddItemsToOrder hata: %v", err)
		}
		if o.Total != 25.00 || o.Version != 1 {
			t.Fatalf("total/version = %v/%d, beklenen 25.00/1", o.Total, o.Version)
		}

		for _, s := range []models.OrderStatus{
			models.OrderStatusPreparing, models.OrderStatusReady, models.OrderStatusServed,
		} {
			if o, err = order.UpdateOrderStatus(o.ID, s, nil); err != nil {
				t.Fatalf("%s geçişi hata: %v", s, err)
			}
		}
		if o.Version != 4 {
			t.Fatalf("version = %d, beklenen 4", o.Version)
		}

		historyID, err := ProcessPayment(o.ID, 25.00, models.PaymentMethodCash, nil)
		if err != nil {
			t.Fatalf("ProcessPayment hata: %v", err)
		}

		// Canlı sipariş silinmiş olmalı
		if _, err := order.GetOrderWithItems(o.ID); !errors.Is(err, apperr.ErrOrderNotFound) {
			t.Errorf("canlı sipariş hâlâ duruyor: %v", err)
		}
		var liveItems int64
		db.Model(&models.OrderItem{}).Where("order_id = ?", o.ID).Count(&liveItems)
		if liveItems != 0 {
			t.Errorf("canlı kalem sayısı = %d, beklenen 0", liveItems)
		}

		// Masa boşalmış olmalı
		var freshTbl models.Table
		db.First(&freshTbl, tbl.ID)
		if freshTbl.Status != models.TableStatusAvailable {
			t.Errorf("masa durumu = %v, beklenen available", freshTbl.Status)
		}

		// Tek arşiv kaydı, aynı toplam ve kalemler
		var history models.OrderHistory
		if err := db.Preload("Items").First(&history, historyID).Error; err != nil {
			t.Fatalf("arşiv kaydı okunamadı: %v", err)
		}
		if history.Total != 25.00 {
			t.Errorf("arşiv total = %v, beklenen 25.00", history.Total)
		}
		if history.PaymentStatus != models.PaymentStatusPaid {
			t.Errorf("arşiv payment_status = %v, beklenen paid", history.PaymentStatus)
		}
		if history.PaymentMethod == nil || *history.PaymentMethod != models.PaymentMethodCash {
			t.Errorf("arşiv payment_method = %v, beklenen nakit", history.PaymentMethod)
		}
		if history.PaidAmount == nil || *history.PaidAmount != 25.00 {
			t.Errorf("arşiv paid_amount = %v, beklenen 25.00", history.PaidAmount)
		}
		if len(history.Items) != 2 {
			t.Errorf("arşiv kalem sayısı = %d, beklenen 2", len(history.Items))
		}
		if !history.CreatedAt.Equal(o.CreatedAt) {
			t.Errorf("arşiv created_at = %v, canlı siparişinki korunmalıydı (%v)",
				history.CreatedAt, o.CreatedAt)
		}

		// Ödenmiş sipariş üzerinde sonraki işlemler artık bulunamaz
		if _, err := order.UpdateOrderStatus(o.ID, models.OrderStatusPaid, nil); !errors.Is(err, apperr.ErrOrderNotFound) {
			t.Errorf("durum güncellemesi err = %v, beklenen ORDER_NOT_FOUND", err)
		}
		if _, err := ProcessPayment(o.ID, 25.00, models.PaymentMethodCash, nil); !errors.Is(err, apperr.ErrOrderNotFound) {
			t.Errorf("tekrar ödeme err = %v, beklenen ORDER_NOT_FOUND", err)
		}
	})

	t.Run("borç yöntemi payment_status debt yazar", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		item := testutil.SeedMenuItem(t, db, "Lahmacun", 30.00)
		cust := testutil.SeedCustomer(t, db, "Ahmet Yılmaz")

		o, _ := order.CreateOrder(order.CreateOrderInput{
			OrderType: models.OrderTypeTakeaway,
			Items:     []order.NewOrderItem{{MenuItemID: item.ID, Quantity: 2}},
		})

		historyID, err := ProcessPayment(o.ID, 60.00, models.PaymentMethodDebt, &cust.ID)
		if err != nil {
			t.Fatalf("ProcessPayment hata: %v", err)
		}

		var history models.OrderHistory
		db.First(&history, historyID)
		if history.PaymentStatus != models.PaymentStatusDebt {
			t.Errorf("payment_status = %v, beklenen debt", history.PaymentStatus)
		}
		if history.CustomerID == nil || *history.CustomerID != cust.ID {
			t.Errorf("customer_id = %v, beklenen %d", history.CustomerID, cust.ID)
		}
	})

	t.Run("parçalı katkılar arşive taşınır", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		item := testutil.SeedMenuItem(t, db, "Künefe", 50.00)

		o, _ := order.CreateOrder(order.CreateOrderInput{
			OrderType: models.OrderTypeTakeaway,
			Items:     []order.NewOrderItem{{MenuItemID: item.ID, Quantity: 2}},
		})

		if _, err := RecordPartialContribution(o.ID, 60.00, 0, 0); err != nil {
			t.Fatalf("nakit katkı hata: %v", err)
		}
		if _, err := RecordPartialContribution(o.ID, 0, 40.00, 0); err != nil {
			t.Fatalf("kart katkı hata: %v", err)
		}

		historyID, err := ProcessPayment(o.ID, 100.00, models.PaymentMethodPartial, nil)
		if err != nil {
			t.Fatalf("ProcessPayment hata: %v", err)
		}

		var partials []models.PartialPayment
		db.Where("order_history_id = ?", historyID).Find(&partials)
		if len(partials) != 2 {
			t.Fatalf("arşive taşınan katkı sayısı = %d, beklenen 2", len(partials))
		}
		var cash, card float64
		for _, p := range partials {
			if p.OrderID != nil {
				t.Errorf("taşınan katkıda order_id hâlâ dolu: %v", *p.OrderID)
			}
			cash += p.Cash
			card += p.Card
		}
		if cash != 60.00 || card != 40.00 {
			t.Errorf("kanallar nakit/kart = %v/%v, beklenen 60/40", cash, card)
		}

		var liveCount int64
		db.Model(&models.PartialPayment{}).Where("order_id = ?", o.ID).Count(&liveCount)
		if liveCount != 0 {
			t.Errorf("canlı siparişe bağlı katkı kalmış: %d", liveCount)
		}
	})

	t.Run("olmayan sipariş ORDER_NOT_FOUND", func(t *testing.T) {
		testutil.OpenTestDB(t)
		_, err := ProcessPayment(90210, 10.00, models.PaymentMethodCash, nil)
		if !errors.Is(err, apperr.ErrOrderNotFound) {
			t.Errorf("err = %v, beklenen ORDER_NOT_FOUND", err)
		}
	})
}

func TestRecordPartialContribution(t *testing.T) {
	t.Run("olmayan siparişe katkı reddedilir", func(t *testing.T) {
		testutil.OpenTestDB(t)
		_, err := RecordPartialContribution(777, 10.00, 0, 0)
		if !errors.Is(err, apperr.ErrOrderNotFound) {
			t.Errorf("err = %v, beklenen ORDER_NOT_FOUND", err)
		}
	})
}

func TestRecordPartialPayment(t *testing.T) {
	t.Run("arşiv kaydına kanal kırılımı yazar", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		item := testutil.SeedMenuItem(t, db, "Çorba", 25.00)

		o, _ := order.CreateOrder(order.CreateOrderInput{
			OrderType: models.OrderTypeTakeaway,
			Items:     []order.NewOrderItem{{MenuItemID: item.ID, Quantity: 1}},
		})
		historyID, err := ProcessPayment(o.ID, 25.00, models.PaymentMethodPartial, nil)
		if err != nil {
			t.Fatalf("ProcessPayment hata: %v", err)
		}

		pp, err := RecordPartialPayment(historyID, 15.00, 10.00, 0)
		if err != nil {
			t.Fatalf("RecordPartialPayment hata: %v", err)
		}
		if pp.OrderHistoryID == nil || *pp.OrderHistoryID != historyID {
			t.Errorf("order_history_id = %v, beklenen %d", pp.OrderHistoryID, historyID)
		}

		var fresh models.PartialPayment
		db.First(&fresh, pp.ID)
		if fresh.Cash != 15.00 || fresh.Card != 10.00 {
			t.Errorf("nakit/kart = %v/%v, beklenen 15/10", fresh.Cash, fresh.Card)
		}
	})

	t.Run("olmayan arşiv kaydı reddedilir", func(t *testing.T) {
		testutil.OpenTestDB(t)
		_, err := RecordPartialPayment(888, 10.00, 0, 0)
		if !errors.Is(err, apperr.ErrOrderNotFound) {
			t.Errorf("err = %v, beklenen ORDER_NOT_FOUND", err)
		}
	})
}

func TestListPastOrders(t *testing.T) {
	t.Run("arşiv kalemleri ve katkılarıyla döner", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		item := testutil.SeedMenuItem(t, db, "Tost", 35.00)

		o, _ := order.CreateOrder(order.CreateOrderInput{
			OrderType: models.OrderTypeTakeaway,
			Items:     []order.NewOrderItem{{MenuItemID: item.ID, Quantity: 1}},
		})
		if _, err := ProcessPayment(o.ID, 35.00, models.PaymentMethodCash, nil); err != nil {
			t.Fatalf("ProcessPayment hata: %v", err)
		}

		past, err := ListPastOrders()
		if err != nil {
			t.Fatalf("ListPastOrders hata: %v", err)
		}
		if len(past) != 1 {
			t.Fatalf("arşiv kayıt sayısı = %d, beklenen 1", len(past))
		}
		if len(past[0].Items) != 1 {
			t.Errorf("kalem sayısı = %d, beklenen 1", len(past[0].Items))
		}
	})
}
