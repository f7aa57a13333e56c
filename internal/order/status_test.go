package order

import (
	"errors"
	"testing"

	"adisyon-backend/internal/apperr"
	"adisyon-backend/internal/models"
	"adisyon-backend/internal/testutil"
)

func newPendingOrder(t *testing.T) *models.Order {
	t.Helper()
	db := testutil.OpenTestDB(t)
	item := testutil.SeedMenuItem(t, db, "Çay", 10.00)
	o, err := CreateOrder(CreateOrderInput{
		OrderType: models.OrderTypeDineIn,
		Items:     []NewOrderItem{{MenuItemID: item.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder hata: %v", err)
	}
	return o
}

func TestUpdateOrderStatus(t *testing.T) {
	t.Run("doğrusal akış baştan sona ilerler", func(t *testing.T) {
		o := newPendingOrder(t)

		flow := []models.OrderStatus{
			models.OrderStatusPreparing,
			models.OrderStatusReady,
			models.OrderStatusServed,
			models.OrderStatusPaid,
		}
		for i, next := range flow {
			updated, err := UpdateOrderStatus(o.ID, next, nil)
			if err != nil {
				t.Fatalf("%s geçişi hata: %v", next, err)
			}
			if updated.Status != next {
				t.Errorf("status = %v, beklenen %v", updated.Status, next)
			}
			if updated.Version != i+1 {
				t.Errorf("version = %d, beklenen %d", updated.Version, i+1)
			}
		}
	})

	t.Run("atlama ve geri dönüş INVALID_STATUS", func(t *testing.T) {
		cases := []struct {
			from models.OrderStatus
			to   models.OrderStatus
		}{
			{models.OrderStatusPending, models.OrderStatusReady},
			{models.OrderStatusPending, models.OrderStatusServed},
			{models.OrderStatusPending, models.OrderStatusPaid},
			{models.OrderStatusPreparing, models.OrderStatusPending},
			{models.OrderStatusPreparing, models.OrderStatusServed},
			{models.OrderStatusReady, models.OrderStatusPreparing},
			{models.OrderStatusReady, models.OrderStatusPaid},
			{models.OrderStatusServed, models.OrderStatusReady},
			{models.OrderStatusPaid, models.OrderStatusServed},
			{models.OrderStatusPaid, models.OrderStatusPending},
		}
		for _, tc := range cases {
			t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
				db := testutil.OpenTestDB(t)
				item := testutil.SeedMenuItem(t, db, "Çay", 10.00)
				o, _ := CreateOrder(CreateOrderInput{
					OrderType: models.OrderTypeDineIn,
					Items:     []NewOrderItem{{MenuItemID: item.ID, Quantity: 1}},
				})
				db.Model(&models.Order{}).Where("id = ?", o.ID).Update("status", tc.from)

				_, err := UpdateOrderStatus(o.ID, tc.to, nil)
				if !errors.Is(err, apperr.ErrInvalidStatus) {
					t.Errorf("err = %v, beklenen INVALID_STATUS", err)
				}
			})
		}
	})

	t.Run("aynı duruma istek no-op, version değişmez", func(t *testing.T) {
		o := newPendingOrder(t)

		updated, err := UpdateOrderStatus(o.ID, models.OrderStatusPending, nil)
		if err != nil {
			t.Fatalf("no-op hata: %v", err)
		}
		if updated.Version != 0 {
			t.Errorf("version = %d, no-op'ta 0 kalmalıydı", updated.Version)
		}
	})

	t.Run("bayat expected_version VERSION_CONFLICT", func(t *testing.T) {
		o := newPendingOrder(t)

		if _, err := UpdateOrderStatus(o.ID, models.OrderStatusPreparing, nil); err != nil {
			t.Fatalf("ilk geçiş hata: %v", err)
		}

		stale := 0 // sipariş artık version 1'de
		_, err := UpdateOrderStatus(o.ID, models.OrderStatusReady, &stale)
		if !errors.Is(err, apperr.ErrVersionConflict) {
			t.Errorf("err = %v, beklenen VERSION_CONFLICT", err)
		}

		fresh, _ := GetOrderWithItems(o.ID)
		if fresh.Status != models.OrderStatusPreparing {
			t.Errorf("çakışan istek durum yazmış: %v", fresh.Status)
		}
	})

	t.Run("doğru expected_version geçişe izin verir", func(t *testing.T) {
		o := newPendingOrder(t)

		v := 0
		updated, err := UpdateOrderStatus(o.ID, models.OrderStatusPreparing, &v)
		if err != nil {
			t.Fatalf("geçiş hata: %v", err)
		}
		if updated.Version != 1 {
			t.Errorf("version = %d, beklenen 1", updated.Version)
		}
	})

	t.Run("olmayan sipariş ORDER_NOT_FOUND", func(t *testing.T) {
		testutil.OpenTestDB(t)
		_, err := UpdateOrderStatus(31337, models.OrderStatusPreparing, nil)
		if !errors.Is(err, apperr.ErrOrderNotFound) {
			t.Errorf("err = %v, beklenen ORDER_NOT_FOUND", err)
		}
	})
}

func TestForceUpdateOrderStatus(t *testing.T) {
	t.Run("akış denetimi olmadan geri alır", func(t *testing.T) {
		o := newPendingOrder(t)

		if _, err := UpdateOrderStatus(o.ID, models.OrderStatusPreparing, nil); err != nil {
			t.Fatalf("geçiş hata: %v", err)
		}

		updated, err := ForceUpdateOrderStatus(o.ID, models.OrderStatusPending)
		if err != nil {
			t.Fatalf("ForceUpdateOrderStatus hata: %v", err)
		}
		if updated.Status != models.OrderStatusPending {
			t.Errorf("status = %v, beklenen pending", updated.Status)
		}
		if updated.Version != 2 {
			t.Errorf("version = %d, zorla yazma da artırmalı: beklenen 2", updated.Version)
		}
	})

	t.Run("bilinmeyen etiket INVALID_STATUS", func(t *testing.T) {
		o := newPendingOrder(t)
		_, err := ForceUpdateOrderStatus(o.ID, models.OrderStatus("shipped"))
		if !errors.Is(err, apperr.ErrInvalidStatus) {
			t.Errorf("err = %v, beklenen INVALID_STATUS", err)
		}
	})

	t.Run("olmayan sipariş ORDER_NOT_FOUND", func(t *testing.T) {
		testutil.OpenTestDB(t)
		_, err := ForceUpdateOrderStatus(5555, models.OrderStatusServed)
		if !errors.Is(err, apperr.ErrOrderNotFound) {
			t.Errorf("err = %v, beklenen ORDER_NOT_FOUND", err)
		}
	})
}
