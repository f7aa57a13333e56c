package menu

import (
	"testing"

	"adisyon-backend/internal/models"
	"adisyon-backend/internal/testutil"
)

func TestActivePrice(t *testing.T) {
	t.Run("satıştaki ürünün fiyatını döndürür", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		item := testutil.SeedMenuItem(t, db, "Mercimek Çorbası", 30.00)

		price, ok, err := ActivePrice(item.ID)
		if err != nil {
			t.Fatalf("ActivePrice hata: %v", err)
		}
		if !ok || price != 30.00 {
			t.Errorf("ok/price = %v/%v, beklenen true/30.00", ok, price)
		}
	})

	t.Run("stokta olmayan ürün ok=false", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		item := testutil.SeedMenuItem(t, db, "Bitti", 20.00)
		db.Model(&models.MenuItem{}).Where("id = ?", item.ID).Update("available", false)

		_, ok, err := ActivePrice(item.ID)
		if err != nil {
			t.Fatalf("ActivePrice hata: %v", err)
		}
		if ok {
			t.Error("ok = true, stokta olmayan ürün satılmamalı")
		}
	})

	t.Run("pasif ürün ok=false", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		item := testutil.SeedMenuItem(t, db, "Menüden Çıktı", 20.00)
		db.Model(&models.MenuItem{}).Where("id = ?", item.ID).Update("is_active", false)

		_, ok, err := ActivePrice(item.ID)
		if err != nil {
			t.Fatalf("ActivePrice hata: %v", err)
		}
		if ok {
			t.Error("ok = true, pasif ürün satılmamalı")
		}
	})

	t.Run("olmayan ürün ok=false", func(t *testing.T) {
		testutil.OpenTestDB(t)
		_, ok, err := ActivePrice(123456)
		if err != nil {
			t.Fatalf("ActivePrice hata: %v", err)
		}
		if ok {
			t.Error("ok = true, olmayan ürün satılmamalı")
		}
	})
}
