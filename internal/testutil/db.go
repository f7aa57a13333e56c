// Package testutil, veritabanına dokunan testler için in-memory SQLite
// kurulumu sağlar. Global database.DB test süresince takas edilir.
package testutil

import (
	"fmt"
	"testing"

	"adisyon-backend/internal/database"
	"adisyon-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenTestDB - teste özel, isimlendirilmiş in-memory veritabanı açar ve
// database.DB'yi ona yönlendirir. Test bitince eski bağlantı geri gelir.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.TableCategory{},
		&models.Table{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderHistory{},
		&models.OrderHistoryItem{},
		&models.PartialPayment{},
		&models.CashSession{},
		&models.AuditLog{},
	)
	if err != nil {
		t.Fatalf("test migration hatası: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// SeedMenuItem - testlerde sipariş kalemleri için satışta bir ürün oluşturur.
func SeedMenuItem(t *testing.T, db *gorm.DB, name string, price float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:      name,
		Price:     price,
		Category:  "Test",
		Available: true,
		IsActive:  true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("menü öğesi oluşturulamadı: %v", err)
	}
	return item
}

// SeedTable - testlerde boş bir masa oluşturur.
func SeedTable(t *testing.T, db *gorm.DB, number string) models.Table {
	t.Helper()
	cat := models.TableCategory{Name: "Salon-" + number, Color: "#3B82F6", IsActive: true}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("masa kategorisi oluşturulamadı: %v", err)
	}
	tbl := models.Table{
		Number:     number,
		Seats:      4,
		Status:     models.TableStatusAvailable,
		CategoryID: cat.ID,
	}
	if err := db.Create(&tbl).Error; err != nil {
		t.Fatalf("masa oluşturulamadı: %v", err)
	}
	return tbl
}

// SeedCustomer - testlerde müşteri oluşturur.
func SeedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	cust := models.Customer{CustomerName: name}
	if err := db.Create(&cust).Error; err != nil {
		t.Fatalf("müşteri oluşturulamadı: %v", err)
	}
	return cust
}
