package database

import (
	"log"

	"adisyon-backend/internal/config"
	"adisyon-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
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
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	// Sık kullanılan sorgu yolları için indexler
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_orders_paid_at ON orders(paid_at)",
		"CREATE INDEX IF NOT EXISTS idx_order_history_paid_at ON order_history(paid_at)",
		"CREATE INDEX IF NOT EXISTS idx_order_history_payment_method ON order_history(payment_method)",
	}
	for _, idx := range indexes {
		if err := DB.Exec(idx).Error; err != nil {
			log.Printf("Index oluşturulamadı (atlanıyor): %v", err)
		}
	}

	ensureAdminUser()

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}

// ensureAdminUser - ilk kurulumda varsayılan yönetici hesabını oluşturur
func ensureAdminUser() {
	var count int64
	DB.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Varsayılan admin şifresi hashlenemedi: %v", err)
		return
	}
	admin := models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		FullName:     "Sistem Yöneticisi",
		Role:         models.RoleManager,
		IsActive:     true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Varsayılan admin kullanıcısı oluşturulamadı: %v", err)
		return
	}
	log.Println("Varsayılan admin kullanıcısı oluşturuldu (username=admin, password=123456)")
}
