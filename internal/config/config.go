package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	// Restoranın IANA saat dilimi; tüm tarih damgaları bu dilimde atılır
	RestaurantTZ string
	// Borç tahsilatı paid_amount'u da total'e eşitlesin mi?
	// false: yalnızca etiket değişir (payment_method/payment_status), tarihsel davranış.
	// true: tahsilat "şimdi tamamı ödendi" sayılır ve paid_amount = total yazılır.
	DebtSettleUpdatesPaidAmount bool
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:                    getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:                 getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=adisyon port=5432 sslmode=disable"),
		JWTSecret:                   getEnv("JWT_SECRET", ""),
		CORSOrigins:                 getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		RestaurantTZ:                getEnv("RESTAURANT_TZ", "Europe/Istanbul"),
		DebtSettleUpdatesPaidAmount: getEnv("DEBT_SETTLE_UPDATES_PAID_AMOUNT", "false") == "true",
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET en az 32 karakter olmalıdır! Güvenlik riski.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=adisyon port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN varsayılan değer kullanılıyor, production için mutlaka kendi Postgres bağlantı bilgisini tanımla.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS varsayılan değer kullanılıyor, production için mutlaka kendi domain'ini tanımla.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
