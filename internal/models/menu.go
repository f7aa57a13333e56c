package models

import "time"

type MenuCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	Color       string    `gorm:"size:20;not null" json:"color"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItem - silme soft-delete'tir (is_active = false); aynı isimle tekrar
// oluşturulursa pasif kayıt yeniden aktiflenir.
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	CategoryID  *uint     `gorm:"index" json:"category_id"`
	Available   bool      `json:"available"`
	IsActive    bool      `json:"is_active"`
	Image       *string   `gorm:"size:255" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
