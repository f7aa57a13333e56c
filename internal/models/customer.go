package models

import "time"

type Customer struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerName    string    `gorm:"size:100;not null" json:"customer_name"`
	Address         *string   `gorm:"size:255" json:"address"`
	TelephoneNumber *string   `gorm:"size:30" json:"telephone_number"`
	CreatedAt       time.Time `json:"created_at"`
}
