package models

import "time"

type TableStatus string

const (
	TableStatusAvailable TableStatus = "available"
	TableStatusOccupied  TableStatus = "occupied"
	TableStatusReserved  TableStatus = "reserved"
	TableStatusCleaning  TableStatus = "cleaning"
)

type TableCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Color     string    `gorm:"size:20;not null" json:"color"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Table struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	Number     string      `gorm:"size:20;uniqueIndex;not null" json:"number"`
	Seats      int         `gorm:"not null" json:"seats"`
	Status     TableStatus `gorm:"size:20;not null;index" json:"status"`
	CategoryID uint        `gorm:"index;not null" json:"category_id"`
	Category   *TableCategory `json:"category,omitempty"`
	X          int         `json:"x"`
	Y          int         `json:"y"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
