package models

import "time"

// CashSession - kasa açılışından kapanışına kadar olan pencere.
// Aynı anda en fazla bir oturum is_open = true olabilir.
type CashSession struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	OpenedAt        time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt        *time.Time `json:"closed_at"`
	IsOpen          bool       `gorm:"index" json:"is_open"`
	OpeningUser     string     `gorm:"size:100" json:"opening_user"`
	ClosingUser     *string    `gorm:"size:100" json:"closing_user"`
	OpeningAmount   float64    `json:"opening_amount"`
	CashTotal       *float64   `json:"cash_total"`
	CardTotal       *float64   `json:"card_total"`
	RealCashCounted *float64   `json:"real_cash_counted"`
	Difference      *float64   `json:"difference"`
}
