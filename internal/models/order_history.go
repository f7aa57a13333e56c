package models

import "time"

// OrderHistory - ödemesi alınmış siparişin arşiv kaydı. Oluşturulduktan sonra
// yalnızca borç tahsilatında (payment_method/payment_status/paid_at) güncellenir.
type OrderHistory struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderType     OrderType     `gorm:"size:20" json:"order_type"`
	CustomerID    *uint         `gorm:"index" json:"customer_id"`
	Customer      *Customer     `json:"customer,omitempty"`
	Total         float64       `json:"total"`
	PaymentStatus PaymentStatus `gorm:"size:20" json:"payment_status"`
	PaidAt        *time.Time    `json:"paid_at"`
	PaymentMethod *string       `gorm:"size:30" json:"payment_method"`
	PaidAmount    *float64      `json:"paid_amount"`
	// Canlı siparişin created_at'i; arşivleme anı değil
	CreatedAt time.Time `json:"created_at"`

	Items    []OrderHistoryItem `gorm:"foreignKey:OrderHistoryID" json:"items"`
	Partials []PartialPayment   `gorm:"foreignKey:OrderHistoryID" json:"partial_payments"`
}

func (OrderHistory) TableName() string { return "order_history" }

type OrderHistoryItem struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	OrderHistoryID uint    `gorm:"index;not null" json:"order_history_id"`
	MenuItemID     uint    `gorm:"index;not null" json:"menu_item_id"`
	Quantity       int     `gorm:"not null" json:"quantity"`
	Price          float64 `gorm:"not null" json:"price"`
	Notes          *string `gorm:"size:255" json:"notes"`
}

func (OrderHistoryItem) TableName() string { return "order_history_items" }

// PartialPayment - parçalı ödemede kanal bazında bir katkı. Katkı alınır alınmaz
// canlı siparişe (OrderID) bağlanır; sipariş arşivlenince OrderHistoryID'ye taşınır.
type PartialPayment struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	OrderID        *uint      `gorm:"index" json:"order_id"`
	OrderHistoryID *uint      `gorm:"index" json:"order_history_id"`
	Cash           float64    `json:"cash"`
	Card           float64    `gorm:"column:credit_kart" json:"credit_kart"`
	Ticket         float64    `json:"ticket"`
	CreatedAt      time.Time  `json:"created_at"`
}
