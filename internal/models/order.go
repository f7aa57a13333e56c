package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusPaid      OrderStatus = "paid"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeTrendyol OrderType = "trendyol"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusDebt   PaymentStatus = "debt"
)

// Ödeme kanalları (payment_method kolonunda tutulan etiketler)
const (
	PaymentMethodCash    = "nakit"
	PaymentMethodCard    = "kredi-karti"
	PaymentMethodTicket  = "ticket"
	PaymentMethodDebt    = "borc"
	PaymentMethodPartial = "partial-payment"
)

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	TableID       *uint         `gorm:"index" json:"table_id"`
	OrderType     OrderType     `gorm:"size:20;not null" json:"order_type"`
	CustomerID    *uint         `gorm:"index" json:"customer_id"`
	CustomerName  *string       `gorm:"size:100" json:"customer_name"`
	TableNumber   *string       `gorm:"size:20" json:"table_number"` // masa numarası snapshot'ı
	Status        OrderStatus   `gorm:"size:20;not null;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null" json:"payment_status"`
	PaymentMethod *string       `gorm:"size:30" json:"payment_method"`
	PaidAt        *time.Time    `json:"paid_at"`
	PaidAmount    *float64      `json:"paid_amount"`
	Total         float64       `gorm:"not null" json:"total"`
	// Her mutasyonda bir artan optimistic concurrency sayacı
	Version   int       `gorm:"not null" json:"version"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type OrderItem struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	OrderID    uint `gorm:"index;not null" json:"order_id"`
	MenuItemID uint `gorm:"index;not null" json:"menu_item_id"`
	Quantity   int  `gorm:"not null" json:"quantity"`
	// Ekleme anındaki birim fiyat snapshot'ı; menü fiyatı sonradan değişse de sabit kalır
	Price     float64   `gorm:"not null" json:"price"`
	Notes     *string   `gorm:"size:255" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
