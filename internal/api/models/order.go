package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID         uint   `gorm:"primaryKey"`
	Reference  string `gorm:"uniqueIndex;not null"`
	CustomerID uint   `gorm:"index;not null"`
	Customer   *Customer
	Status     OrderStatus `gorm:"type:varchar(20);default:draft"`
	TotalCents int64
	Currency   string `gorm:"size:3;default:EUR"`
	PlacedAt   *time.Time
	Items      []OrderItem    `gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index" mapper:"-"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) AddItem(it OrderItem) {
	it.OrderID = o.ID
	o.Items = append(o.Items, it)
}

func (o *Order) RemoveItem(it OrderItem) {
	kept := make([]OrderItem, 0, len(o.Items))
	for _, cur := range o.Items {
		if cur.ID != it.ID {
			kept = append(kept, cur)
		}
	}
	o.Items = kept
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index"`
	ProductID uint
	Product   *Product
	Quantity  int `gorm:"not null;default:1"`
	UnitCents int64
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index" mapper:"-"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
