package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint   `gorm:"primaryKey"`
	SKU         string `gorm:"uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	PriceCents  int64  `gorm:"not null"`
	// CostCents is the purchase price; it stays internal.
	CostCents int64          `mapper:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index" mapper:"-"`
}

func (Product) TableName() string {
	return "products"
}
