package models

import (
	"time"

	"gorm.io/gorm"
)

// CardPayment and BankPayment are two concrete settlements behind the single
// Payment resource; the condition token supplied at mapping time picks the
// target type.

type CardPayment struct {
	ID          uint `gorm:"primaryKey"`
	OrderID     uint `gorm:"index;not null"`
	AmountCents int64
	Reference   string `gorm:"uniqueIndex;not null"`
	CapturedAt  *time.Time
	CardLast4   string         `gorm:"size:4" mapper:"-"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index" mapper:"-"`
}

func (CardPayment) TableName() string {
	return "card_payments"
}

type BankPayment struct {
	ID          uint `gorm:"primaryKey"`
	OrderID     uint `gorm:"index;not null"`
	AmountCents int64
	Reference   string `gorm:"uniqueIndex;not null"`
	CapturedAt  *time.Time
	IBAN        string         `gorm:"size:34" mapper:"-"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index" mapper:"-"`
}

func (BankPayment) TableName() string {
	return "bank_payments"
}
