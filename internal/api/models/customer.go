package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Active    bool   `gorm:"default:true"`
	// Notes is back-office only and never leaves the persistence layer.
	Notes     string         `gorm:"type:text" mapper:"-"`
	Addresses []Address      `gorm:"foreignKey:CustomerID"`
	Orders    []Order        `gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index" mapper:"-"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) AddAddress(a Address) {
	a.CustomerID = c.ID
	c.Addresses = append(c.Addresses, a)
}

func (c *Customer) RemoveAddress(a Address) {
	kept := make([]Address, 0, len(c.Addresses))
	for _, cur := range c.Addresses {
		if cur.ID != a.ID {
			kept = append(kept, cur)
		}
	}
	c.Addresses = kept
}

type Address struct {
	ID         uint `gorm:"primaryKey"`
	CustomerID uint `gorm:"index"`
	Customer   *Customer
	Street     string `gorm:"not null"`
	City       string `gorm:"not null"`
	Zip        string
	Country    string         `gorm:"size:2"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index" mapper:"-"`
}

func (Address) TableName() string {
	return "addresses"
}
