package resource

import "time"

type Order struct {
	ID         *uint       `json:"id,omitempty"`
	Reference  *string     `json:"reference,omitempty"`
	CustomerID *uint       `json:"customerId,omitempty"`
	Customer   *Customer   `json:"customer,omitempty"`
	Status     *string     `json:"status,omitempty"`
	TotalCents *int64      `json:"totalCents,omitempty"`
	Currency   *string     `json:"currency,omitempty"`
	PlacedAt   *time.Time  `json:"placedAt,omitempty"`
	Items      []OrderItem `json:"items,omitempty"`
	CreatedAt  *time.Time  `json:"createdAt,omitempty" mapper:"-"`
	UpdatedAt  *time.Time  `json:"updatedAt,omitempty" mapper:"-"`
}

type OrderItem struct {
	ID        *uint      `json:"id,omitempty"`
	OrderID   *uint      `json:"orderId,omitempty"`
	ProductID *uint      `json:"productId,omitempty"`
	Product   *Product   `json:"product,omitempty"`
	Quantity  *int       `json:"quantity,omitempty"`
	UnitCents *int64     `json:"unitCents,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty" mapper:"-"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" mapper:"-"`
}
