package resource

import "time"

type Product struct {
	ID          *uint      `json:"id,omitempty"`
	SKU         *string    `json:"sku,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	PriceCents  *int64     `json:"priceCents,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty" mapper:"-"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" mapper:"-"`
}
