// Package resource holds the DTOs exposed at the API boundary. Fields are
// pointers so an absent value can be told apart from a zero one; relation
// fields are typed as other resources and are resolved by the mapping
// package, never by hand-written per-type code. Persistence timestamps are
// tagged output-only: they surface on reads but are never written back.
package resource

import "time"

type Customer struct {
	ID        *uint      `json:"id,omitempty"`
	Email     *string    `json:"email,omitempty"`
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	Active    *bool      `json:"active,omitempty"`
	Addresses []Address  `json:"addresses,omitempty"`
	Orders    []Order    `json:"orders,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty" mapper:"-"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" mapper:"-"`
}

type Address struct {
	ID         *uint      `json:"id,omitempty"`
	CustomerID *uint      `json:"customerId,omitempty"`
	Customer   *Customer  `json:"customer,omitempty"`
	Street     *string    `json:"street,omitempty"`
	City       *string    `json:"city,omitempty"`
	Zip        *string    `json:"zip,omitempty"`
	Country    *string    `json:"country,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty" mapper:"-"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty" mapper:"-"`
}
