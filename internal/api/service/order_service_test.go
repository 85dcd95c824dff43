package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resmap/internal/api/handler/resource"
	"resmap/internal/api/mapping"
	"resmap/internal/api/models"
	"resmap/pkg"
)

func seedCustomer(t *testing.T, service *CustomerService, email string) resource.Customer {
	t.Helper()
	created, err := service.Create(context.Background(), resource.Customer{
		Email:     pkg.ToPtr(email),
		FirstName: pkg.ToPtr("Test"),
		LastName:  pkg.ToPtr("Customer"),
	})
	require.NoError(t, err)
	return created
}

func TestOrder_Create(t *testing.T) {
	db := newServiceDB(t)
	customers := newTestCustomerService(db)
	orders := newTestOrderService(db)

	customer := seedCustomer(t, customers, "order@example.com")
	product := models.Product{SKU: "SKU-1", Name: "Widget", PriceCents: 500}
	require.NoError(t, db.Create(&product).Error)

	created, err := orders.Create(context.Background(), resource.Order{
		CustomerID: customer.ID,
		Currency:   pkg.ToPtr("EUR"),
		TotalCents: pkg.ToPtr(int64(1000)),
		Items: []resource.OrderItem{
			{ProductID: pkg.ToPtr(product.ID), Quantity: pkg.ToPtr(2), UnitCents: pkg.ToPtr(int64(500))},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	require.NotNil(t, created.Reference)
	assert.NotEmpty(t, *created.Reference, "a reference is generated when none is given")
	assert.Equal(t, string(models.OrderStatusDraft), *created.Status)
	require.Len(t, created.Items, 1)
	assert.Equal(t, 2, *created.Items[0].Quantity)
	require.NotNil(t, created.Items[0].Product)
	assert.Equal(t, "SKU-1", *created.Items[0].Product.SKU)
}

func TestOrder_Create_KeepsGivenReference(t *testing.T) {
	db := newServiceDB(t)
	customers := newTestCustomerService(db)
	orders := newTestOrderService(db)

	customer := seedCustomer(t, customers, "ref@example.com")

	created, err := orders.Create(context.Background(), resource.Order{
		Reference:  pkg.ToPtr("ORD-2024-001"),
		CustomerID: customer.ID,
		Status:     pkg.ToPtr(string(models.OrderStatusPlaced)),
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-2024-001", *created.Reference)
	assert.Equal(t, string(models.OrderStatusPlaced), *created.Status)
}

func TestOrder_Update_ReplacesItems(t *testing.T) {
	db := newServiceDB(t)
	customers := newTestCustomerService(db)
	orders := newTestOrderService(db)

	customer := seedCustomer(t, customers, "items@example.com")
	product := models.Product{SKU: "SKU-2", Name: "Gadget", PriceCents: 300}
	require.NoError(t, db.Create(&product).Error)

	created, err := orders.Create(context.Background(), resource.Order{
		CustomerID: customer.ID,
		Items: []resource.OrderItem{
			{ProductID: pkg.ToPtr(product.ID), Quantity: pkg.ToPtr(1), UnitCents: pkg.ToPtr(int64(300))},
			{ProductID: pkg.ToPtr(product.ID), Quantity: pkg.ToPtr(5), UnitCents: pkg.ToPtr(int64(300))},
		},
	})
	require.NoError(t, err)
	require.Len(t, created.Items, 2)

	kept := created.Items[1]
	updated, err := orders.Update(context.Background(), *created.ID, resource.Order{
		ID:         created.ID,
		Reference:  created.Reference,
		CustomerID: customer.ID,
		Status:     created.Status,
		Items:      []resource.OrderItem{{ID: kept.ID}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, *kept.ID, *updated.Items[0].ID)
	assert.Equal(t, 5, *updated.Items[0].Quantity)
}

func TestOrder_Update_UnknownItem(t *testing.T) {
	db := newServiceDB(t)
	customers := newTestCustomerService(db)
	orders := newTestOrderService(db)

	customer := seedCustomer(t, customers, "bad-item@example.com")
	created, err := orders.Create(context.Background(), resource.Order{CustomerID: customer.ID})
	require.NoError(t, err)

	_, err = orders.Update(context.Background(), *created.ID, resource.Order{
		ID:         created.ID,
		Reference:  created.Reference,
		CustomerID: customer.ID,
		Status:     created.Status,
		Items:      []resource.OrderItem{{ID: pkg.ToPtr(uint(999))}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, mapping.ErrRelatedEntityNotFound)
}

func TestOrder_GetByID(t *testing.T) {
	db := newServiceDB(t)
	customers := newTestCustomerService(db)
	orders := newTestOrderService(db)

	customer := seedCustomer(t, customers, "get@example.com")
	created, err := orders.Create(context.Background(), resource.Order{CustomerID: customer.ID})
	require.NoError(t, err)

	found, err := orders.GetByID(*created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created.Reference, *found.Reference)
	require.NotNil(t, found.Customer, "the owning customer rides along")
	assert.Equal(t, "get@example.com", *found.Customer.Email)
}

func TestOrder_GetByID_NotFound(t *testing.T) {
	db := newServiceDB(t)
	orders := newTestOrderService(db)

	_, err := orders.GetByID(424242)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrder_GetAllForCustomer(t *testing.T) {
	db := newServiceDB(t)
	customers := newTestCustomerService(db)
	orders := newTestOrderService(db)

	customer := seedCustomer(t, customers, "list@example.com")
	other := seedCustomer(t, customers, "other@example.com")

	for range 2 {
		_, err := orders.Create(context.Background(), resource.Order{CustomerID: customer.ID})
		require.NoError(t, err)
	}
	_, err := orders.Create(context.Background(), resource.Order{CustomerID: other.ID})
	require.NoError(t, err)

	list, err := orders.GetAllForCustomer(*customer.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestOrder_Delete(t *testing.T) {
	db := newServiceDB(t)
	customers := newTestCustomerService(db)
	orders := newTestOrderService(db)

	customer := seedCustomer(t, customers, "del@example.com")
	created, err := orders.Create(context.Background(), resource.Order{CustomerID: customer.ID})
	require.NoError(t, err)

	require.NoError(t, orders.Delete(*created.ID))
	_, err = orders.GetByID(*created.ID)
	require.Error(t, err)
}
