package repo

import (
	"gorm.io/gorm"

	"resmap"
	"resmap/internal/api/models"
)

type OrderRepository struct {
	Db *gorm.DB
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{Db: resmap.DB}
}

func (slf *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := slf.Db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Customer").
		First(&order, id).Error
	return order, err
}

func (slf *OrderRepository) GetAllForCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := slf.Db.
		Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (slf *OrderRepository) Create(order *models.Order) error {
	return slf.Db.Create(order).Error
}

// Save persists the order and synchronizes the item collection, so rows
// dropped from the slice are detached in the database too.
func (slf *OrderRepository) Save(order *models.Order) error {
	if err := slf.Db.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error; err != nil {
		return err
	}
	return slf.Db.Model(order).Association("Items").Replace(order.Items)
}

func (slf *OrderRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.Order{}, id).Error
}
