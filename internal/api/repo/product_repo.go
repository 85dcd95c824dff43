package repo

import (
	"gorm.io/gorm"

	"resmap"
	"resmap/internal/api/models"
)

type ProductRepository struct {
	Db *gorm.DB
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{Db: resmap.DB}
}

func (slf *ProductRepository) FindByID(id uint) (models.Product, error) {
	var product models.Product
	err := slf.Db.First(&product, id).Error
	return product, err
}

func (slf *ProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := slf.Db.Order("name").Find(&products).Error
	return products, err
}

func (slf *ProductRepository) Create(product *models.Product) error {
	return slf.Db.Create(product).Error
}

func (slf *ProductRepository) Save(product *models.Product) error {
	return slf.Db.Save(product).Error
}

func (slf *ProductRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.Product{}, id).Error
}
