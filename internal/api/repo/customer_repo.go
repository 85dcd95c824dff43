package repo

import (
	"gorm.io/gorm"

	"resmap"
	"resmap/internal/api/models"
)

type CustomerRepository struct {
	Db *gorm.DB
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{Db: resmap.DB}
}

func (slf *CustomerRepository) FindByID(id uint) (models.Customer, error) {
	var customer models.Customer
	err := slf.Db.Preload("Addresses").First(&customer, id).Error
	return customer, err
}

func (slf *CustomerRepository) FindByEmail(email string) (models.Customer, error) {
	var customer models.Customer
	err := slf.Db.Where("email = ?", email).First(&customer).Error
	return customer, err
}

func (slf *CustomerRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := slf.Db.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (slf *CustomerRepository) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	err := slf.Db.Preload("Addresses").Find(&customers).Error
	return customers, err
}

// Save persists the customer and synchronizes the address collection, so
// rows dropped from the slice are detached in the database too.
func (slf *CustomerRepository) Save(customer *models.Customer) error {
	if err := slf.Db.Session(&gorm.Session{FullSaveAssociations: true}).Save(customer).Error; err != nil {
		return err
	}
	return slf.Db.Model(customer).Association("Addresses").Replace(customer.Addresses)
}

func (slf *CustomerRepository) Create(customer *models.Customer) error {
	return slf.Db.Create(customer).Error
}

func (slf *CustomerRepository) Delete(id uint) error {
	return slf.Db.Delete(&models.Customer{}, id).Error
}
