package repo

import (
	"gorm.io/gorm"

	"resmap"
	"resmap/internal/api/models"
)

type PaymentRepository struct {
	Db *gorm.DB
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{Db: resmap.DB}
}

// Save persists either settlement variant; the concrete type was already
// decided by the mapping condition.
func (slf *PaymentRepository) Save(payment any) error {
	return slf.Db.Save(payment).Error
}

func (slf *PaymentRepository) FindCardByID(id uint) (models.CardPayment, error) {
	var payment models.CardPayment
	err := slf.Db.First(&payment, id).Error
	return payment, err
}

func (slf *PaymentRepository) FindBankByID(id uint) (models.BankPayment, error) {
	var payment models.BankPayment
	err := slf.Db.First(&payment, id).Error
	return payment, err
}

func (slf *PaymentRepository) GetAllForOrder(orderID uint) ([]models.CardPayment, []models.BankPayment, error) {
	var cards []models.CardPayment
	if err := slf.Db.Where("order_id = ?", orderID).Find(&cards).Error; err != nil {
		return nil, nil, err
	}
	var banks []models.BankPayment
	if err := slf.Db.Where("order_id = ?", orderID).Find(&banks).Error; err != nil {
		return nil, nil, err
	}
	return cards, banks, nil
}
