package service

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resmap/internal/api/handler/resource"
	"resmap/internal/api/mapping"
	"resmap/internal/api/models"
	"resmap/internal/api/repo"
)

// newServiceDB opens a throwaway pure-Go sqlite database with the full
// schema migrated.
func newServiceDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("service_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Address{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.CardPayment{},
		&models.BankPayment{},
	), "automigrate")
	return db
}

// testClasses mirrors the registrations done at boot.
func testClasses() *mapping.ClassMapper {
	classes := mapping.NewClassMapper()
	classes.Register(resource.Customer{}, models.Customer{})
	classes.Register(resource.Address{}, models.Address{})
	classes.Register(resource.Product{}, models.Product{})
	classes.Register(resource.Order{}, models.Order{})
	classes.Register(resource.OrderItem{}, models.OrderItem{})
	classes.Register(resource.Payment{}, models.CardPayment{})
	classes.RegisterConditional(resource.Payment{}, models.BankPayment{}, resource.ConditionBank)
	return classes
}

func newTestCustomerService(db *gorm.DB) *CustomerService {
	classes := testClasses()
	return &CustomerService{
		customerRepo: &repo.CustomerRepository{Db: db},
		normalizer:   mapping.NewEntityNormalizer(classes),
		resolver:     mapping.NewResourceToEntityMapper(classes, &repo.GormFinder{Db: db}),
		logger:       zerolog.Nop(),
	}
}

func newTestOrderService(db *gorm.DB) *OrderService {
	classes := testClasses()
	return &OrderService{
		orderRepo:  &repo.OrderRepository{Db: db},
		normalizer: mapping.NewEntityNormalizer(classes),
		resolver:   mapping.NewResourceToEntityMapper(classes, &repo.GormFinder{Db: db}),
		logger:     zerolog.Nop(),
	}
}

func newTestPaymentService(db *gorm.DB) *PaymentService {
	classes := testClasses()
	return &PaymentService{
		paymentRepo: &repo.PaymentRepository{Db: db},
		normalizer:  mapping.NewEntityNormalizer(classes),
		resolver:    mapping.NewResourceToEntityMapper(classes, &repo.GormFinder{Db: db}),
		logger:      zerolog.Nop(),
	}
}
