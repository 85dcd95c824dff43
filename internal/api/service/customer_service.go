package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"resmap"
	"resmap/internal/api/handler/resource"
	"resmap/internal/api/mapping"
	"resmap/internal/api/models"
	"resmap/internal/api/repo"
	"resmap/internal/events"
)

type CustomerService struct {
	customerRepo *repo.CustomerRepository
	normalizer   *mapping.EntityNormalizer
	resolver     *mapping.ResourceToEntityMapper
	logger       zerolog.Logger
	events       *events.Publisher
}

func NewCustomerService(publisher *events.Publisher) *CustomerService {
	return &CustomerService{
		customerRepo: repo.NewCustomerRepository(),
		normalizer:   mapping.NewEntityNormalizer(resmap.Classes),
		resolver:     mapping.NewResourceToEntityMapper(resmap.Classes, repo.NewGormFinder()),
		logger:       resmap.Logger,
		events:       publisher,
	}
}

func (slf *CustomerService) Create(ctx context.Context, res resource.Customer) (resource.Customer, error) {
	if res.Email != nil {
		exists, err := slf.customerRepo.ExistsByEmail(*res.Email)
		if err != nil {
			slf.logger.Error().Err(err).Msg("Error checking if customer exists")
			return resource.Customer{}, err
		}
		if exists {
			return resource.Customer{}, errors.New("customer with this email already exists")
		}
	}

	mapped, err := slf.resolver.Map(ctx, res, mapping.Context{}, nil)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error mapping customer resource")
		return resource.Customer{}, err
	}
	customer := mapped.(*models.Customer)

	if err = slf.customerRepo.Create(customer); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating customer")
		return resource.Customer{}, err
	}

	slf.events.EntityChanged("customer", customer.ID, "created")
	slf.logger.Info().Uint("customerId", customer.ID).Msg("Customer created")
	return slf.toResource(*customer)
}

func (slf *CustomerService) Update(ctx context.Context, id uint, res resource.Customer) (resource.Customer, error) {
	customer, err := slf.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.Customer{}, fmt.Errorf("customer %w", ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("customerId", id).Msg("Error finding customer")
		return resource.Customer{}, err
	}

	if _, err = slf.resolver.Map(ctx, res, mapping.Context{}, &customer); err != nil {
		slf.logger.Error().Err(err).Uint("customerId", id).Msg("Error mapping customer update")
		return resource.Customer{}, err
	}

	if err = slf.customerRepo.Save(&customer); err != nil {
		slf.logger.Error().Err(err).Uint("customerId", id).Msg("Error saving customer")
		return resource.Customer{}, err
	}

	slf.events.EntityChanged("customer", customer.ID, "updated")
	refreshed, err := slf.customerRepo.FindByID(customer.ID)
	if err != nil {
		return resource.Customer{}, err
	}
	return slf.toResource(refreshed)
}

func (slf *CustomerService) GetByID(id uint) (resource.Customer, error) {
	customer, err := slf.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.Customer{}, fmt.Errorf("customer %w", ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("customerId", id).Msg("Error finding customer")
		return resource.Customer{}, err
	}
	return slf.toResource(customer)
}

func (slf *CustomerService) GetAll() ([]resource.Customer, error) {
	customers, err := slf.customerRepo.GetAll()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing customers")
		return nil, err
	}
	out := make([]resource.Customer, 0, len(customers))
	for _, customer := range customers {
		res, err := slf.toResource(customer)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (slf *CustomerService) Delete(id uint) error {
	if err := slf.customerRepo.Delete(id); err != nil {
		slf.logger.Error().Err(err).Uint("customerId", id).Msg("Error deleting customer")
		return err
	}
	slf.events.EntityChanged("customer", id, "deleted")
	return nil
}

func (slf *CustomerService) toResource(customer models.Customer) (resource.Customer, error) {
	normalized, err := slf.normalizer.NormalizeToResource(customer)
	if err != nil {
		slf.logger.Error().Err(err).Uint("customerId", customer.ID).Msg("Error normalizing customer")
		return resource.Customer{}, err
	}
	return normalized.(resource.Customer), nil
}
