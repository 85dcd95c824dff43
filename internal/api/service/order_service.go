package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"resmap"
	"resmap/internal/api/handler/resource"
	"resmap/internal/api/mapping"
	"resmap/internal/api/models"
	"resmap/internal/api/repo"
	"resmap/internal/events"
	"resmap/pkg"
)

const orderCacheTTL = 5 * time.Minute

type OrderService struct {
	orderRepo  *repo.OrderRepository
	normalizer *mapping.EntityNormalizer
	resolver   *mapping.ResourceToEntityMapper
	logger     zerolog.Logger
	events     *events.Publisher
}

func NewOrderService(publisher *events.Publisher) *OrderService {
	return &OrderService{
		orderRepo:  repo.NewOrderRepository(),
		normalizer: mapping.NewEntityNormalizer(resmap.Classes),
		resolver:   mapping.NewResourceToEntityMapper(resmap.Classes, repo.NewGormFinder()),
		logger:     resmap.Logger,
		events:     publisher,
	}
}

func (slf *OrderService) Create(ctx context.Context, res resource.Order) (resource.Order, error) {
	mapped, err := slf.resolver.Map(ctx, res, mapping.Context{}, nil)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error mapping order resource")
		return resource.Order{}, err
	}
	order := mapped.(*models.Order)

	if order.Reference == "" {
		order.Reference = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusDraft
	}

	if err = slf.orderRepo.Create(order); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating order")
		return resource.Order{}, err
	}

	slf.events.EntityChanged("order", order.ID, "created")
	slf.logger.Info().Uint("orderId", order.ID).Str("reference", order.Reference).Msg("Order created")

	refreshed, err := slf.orderRepo.FindByID(order.ID)
	if err != nil {
		return resource.Order{}, err
	}
	return slf.toResource(refreshed)
}

func (slf *OrderService) Update(ctx context.Context, id uint, res resource.Order) (resource.Order, error) {
	order, err := slf.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.Order{}, fmt.Errorf("order %w", ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("orderId", id).Msg("Error finding order")
		return resource.Order{}, err
	}

	if _, err = slf.resolver.Map(ctx, res, mapping.Context{}, &order); err != nil {
		slf.logger.Error().Err(err).Uint("orderId", id).Msg("Error mapping order update")
		return resource.Order{}, err
	}

	if err = slf.orderRepo.Save(&order); err != nil {
		slf.logger.Error().Err(err).Uint("orderId", id).Msg("Error saving order")
		return resource.Order{}, err
	}

	if err = pkg.CacheDelete(pkg.ResourceCacheKey("order", id)); err != nil {
		slf.logger.Warn().Err(err).Uint("orderId", id).Msg("Failed to invalidate order cache")
	}
	slf.events.EntityChanged("order", order.ID, "updated")

	refreshed, err := slf.orderRepo.FindByID(order.ID)
	if err != nil {
		return resource.Order{}, err
	}
	return slf.toResource(refreshed)
}

func (slf *OrderService) GetByID(id uint) (resource.Order, error) {
	var cached resource.Order
	if err := pkg.CacheGet(pkg.ResourceCacheKey("order", id), &cached); err == nil {
		return cached, nil
	}

	order, err := slf.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.Order{}, fmt.Errorf("order %w", ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("orderId", id).Msg("Error finding order")
		return resource.Order{}, err
	}

	res, err := slf.toResource(order)
	if err != nil {
		return resource.Order{}, err
	}
	if err = pkg.CacheSet(pkg.ResourceCacheKey("order", id), res, orderCacheTTL); err != nil {
		slf.logger.Warn().Err(err).Uint("orderId", id).Msg("Failed to cache order")
	}
	return res, nil
}

func (slf *OrderService) GetAllForCustomer(customerID uint) ([]resource.Order, error) {
	orders, err := slf.orderRepo.GetAllForCustomer(customerID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("customerId", customerID).Msg("Error listing orders")
		return nil, err
	}
	out := make([]resource.Order, 0, len(orders))
	for _, order := range orders {
		res, err := slf.toResource(order)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (slf *OrderService) Delete(id uint) error {
	if err := slf.orderRepo.Delete(id); err != nil {
		slf.logger.Error().Err(err).Uint("orderId", id).Msg("Error deleting order")
		return err
	}
	if err := pkg.CacheDelete(pkg.ResourceCacheKey("order", id)); err != nil {
		slf.logger.Warn().Err(err).Uint("orderId", id).Msg("Failed to invalidate order cache")
	}
	slf.events.EntityChanged("order", id, "deleted")
	return nil
}

func (slf *OrderService) toResource(order models.Order) (resource.Order, error) {
	normalized, err := slf.normalizer.NormalizeToResource(order)
	if err != nil {
		slf.logger.Error().Err(err).Uint("orderId", order.ID).Msg("Error normalizing order")
		return resource.Order{}, err
	}
	return normalized.(resource.Order), nil
}
