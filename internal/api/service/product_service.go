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

type ProductService struct {
	productRepo *repo.ProductRepository
	normalizer  *mapping.EntityNormalizer
	resolver    *mapping.ResourceToEntityMapper
	logger      zerolog.Logger
	events      *events.Publisher
}

func NewProductService(publisher *events.Publisher) *ProductService {
	return &ProductService{
		productRepo: repo.NewProductRepository(),
		normalizer:  mapping.NewEntityNormalizer(resmap.Classes),
		resolver:    mapping.NewResourceToEntityMapper(resmap.Classes, repo.NewGormFinder()),
		logger:      resmap.Logger,
		events:      publisher,
	}
}

func (slf *ProductService) Create(ctx context.Context, res resource.Product) (resource.Product, error) {
	mapped, err := slf.resolver.Map(ctx, res, mapping.Context{}, nil)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error mapping product resource")
		return resource.Product{}, err
	}
	product := mapped.(*models.Product)

	if err = slf.productRepo.Create(product); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating product")
		return resource.Product{}, err
	}

	slf.events.EntityChanged("product", product.ID, "created")
	return slf.toResource(*product)
}

func (slf *ProductService) Update(ctx context.Context, id uint, res resource.Product) (resource.Product, error) {
	product, err := slf.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.Product{}, fmt.Errorf("product %w", ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("productId", id).Msg("Error finding product")
		return resource.Product{}, err
	}

	if _, err = slf.resolver.Map(ctx, res, mapping.Context{}, &product); err != nil {
		slf.logger.Error().Err(err).Uint("productId", id).Msg("Error mapping product update")
		return resource.Product{}, err
	}

	if err = slf.productRepo.Save(&product); err != nil {
		slf.logger.Error().Err(err).Uint("productId", id).Msg("Error saving product")
		return resource.Product{}, err
	}

	slf.events.EntityChanged("product", product.ID, "updated")
	return slf.toResource(product)
}

func (slf *ProductService) GetByID(id uint) (resource.Product, error) {
	product, err := slf.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.Product{}, fmt.Errorf("product %w", ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("productId", id).Msg("Error finding product")
		return resource.Product{}, err
	}
	return slf.toResource(product)
}

func (slf *ProductService) GetAll() ([]resource.Product, error) {
	products, err := slf.productRepo.GetAll()
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error listing products")
		return nil, err
	}
	out := make([]resource.Product, 0, len(products))
	for _, product := range products {
		res, err := slf.toResource(product)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (slf *ProductService) Delete(id uint) error {
	if err := slf.productRepo.Delete(id); err != nil {
		slf.logger.Error().Err(err).Uint("productId", id).Msg("Error deleting product")
		return err
	}
	slf.events.EntityChanged("product", id, "deleted")
	return nil
}

func (slf *ProductService) toResource(product models.Product) (resource.Product, error) {
	normalized, err := slf.normalizer.NormalizeToResource(product)
	if err != nil {
		slf.logger.Error().Err(err).Uint("productId", product.ID).Msg("Error normalizing product")
		return resource.Product{}, err
	}
	return normalized.(resource.Product), nil
}
