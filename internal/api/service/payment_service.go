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

// PaymentService maps the payment resource onto one of two settlement
// entities. The mapping condition picks the variant: the default maps to a
// card payment, the bank condition to a bank transfer.
type PaymentService struct {
	paymentRepo *repo.PaymentRepository
	normalizer  *mapping.EntityNormalizer
	resolver    *mapping.ResourceToEntityMapper
	logger      zerolog.Logger
	events      *events.Publisher
}

func NewPaymentService(publisher *events.Publisher) *PaymentService {
	return &PaymentService{
		paymentRepo: repo.NewPaymentRepository(),
		normalizer:  mapping.NewEntityNormalizer(resmap.Classes),
		resolver:    mapping.NewResourceToEntityMapper(resmap.Classes, repo.NewGormFinder()),
		logger:      resmap.Logger,
		events:      publisher,
	}
}

// Record creates a payment of the variant selected by method ("card" or
// "bank").
func (slf *PaymentService) Record(ctx context.Context, res resource.Payment, method string) (resource.Payment, error) {
	mctx := mapping.Context{}
	if method == "bank" {
		mctx.Condition = resource.ConditionBank
	}

	mapped, err := slf.resolver.Map(ctx, res, mctx, nil)
	if err != nil {
		slf.logger.Error().Err(err).Str("method", method).Msg("Error mapping payment resource")
		return resource.Payment{}, err
	}

	if err = slf.paymentRepo.Save(mapped); err != nil {
		slf.logger.Error().Err(err).Str("method", method).Msg("Error saving payment")
		return resource.Payment{}, err
	}

	var id uint
	switch p := mapped.(type) {
	case *models.CardPayment:
		id = p.ID
	case *models.BankPayment:
		id = p.ID
	}
	slf.events.EntityChanged("payment", id, "created")
	slf.logger.Info().Uint("paymentId", id).Str("method", method).Msg("Payment recorded")

	return slf.toResource(mapped)
}

// GetByID loads the variant named by method; ids are not shared between the
// two tables.
func (slf *PaymentService) GetByID(id uint, method string) (resource.Payment, error) {
	var (
		entity any
		err    error
	)
	if method == "bank" {
		entity, err = slf.paymentRepo.FindBankByID(id)
	} else {
		entity, err = slf.paymentRepo.FindCardByID(id)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.Payment{}, fmt.Errorf("payment %w", ErrNotFound)
		}
		slf.logger.Error().Err(err).Uint("paymentId", id).Msg("Error finding payment")
		return resource.Payment{}, err
	}
	return slf.toResource(entity)
}

func (slf *PaymentService) GetAllForOrder(orderID uint) ([]resource.Payment, error) {
	cards, banks, err := slf.paymentRepo.GetAllForOrder(orderID)
	if err != nil {
		slf.logger.Error().Err(err).Uint("orderId", orderID).Msg("Error listing payments")
		return nil, err
	}
	out := make([]resource.Payment, 0, len(cards)+len(banks))
	for _, card := range cards {
		res, err := slf.toResource(card)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	for _, bank := range banks {
		res, err := slf.toResource(bank)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (slf *PaymentService) toResource(entity any) (resource.Payment, error) {
	normalized, err := slf.normalizer.NormalizeToResource(entity)
	if err != nil {
		slf.logger.Error().Err(err).Msg("Error normalizing payment")
		return resource.Payment{}, err
	}
	return normalized.(resource.Payment), nil
}
