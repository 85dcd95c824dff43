package repo

import (
	"context"
	"errors"
	"reflect"

	"gorm.io/gorm"

	"resmap"
)

// GormFinder implements mapping.EntityFinder: it loads any registered entity
// type by primary key through gorm. A missing row is reported as (nil, nil),
// which the mapper turns into its own not-found error.
type GormFinder struct {
	Db *gorm.DB
}

func NewGormFinder() *GormFinder {
	return &GormFinder{Db: resmap.DB}
}

func (slf *GormFinder) FindByID(ctx context.Context, entityType reflect.Type, id uint) (any, error) {
	for entityType.Kind() == reflect.Ptr {
		entityType = entityType.Elem()
	}
	entity := reflect.New(entityType).Interface()
	err := slf.Db.WithContext(ctx).First(entity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}
