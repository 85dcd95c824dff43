// Package mapping implements the reflective bridge between persisted gorm
// entities and the resource DTOs exposed at the API boundary. A ClassMapper
// holds the type correspondences, EntityNormalizer walks an entity graph
// into resources, and ResourceToEntityMapper walks a resource graph back
// onto new or existing entities.
package mapping

import (
	"fmt"
	"reflect"
	"sync"
)

// conditionDefault keys the unconditional registration for a resource type.
const conditionDefault = ""

// ClassMapper is the registry of resource type <-> entity type
// correspondences. A resource type may map to several entity types, picked
// apart by a condition token supplied at mapping time. Registrations happen
// once at boot; afterwards the registry is only read.
type ClassMapper struct {
	mu         sync.RWMutex
	byResource map[reflect.Type]map[string]reflect.Type
	byEntity   map[reflect.Type]reflect.Type
}

func NewClassMapper() *ClassMapper {
	return &ClassMapper{
		byResource: make(map[reflect.Type]map[string]reflect.Type),
		byEntity:   make(map[reflect.Type]reflect.Type),
	}
}

// Register records the default correspondence between a resource type and an
// entity type. The last registration for a given resource type wins.
func (m *ClassMapper) Register(resource, entity any) {
	m.register(resource, entity, conditionDefault)
}

// RegisterConditional records a correspondence that is only picked when the
// same condition token is supplied in the mapping Context. Used for type
// hierarchies where one resource generalizes several concrete entities.
func (m *ClassMapper) RegisterConditional(resource, entity any, condition string) {
	m.register(resource, entity, condition)
}

func (m *ClassMapper) register(resource, entity any, condition string) {
	rt := indirectType(reflect.TypeOf(resource))
	et := indirectType(reflect.TypeOf(entity))

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.byResource[rt] == nil {
		m.byResource[rt] = make(map[string]reflect.Type)
	}
	m.byResource[rt][condition] = et
	m.byEntity[et] = rt
}

// ByEntity resolves the resource type an entity type is exposed as.
func (m *ClassMapper) ByEntity(entityType reflect.Type) (reflect.Type, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rt, ok := m.byEntity[indirectType(entityType)]
	if !ok {
		return nil, fmt.Errorf("%w: entity %s", ErrUnmappedType, typeName(entityType))
	}
	return rt, nil
}

// ByResource resolves the entity type a resource maps onto. A conditional
// registration matching the supplied condition wins over the default one.
func (m *ClassMapper) ByResource(resourceType reflect.Type, condition string) (reflect.Type, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	conditions, ok := m.byResource[indirectType(resourceType)]
	if !ok {
		return nil, fmt.Errorf("%w: resource %s", ErrUnmappedType, typeName(resourceType))
	}
	if condition != conditionDefault {
		if et, ok := conditions[condition]; ok {
			return et, nil
		}
	}
	if et, ok := conditions[conditionDefault]; ok {
		return et, nil
	}
	return nil, fmt.Errorf("%w: resource %s (condition %q)", ErrUnmappedType, typeName(resourceType), condition)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return indirectType(t).String()
}
