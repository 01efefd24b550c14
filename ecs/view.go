package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View represents a query for entities with a specific combination of
// components. The type T should be a struct whose fields are pointers to
// component types. An embedded (or named) ecs.EntityId field receives the
// entity's ID. Named pointer fields can be marked optional with the
// `ecs:"optional"` struct tag.
type View[T any] struct {
	storage *Storage

	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
	idOffsets   []uintptr
}

var entityIdType = reflect.TypeFor[EntityId]()

// NewView creates a new view for the given struct type. At least one
// required component field must be present; it anchors iteration.
func NewView[T any](storage *Storage) *View[T] {
	var zero T
	structType := reflect.TypeOf(zero)

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}

	required := 0
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.idOffsets = append(v.idOffsets, field.Offset)
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or ecs.EntityId")
		}

		// Embedded fields are always required.
		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}
		if !isOptional {
			required++
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	if required == 0 {
		panic("View must have at least one required component field")
	}

	return v
}

// Fill populates the provided struct pointer with component data for the
// given entity. Returns false if the entity is dead or missing any required
// component. Optional components are set to nil if not present.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	if !v.storage.Alive(id) {
		return false
	}

	// Direct memory access through pre-computed field offsets keeps
	// reflection out of the hot path.
	structPtr := unsafe.Pointer(ptr)
	index := id.Index()

	for i := 0; i < len(v.types); i++ {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])

		var component any
		if store := v.storage.storeFor(v.types[i]); store != nil {
			component = store.Get(index)
		}

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		// Extract the raw *T pointer out of the interface value.
		componentPtr := (*iface)(unsafe.Pointer(&component)).data
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}

	for _, offset := range v.idOffsets {
		*(*EntityId)(unsafe.Pointer(uintptr(structPtr) + offset)) = id
	}

	return true
}

// Get returns a populated view struct for the given entity, or nil if the
// entity doesn't have all the required components.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// driverStore picks the smallest required store as the iteration anchor.
// Returns nil when any required store is missing, meaning no entity can match.
func (v *View[T]) driverStore() iComponentStore {
	var driver iComponentStore
	for i, typ := range v.types {
		if v.optional[i] {
			continue
		}
		store := v.storage.storeFor(typ)
		if store == nil {
			return nil
		}
		if driver == nil || store.Len() < driver.Len() {
			driver = store
		}
	}
	return driver
}

// Iter returns an iterator over all entities that have all the required
// components for this view. The iterator yields (EntityId, T) pairs.
// Optional components are set to nil if not present.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		driver := v.driverStore()
		if driver == nil {
			return
		}

		var result T
		for index := range driver.Iter() {
			id := v.storage.idAt(index)
			if !v.Fill(id, &result) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Values returns an iterator over just the view structs (without entity IDs).
// Useful when only the component data matters, not which entity it belongs to.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}

// Spawn creates a new entity with components extracted from the view struct.
// Optional fields left nil are skipped; required fields must be non-nil.
func (v *View[T]) Spawn(data T) EntityId {
	structPtr := unsafe.Pointer(&data)

	components := make([]any, 0, len(v.types))
	for i := 0; i < len(v.types); i++ {
		fieldPtr := unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i])
		componentPtr := *(*unsafe.Pointer)(fieldPtr)

		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Spawn")
			}
			continue
		}

		component := reflect.NewAt(v.types[i], componentPtr).Elem().Interface()
		components = append(components, component)
	}

	return v.storage.Spawn(components...)
}
