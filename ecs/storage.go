package ecs

import (
	"reflect"
	"unsafe"
)

// Storage is the main ECS storage interface. Entities are slots with a
// generation counter; components live in per-type sparse-set stores.
type Storage struct {
	registry    *ComponentRegistry
	stores      map[reflect.Type]iComponentStore
	generations []uint32
	alive       []bool
	free        []uint32
	liveCount   int
	singletons  map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	dataPtr unsafe.Pointer
	boxed   any // keeps the value reachable for the GC
}

// NewStorage creates a new ECS storage system with the given component registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		stores:     make(map[reflect.Type]iComponentStore),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Spawn creates a new entity with the provided components.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.generations))
		s.generations = append(s.generations, 1)
		s.alive = append(s.alive, false)
	}
	s.alive[index] = true
	s.liveCount++

	for _, comp := range components {
		s.storeForComponent(comp).Set(index, comp)
	}

	return NewEntityId(index, s.generations[index])
}

// Delete removes all data related to the entity ID.
func (s *Storage) Delete(id EntityId) {
	if !s.Alive(id) {
		return
	}

	index := id.Index()
	for _, store := range s.stores {
		store.Delete(index)
	}

	// Bumping the generation invalidates every outstanding EntityId.
	s.generations[index]++
	s.alive[index] = false
	s.liveCount--
	s.free = append(s.free, index)
}

// Alive reports whether the entity ID still names a live entity.
func (s *Storage) Alive(id EntityId) bool {
	index := id.Index()
	return int(index) < len(s.alive) && s.alive[index] && s.generations[index] == id.Generation()
}

// AddComponent attaches a component to an existing entity. The entity ID
// stays stable. Returns the entity ID, or 0 if the entity is dead.
func (s *Storage) AddComponent(id EntityId, component any) EntityId {
	if !s.Alive(id) {
		return 0
	}
	s.storeForComponent(component).Set(id.Index(), component)
	return id
}

// RemoveComponent detaches a component type from an entity. An entity whose
// last component is removed is deleted, matching Spawn's invariant that every
// live entity has at least one component.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) EntityId {
	if !s.Alive(id) {
		return 0
	}

	store, ok := s.stores[compType]
	if !ok {
		return id
	}
	store.Delete(id.Index())

	for _, other := range s.stores {
		if other.Has(id.Index()) {
			return id
		}
	}
	s.Delete(id)
	return 0
}

// GetComponent returns the component for the given entity ID and component
// type, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	if !s.Alive(id) {
		return nil
	}
	store, ok := s.stores[compType]
	if !ok {
		return nil
	}
	return store.Get(id.Index())
}

// HasComponent checks if an entity has a specific component type.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	if !s.Alive(id) {
		return false
	}
	store, ok := s.stores[compType]
	return ok && store.Has(id.Index())
}

// ComponentTypes returns the component types attached to an entity.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	if !s.Alive(id) {
		return nil
	}
	var types []reflect.Type
	for typ, store := range s.stores {
		if store.Has(id.Index()) {
			types = append(types, typ)
		}
	}
	return types
}

// idAt reconstructs the live EntityId for a slot index.
func (s *Storage) idAt(index uint32) EntityId {
	return NewEntityId(index, s.generations[index])
}

// storeFor returns the store for a component type, or nil if none exists yet.
func (s *Storage) storeFor(typ reflect.Type) iComponentStore {
	return s.stores[typ]
}

func (s *Storage) storeForComponent(component any) iComponentStore {
	typ := normalizeComponentType(reflect.TypeOf(component))

	store, ok := s.stores[typ]
	if !ok {
		factory := s.registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		store = factory()
		s.stores[typ] = store
	}
	return store
}

// normalizeComponentType strips one pointer level and rejects non-value kinds.
// Components can be structs or primitives, but not bare pointers, maps,
// channels, or functions.
func normalizeComponentType(typ reflect.Type) reflect.Type {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Map ||
		typ.Kind() == reflect.Chan || typ.Kind() == reflect.Func {
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return typ
}

// AddSingleton stores a single component instance not associated with any
// entity. Use NewSingleton for typed access.
func (s *Storage) AddSingleton(value any) {
	typ := normalizeComponentType(reflect.TypeOf(value))

	boxed := reflect.New(typ)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	boxed.Elem().Set(v)

	s.singletons[typ] = &singletonEntry{
		dataPtr: unsafe.Pointer(boxed.Pointer()),
		boxed:   boxed.Interface(),
	}
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	return s.singletons[typ]
}

// ReadSingleton populates target, which must be a pointer to a pointer of the
// singleton's type (e.g. **Camera). Returns false if no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a component pointer")
	}

	typ := v.Elem().Type().Elem()
	entry := s.getSingletonEntry(typ)
	if entry == nil {
		return false
	}

	v.Elem().Set(reflect.NewAt(typ, entry.dataPtr))
	return true
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent fetches a typed component pointer for an entity, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp := reader.GetComponent(entityId, reflect.TypeFor[T]())
	if comp == nil {
		return nil
	}
	return comp.(*T)
}
