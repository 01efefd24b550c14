package ecs

// EntityId encodes the entity's generation (upper 32 bits) and its slot index
// (lower 32 bits). Generations start at 1, so the zero EntityId never names a
// live entity.
type EntityId uint64

// NewEntityId creates an EntityId from a slot index and a generation counter.
func NewEntityId(index uint32, generation uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the entity ID.
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation counter from the entity ID.
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}
