package ecs

import "sort"

// StorageStats is a snapshot of storage occupancy, used by debug tooling.
type StorageStats struct {
	TotalEntityCount   int
	ComponentTypeCount int
	SingletonCount     int
	StoreBreakdown     []StoreStats
	SingletonTypes     []string
}

// StoreStats describes a single component store.
type StoreStats struct {
	TypeName       string
	ComponentCount int
}

// CollectStats gathers storage statistics. The breakdown slices are sorted by
// type name so output is deterministic.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		TotalEntityCount:   s.liveCount,
		ComponentTypeCount: len(s.stores),
		SingletonCount:     len(s.singletons),
	}

	for typ, store := range s.stores {
		stats.StoreBreakdown = append(stats.StoreBreakdown, StoreStats{
			TypeName:       typ.String(),
			ComponentCount: store.Len(),
		})
	}
	sort.Slice(stats.StoreBreakdown, func(i, j int) bool {
		return stats.StoreBreakdown[i].TypeName < stats.StoreBreakdown[j].TypeName
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
