package cache

// Merge combines the durable and demo snapshots of one collection into a
// single list with no duplicate primary keys. Durable entries come first and
// win on conflict; demo-only entries are appended. Relative order within
// each input is preserved.
//
// Merge runs once per entity type at startup. After that the in-memory
// collection is the single source of truth and both namespaces are rewritten
// from it.
func Merge[T any](durable, demo []T, keyOf func(T) string) []T {
	if len(demo) == 0 {
		return durable
	}

	seen := make(map[string]bool, len(durable))
	for _, d := range durable {
		seen[keyOf(d)] = true
	}

	merged := make([]T, 0, len(durable)+len(demo))
	merged = append(merged, durable...)
	for _, d := range demo {
		if !seen[keyOf(d)] {
			merged = append(merged, d)
		}
	}
	return merged
}
