package pagination

// Window returns the part of items selected by r.
// Bounds are clamped to the slice, so a window past the end yields an empty slice.
// The returned slice shares its backing array with items.
func Window[T any](items []T, r Range) []T {
	if r.All() {
		return items
	}
	if r.Offset >= len(items) {
		return items[:0]
	}
	end := r.Offset + r.Limit
	if end > len(items) || end < r.Offset {
		end = len(items)
	}
	return items[r.Offset:end]
}
