// Package ordered provides ordered, deterministic traversal of maps.
package ordered

import "sort"

// Keys returns the keys of m in ascending order.
func Keys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// RangeMap calls fn on each entry of m in ascending key order.
func RangeMap[K ~string, V any](m map[K]V, fn func(K, V)) {
	for _, k := range Keys(m) {
		fn(k, m[k])
	}
}
