// Package lookup resolves records by their (customer, style) natural key.
//
// Indexes are rebuilt from the slice on every call; store sizes are small
// and a live secondary index could drift from the stores.
package lookup

import "strings"

// Key is the (customer, style) natural key shared by orders, plans and
// development items. It is matched exactly, as entered.
type Key struct {
	Customer string
	Style    string
}

// Index groups items by key, keeping store order inside each group.
func Index[T any](items []T, key func(T) Key) map[Key][]T {
	idx := make(map[Key][]T)
	for _, item := range items {
		k := key(item)
		idx[k] = append(idx[k], item)
	}
	return idx
}

// Find returns every item matching k, in store order.
func Find[T any](items []T, key func(T) Key, k Key) []T {
	return Index(items, key)[k]
}

// First returns the first item matching k in store order.
func First[T any](items []T, key func(T) Key, k Key) (T, bool) {
	var zero T
	matches := Find(items, key, k)
	if len(matches) == 0 {
		return zero, false
	}
	return matches[0], true
}

// Customers returns the distinct non-empty customers in first-seen order.
func Customers[T any](items []T, key func(T) Key) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range items {
		c := key(item).Customer
		if strings.TrimSpace(c) == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Styles returns the distinct styles of one customer in first-seen order.
func Styles[T any](items []T, key func(T) Key, customer string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, item := range items {
		k := key(item)
		if k.Customer != customer {
			continue
		}
		if _, ok := seen[k.Style]; ok {
			continue
		}
		seen[k.Style] = struct{}{}
		out = append(out, k.Style)
	}
	return out
}
