package domain

import "fmt"

// Diff returns the items of a whose id does not appear in b, preserving a's order.
func Diff(a, b []Item) []Item {
	if len(a) == 0 {
		return nil
	}
	exclude := make(map[string]struct{}, len(b))
	for _, it := range b {
		exclude[it.id] = struct{}{}
	}
	out := make([]Item, 0, len(a))
	for _, it := range a {
		if _, ok := exclude[it.id]; ok {
			continue
		}
		out = append(out, it)
	}
	return out
}

// IDs projects items onto their ids.
func IDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.id
	}
	return ids
}

// Find returns the first item in pool with the given id.
func Find(pool []Item, id string) (Item, bool) {
	for _, it := range pool {
		if it.id == id {
			return it, true
		}
	}
	return Item{}, false
}

// Contains reports whether any item in items has the given id.
func Contains(items []Item, id string) bool {
	_, ok := Find(items, id)
	return ok
}

// Resolve maps ids onto pool items in the order the ids are given.
// Repeated ids collapse to their first occurrence; an id missing from the pool is an error.
func Resolve(ids []string, pool []Item) ([]Item, error) {
	index := make(map[string]Item, len(pool))
	for _, it := range pool {
		if _, dup := index[it.id]; !dup {
			index[it.id] = it
		}
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		it, ok := index[id]
		if !ok {
			return nil, notFoundError(id)
		}
		seen[id] = struct{}{}
		out = append(out, it)
	}
	return out, nil
}

// CheckUnique returns an error naming the first id that appears twice in items.
func CheckUnique(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it.id]; ok {
			return duplicateItemError(it.id)
		}
		seen[it.id] = struct{}{}
	}
	return nil
}

// Head returns at most n leading items.
func Head(items []Item, n int) []Item {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	if len(items) > n {
		items = items[:n]
	}
	return append([]Item(nil), items...)
}

func notFoundError(id string) error {
	return newNotFound(fmt.Sprintf("item %q not found in pool", id))
}
