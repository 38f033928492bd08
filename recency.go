package lru

import "container/list"

// recency tracks key order using a doubly-linked list.
// Front is the most recently used key, back the least recently used.
type recency struct {
	order *list.List
	items map[string]*list.Element
}

func newRecency() *recency {
	return &recency{
		order: list.New(),
		items: make(map[string]*list.Element),
	}
}

// pushFront inserts key at the most recently used end.
// Callers must not push a key that is already tracked.
func (r *recency) pushFront(key string) {
	r.items[key] = r.order.PushFront(key)
}

func (r *recency) moveToFront(key string) {
	if elem, ok := r.items[key]; ok {
		r.order.MoveToFront(elem)
	}
}

// evictOldest removes and returns the least recently used key.
func (r *recency) evictOldest() (string, bool) {
	elem := r.order.Back()
	if elem == nil {
		return "", false
	}
	key := elem.Value.(string)
	r.order.Remove(elem)
	delete(r.items, key)
	return key, true
}

func (r *recency) len() int {
	return r.order.Len()
}

// keys returns tracked keys from most to least recently used.
func (r *recency) keys() []string {
	keys := make([]string, 0, r.order.Len())
	for elem := r.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(string))
	}
	return keys
}
